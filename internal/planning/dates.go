package planning

import "time"

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// mondayOf returns the Monday of the calendar week containing d.
// Weeks start on Monday everywhere in this package.
func mondayOf(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// daysBetween returns the number of whole days strictly between a and b.
// It is negative when b is on or before a.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours()/24) - 1
}

// rangeMetadata walks every day of the inclusive range [from, to] to count
// total, weekend and working days, and counts the Monday-start calendar weeks
// the range touches.
func rangeMetadata(from, to time.Time) RangeMetadata {
	meta := RangeMetadata{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		meta.TotalDays++
		if isWeekend(d) {
			meta.WeekendDays++
		}
	}
	meta.WorkingDays = meta.TotalDays - meta.WeekendDays
	meta.WeekCount = int(mondayOf(to).Sub(mondayOf(from)).Hours()/24)/7 + 1
	return meta
}

package planning

import "math"

// ComputeMetrics derives period statistics for one stored schedule version.
// A version whose dates are missing, unreadable or inverted yields zero metrics.
func ComputeMetrics(v VersionRange) Metrics {
	from, okFrom := parseDate(v.From)
	to, okTo := parseDate(v.To)
	if !okFrom || !okTo || !from.Before(to) {
		return Metrics{}
	}

	meta := rangeMetadata(from, to)

	return Metrics{
		TotalDays:             meta.TotalDays,
		WeekCount:             meta.WeekCount,
		WorkingDays:           meta.WorkingDays,
		WeekendDays:           meta.WeekendDays,
		AvgWorkingDaysPerWeek: math.Round(float64(meta.WorkingDays)/float64(meta.WeekCount)*10) / 10,
		WeekendPercentage:     int(math.Round(float64(meta.WeekendDays) / float64(meta.TotalDays) * 100)),
		IsLongTerm:            meta.TotalDays > 90,
		IsShortTerm:           meta.TotalDays < 14,
	}
}

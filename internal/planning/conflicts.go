package planning

import (
	"fmt"
	"sort"
	"time"
)

type orderedVersion struct {
	v    VersionRange
	from time.Time
	to   time.Time
}

// AnalyzeConflicts audits a whole set of schedule versions at once. Adjacent
// versions in start-date order are checked for overlaps and oversized gaps,
// and every version is checked for an unusable date range. Unlike the pairwise
// compatibility check, a same-day handover (one version ending the day the
// next begins) is reported as an overlap here.
//
// The report lists adjacency conflicts in sorted-date order first, then
// invalid-range conflicts in input order; resolutions are index-aligned with
// conflicts.
func AnalyzeConflicts(versions []VersionRange) ConflictReport {
	conflicts := []Conflict{}
	resolutions := []Resolution{}

	// Versions whose dates do not parse or are inverted cannot be ordered;
	// they are excluded from the adjacency scan and reported below instead.
	ordered := make([]orderedVersion, 0, len(versions))
	for _, v := range versions {
		from, okFrom := parseDate(v.From)
		to, okTo := parseDate(v.To)
		if !okFrom || !okTo || !from.Before(to) {
			continue
		}
		ordered = append(ordered, orderedVersion{v: v, from: from, to: to})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].from.Before(ordered[j].from)
	})

	for i := 0; i+1 < len(ordered); i++ {
		current, next := ordered[i], ordered[i+1]

		if !current.to.Before(next.from) {
			conflicts = append(conflicts, Conflict{
				Kind:          ConflictOverlap,
				Message:       fmt.Sprintf("Schedule %q overlaps with %q", current.v.Label, next.v.Label),
				AffectedDates: []string{current.v.To, next.v.From},
				Severity:      SeverityHigh,
			})
			resolutions = append(resolutions, Resolution{
				Action:      "Adjust dates",
				Description: fmt.Sprintf("Move the start of %q to %s", next.v.Label, current.to.AddDate(0, 0, 1).Format(DateLayout)),
				Impact:      "Removes the overlapping days between the two schedules",
			})
			continue
		}

		if gap := daysBetween(current.to, next.from); gap > 7 {
			conflicts = append(conflicts, Conflict{
				Kind:          ConflictGap,
				Message:       fmt.Sprintf("%d day gap between %q and %q", gap, current.v.Label, next.v.Label),
				AffectedDates: []string{current.v.To, next.v.From},
				Severity:      SeverityMedium,
			})
			resolutions = append(resolutions, Resolution{
				Action:      "Fill gap",
				Description: fmt.Sprintf("Create a schedule covering the days between %s and %s", current.v.To, next.v.From),
				Impact:      "Restores continuous shift coverage",
			})
		}
	}

	for _, v := range versions {
		from, okFrom := parseDate(v.From)
		to, okTo := parseDate(v.To)
		switch {
		case !okFrom || !okTo:
			conflicts = append(conflicts, Conflict{
				Kind:          ConflictInvalidRange,
				Message:       fmt.Sprintf("Schedule %q has an unreadable date range", v.Label),
				AffectedDates: []string{v.From, v.To},
				Severity:      SeverityHigh,
			})
			resolutions = append(resolutions, Resolution{
				Action:      "Fix dates",
				Description: fmt.Sprintf("Re-enter the dates of %q in %s format", v.Label, DateLayout),
				Impact:      "Makes the schedule usable for planning again",
			})
		case !from.Before(to):
			conflicts = append(conflicts, Conflict{
				Kind:          ConflictInvalidRange,
				Message:       fmt.Sprintf("Schedule %q starts on or after its end date", v.Label),
				AffectedDates: []string{v.From, v.To},
				Severity:      SeverityHigh,
			})
			resolutions = append(resolutions, Resolution{
				Action:      "Swap or adjust dates",
				Description: fmt.Sprintf("Ensure the start of %q comes before its end", v.Label),
				Impact:      "Makes the schedule usable for planning again",
			})
		}
	}

	return ConflictReport{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
		Resolutions:  resolutions,
	}
}

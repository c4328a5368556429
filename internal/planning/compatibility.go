package planning

import (
	"fmt"
	"time"
)

// CheckCompatibility decides whether target may coexist with current, for
// example before branching a new version off an existing one. Date ranges are
// compared as closed intervals, so sharing a single boundary day counts as an
// overlap here.
func CheckCompatibility(current, target VersionRange) CompatibilityResult {
	issues := []string{}
	warnings := []string{}

	curFrom, okCF := parseDate(current.From)
	curTo, okCT := parseDate(current.To)
	tgtFrom, okTF := parseDate(target.From)
	tgtTo, okTT := parseDate(target.To)
	datesOK := okCF && okCT && okTF && okTT

	if !datesOK {
		issues = append(issues, "Invalid date format provided")
	} else if withinClosed(tgtFrom, curFrom, curTo) ||
		withinClosed(tgtTo, curFrom, curTo) ||
		(tgtFrom.Before(curFrom) && tgtTo.After(curTo)) {
		issues = append(issues, "Date ranges overlap with existing schedule")
	}

	// Label uniqueness is checked regardless of how the date comparison went.
	if current.Label == target.Label {
		issues = append(issues, "Version numbers must be unique")
	}

	if datesOK {
		if tgtFrom.Before(curFrom) {
			warnings = append(warnings, "Creating schedule for past dates")
		}

		gap := daysBetween(curTo, tgtFrom)
		if gap > 7 {
			warnings = append(warnings, fmt.Sprintf("%d day gap between schedules", gap))
		}
		if gap < 0 {
			warnings = append(warnings, "Schedules have overlapping periods")
		}
	}

	result := CompatibilityResult{
		IsCompatible: len(issues) == 0,
		Issues:       issues,
		Warnings:     warnings,
	}

	if result.IsCompatible {
		result.Recommendations = []string{"Schedules are compatible and the new version can be created"}
	} else {
		result.Recommendations = []string{"Resolve the listed issues before creating the new version"}
	}

	return result
}

func withinClosed(d, lo, hi time.Time) bool {
	return !d.Before(lo) && !d.After(hi)
}

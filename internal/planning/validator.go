package planning

// ValidateDateRange checks a candidate planning period before a schedule
// version is created from it. Structural problems (missing or unreadable dates,
// start not before end) return immediately with zero metadata; policy rules
// accumulate so the operator sees every violation at once.
func ValidateDateRange(candidate RangeCandidate) ValidationResult {
	result := ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	if candidate.From == "" || candidate.To == "" {
		result.Errors = append(result.Errors, "Date range must have both start and end dates")
		return result
	}

	from, okFrom := parseDate(candidate.From)
	to, okTo := parseDate(candidate.To)
	if !okFrom || !okTo {
		result.Errors = append(result.Errors, "Invalid date format provided")
		return result
	}

	if !from.Before(to) {
		result.Errors = append(result.Errors, "Start date must be before end date")
		return result
	}

	result.Metadata = rangeMetadata(from, to)

	if result.Metadata.TotalDays < 7 {
		result.Errors = append(result.Errors, "Schedule must span at least one week")
	}
	if result.Metadata.TotalDays > 365 {
		result.Errors = append(result.Errors, "Schedule cannot span more than one year")
	}
	// Unreachable once the range spans seven days, kept as a guard.
	if result.Metadata.WeekCount < 1 {
		result.Errors = append(result.Errors, "Schedule must include at least one complete week")
	}

	if result.Metadata.TotalDays > 180 {
		result.Warnings = append(result.Warnings, "Long schedules may impact performance")
	}
	if result.Metadata.WorkingDays < 5 {
		result.Warnings = append(result.Warnings, "Very few working days in selected range")
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

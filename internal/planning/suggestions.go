package planning

// Suggest powers the date-range picker: it turns validator warnings, period
// shape observations and a conflict probe against the stored versions into
// ranked advisory hints. The order is part of the contract consumed by the
// UI: validator warnings first, then optimizations, then the conflict warning.
func Suggest(candidate RangeCandidate, existing []VersionRange) []Suggestion {
	suggestions := []Suggestion{}

	if candidate.From == "" || candidate.To == "" {
		return suggestions
	}

	validation := ValidateDateRange(candidate)
	for _, warning := range validation.Warnings {
		suggestions = append(suggestions, Suggestion{
			Type:     SuggestionWarning,
			Message:  warning,
			Priority: PriorityMedium,
		})
	}

	meta := validation.Metadata
	if meta.WeekCount > 0 {
		if meta.WeekCount%4 == 0 {
			suggestions = append(suggestions, Suggestion{
				Type:     SuggestionOptimization,
				Message:  "Schedule length aligns well with monthly cycles",
				Priority: PriorityLow,
			})
		}
		if meta.WorkingDays >= meta.WeekendDays*2 {
			suggestions = append(suggestions, Suggestion{
				Type:     SuggestionOptimization,
				Message:  "Good ratio of working days to weekends",
				Priority: PriorityLow,
			})
		}
	}

	if len(existing) > 0 {
		// Probe the candidate against the stored versions as if it were
		// already a (never persisted) version of its own.
		probe := make([]VersionRange, 0, len(existing)+1)
		probe = append(probe, existing...)
		probe = append(probe, VersionRange{
			Label: "candidate",
			From:  candidate.From,
			To:    candidate.To,
		})

		if AnalyzeConflicts(probe).HasConflicts {
			suggestions = append(suggestions, Suggestion{
				Type:     SuggestionWarning,
				Message:  "Potential conflicts with existing schedules",
				Priority: PriorityHigh,
			})
		}
	}

	return suggestions
}

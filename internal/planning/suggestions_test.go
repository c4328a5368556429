package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_IncompleteCandidate(t *testing.T) {
	assert.Empty(t, Suggest(RangeCandidate{}, nil))
	assert.Empty(t, Suggest(RangeCandidate{From: "2024-01-01"}, nil))
	assert.Empty(t, Suggest(RangeCandidate{To: "2024-01-28"}, nil))
}

func TestSuggest_MonthlyCycleAlignment(t *testing.T) {
	// 28 days starting on a Monday: exactly four Monday-start weeks.
	suggestions := Suggest(RangeCandidate{From: "2024-01-01", To: "2024-01-28"}, nil)

	require.Len(t, suggestions, 2)

	assert.Equal(t, SuggestionOptimization, suggestions[0].Type)
	assert.Equal(t, PriorityLow, suggestions[0].Priority)
	assert.Contains(t, suggestions[0].Message, "monthly cycles")

	assert.Equal(t, SuggestionOptimization, suggestions[1].Type)
	assert.Contains(t, suggestions[1].Message, "working days to weekends")
}

func TestSuggest_ForwardsValidatorWarnings(t *testing.T) {
	// Nine months: long enough to trigger the performance warning.
	suggestions := Suggest(RangeCandidate{From: "2024-01-01", To: "2024-09-30"}, nil)

	require.NotEmpty(t, suggestions)
	assert.Equal(t, SuggestionWarning, suggestions[0].Type)
	assert.Equal(t, PriorityMedium, suggestions[0].Priority)
	assert.Equal(t, "Long schedules may impact performance", suggestions[0].Message)
}

func TestSuggest_ConflictWarningComesLast(t *testing.T) {
	existing := []VersionRange{
		{ID: 1, Label: "v1", From: "2024-01-01", To: "2024-01-28"},
	}

	suggestions := Suggest(RangeCandidate{From: "2024-01-15", To: "2024-02-11"}, existing)

	require.NotEmpty(t, suggestions)
	last := suggestions[len(suggestions)-1]
	assert.Equal(t, SuggestionWarning, last.Type)
	assert.Equal(t, PriorityHigh, last.Priority)
	assert.Equal(t, "Potential conflicts with existing schedules", last.Message)

	// Everything before the conflict warning follows the documented order:
	// validator warnings first, then optimizations.
	sawOptimization := false
	for _, s := range suggestions[:len(suggestions)-1] {
		if s.Type == SuggestionOptimization {
			sawOptimization = true
			continue
		}
		assert.False(t, sawOptimization, "warning after optimization breaks the order contract")
	}
}

func TestSuggest_NoConflictProbeWithoutStoredVersions(t *testing.T) {
	suggestions := Suggest(RangeCandidate{From: "2024-01-15", To: "2024-02-11"}, nil)

	for _, s := range suggestions {
		assert.NotEqual(t, "Potential conflicts with existing schedules", s.Message)
	}
}

func TestSuggest_CompatibleCandidateHasNoConflictWarning(t *testing.T) {
	existing := []VersionRange{
		{ID: 1, Label: "v1", From: "2024-01-01", To: "2024-01-28"},
	}

	suggestions := Suggest(RangeCandidate{From: "2024-01-29", To: "2024-02-25"}, existing)

	for _, s := range suggestions {
		assert.NotEqual(t, PriorityHigh, s.Priority)
	}
}

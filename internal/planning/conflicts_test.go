package planning

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeConflicts_Overlap(t *testing.T) {
	report := AnalyzeConflicts([]VersionRange{
		{Label: "v1", From: "2024-01-01", To: "2024-01-10"},
		{Label: "v2", From: "2024-01-05", To: "2024-01-20"},
	})

	assert.True(t, report.HasConflicts)
	require.Len(t, report.Conflicts, 1)
	require.Len(t, report.Resolutions, 1)

	conflict := report.Conflicts[0]
	assert.Equal(t, ConflictOverlap, conflict.Kind)
	assert.Equal(t, SeverityHigh, conflict.Severity)
	assert.Equal(t, []string{"2024-01-10", "2024-01-05"}, conflict.AffectedDates)

	resolution := report.Resolutions[0]
	assert.Equal(t, "Adjust dates", resolution.Action)
	assert.Contains(t, resolution.Description, "2024-01-11")
}

func TestAnalyzeConflicts_SameDayHandoverIsOverlap(t *testing.T) {
	report := AnalyzeConflicts([]VersionRange{
		{Label: "v1", From: "2024-01-01", To: "2024-01-14"},
		{Label: "v2", From: "2024-01-14", To: "2024-01-28"},
	})

	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, ConflictOverlap, report.Conflicts[0].Kind)
}

func TestAnalyzeConflicts_Gap(t *testing.T) {
	report := AnalyzeConflicts([]VersionRange{
		{Label: "v1", From: "2024-01-01", To: "2024-01-14"},
		{Label: "v2", From: "2024-02-01", To: "2024-02-14"},
	})

	assert.True(t, report.HasConflicts)
	require.Len(t, report.Conflicts, 1)
	require.Len(t, report.Resolutions, 1)

	conflict := report.Conflicts[0]
	assert.Equal(t, ConflictGap, conflict.Kind)
	assert.Equal(t, SeverityMedium, conflict.Severity)
	assert.Contains(t, conflict.Message, "17 day gap")
	assert.Equal(t, "Fill gap", report.Resolutions[0].Action)
}

func TestAnalyzeConflicts_SmallGapIsFine(t *testing.T) {
	report := AnalyzeConflicts([]VersionRange{
		{Label: "v1", From: "2024-01-01", To: "2024-01-14"},
		{Label: "v2", From: "2024-01-20", To: "2024-02-02"},
	})

	assert.False(t, report.HasConflicts)
	assert.Empty(t, report.Conflicts)
	assert.Empty(t, report.Resolutions)
}

func TestAnalyzeConflicts_InvalidRanges(t *testing.T) {
	report := AnalyzeConflicts([]VersionRange{
		{Label: "v1", From: "2024-01-01", To: "2024-01-14"},
		{Label: "broken", From: "whenever", To: "2024-02-14"},
		{Label: "inverted", From: "2024-03-14", To: "2024-03-01"},
	})

	assert.True(t, report.HasConflicts)
	require.Len(t, report.Conflicts, 2)
	require.Len(t, report.Resolutions, 2)

	assert.Equal(t, ConflictInvalidRange, report.Conflicts[0].Kind)
	assert.Equal(t, SeverityHigh, report.Conflicts[0].Severity)
	assert.Contains(t, report.Conflicts[0].Message, "broken")
	assert.Equal(t, "Fix dates", report.Resolutions[0].Action)

	assert.Equal(t, ConflictInvalidRange, report.Conflicts[1].Kind)
	assert.Contains(t, report.Conflicts[1].Message, "inverted")
	assert.Equal(t, "Swap or adjust dates", report.Resolutions[1].Action)
}

func TestAnalyzeConflicts_AdjacencyBeforeInvalidRange(t *testing.T) {
	report := AnalyzeConflicts([]VersionRange{
		{Label: "broken", From: "whenever", To: "2024-02-14"},
		{Label: "v1", From: "2024-01-01", To: "2024-01-10"},
		{Label: "v2", From: "2024-01-05", To: "2024-01-20"},
	})

	require.Len(t, report.Conflicts, 2)
	assert.Equal(t, ConflictOverlap, report.Conflicts[0].Kind)
	assert.Equal(t, ConflictInvalidRange, report.Conflicts[1].Kind)
}

func TestAnalyzeConflicts_DeterministicUnderPermutation(t *testing.T) {
	versions := []VersionRange{
		{Label: "q1", From: "2024-01-01", To: "2024-03-31"},
		{Label: "q2", From: "2024-03-20", To: "2024-06-30"},
		{Label: "summer", From: "2024-08-01", To: "2024-08-31"},
		{Label: "q4", From: "2024-10-01", To: "2024-12-31"},
	}

	reference := AnalyzeConflicts(versions)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]VersionRange{}, versions...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, reference, AnalyzeConflicts(shuffled))
	}
}

func TestAnalyzeConflicts_EmptyAndSingle(t *testing.T) {
	assert.False(t, AnalyzeConflicts(nil).HasConflicts)
	assert.False(t, AnalyzeConflicts([]VersionRange{
		{Label: "only", From: "2024-01-01", To: "2024-01-14"},
	}).HasConflicts)
}

package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCompatibility(t *testing.T) {
	tests := []struct {
		name           string
		current        VersionRange
		target         VersionRange
		wantCompatible bool
		wantIssues     []string
		wantWarnings   []string
	}{
		{
			name:           "adjacent ranges with distinct labels",
			current:        VersionRange{Label: "v1", From: "2024-01-01", To: "2024-01-14"},
			target:         VersionRange{Label: "v2", From: "2024-01-15", To: "2024-01-28"},
			wantCompatible: true,
			wantIssues:     []string{},
			wantWarnings:   []string{},
		},
		{
			name:           "duplicate label despite disjoint dates",
			current:        VersionRange{Label: "v1", From: "2024-01-01", To: "2024-01-14"},
			target:         VersionRange{Label: "v1", From: "2024-02-01", To: "2024-02-14"},
			wantCompatible: false,
			wantIssues:     []string{"Version numbers must be unique"},
			wantWarnings:   []string{"17 day gap between schedules"},
		},
		{
			name:           "target starts inside current",
			current:        VersionRange{Label: "v1", From: "2024-01-01", To: "2024-01-14"},
			target:         VersionRange{Label: "v2", From: "2024-01-10", To: "2024-01-24"},
			wantCompatible: false,
			wantIssues:     []string{"Date ranges overlap with existing schedule"},
			wantWarnings:   []string{"Schedules have overlapping periods"},
		},
		{
			name:           "target ends inside current",
			current:        VersionRange{Label: "v1", From: "2024-02-01", To: "2024-02-14"},
			target:         VersionRange{Label: "v2", From: "2024-01-20", To: "2024-02-05"},
			wantCompatible: false,
			wantIssues:     []string{"Date ranges overlap with existing schedule"},
			wantWarnings:   []string{"Creating schedule for past dates", "Schedules have overlapping periods"},
		},
		{
			name:           "target encloses current",
			current:        VersionRange{Label: "v1", From: "2024-02-01", To: "2024-02-07"},
			target:         VersionRange{Label: "v2", From: "2024-01-15", To: "2024-02-21"},
			wantCompatible: false,
			wantIssues:     []string{"Date ranges overlap with existing schedule"},
			wantWarnings:   []string{"Creating schedule for past dates", "Schedules have overlapping periods"},
		},
		{
			name:           "shared boundary day counts as overlap",
			current:        VersionRange{Label: "v1", From: "2024-01-01", To: "2024-01-14"},
			target:         VersionRange{Label: "v2", From: "2024-01-14", To: "2024-01-28"},
			wantCompatible: false,
			wantIssues:     []string{"Date ranges overlap with existing schedule"},
			wantWarnings:   []string{"Schedules have overlapping periods"},
		},
		{
			name:           "past dates without overlap",
			current:        VersionRange{Label: "v1", From: "2024-02-01", To: "2024-02-14"},
			target:         VersionRange{Label: "v0", From: "2024-01-01", To: "2024-01-14"},
			wantCompatible: true,
			wantIssues:     []string{},
			wantWarnings:   []string{"Creating schedule for past dates", "Schedules have overlapping periods"},
		},
		{
			name:           "unreadable target date blocks but label rule still runs",
			current:        VersionRange{Label: "v1", From: "2024-01-01", To: "2024-01-14"},
			target:         VersionRange{Label: "v1", From: "soon", To: "2024-02-14"},
			wantCompatible: false,
			wantIssues:     []string{"Invalid date format provided", "Version numbers must be unique"},
			wantWarnings:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckCompatibility(tt.current, tt.target)

			assert.Equal(t, tt.wantCompatible, result.IsCompatible)
			assert.Equal(t, tt.wantIssues, result.Issues)
			assert.Equal(t, tt.wantWarnings, result.Warnings)
			require.Len(t, result.Recommendations, 1)
		})
	}
}

func TestCheckCompatibility_RecommendationTracksOutcome(t *testing.T) {
	compatible := CheckCompatibility(
		VersionRange{Label: "v1", From: "2024-01-01", To: "2024-01-14"},
		VersionRange{Label: "v2", From: "2024-01-15", To: "2024-01-28"},
	)
	incompatible := CheckCompatibility(
		VersionRange{Label: "v1", From: "2024-01-01", To: "2024-01-14"},
		VersionRange{Label: "v1", From: "2024-01-15", To: "2024-01-28"},
	)

	require.Len(t, compatible.Recommendations, 1)
	require.Len(t, incompatible.Recommendations, 1)
	assert.NotEqual(t, compatible.Recommendations[0], incompatible.Recommendations[0])
}

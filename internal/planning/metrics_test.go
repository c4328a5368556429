package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics(t *testing.T) {
	tests := []struct {
		name    string
		version VersionRange
		want    Metrics
	}{
		{
			name:    "one calendar week",
			version: VersionRange{Label: "v1", From: "2024-01-01", To: "2024-01-07"},
			want: Metrics{
				TotalDays:             7,
				WeekCount:             1,
				WorkingDays:           5,
				WeekendDays:           2,
				AvgWorkingDaysPerWeek: 5,
				WeekendPercentage:     29,
				IsShortTerm:           true,
			},
		},
		{
			name:    "four weeks",
			version: VersionRange{Label: "v1", From: "2024-01-01", To: "2024-01-28"},
			want: Metrics{
				TotalDays:             28,
				WeekCount:             4,
				WorkingDays:           20,
				WeekendDays:           8,
				AvgWorkingDaysPerWeek: 5,
				WeekendPercentage:     29,
			},
		},
		{
			name:    "quarter is long term",
			version: VersionRange{Label: "q1", From: "2024-01-01", To: "2024-03-31"},
			want: Metrics{
				TotalDays:             91,
				WeekCount:             13,
				WorkingDays:           65,
				WeekendDays:           26,
				AvgWorkingDaysPerWeek: 5,
				WeekendPercentage:     29,
				IsLongTerm:            true,
			},
		},
		{
			name:    "partial weeks round the average",
			version: VersionRange{Label: "v1", From: "2024-01-03", To: "2024-01-12"},
			want: Metrics{
				TotalDays:             10,
				WeekCount:             2,
				WorkingDays:           8,
				WeekendDays:           2,
				AvgWorkingDaysPerWeek: 4,
				WeekendPercentage:     20,
				IsShortTerm:           true,
			},
		},
		{
			name:    "unreadable dates yield zero metrics",
			version: VersionRange{Label: "broken", From: "someday", To: "2024-01-07"},
			want:    Metrics{},
		},
		{
			name:    "inverted range yields zero metrics",
			version: VersionRange{Label: "inverted", From: "2024-01-07", To: "2024-01-01"},
			want:    Metrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeMetrics(tt.version))
		})
	}
}

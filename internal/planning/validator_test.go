package planning

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDateRange_StructuralErrors(t *testing.T) {
	tests := []struct {
		name      string
		candidate RangeCandidate
		wantError string
	}{
		{
			name:      "missing both dates",
			candidate: RangeCandidate{},
			wantError: "Date range must have both start and end dates",
		},
		{
			name:      "missing end date",
			candidate: RangeCandidate{From: "2024-01-01"},
			wantError: "Date range must have both start and end dates",
		},
		{
			name:      "missing start date",
			candidate: RangeCandidate{To: "2024-01-07"},
			wantError: "Date range must have both start and end dates",
		},
		{
			name:      "unparseable start date",
			candidate: RangeCandidate{From: "01/01/2024", To: "2024-01-07"},
			wantError: "Invalid date format provided",
		},
		{
			name:      "unparseable end date",
			candidate: RangeCandidate{From: "2024-01-01", To: "not-a-date"},
			wantError: "Invalid date format provided",
		},
		{
			name:      "start equals end",
			candidate: RangeCandidate{From: "2024-01-01", To: "2024-01-01"},
			wantError: "Start date must be before end date",
		},
		{
			name:      "start after end",
			candidate: RangeCandidate{From: "2024-02-01", To: "2024-01-01"},
			wantError: "Start date must be before end date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateDateRange(tt.candidate)

			assert.False(t, result.IsValid)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, tt.wantError, result.Errors[0])
			assert.Equal(t, RangeMetadata{}, result.Metadata, "no metadata may be computed on structural errors")
		})
	}
}

func TestValidateDateRange_OneWeek(t *testing.T) {
	// 2024-01-01 is a Monday, so this is exactly one Monday-start week.
	result := ValidateDateRange(RangeCandidate{From: "2024-01-01", To: "2024-01-07"})

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, RangeMetadata{
		TotalDays:   7,
		WeekCount:   1,
		WorkingDays: 5,
		WeekendDays: 2,
	}, result.Metadata)
}

func TestValidateDateRange_PolicyRules(t *testing.T) {
	tests := []struct {
		name         string
		candidate    RangeCandidate
		wantValid    bool
		wantErrors   []string
		wantWarnings []string
	}{
		{
			name:       "too short",
			candidate:  RangeCandidate{From: "2024-01-01", To: "2024-01-03"},
			wantValid:  false,
			wantErrors: []string{"Schedule must span at least one week"},
			// Mon..Wed has 3 working days and no weekend.
			wantWarnings: []string{"Very few working days in selected range"},
		},
		{
			name:       "longer than a year",
			candidate:  RangeCandidate{From: "2024-01-01", To: "2025-06-30"},
			wantValid:  false,
			wantErrors: []string{"Schedule cannot span more than one year"},
			wantWarnings: []string{
				"Long schedules may impact performance",
			},
		},
		{
			name:         "long but allowed",
			candidate:    RangeCandidate{From: "2024-01-01", To: "2024-09-30"},
			wantValid:    true,
			wantErrors:   []string{},
			wantWarnings: []string{"Long schedules may impact performance"},
		},
		{
			name:         "typical month",
			candidate:    RangeCandidate{From: "2024-03-04", To: "2024-03-31"},
			wantValid:    true,
			wantErrors:   []string{},
			wantWarnings: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateDateRange(tt.candidate)

			assert.Equal(t, tt.wantValid, result.IsValid)
			assert.Equal(t, tt.wantErrors, result.Errors)
			assert.Equal(t, tt.wantWarnings, result.Warnings)
		})
	}
}

func TestValidateDateRange_DayCountConsistency(t *testing.T) {
	// totalDays must always equal workingDays + weekendDays, whatever the
	// start weekday or the range length.
	for offset := 0; offset < 7; offset++ {
		for length := 6; length <= 40; length += 3 {
			from := fmt.Sprintf("2024-03-%02d", 4+offset)
			to := fmt.Sprintf("2024-%02d-%02d", 4+(4+offset+length)/30, 1+(4+offset+length)%30)

			result := ValidateDateRange(RangeCandidate{From: from, To: to})
			if len(result.Errors) > 0 && !result.IsValid && result.Metadata.TotalDays == 0 {
				continue
			}

			meta := result.Metadata
			assert.Equal(t, meta.TotalDays, meta.WorkingDays+meta.WeekendDays,
				"range %s..%s", from, to)
		}
	}
}

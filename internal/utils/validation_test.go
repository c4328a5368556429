package utils

import (
	"testing"

	"github.com/storeops-dev/roster-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShiftTemplateShiftTime(t *testing.T) {
	cases := []struct {
		name    string
		shifts  []domain.ShiftTemplateShift
		wantErr bool
	}{
		{
			name: "well formed non-overlapping shifts",
			shifts: []domain.ShiftTemplateShift{
				{StartTime: "07:00:00", EndTime: "11:00:00"},
				{StartTime: "11:00:00", EndTime: "15:00:00"},
				{StartTime: "19:00:00", EndTime: "22:00:00"},
			},
			wantErr: false,
		},
		{
			name: "malformed start time",
			shifts: []domain.ShiftTemplateShift{
				{StartTime: "7am", EndTime: "11:00:00"},
			},
			wantErr: true,
		},
		{
			name: "end before start",
			shifts: []domain.ShiftTemplateShift{
				{StartTime: "15:00:00", EndTime: "11:00:00"},
			},
			wantErr: true,
		},
		{
			name: "overlapping shifts",
			shifts: []domain.ShiftTemplateShift{
				{StartTime: "07:00:00", EndTime: "12:00:00"},
				{StartTime: "11:00:00", EndTime: "15:00:00"},
			},
			wantErr: true,
		},
		{
			name:    "empty template",
			shifts:  nil,
			wantErr: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := &domain.ShiftTemplate{Shifts: tc.shifts}
			err := ValidateShiftTemplateShiftTime(st)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSubmissionWithTemplate(t *testing.T) {
	template := &domain.ShiftTemplate{
		Shifts: []domain.ShiftTemplateShift{
			{ID: 1, ApplicableDays: []int32{1, 2, 3, 4, 5}},
			{ID: 2, ApplicableDays: []int32{6, 7}},
		},
	}

	t.Run("matching submission passes", func(t *testing.T) {
		submission := &domain.AvailabilitySubmission{
			Items: []domain.AvailabilitySubmissionItem{
				{ShiftID: 1, Days: []int32{1, 3}},
				{ShiftID: 2, Days: []int32{7}},
			},
		}

		require.NoError(t, ValidateSubmissionWithTemplate(submission, template))
	})

	t.Run("missing shift fails", func(t *testing.T) {
		submission := &domain.AvailabilitySubmission{
			Items: []domain.AvailabilitySubmissionItem{
				{ShiftID: 1, Days: []int32{1}},
			},
		}

		assert.Error(t, ValidateSubmissionWithTemplate(submission, template))
	})

	t.Run("unknown shift id fails", func(t *testing.T) {
		submission := &domain.AvailabilitySubmission{
			Items: []domain.AvailabilitySubmissionItem{
				{ShiftID: 1, Days: []int32{1}},
				{ShiftID: 99, Days: []int32{6}},
			},
		}

		assert.Error(t, ValidateSubmissionWithTemplate(submission, template))
	})

	t.Run("day outside applicable days fails", func(t *testing.T) {
		submission := &domain.AvailabilitySubmission{
			Items: []domain.AvailabilitySubmissionItem{
				{ShiftID: 1, Days: []int32{1, 6}},
				{ShiftID: 2, Days: []int32{7}},
			},
		}

		assert.Error(t, ValidateSubmissionWithTemplate(submission, template))
	})

	t.Run("empty days are allowed", func(t *testing.T) {
		submission := &domain.AvailabilitySubmission{
			Items: []domain.AvailabilitySubmissionItem{
				{ShiftID: 1, Days: []int32{}},
				{ShiftID: 2, Days: []int32{}},
			},
		}

		assert.NoError(t, ValidateSubmissionWithTemplate(submission, template))
	})
}

package utils

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/storeops-dev/roster-manager/backend/internal/domain"
)

func ValidateShiftTemplateShiftTime(st *domain.ShiftTemplate) error {
	// Every shift must end after it starts.
	for id, shift := range st.Shifts {
		startTime, err := time.Parse("15:04:05", shift.StartTime)
		if err != nil {
			return fmt.Errorf("shift %d has a malformed start time", id)
		}
		endTime, err := time.Parse("15:04:05", shift.EndTime)
		if err != nil {
			return fmt.Errorf("shift %d has a malformed end time", id)
		}
		if endTime.Before(startTime) {
			return fmt.Errorf("shift %d ends before it starts", id)
		}
	}

	// No two shifts of the same template may overlap in time.
	for i := 0; i < len(st.Shifts); i++ {
		iStartTime, _ := time.Parse("15:04:05", st.Shifts[i].StartTime)
		iEndTime, _ := time.Parse("15:04:05", st.Shifts[i].EndTime)

		for j := i + 1; j < len(st.Shifts); j++ {
			jStartTime, _ := time.Parse("15:04:05", st.Shifts[j].StartTime)
			jEndTime, _ := time.Parse("15:04:05", st.Shifts[j].EndTime)

			if !(jStartTime.After(iEndTime) || jStartTime.Equal(iEndTime) || iStartTime.After(jEndTime) || iStartTime.Equal(jEndTime)) {
				return fmt.Errorf("shifts %d and %d overlap in time", i, j)
			}
		}
	}
	return nil
}

func ValidateSubmissionWithTemplate(submission *domain.AvailabilitySubmission, template *domain.ShiftTemplate) error {
	if len(template.Shifts) != len(submission.Items) {
		return errors.New("the submission does not cover the same shifts as the template")
	}

	for i, item := range submission.Items {
		isValid := false

		for _, shift := range template.Shifts {
			if shift.ID == item.ShiftID {
				containAllDays := true

				for _, day := range item.Days {
					if !slices.Contains(shift.ApplicableDays, day) {
						containAllDays = false
						break
					}
				}

				if containAllDays {
					isValid = true
					break
				}
			}
		}

		if !isValid {
			return fmt.Errorf("item %d does not match any shift of the template", i+1)
		}
	}

	return nil
}

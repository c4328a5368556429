package domain

import (
	"time"
)

type ShiftTemplateShift struct {
	ID                 int64   `json:"id"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	RequiredStaffCount int32   `json:"requiredStaffCount"`
	ApplicableDays     []int32 `json:"applicableDays"`
}

type ShiftTemplate struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Shifts      []ShiftTemplateShift `json:"shifts"`
	CreatedAt   time.Time            `json:"createdAt"`
	Version     int32                `json:"-"`
}

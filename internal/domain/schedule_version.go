package domain

import "time"

// ScheduleVersion is a named, date-bounded planning period. Dates are stored
// as plain calendar days (no time of day); Label must be unique among
// co-existing versions, which the database enforces alongside the planning
// engine's compatibility check.
type ScheduleVersion struct {
	ID              int64             `json:"id"`
	Label           string            `json:"label"`
	StartDate       string            `json:"startDate"`
	EndDate         string            `json:"endDate"`
	ShiftTemplateID int64             `json:"shiftTemplateID"`
	IsActive        bool              `json:"isActive"`
	Metadata        map[string]string `json:"metadata"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	Version         int32             `json:"-"`
}

package seed

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/storeops-dev/roster-manager/backend/internal/domain"
	"github.com/storeops-dev/roster-manager/backend/internal/planning"
	"github.com/storeops-dev/roster-manager/backend/internal/repository"
)

// ShiftHeaderMap maps a roster CSV shift column to the shift it stands for.
var ShiftHeaderMap = map[string]domain.ShiftTemplateShift{
	"07:00-11:00": {
		StartTime:          "07:00:00",
		EndTime:            "11:00:00",
		RequiredStaffCount: 3,
		ApplicableDays:     []int32{1, 2, 3, 4, 5, 6, 7},
	},
	"11:00-15:00": {
		StartTime:          "11:00:00",
		EndTime:            "15:00:00",
		RequiredStaffCount: 4,
		ApplicableDays:     []int32{1, 2, 3, 4, 5, 6, 7},
	},
	"15:00-19:00": {
		StartTime:          "15:00:00",
		EndTime:            "19:00:00",
		RequiredStaffCount: 4,
		ApplicableDays:     []int32{1, 2, 3, 4, 5, 6, 7},
	},
	"19:00-22:00": {
		StartTime:          "19:00:00",
		EndTime:            "22:00:00",
		RequiredStaffCount: 2,
		ApplicableDays:     []int32{1, 2, 3, 4, 5},
	},
}

// SeedVersionLadder inserts a shift template plus a run of back-to-back
// four-week schedule versions starting from the most recent Monday. Each
// generated range is passed through the planning validator before insertion.
func SeedVersionLadder(r *repository.Repository, count int) {
	st := &domain.ShiftTemplate{
		Name:        "Standard store week",
		Description: "Opening, midday, afternoon and closing shifts for a full trading week",
		Shifts:      make([]domain.ShiftTemplateShift, 0, len(ShiftHeaderMap)),
	}
	for _, shift := range ShiftHeaderMap {
		st.Shifts = append(st.Shifts, shift)
	}

	if err := r.CreateShiftTemplate(st); err != nil {
		slog.Error("failed to insert shift template", "error", err)
		return
	}

	// Anchor the ladder on a Monday so every version covers whole weeks.
	now := time.Now()
	monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))

	inserted := 0
	for i := 0; i < count; i++ {
		start := monday.AddDate(0, 0, i*28)
		end := start.AddDate(0, 0, 27)

		sv := &domain.ScheduleVersion{
			Label:           fmt.Sprintf("period-%s", start.Format("2006-01-02")),
			StartDate:       start.Format(planning.DateLayout),
			EndDate:         end.Format(planning.DateLayout),
			ShiftTemplateID: st.ID,
			IsActive:        i == 0,
			Metadata:        map[string]string{"source": "seed"},
		}

		result := planning.ValidateDateRange(planning.RangeCandidate{From: sv.StartDate, To: sv.EndDate})
		if !result.IsValid {
			slog.Error("generated range failed validation", "label", sv.Label, "errors", result.Errors)
			continue
		}

		if err := r.CreateScheduleVersion(sv); err != nil {
			slog.Error("failed to insert schedule version", "error", err)
			continue
		}
		inserted++
	}

	slog.Info("version ladder seeded", "versions", inserted)
}

// SeedRosterData imports the store roster export at
// ./internal/seed/data/roster.csv: one row per employee, info columns
// (Username, FullName, Email, Role) plus one column per shift holding the
// days the employee is available, e.g. "1, 2, 5".
func SeedRosterData(r *repository.Repository) {
	file, err := os.Open("./internal/seed/data/roster.csv")
	if err != nil {
		slog.Error("failed to open roster file", "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	headers, err := reader.Read()
	if err != nil {
		slog.Error("failed to read header row", "error", err)
		return
	}

	shiftHeaderArray := []string{}
	infoHeaderArray := []string{}
	for _, header := range headers {
		if strings.Contains(header, "-") {
			shiftHeaderArray = append(shiftHeaderArray, header)
		} else {
			infoHeaderArray = append(infoHeaderArray, header)
		}
	}

	if len(shiftHeaderArray) == 0 || len(infoHeaderArray) == 0 {
		slog.Error("roster file has no shift or info columns")
		return
	}
	for key := range ShiftHeaderMap {
		if !slices.Contains(shiftHeaderArray, key) {
			slog.Error("shift column missing from roster file", "key", key)
			return
		}
	}

	var records []map[string]string
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			slog.Error("failed to read roster row", "error", err)
			return
		}

		record := make(map[string]string)
		for i, value := range row {
			record[headers[i]] = value
		}
		records = append(records, record)
	}

	st := &domain.ShiftTemplate{
		Name:        "Imported store week",
		Description: "Template matching the shift columns of the imported roster",
		Shifts:      make([]domain.ShiftTemplateShift, 0, len(ShiftHeaderMap)),
	}
	for _, shift := range ShiftHeaderMap {
		st.Shifts = append(st.Shifts, shift)
	}

	if err := r.CreateShiftTemplate(st); err != nil {
		slog.Error("failed to insert shift template", "error", err)
		return
	}

	now := time.Now()
	monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))

	sv := &domain.ScheduleVersion{
		Label:           fmt.Sprintf("import-%s", monday.Format("2006-01-02")),
		StartDate:       monday.Format(planning.DateLayout),
		EndDate:         monday.AddDate(0, 0, 27).Format(planning.DateLayout),
		ShiftTemplateID: st.ID,
		IsActive:        true,
		Metadata:        map[string]string{"source": "roster.csv"},
	}

	if err := r.CreateScheduleVersion(sv); err != nil {
		slog.Error("failed to insert schedule version", "error", err)
		return
	}

	for _, record := range records {
		username := record["Username"]
		if username == "" {
			slog.Error("roster row has no username", "record", record)
			continue
		}

		user, err := r.GetUserByUsername(username)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				user = &domain.User{
					Username:     username,
					PasswordHash: "$2a$10$aUTaWl3vmXuQFocBkb9Qx.YJPAzNoaAcj2VC5tI45l1Roh24meCgO", // roster@demo
					FullName:     record["FullName"],
					Email:        record["Email"],
					Role:         domain.Role(record["Role"]),
				}

				if err := r.CreateUser(user); err != nil {
					slog.Error("failed to insert employee", "error", err)
					continue
				}
			default:
				slog.Error("failed to look up employee", "error", err)
				continue
			}
		}

		submission := &domain.AvailabilitySubmission{
			ScheduleVersionID: sv.ID,
			UserID:            user.ID,
			Items:             make([]domain.AvailabilitySubmissionItem, 0),
		}

		for _, shiftHeader := range shiftHeaderArray {
			item := domain.AvailabilitySubmissionItem{}

			var shiftID int64 = 0
			for _, shift := range st.Shifts {
				if shift.StartTime == ShiftHeaderMap[shiftHeader].StartTime {
					shiftID = shift.ID
					break
				}
			}

			if shiftID == 0 {
				slog.Error("no shift matches roster column", "shiftHeader", shiftHeader)
				continue
			}

			item.ShiftID = shiftID
			item.Days = make([]int32, 0)

			for _, day := range strings.Split(record[shiftHeader], ", ") {
				if day == "" {
					continue
				}

				dayInt, err := strconv.Atoi(day)
				if err != nil {
					slog.Error("failed to parse availability day", "day", day)
					continue
				}

				item.Days = append(item.Days, int32(dayInt))
			}

			submission.Items = append(submission.Items, item)
		}

		if err := r.InsertAvailabilitySubmission(submission); err != nil {
			slog.Error("failed to insert availability submission", "error", err)
			continue
		}
	}

	slog.Info("roster import complete")
}

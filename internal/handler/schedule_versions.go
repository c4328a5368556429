package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/storeops-dev/roster-manager/backend/internal/domain"
	"github.com/storeops-dev/roster-manager/backend/internal/planning"
	"github.com/storeops-dev/roster-manager/backend/internal/utils"
)

// versionRange projects a stored schedule version onto the slice of it the
// planning engine reasons about.
func versionRange(sv *domain.ScheduleVersion) planning.VersionRange {
	return planning.VersionRange{
		ID:    sv.ID,
		Label: sv.Label,
		From:  sv.StartDate,
		To:    sv.EndDate,
	}
}

func versionRanges(svs []*domain.ScheduleVersion) []planning.VersionRange {
	ranges := make([]planning.VersionRange, 0, len(svs))
	for _, sv := range svs {
		ranges = append(ranges, versionRange(sv))
	}
	return ranges
}

func (h *Handler) CreateScheduleVersion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label           string            `json:"label" validate:"required"`
		StartDate       string            `json:"startDate" validate:"required"`
		EndDate         string            `json:"endDate" validate:"required"`
		ShiftTemplateID int64             `json:"shiftTemplateID" validate:"required"`
		IsActive        bool              `json:"isActive"`
		Metadata        map[string]string `json:"metadata"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	result := planning.ValidateDateRange(planning.RangeCandidate{From: req.StartDate, To: req.EndDate})
	if !result.IsValid {
		h.rejectedResponse(w, r, result.Errors[0], result)
		return
	}

	sv := &domain.ScheduleVersion{
		Label:           req.Label,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		ShiftTemplateID: req.ShiftTemplateID,
		IsActive:        req.IsActive,
		Metadata:        req.Metadata,
	}

	if err := h.repository.CreateScheduleVersion(sv); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "schedule_versions_label_key":
				h.errorResponse(w, r, "a schedule version with this label already exists")
			case "schedule_versions_shift_template_id_fkey":
				h.errorResponse(w, r, "referenced shift template does not exist")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "schedule version created", sv)
}

func (h *Handler) GetAllScheduleVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.repository.GetAllScheduleVersions()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule versions fetched", versions)
}

func (h *Handler) GetScheduleVersionByID(w http.ResponseWriter, r *http.Request) {
	sv := r.Context().Value(ScheduleVersionCtx).(*domain.ScheduleVersion)

	h.successResponse(w, r, "schedule version fetched", sv)
}

func (h *Handler) UpdateScheduleVersion(w http.ResponseWriter, r *http.Request) {
	sv := r.Context().Value(ScheduleVersionCtx).(*domain.ScheduleVersion)

	var req struct {
		Label     *string            `json:"label"`
		StartDate *string            `json:"startDate"`
		EndDate   *string            `json:"endDate"`
		IsActive  *bool              `json:"isActive"`
		Metadata  *map[string]string `json:"metadata"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Label != nil {
		sv.Label = *req.Label
	}
	if req.StartDate != nil {
		sv.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		sv.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		sv.IsActive = *req.IsActive
	}
	if req.Metadata != nil {
		sv.Metadata = *req.Metadata
	}

	// Changed dates go through the same gate as creation.
	result := planning.ValidateDateRange(planning.RangeCandidate{From: sv.StartDate, To: sv.EndDate})
	if !result.IsValid {
		h.rejectedResponse(w, r, result.Errors[0], result)
		return
	}

	if err := h.repository.UpdateScheduleVersion(sv); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "schedule_versions_label_key":
				h.errorResponse(w, r, "a schedule version with this label already exists")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "could not update schedule version, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "schedule version updated", sv)
}

func (h *Handler) DeleteScheduleVersion(w http.ResponseWriter, r *http.Request) {
	sv := r.Context().Value(ScheduleVersionCtx).(*domain.ScheduleVersion)

	if err := h.repository.DeleteScheduleVersion(sv.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule version deleted", nil)
}

// ValidateScheduleVersionRange runs the date range validator without touching
// the database, so the client can check a candidate as the operator types.
func (h *Handler) ValidateScheduleVersionRange(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	result := planning.ValidateDateRange(planning.RangeCandidate{From: req.StartDate, To: req.EndDate})

	h.successResponse(w, r, "date range validated", result)
}

func (h *Handler) SuggestForScheduleVersionRange(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	versions, err := h.repository.GetAllScheduleVersions()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	suggestions := planning.Suggest(
		planning.RangeCandidate{From: req.StartDate, To: req.EndDate},
		versionRanges(versions),
	)

	h.successResponse(w, r, "suggestions generated", suggestions)
}

func (h *Handler) AnalyzeScheduleVersionConflicts(w http.ResponseWriter, r *http.Request) {
	versions, err := h.repository.GetAllScheduleVersions()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	report := planning.AnalyzeConflicts(versionRanges(versions))

	h.successResponse(w, r, "conflicts analyzed", report)
}

func (h *Handler) GetScheduleVersionMetrics(w http.ResponseWriter, r *http.Request) {
	sv := r.Context().Value(ScheduleVersionCtx).(*domain.ScheduleVersion)

	metrics := planning.ComputeMetrics(versionRange(sv))

	h.successResponse(w, r, "metrics computed", metrics)
}

// CheckScheduleVersionCompatibility checks a proposed follow-up version
// against the version in the URL before anything is written.
func (h *Handler) CheckScheduleVersionCompatibility(w http.ResponseWriter, r *http.Request) {
	sv := r.Context().Value(ScheduleVersionCtx).(*domain.ScheduleVersion)

	var req struct {
		Label     string `json:"label" validate:"required"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	result := planning.CheckCompatibility(versionRange(sv), planning.VersionRange{
		Label: req.Label,
		From:  req.StartDate,
		To:    req.EndDate,
	})

	h.successResponse(w, r, "compatibility checked", result)
}

func (h *Handler) SubmitYourAvailability(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	sv := r.Context().Value(ScheduleVersionCtx).(*domain.ScheduleVersion)

	var req []struct {
		ShiftID int64   `json:"shiftID" validate:"required"`
		Days    []int32 `json:"days" validate:"required,dive,min=1,max=7"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.validate.Var(req, "required,dive"); err != nil {
		h.badRequest(w, r, err)
		return
	}

	submission := &domain.AvailabilitySubmission{
		ScheduleVersionID: sv.ID,
		UserID:            myInfo.ID,
		Items:             make([]domain.AvailabilitySubmissionItem, len(req)),
	}

	for i, item := range req {
		submission.Items[i] = domain.AvailabilitySubmissionItem{
			ShiftID: item.ShiftID,
			Days:    item.Days,
		}
	}

	// The submission must line up with the shifts the template defines.
	template, err := h.repository.GetShiftTemplate(sv.ShiftTemplateID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := utils.ValidateSubmissionWithTemplate(submission, template); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.InsertAvailabilitySubmission(submission); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "availability submitted", submission)
}

func (h *Handler) GetYourAvailabilitySubmission(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	sv := r.Context().Value(ScheduleVersionCtx).(*domain.ScheduleVersion)

	submission, err := h.repository.GetAvailabilitySubmissionByUserIDAndScheduleVersionID(myInfo.ID, sv.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.successResponse(w, r, "no availability submitted yet", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "availability submission fetched", submission)
}

func (h *Handler) GetScheduleVersionSubmissions(w http.ResponseWriter, r *http.Request) {
	sv := r.Context().Value(ScheduleVersionCtx).(*domain.ScheduleVersion)

	submissions, err := h.repository.GetAllSubmissionsByScheduleVersionID(sv.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "availability submissions fetched", submissions)
}

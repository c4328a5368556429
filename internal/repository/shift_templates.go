package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/storeops-dev/roster-manager/backend/internal/domain"
)

func (r *Repository) GetAllShiftTemplates() ([]*domain.ShiftTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			st.id,
			st.name,
			st.description,
			st.created_at,
			st.version,
			sts.id,
			sts.start_time,
			sts.end_time,
			sts.required_staff_count,
			stsad.day
		FROM shift_templates st
		LEFT JOIN shift_template_shifts sts ON st.id = sts.template_id
		LEFT JOIN shift_template_shift_applicable_days stsad ON sts.id = stsad.shift_id
		ORDER BY st.id, sts.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templatesMap := make(map[int64]*domain.ShiftTemplate)
	shiftsMap := make(map[int64]map[int64]*domain.ShiftTemplateShift) // templateID -> shiftID -> shift

	for rows.Next() {
		var row struct {
			ID          int64
			Name        string
			Description string
			CreatedAt   time.Time
			Version     int32

			ShiftID            sql.NullInt64
			StartTime          sql.NullString
			EndTime            sql.NullString
			RequiredStaffCount sql.NullInt32
			Day                sql.NullInt32
		}

		dst := []any{
			&row.ID,
			&row.Name,
			&row.Description,
			&row.CreatedAt,
			&row.Version,
			&row.ShiftID,
			&row.StartTime,
			&row.EndTime,
			&row.RequiredStaffCount,
			&row.Day,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if _, exists := templatesMap[row.ID]; !exists {
			template := &domain.ShiftTemplate{
				ID:          row.ID,
				Name:        row.Name,
				Description: row.Description,
				CreatedAt:   row.CreatedAt,
				Version:     row.Version,
			}
			templatesMap[row.ID] = template
			shiftsMap[row.ID] = make(map[int64]*domain.ShiftTemplateShift)
		}

		// A template without shifts joins to a single all-NULL shift row.
		if !row.ShiftID.Valid {
			continue
		}

		shift, exists := shiftsMap[row.ID][row.ShiftID.Int64]
		if !exists {
			shift = &domain.ShiftTemplateShift{
				ID:                 row.ShiftID.Int64,
				StartTime:          row.StartTime.String,
				EndTime:            row.EndTime.String,
				RequiredStaffCount: row.RequiredStaffCount.Int32,
				ApplicableDays:     make([]int32, 0),
			}
			shiftsMap[row.ID][row.ShiftID.Int64] = shift
		}

		if !row.Day.Valid {
			continue
		}

		shift.ApplicableDays = append(shift.ApplicableDays, row.Day.Int32)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	templates := make([]*domain.ShiftTemplate, 0, len(templatesMap))
	for templateID, template := range templatesMap {
		template.Shifts = make([]domain.ShiftTemplateShift, 0, len(shiftsMap[templateID]))
		for _, shift := range shiftsMap[templateID] {
			template.Shifts = append(template.Shifts, *shift)
		}
		templates = append(templates, template)
	}

	return templates, nil
}

func (r *Repository) CreateShiftTemplate(st *domain.ShiftTemplate) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO shift_templates (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`
	if err := tx.QueryRowContext(ctx, query, st.Name, st.Description).Scan(&st.ID, &st.CreatedAt, &st.Version); err != nil {
		return err
	}

	for i := range st.Shifts {
		query = `
			INSERT INTO shift_template_shifts (template_id, start_time, end_time, required_staff_count)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		params := []any{st.ID, st.Shifts[i].StartTime, st.Shifts[i].EndTime, st.Shifts[i].RequiredStaffCount}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&st.Shifts[i].ID); err != nil {
			return err
		}

		for _, day := range st.Shifts[i].ApplicableDays {
			query = `
				INSERT INTO shift_template_shift_applicable_days (shift_id, day)
				VALUES ($1, $2)
			`
			if _, err := tx.ExecContext(ctx, query, st.Shifts[i].ID, day); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetShiftTemplate(id int64) (*domain.ShiftTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			st.name,
			st.description,
			st.created_at,
			st.version,
			sts.id,
			sts.start_time,
			sts.end_time,
			sts.required_staff_count,
			stsad.day
		FROM shift_templates st
		LEFT JOIN shift_template_shifts sts ON st.id = sts.template_id
		LEFT JOIN shift_template_shift_applicable_days stsad ON sts.id = stsad.shift_id
		WHERE st.id = $1
		ORDER BY sts.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	st := &domain.ShiftTemplate{
		ID: id,
	}
	shiftsMap := make(map[int64]*domain.ShiftTemplateShift)
	found := false

	for rows.Next() {
		var row struct {
			Name        string
			Description string
			CreatedAt   time.Time
			Version     int32

			ShiftID            sql.NullInt64
			StartTime          sql.NullString
			EndTime            sql.NullString
			RequiredStaffCount sql.NullInt32
			Day                sql.NullInt32
		}

		dst := []any{
			&row.Name,
			&row.Description,
			&row.CreatedAt,
			&row.Version,
			&row.ShiftID,
			&row.StartTime,
			&row.EndTime,
			&row.RequiredStaffCount,
			&row.Day,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if !found {
			st.Name = row.Name
			st.Description = row.Description
			st.CreatedAt = row.CreatedAt
			st.Version = row.Version
			found = true
		}

		if !row.ShiftID.Valid {
			continue
		}

		shift, exists := shiftsMap[row.ShiftID.Int64]
		if !exists {
			shift = &domain.ShiftTemplateShift{
				ID:                 row.ShiftID.Int64,
				StartTime:          row.StartTime.String,
				EndTime:            row.EndTime.String,
				RequiredStaffCount: row.RequiredStaffCount.Int32,
				ApplicableDays:     make([]int32, 0),
			}
			shiftsMap[row.ShiftID.Int64] = shift
		}

		if !row.Day.Valid {
			continue
		}

		shift.ApplicableDays = append(shift.ApplicableDays, row.Day.Int32)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, sql.ErrNoRows
	}

	st.Shifts = make([]domain.ShiftTemplateShift, 0, len(shiftsMap))
	for _, shift := range shiftsMap {
		st.Shifts = append(st.Shifts, *shift)
	}

	return st, nil
}

func (r *Repository) UpdateShiftTemplate(st *domain.ShiftTemplate) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE shift_templates
		SET
			name = $1,
			description = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	params := []any{st.Name, st.Description, st.ID, st.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&st.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShiftTemplate(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM shift_templates WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/storeops-dev/roster-manager/backend/internal/domain"
)

func (r *Repository) GetAllScheduleVersions() ([]*domain.ScheduleVersion, error) {
	query := `
		SELECT
			id,
			label,
			start_date::text,
			end_date::text,
			shift_template_id,
			is_active,
			metadata,
			created_at,
			updated_at,
			version
		FROM schedule_versions
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := []*domain.ScheduleVersion{}
	for rows.Next() {
		var sv domain.ScheduleVersion
		var metadata []byte
		dst := []any{
			&sv.ID,
			&sv.Label,
			&sv.StartDate,
			&sv.EndDate,
			&sv.ShiftTemplateID,
			&sv.IsActive,
			&metadata,
			&sv.CreatedAt,
			&sv.UpdatedAt,
			&sv.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(metadata, &sv.Metadata); err != nil {
			return nil, err
		}
		versions = append(versions, &sv)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return versions, nil
}

func (r *Repository) GetScheduleVersionByID(id int64) (*domain.ScheduleVersion, error) {
	query := `
		SELECT
			label,
			start_date::text,
			end_date::text,
			shift_template_id,
			is_active,
			metadata,
			created_at,
			updated_at,
			version
		FROM schedule_versions
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	sv := &domain.ScheduleVersion{
		ID: id,
	}

	var metadata []byte
	dst := []any{
		&sv.Label,
		&sv.StartDate,
		&sv.EndDate,
		&sv.ShiftTemplateID,
		&sv.IsActive,
		&metadata,
		&sv.CreatedAt,
		&sv.UpdatedAt,
		&sv.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(metadata, &sv.Metadata); err != nil {
		return nil, err
	}

	return sv, nil
}

func (r *Repository) CreateScheduleVersion(sv *domain.ScheduleVersion) error {
	query := `
		INSERT INTO schedule_versions (
			label,
			start_date,
			end_date,
			shift_template_id,
			is_active,
			metadata
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if sv.Metadata == nil {
		sv.Metadata = map[string]string{}
	}
	metadata, err := json.Marshal(sv.Metadata)
	if err != nil {
		return err
	}

	params := []any{
		sv.Label,
		sv.StartDate,
		sv.EndDate,
		sv.ShiftTemplateID,
		sv.IsActive,
		metadata,
	}
	dst := []any{&sv.ID, &sv.CreatedAt, &sv.UpdatedAt, &sv.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateScheduleVersion(sv *domain.ScheduleVersion) error {
	// The shift template of an existing version stays fixed; changing it would
	// invalidate every availability submission already made against it.
	query := `
		UPDATE schedule_versions
		SET
			label = $1,
			start_date = $2,
			end_date = $3,
			is_active = $4,
			metadata = $5,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if sv.Metadata == nil {
		sv.Metadata = map[string]string{}
	}
	metadata, err := json.Marshal(sv.Metadata)
	if err != nil {
		return err
	}

	params := []any{
		sv.Label,
		sv.StartDate,
		sv.EndDate,
		sv.IsActive,
		metadata,
		sv.ID,
		sv.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&sv.UpdatedAt, &sv.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteScheduleVersion(id int64) error {
	query := `
		DELETE FROM schedule_versions WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetActiveScheduleVersions() ([]*domain.ScheduleVersion, error) {
	query := `
		SELECT
			id,
			label,
			start_date::text,
			end_date::text,
			shift_template_id,
			is_active,
			metadata,
			created_at,
			updated_at,
			version
		FROM schedule_versions
		WHERE is_active = TRUE
		ORDER BY start_date
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := []*domain.ScheduleVersion{}
	for rows.Next() {
		var sv domain.ScheduleVersion
		var metadata []byte
		dst := []any{
			&sv.ID,
			&sv.Label,
			&sv.StartDate,
			&sv.EndDate,
			&sv.ShiftTemplateID,
			&sv.IsActive,
			&metadata,
			&sv.CreatedAt,
			&sv.UpdatedAt,
			&sv.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(metadata, &sv.Metadata); err != nil {
			return nil, err
		}
		versions = append(versions, &sv)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return versions, nil
}

package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const appColumns = `id, job_id, jobseeker_id, resume_id, status, applied_at, updated_at`

// Create inserts an application; a second application to the same job maps
// to ErrDuplicate.
func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (id, job_id, jobseeker_id, resume_id, status, applied_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		app.ID, app.JobID, app.JobseekerID, nullableString(app.ResumeID),
		app.Status, app.AppliedAt, app.UpdatedAt,
	)
	if err != nil && strings.Contains(err.Error(), "applications_job_id_jobseeker_id_key") {
		return ErrDuplicate
	}
	return err
}

// GetByID returns an application by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id = $1 LIMIT 1`, appColumns)
	app, err := scanApplication(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return app, nil
}

// UpdateStatus persists a status change.
func (r *PGRepo) UpdateStatus(ctx context.Context, app Application) error {
	const query = `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`
	res, err := r.DB.ExecContext(ctx, query, app.Status, app.UpdatedAt, app.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByJob lists applications to one posting, newest first.
func (r *PGRepo) ListByJob(ctx context.Context, jobID string, limit, offset int) ([]Application, error) {
	limit, offset = clampPage(limit, offset)
	query := fmt.Sprintf(`
SELECT %s FROM applications
WHERE job_id = $1
ORDER BY applied_at DESC
LIMIT $2 OFFSET $3`, appColumns)
	return r.queryApplications(ctx, query, jobID, limit, offset)
}

// ListByJobseeker lists one jobseeker's applications, newest first.
func (r *PGRepo) ListByJobseeker(ctx context.Context, jobseekerID string, limit, offset int) ([]Application, error) {
	limit, offset = clampPage(limit, offset)
	query := fmt.Sprintf(`
SELECT %s FROM applications
WHERE jobseeker_id = $1
ORDER BY applied_at DESC
LIMIT $2 OFFSET $3`, appColumns)
	return r.queryApplications(ctx, query, jobseekerID, limit, offset)
}

func (r *PGRepo) queryApplications(ctx context.Context, query string, args ...any) ([]Application, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (Application, error) {
	var app Application
	var resumeID sql.NullString
	err := row.Scan(
		&app.ID, &app.JobID, &app.JobseekerID, &resumeID,
		&app.Status, &app.AppliedAt, &app.UpdatedAt,
	)
	app.ResumeID = resumeID.String
	return app, err
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

var _ Repo = (*PGRepo)(nil)

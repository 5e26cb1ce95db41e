package jobs

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

const jobColumns = `id, employer_id, title, company, description, category, job_type,
       region_code, city_code, salary_min, salary_max, status, created_at, updated_at`

// Create inserts a job posting.
func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (id, employer_id, title, company, description, category, job_type,
                  region_code, city_code, salary_min, salary_max, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.DB.ExecContext(ctx, query,
		job.ID, job.EmployerID, job.Title, job.Company, job.Description, job.Category,
		job.JobType, job.RegionCode, job.CityCode, job.SalaryMin, job.SalaryMax,
		job.Status, job.CreatedAt, job.UpdatedAt,
	)
	return err
}

// Update replaces the mutable columns of a posting.
func (r *PGRepo) Update(ctx context.Context, job Job) error {
	const query = `
UPDATE jobs
SET title = $1, company = $2, description = $3, category = $4, job_type = $5,
    region_code = $6, city_code = $7, salary_min = $8, salary_max = $9,
    status = $10, updated_at = $11
WHERE id = $12`
	res, err := r.DB.ExecContext(ctx, query,
		job.Title, job.Company, job.Description, job.Category, job.JobType,
		job.RegionCode, job.CityCode, job.SalaryMin, job.SalaryMax,
		job.Status, job.UpdatedAt, job.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID returns a posting by ID.
func (r *PGRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1 LIMIT 1`, jobColumns)
	job, err := scanJob(r.DB.QueryRowContext(ctx, query, jobID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

// Search lists postings in one status matching the filter, newest first.
func (r *PGRepo) Search(ctx context.Context, status string, filter Filter) ([]Job, error) {
	where := []string{"status = $1"}
	args := []any{status}

	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		args = append(args, "%"+kw+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d)", n, n, n))
	}
	for _, clause := range []struct{ col, val string }{
		{"category", filter.Category},
		{"job_type", filter.JobType},
		{"region_code", filter.RegionCode},
		{"city_code", filter.CityCode},
	} {
		if clause.val == "" {
			continue
		}
		args = append(args, clause.val)
		where = append(where, fmt.Sprintf("%s = $%d", clause.col, len(args)))
	}

	limit, offset := clampPage(filter.Limit, filter.Offset)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`
SELECT %s FROM jobs
WHERE %s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d`, jobColumns, strings.Join(where, " AND "), len(args)-1, len(args))

	return r.queryJobs(ctx, query, args...)
}

// ListByEmployer lists an employer's postings, newest first.
func (r *PGRepo) ListByEmployer(ctx context.Context, employerID string, limit, offset int) ([]Job, error) {
	limit, offset = clampPage(limit, offset)
	query := fmt.Sprintf(`
SELECT %s FROM jobs
WHERE employer_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`, jobColumns)
	return r.queryJobs(ctx, query, employerID, limit, offset)
}

func (r *PGRepo) queryJobs(ctx context.Context, query string, args ...any) ([]Job, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var job Job
	err := row.Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Company, &job.Description,
		&job.Category, &job.JobType, &job.RegionCode, &job.CityCode,
		&job.SalaryMin, &job.SalaryMax, &job.Status, &job.CreatedAt, &job.UpdatedAt,
	)
	return job, err
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

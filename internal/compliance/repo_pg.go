package compliance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const itemColumns = `id, employer_id, kind, title, status, notes, storage_key,
       submitted_at, reviewed_at, created_at, updated_at`

// Create inserts a compliance item.
func (r *PGRepo) Create(ctx context.Context, item Item) error {
	const query = `
INSERT INTO compliance_items (id, employer_id, kind, title, status, notes, storage_key,
                              submitted_at, reviewed_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.DB.ExecContext(ctx, query,
		item.ID, item.EmployerID, item.Kind, item.Title, item.Status, item.Notes,
		nullableString(item.StorageKey), item.SubmittedAt, item.ReviewedAt,
		item.CreatedAt, item.UpdatedAt,
	)
	return err
}

// GetByID returns an item by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM compliance_items WHERE id = $1 LIMIT 1`, itemColumns)
	item, err := scanItem(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return item, nil
}

// Update replaces the mutable columns of an item.
func (r *PGRepo) Update(ctx context.Context, item Item) error {
	const query = `
UPDATE compliance_items
SET status = $1, notes = $2, storage_key = $3, submitted_at = $4,
    reviewed_at = $5, updated_at = $6
WHERE id = $7`
	res, err := r.DB.ExecContext(ctx, query,
		item.Status, item.Notes, nullableString(item.StorageKey),
		item.SubmittedAt, item.ReviewedAt, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByEmployer lists an employer's items, newest first.
func (r *PGRepo) ListByEmployer(ctx context.Context, employerID string, limit, offset int) ([]Item, error) {
	limit, offset = clampPage(limit, offset)
	query := fmt.Sprintf(`
SELECT %s FROM compliance_items
WHERE employer_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`, itemColumns)
	return r.queryItems(ctx, query, employerID, limit, offset)
}

// ListByStatus lists items in one status, newest first.
func (r *PGRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]Item, error) {
	limit, offset = clampPage(limit, offset)
	query := fmt.Sprintf(`
SELECT %s FROM compliance_items
WHERE status = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`, itemColumns)
	return r.queryItems(ctx, query, status, limit, offset)
}

func (r *PGRepo) queryItems(ctx context.Context, query string, args ...any) ([]Item, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (Item, error) {
	var item Item
	var storageKey sql.NullString
	var submittedAt, reviewedAt sql.NullTime
	err := row.Scan(
		&item.ID, &item.EmployerID, &item.Kind, &item.Title, &item.Status,
		&item.Notes, &storageKey, &submittedAt, &reviewedAt,
		&item.CreatedAt, &item.UpdatedAt,
	)
	item.StorageKey = storageKey.String
	if submittedAt.Valid {
		t := submittedAt.Time
		item.SubmittedAt = &t
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time
		item.ReviewedAt = &t
	}
	return item, err
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

package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"peso-backend/resume/model"
)

// PGRepo implements Repo using Postgres. The editable record is stored as a
// JSONB column next to the lifecycle and artifact columns.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces the user's resume record.
func (r *PGRepo) Upsert(ctx context.Context, resume Resume) error {
	payload, err := json.Marshal(resume.Data)
	if err != nil {
		return fmt.Errorf("encode resume data: %w", err)
	}

	const query = `
INSERT INTO resumes (id, user_id, data, session_state, pdf_key, pdf_size_bytes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id) DO UPDATE SET
    data = EXCLUDED.data,
    session_state = EXCLUDED.session_state,
    pdf_key = EXCLUDED.pdf_key,
    pdf_size_bytes = EXCLUDED.pdf_size_bytes,
    updated_at = EXCLUDED.updated_at`
	_, err = r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		payload,
		string(resume.SessionState),
		resume.PDFKey,
		resume.PDFSizeBytes,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// GetByUser returns the user's resume record.
func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Resume, error) {
	const query = `
SELECT id, user_id, data, session_state, pdf_key, pdf_size_bytes, created_at, updated_at
FROM resumes
WHERE user_id = $1
LIMIT 1`

	var (
		resume  Resume
		payload []byte
		state   string
	)
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&resume.ID,
		&resume.UserID,
		&payload,
		&state,
		&resume.PDFKey,
		&resume.PDFSizeBytes,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}

	var data model.ResumeData
	if err := json.Unmarshal(payload, &data); err != nil {
		return Resume{}, fmt.Errorf("decode resume data: %w", err)
	}
	resume.Data = data
	resume.SessionState = SessionState(state)
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)

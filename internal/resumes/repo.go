package resumes

import "context"

// Repo defines persistence operations for resume records. Each user owns at
// most one record; Upsert replaces it wholesale.
type Repo interface {
	Upsert(ctx context.Context, resume Resume) error
	GetByUser(ctx context.Context, userID string) (Resume, error)
}

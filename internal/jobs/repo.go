package jobs

import "context"

// Repo defines persistence operations for job postings.
type Repo interface {
	Create(ctx context.Context, job Job) error
	Update(ctx context.Context, job Job) error
	GetByID(ctx context.Context, jobID string) (Job, error)
	Search(ctx context.Context, status string, filter Filter) ([]Job, error)
	ListByEmployer(ctx context.Context, employerID string, limit, offset int) ([]Job, error)
}

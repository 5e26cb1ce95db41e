package applications

import "context"

// Repo defines persistence operations for applications.
type Repo interface {
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	UpdateStatus(ctx context.Context, app Application) error
	ListByJob(ctx context.Context, jobID string, limit, offset int) ([]Application, error)
	ListByJobseeker(ctx context.Context, jobseekerID string, limit, offset int) ([]Application, error)
}

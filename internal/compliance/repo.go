package compliance

import "context"

// Repo defines persistence operations for compliance items.
type Repo interface {
	Create(ctx context.Context, item Item) error
	GetByID(ctx context.Context, id string) (Item, error)
	Update(ctx context.Context, item Item) error
	ListByEmployer(ctx context.Context, employerID string, limit, offset int) ([]Item, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]Item, error)
}

package applications

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores applications in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	apps map[string]Application
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{apps: make(map[string]Application)}
}

// Create stores an application, rejecting a duplicate for the same job.
func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.JobseekerID == app.JobseekerID {
			return ErrDuplicate
		}
	}
	r.apps[app.ID] = app
	return nil
}

// GetByID returns an application by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.apps[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}

// UpdateStatus persists a status change.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.apps[app.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Status = app.Status
	stored.UpdatedAt = app.UpdatedAt
	r.apps[app.ID] = stored
	return nil
}

// ListByJob lists applications to one posting, newest first.
func (r *MemoryRepo) ListByJob(ctx context.Context, jobID string, limit, offset int) ([]Application, error) {
	return r.list(ctx, limit, offset, func(a Application) bool { return a.JobID == jobID })
}

// ListByJobseeker lists one jobseeker's applications, newest first.
func (r *MemoryRepo) ListByJobseeker(ctx context.Context, jobseekerID string, limit, offset int) ([]Application, error) {
	return r.list(ctx, limit, offset, func(a Application) bool { return a.JobseekerID == jobseekerID })
}

func (r *MemoryRepo) list(ctx context.Context, limit, offset int, keep func(Application) bool) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var matched []Application
	for _, app := range r.apps {
		if keep(app) {
			matched = append(matched, app)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].AppliedAt.After(matched[j].AppliedAt)
	})

	limit, offset = clampPage(limit, offset)
	if offset >= len(matched) {
		return []Application{}, nil
	}
	end := len(matched)
	if offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)

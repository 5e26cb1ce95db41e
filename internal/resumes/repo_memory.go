package resumes

import (
	"context"
	"sync"
)

// MemoryRepo stores resume records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byUser map[string]Resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUser: make(map[string]Resume)}
}

// Upsert stores the resume record, replacing any previous one for the user.
func (r *MemoryRepo) Upsert(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[resume.UserID] = resume
	return nil
}

// GetByUser returns the user's resume record.
func (r *MemoryRepo) GetByUser(ctx context.Context, userID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.byUser[userID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

var _ Repo = (*MemoryRepo)(nil)

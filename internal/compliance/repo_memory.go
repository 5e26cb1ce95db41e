package compliance

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores compliance items in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Item
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Item)}
}

// Create stores an item.
func (r *MemoryRepo) Create(ctx context.Context, item Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item
	return nil
}

// GetByID returns an item by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return item, nil
}

// Update replaces an item.
func (r *MemoryRepo) Update(ctx context.Context, item Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return ErrNotFound
	}
	r.items[item.ID] = item
	return nil
}

// ListByEmployer lists an employer's items, newest first.
func (r *MemoryRepo) ListByEmployer(ctx context.Context, employerID string, limit, offset int) ([]Item, error) {
	return r.list(ctx, limit, offset, func(i Item) bool { return i.EmployerID == employerID })
}

// ListByStatus lists items in one status, newest first.
func (r *MemoryRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]Item, error) {
	return r.list(ctx, limit, offset, func(i Item) bool { return i.Status == status })
}

func (r *MemoryRepo) list(ctx context.Context, limit, offset int, keep func(Item) bool) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var matched []Item
	for _, item := range r.items {
		if keep(item) {
			matched = append(matched, item)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	limit, offset = clampPage(limit, offset)
	if offset >= len(matched) {
		return []Item{}, nil
	}
	end := len(matched)
	if offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)

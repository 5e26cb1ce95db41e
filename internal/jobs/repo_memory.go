package jobs

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo stores job postings in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	jobs map[string]Job
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{jobs: make(map[string]Job)}
}

// Create stores a posting.
func (r *MemoryRepo) Create(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	return nil
}

// Update replaces a posting.
func (r *MemoryRepo) Update(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return ErrNotFound
	}
	r.jobs[job.ID] = job
	return nil
}

// GetByID returns a posting by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return Job{}, ErrNotFound
	}
	return job, nil
}

// Search lists postings in one status matching the filter, newest first.
func (r *MemoryRepo) Search(ctx context.Context, status string, filter Filter) ([]Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var matched []Job
	for _, job := range r.jobs {
		if job.Status == status && matches(job, filter) {
			matched = append(matched, job)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return page(matched, filter.Limit, filter.Offset), nil
}

// ListByEmployer lists an employer's postings, newest first.
func (r *MemoryRepo) ListByEmployer(ctx context.Context, employerID string, limit, offset int) ([]Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var matched []Job
	for _, job := range r.jobs {
		if job.EmployerID == employerID {
			matched = append(matched, job)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return page(matched, limit, offset), nil
}

func matches(job Job, f Filter) bool {
	if kw := strings.ToLower(strings.TrimSpace(f.Keyword)); kw != "" {
		haystack := strings.ToLower(job.Title + " " + job.Company + " " + job.Description)
		if !strings.Contains(haystack, kw) {
			return false
		}
	}
	if f.Category != "" && job.Category != f.Category {
		return false
	}
	if f.JobType != "" && job.JobType != f.JobType {
		return false
	}
	if f.RegionCode != "" && job.RegionCode != f.RegionCode {
		return false
	}
	if f.CityCode != "" && job.CityCode != f.CityCode {
		return false
	}
	return true
}

func page(jobs []Job, limit, offset int) []Job {
	limit, offset = clampPage(limit, offset)
	if offset >= len(jobs) {
		return []Job{}
	}
	end := len(jobs)
	if offset+limit < end {
		end = offset + limit
	}
	return jobs[offset:end]
}

var _ Repo = (*MemoryRepo)(nil)

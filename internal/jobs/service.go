package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for job postings.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create records a new posting in the pending state, awaiting approval.
func (s *Service) Create(ctx context.Context, employerID string, input Job) (Job, error) {
	if err := validateInput(input); err != nil {
		return Job{}, err
	}

	now := s.now()
	job := input
	job.ID = uuid.NewString()
	job.EmployerID = employerID
	job.Status = StatusPending
	job.CreatedAt = now
	job.UpdatedAt = now
	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Update edits an owned posting. Status is not editable here.
func (s *Service) Update(ctx context.Context, employerID, jobID string, input Job) (Job, error) {
	if err := validateInput(input); err != nil {
		return Job{}, err
	}
	job, err := s.Repo.GetByID(ctx, jobID)
	if err != nil {
		return Job{}, err
	}
	if job.EmployerID != employerID {
		return Job{}, ErrForbidden
	}

	job.Title = input.Title
	job.Company = input.Company
	job.Description = input.Description
	job.Category = input.Category
	job.JobType = input.JobType
	job.RegionCode = input.RegionCode
	job.CityCode = input.CityCode
	job.SalaryMin = input.SalaryMin
	job.SalaryMax = input.SalaryMax
	job.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Browse lists open postings matching the filter.
func (s *Service) Browse(ctx context.Context, filter Filter) ([]Job, error) {
	return s.Repo.Search(ctx, StatusOpen, filter)
}

// GetPublic returns an open posting.
func (s *Service) GetPublic(ctx context.Context, jobID string) (Job, error) {
	job, err := s.Repo.GetByID(ctx, jobID)
	if err != nil {
		return Job{}, err
	}
	if job.Status != StatusOpen {
		return Job{}, ErrNotFound
	}
	return job, nil
}

// ListMine lists an employer's own postings in any status.
func (s *Service) ListMine(ctx context.Context, employerID string, limit, offset int) ([]Job, error) {
	return s.Repo.ListByEmployer(ctx, employerID, limit, offset)
}

// ListPending lists postings awaiting admin approval.
func (s *Service) ListPending(ctx context.Context, limit, offset int) ([]Job, error) {
	return s.Repo.Search(ctx, StatusPending, Filter{Limit: limit, Offset: offset})
}

// Approve moves a pending posting to open.
func (s *Service) Approve(ctx context.Context, jobID string) (Job, error) {
	job, err := s.Repo.GetByID(ctx, jobID)
	if err != nil {
		return Job{}, err
	}
	if job.Status != StatusPending {
		return Job{}, fmt.Errorf("%w: only pending jobs can be approved", ErrInvalidInput)
	}
	job.Status = StatusOpen
	job.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Close moves a posting to closed. Owners close their own jobs; admins may
// close any.
func (s *Service) Close(ctx context.Context, actorID string, isAdmin bool, jobID string) (Job, error) {
	job, err := s.Repo.GetByID(ctx, jobID)
	if err != nil {
		return Job{}, err
	}
	if !isAdmin && job.EmployerID != actorID {
		return Job{}, ErrForbidden
	}
	if job.Status == StatusClosed {
		return job, nil
	}
	job.Status = StatusClosed
	job.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

func validateInput(input Job) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Company) == "" {
		return fmt.Errorf("%w: company is required", ErrInvalidInput)
	}
	if input.SalaryMin < 0 || input.SalaryMax < 0 {
		return fmt.Errorf("%w: salary cannot be negative", ErrInvalidInput)
	}
	if input.SalaryMax > 0 && input.SalaryMin > input.SalaryMax {
		return fmt.Errorf("%w: salaryMin exceeds salaryMax", ErrInvalidInput)
	}
	return nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

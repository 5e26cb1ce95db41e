package applications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"peso-backend/internal/jobs"
	"peso-backend/internal/resumes"
)

// JobSource looks up job postings. Satisfied by jobs.Repo.
type JobSource interface {
	GetByID(ctx context.Context, jobID string) (jobs.Job, error)
}

// ResumeSource looks up resume records. Satisfied by resumes.Repo.
type ResumeSource interface {
	GetByUser(ctx context.Context, userID string) (resumes.Resume, error)
}

// Service contains business logic for job applications.
type Service struct {
	Repo    Repo
	Jobs    JobSource
	Resumes ResumeSource
	Now     func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo, jobSrc JobSource, resumeSrc ResumeSource) *Service {
	return &Service{Repo: repo, Jobs: jobSrc, Resumes: resumeSrc}
}

// Apply submits a jobseeker's saved resume to an open posting.
func (s *Service) Apply(ctx context.Context, jobseekerID, jobID string) (Application, error) {
	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	if job.Status != jobs.StatusOpen {
		return Application{}, ErrJobUnavailable
	}

	resume, err := s.Resumes.GetByUser(ctx, jobseekerID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return Application{}, ErrResumeRequired
		}
		return Application{}, err
	}
	if resume.SessionState != resumes.StateSaved {
		return Application{}, ErrResumeRequired
	}

	now := s.now()
	app := Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		JobseekerID: jobseekerID,
		ResumeID:    resume.ID,
		Status:      StatusPending,
		AppliedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// ListMine lists a jobseeker's own applications.
func (s *Service) ListMine(ctx context.Context, jobseekerID string, limit, offset int) ([]Application, error) {
	return s.Repo.ListByJobseeker(ctx, jobseekerID, limit, offset)
}

// ListForJob lists applicants to a posting the employer owns.
func (s *Service) ListForJob(ctx context.Context, employerID, jobID string, limit, offset int) ([]Application, error) {
	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, ErrForbidden
	}
	return s.Repo.ListByJob(ctx, jobID, limit, offset)
}

// UpdateStatus moves an application through the review stages. Only the
// employer owning the posting may change it, and only along legal
// transitions.
func (s *Service) UpdateStatus(ctx context.Context, employerID, appID, status string) (Application, error) {
	if !ValidStatus(status) {
		return Application{}, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, status)
	}

	app, err := s.Repo.GetByID(ctx, appID)
	if err != nil {
		return Application{}, err
	}
	job, err := s.Jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return Application{}, err
	}
	if job.EmployerID != employerID {
		return Application{}, ErrForbidden
	}
	if !CanTransition(app.Status, status) {
		return Application{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatus, app.Status, status)
	}

	app.Status = status
	app.UpdatedAt = s.now()
	if err := s.Repo.UpdateStatus(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

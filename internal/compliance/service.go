package compliance

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"peso-backend/internal/shared/storage/object"
)

// Service contains business logic for employer compliance items.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
	Now   func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo, store object.ObjectStore) *Service {
	return &Service{Repo: repo, Store: store}
}

// Open creates a pending requirement for an employer. Admin-only.
func (s *Service) Open(ctx context.Context, employerID, kind, title string) (Item, error) {
	if strings.TrimSpace(employerID) == "" {
		return Item{}, fmt.Errorf("%w: employerId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(kind) == "" {
		return Item{}, fmt.Errorf("%w: kind is required", ErrInvalidInput)
	}

	now := s.now()
	item := Item{
		ID:         uuid.NewString(),
		EmployerID: employerID,
		Kind:       kind,
		Title:      title,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Submit fulfils an item the employer owns, optionally attaching a document.
// A rejected item may be resubmitted; an approved one may not.
func (s *Service) Submit(ctx context.Context, employerID, itemID, fileName string, file io.Reader) (Item, error) {
	item, err := s.Repo.GetByID(ctx, itemID)
	if err != nil {
		return Item{}, err
	}
	if item.EmployerID != employerID {
		return Item{}, ErrForbidden
	}
	if !CanTransition(item.Status, StatusSubmitted) {
		return Item{}, fmt.Errorf("%w: item is %s", ErrInvalidInput, item.Status)
	}

	if file != nil {
		key, _, _, err := s.Store.Save(ctx, employerID, fileName, file)
		if err != nil {
			return Item{}, fmt.Errorf("store compliance document: %w", err)
		}
		item.StorageKey = key
	}

	now := s.now()
	item.Status = StatusSubmitted
	item.SubmittedAt = &now
	item.ReviewedAt = nil
	item.UpdatedAt = now
	if err := s.Repo.Update(ctx, item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Review approves or rejects a submitted item. Admin-only.
func (s *Service) Review(ctx context.Context, itemID, verdict, notes string) (Item, error) {
	if verdict != StatusApproved && verdict != StatusRejected {
		return Item{}, fmt.Errorf("%w: verdict must be approved or rejected", ErrInvalidInput)
	}
	item, err := s.Repo.GetByID(ctx, itemID)
	if err != nil {
		return Item{}, err
	}
	if !CanTransition(item.Status, verdict) {
		return Item{}, fmt.Errorf("%w: item is %s", ErrInvalidInput, item.Status)
	}

	now := s.now()
	item.Status = verdict
	item.Notes = notes
	item.ReviewedAt = &now
	item.UpdatedAt = now
	if err := s.Repo.Update(ctx, item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// ListMine lists an employer's own items.
func (s *Service) ListMine(ctx context.Context, employerID string, limit, offset int) ([]Item, error) {
	return s.Repo.ListByEmployer(ctx, employerID, limit, offset)
}

// ListByStatus lists items portal-wide in one status. Admin-only.
func (s *Service) ListByStatus(ctx context.Context, status string, limit, offset int) ([]Item, error) {
	return s.Repo.ListByStatus(ctx, status, limit, offset)
}

// OpenAttachment streams the document attached to an item. Admin-only.
func (s *Service) OpenAttachment(ctx context.Context, itemID string) (io.ReadCloser, error) {
	item, err := s.Repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.StorageKey == "" {
		return nil, ErrNoAttachment
	}
	return s.Store.Open(ctx, item.StorageKey)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

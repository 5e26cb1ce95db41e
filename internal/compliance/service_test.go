package compliance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"
)

type memStore struct {
	objects map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (s *memStore) Save(ctx context.Context, userId, fileName string, r io.Reader) (string, int64, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, "", err
	}
	key := fmt.Sprintf("uploads/%s/%s", userId, fileName)
	s.objects[key] = data
	return key, int64(len(data)), "application/pdf", nil
}

func (s *memStore) SaveWithKey(ctx context.Context, storageKey, contentType string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	s.objects[storageKey] = data
	return int64(len(data)), nil
}

func (s *memStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	data, ok := s.objects[storageKey]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func newTestService() (*Service, *memStore) {
	store := newMemStore()
	svc := NewService(NewMemoryRepo(), store)
	base := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	svc.Now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return svc, store
}

func TestSubmitAndReviewLifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	item, err := svc.Open(ctx, "emp-1", "business_permit", "Mayor's Permit 2026")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if item.Status != StatusPending {
		t.Errorf("status = %q", item.Status)
	}

	submitted, err := svc.Submit(ctx, "emp-1", item.ID, "permit.pdf", strings.NewReader("%PDF-1.4 permit"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if submitted.Status != StatusSubmitted || submitted.SubmittedAt == nil {
		t.Errorf("submitted = %+v", submitted)
	}
	if submitted.StorageKey == "" {
		t.Error("attachment key not recorded")
	}

	rc, err := svc.OpenAttachment(ctx, item.ID)
	if err != nil {
		t.Fatalf("OpenAttachment: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "%PDF-1.4 permit" {
		t.Errorf("attachment = %q", data)
	}

	approved, err := svc.Review(ctx, item.ID, StatusApproved, "looks good")
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if approved.Status != StatusApproved || approved.ReviewedAt == nil || approved.Notes != "looks good" {
		t.Errorf("approved = %+v", approved)
	}

	// Approved items cannot be resubmitted.
	if _, err := svc.Submit(ctx, "emp-1", item.ID, "", nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("resubmit approved: %v", err)
	}
}

func TestRejectedItemCanBeResubmitted(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	item, err := svc.Open(ctx, "emp-1", "dole_registration", "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := svc.Submit(ctx, "emp-1", item.ID, "", nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	rejected, err := svc.Review(ctx, item.ID, StatusRejected, "document expired")
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if rejected.Status != StatusRejected {
		t.Errorf("status = %q", rejected.Status)
	}

	resubmitted, err := svc.Submit(ctx, "emp-1", item.ID, "", nil)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if resubmitted.Status != StatusSubmitted || resubmitted.ReviewedAt != nil {
		t.Errorf("resubmitted = %+v", resubmitted)
	}
}

func TestSubmitOwnershipAndReviewValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	item, err := svc.Open(ctx, "emp-1", "business_permit", "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if _, err := svc.Submit(ctx, "emp-2", item.ID, "", nil); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign submit: %v", err)
	}
	if _, err := svc.Review(ctx, item.ID, StatusApproved, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("review before submission: %v", err)
	}
	if _, err := svc.Review(ctx, item.ID, "archived", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad verdict: %v", err)
	}
	if _, err := svc.OpenAttachment(ctx, item.ID); !errors.Is(err, ErrNoAttachment) {
		t.Errorf("no attachment: %v", err)
	}
	if _, err := svc.Open(ctx, "", "kind", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing employer: %v", err)
	}
}

func TestListViews(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, _ := svc.Open(ctx, "emp-1", "business_permit", "")
	if _, err := svc.Open(ctx, "emp-2", "business_permit", ""); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := svc.Submit(ctx, "emp-1", a.ID, "", nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	mine, err := svc.ListMine(ctx, "emp-1", 0, 0)
	if err != nil || len(mine) != 1 {
		t.Fatalf("ListMine = %+v, %v", mine, err)
	}

	queue, err := svc.ListByStatus(ctx, StatusSubmitted, 0, 0)
	if err != nil || len(queue) != 1 || queue[0].ID != a.ID {
		t.Fatalf("ListByStatus = %+v, %v", queue, err)
	}
}

package jobs

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestService() *Service {
	svc := NewService(NewMemoryRepo())
	base := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	svc.Now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return svc
}

func postJob(t *testing.T, svc *Service, employerID, title, category string) Job {
	t.Helper()
	job, err := svc.Create(context.Background(), employerID, Job{
		Title:    title,
		Company:  "Acme Corporation",
		Category: category,
		JobType:  "full-time",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return job
}

func TestCreateStartsPending(t *testing.T) {
	svc := newTestService()
	job := postJob(t, svc, "emp-1", "Warehouse Staff", "logistics")

	if job.Status != StatusPending {
		t.Errorf("status = %q", job.Status)
	}

	// Not publicly visible until approved.
	open, err := svc.Browse(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if len(open) != 0 {
		t.Errorf("pending job leaked to public: %+v", open)
	}
}

func TestApproveOpensPosting(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	job := postJob(t, svc, "emp-1", "Warehouse Staff", "logistics")

	approved, err := svc.Approve(ctx, job.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.Status != StatusOpen {
		t.Errorf("status = %q", approved.Status)
	}

	if _, err := svc.Approve(ctx, job.ID); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("double approve: %v", err)
	}

	got, err := svc.GetPublic(ctx, job.ID)
	if err != nil || got.ID != job.ID {
		t.Errorf("GetPublic = %+v, %v", got, err)
	}
}

func TestBrowseFilters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a := postJob(t, svc, "emp-1", "Forklift Operator", "logistics")
	b := postJob(t, svc, "emp-1", "Staff Nurse", "healthcare")
	for _, job := range []Job{a, b} {
		if _, err := svc.Approve(ctx, job.ID); err != nil {
			t.Fatalf("Approve: %v", err)
		}
	}

	byCategory, err := svc.Browse(ctx, Filter{Category: "healthcare"})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Title != "Staff Nurse" {
		t.Errorf("category filter = %+v", byCategory)
	}

	byKeyword, err := svc.Browse(ctx, Filter{Keyword: "forklift"})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if len(byKeyword) != 1 || byKeyword[0].Title != "Forklift Operator" {
		t.Errorf("keyword filter = %+v", byKeyword)
	}

	all, err := svc.Browse(ctx, Filter{})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unfiltered = %d jobs", len(all))
	}
}

func TestUpdateRequiresOwnership(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	job := postJob(t, svc, "emp-1", "Cashier", "retail")

	if _, err := svc.Update(ctx, "emp-2", job.ID, Job{Title: "Cashier", Company: "Other"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign update: %v", err)
	}

	updated, err := svc.Update(ctx, "emp-1", job.ID, Job{Title: "Senior Cashier", Company: "Acme Corporation"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Senior Cashier" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.Status != StatusPending {
		t.Errorf("update must not change status: %q", updated.Status)
	}
}

func TestClosePermissions(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	job := postJob(t, svc, "emp-1", "Driver", "logistics")

	if _, err := svc.Close(ctx, "emp-2", false, job.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign close: %v", err)
	}
	if _, err := svc.Close(ctx, "admin-1", true, job.ID); err != nil {
		t.Errorf("admin close: %v", err)
	}

	closed, err := svc.Close(ctx, "emp-1", false, job.ID)
	if err != nil {
		t.Fatalf("idempotent close: %v", err)
	}
	if closed.Status != StatusClosed {
		t.Errorf("status = %q", closed.Status)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []Job{
		{Company: "Acme"},
		{Title: "No Company"},
		{Title: "Bad Salary", Company: "Acme", SalaryMin: 50000, SalaryMax: 20000},
		{Title: "Negative", Company: "Acme", SalaryMin: -1},
	}
	for i, input := range cases {
		if _, err := svc.Create(ctx, "emp-1", input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("case %d: %v", i, err)
		}
	}
}

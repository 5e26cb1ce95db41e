package resumes

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"peso-backend/resume/model"
)

func TestPGRepoUpsertEncodesRecordAsJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	resume := Resume{
		ID:           "resume-1",
		UserID:       "user-1",
		Data:         model.ResumeData{Summary: "Software developer.", Skills: []string{"Go"}},
		SessionState: StateSaved,
		PDFKey:       "resumes/abc/John_Doe_Resume.pdf",
		PDFSizeBytes: 2048,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			resume.ID,
			resume.UserID,
			sqlmock.AnyArg(), // jsonb payload
			string(StateSaved),
			resume.PDFKey,
			resume.PDFSizeBytes,
			resume.CreatedAt,
			resume.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), resume); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUserDecodesRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	payload, _ := json.Marshal(model.ResumeData{Summary: "Accountant.", Skills: []string{"Excel"}})

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "data", "session_state", "pdf_key", "pdf_size_bytes", "created_at", "updated_at",
	}).AddRow("resume-1", "user-1", payload, "saved", "resumes/k", int64(100), now, now)

	mock.ExpectQuery("SELECT id, user_id, data").
		WithArgs("user-1").
		WillReturnRows(rows)

	resume, err := repo.GetByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if resume.Data.Summary != "Accountant." {
		t.Errorf("summary = %q", resume.Data.Summary)
	}
	if resume.SessionState != StateSaved {
		t.Errorf("state = %s", resume.SessionState)
	}
}

func TestPGRepoGetByUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, user_id, data").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "data", "session_state", "pdf_key", "pdf_size_bytes", "created_at", "updated_at",
		}))

	if _, err := repo.GetByUser(context.Background(), "ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

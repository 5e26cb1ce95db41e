package resumes

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"peso-backend/internal/documents"
	"peso-backend/internal/locations"
	"peso-backend/internal/textextract"
	"peso-backend/resume/model"
)

const sampleText = `John Dela Cruz
john@example.com
0917-123-4567
SUMMARY
Software developer with five years of experience building web applications.
SKILLS
JavaScript, Python, Docker`

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) FromBytes(ctx context.Context, data []byte) (textextract.Result, error) {
	if f.err != nil {
		return textextract.Result{}, f.err
	}
	return textextract.Result{Text: f.text}, nil
}

type fakeDocs struct {
	uploads     int
	extractions int
	err         error
}

func (f *fakeDocs) Upload(ctx context.Context, userID, fileName string, r io.Reader) (documents.Document, error) {
	f.uploads++
	if f.err != nil {
		return documents.Document{}, f.err
	}
	return documents.Document{ID: "doc-1", UserID: userID, FileName: fileName}, nil
}

func (f *fakeDocs) RecordExtraction(ctx context.Context, userID, documentID, text string) error {
	f.extractions++
	return nil
}

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (m *memStore) Save(ctx context.Context, userID, fileName string, r io.Reader) (string, int64, string, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return "", 0, "", err
	}
	key := "uploads/" + userID + "/" + fileName
	m.mu.Lock()
	m.objects[key] = payload
	m.mu.Unlock()
	return key, int64(len(payload)), "application/pdf", nil
}

func (m *memStore) SaveWithKey(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
	if m.saveErr != nil {
		return 0, m.saveErr
	}
	payload, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	m.mu.Lock()
	m.objects[key] = payload
	m.mu.Unlock()
	return int64(len(payload)), nil
}

func (m *memStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	m.mu.Lock()
	payload, ok := m.objects[key]
	m.mu.Unlock()
	if !ok {
		return nil, errors.New("no such object")
	}
	return io.NopCloser(bytes.NewReader(payload)), nil
}

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	ref, err := locations.Load()
	if err != nil {
		t.Fatalf("locations.Load: %v", err)
	}
	store := newMemStore()
	svc := &Service{
		Extract: &fakeExtractor{text: sampleText},
		Docs:    &fakeDocs{},
		Repo:    NewMemoryRepo(),
		Store:   store,
		Ref:     ref,
		Now:     func() time.Time { return time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC) },
	}
	return svc, store
}

func completeData() model.ResumeData {
	return model.ResumeData{
		PersonalInfo: model.PersonalInfo{
			FirstName:    "John",
			LastName:     "Dela Cruz",
			Email:        "john@example.com",
			Phone:        "0917-123-4567",
			Street:       "123 Rizal St",
			RegionCode:   "130000000",
			ProvinceCode: "137400000",
			CityCode:     "137404000",
			BarangayCode: "137404027",
			Birthday:     "1995-03-20",
		},
		Summary: "Software developer.",
		Experience: []model.ExperienceEntry{
			{Company: "Acme Corporation", Position: "Developer", StartDate: "2019-01", EndDate: "present"},
		},
		Education: []model.EducationEntry{
			{Institution: "University of the Philippines", Degree: "BS Computer Science"},
		},
		Skills: []string{"JavaScript"},
	}
}

func TestParseCreatesEditingRecord(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.Parse(ctx, "user-1", "resume.pdf", []byte("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.Data.PersonalInfo.FirstName != "John Dela" || result.Data.PersonalInfo.LastName != "Cruz" {
		t.Errorf("prefill name = %q %q", result.Data.PersonalInfo.FirstName, result.Data.PersonalInfo.LastName)
	}
	if svc.Docs.(*fakeDocs).uploads != 1 {
		t.Error("source document was not recorded")
	}

	record, err := svc.Current(ctx, "user-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if record.SessionState != StateEditing {
		t.Errorf("state = %s, want editing", record.SessionState)
	}
}

func TestParsePropagatesUnreadable(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Extract = &fakeExtractor{err: textextract.ErrUnreadable}

	_, err := svc.Parse(context.Background(), "user-1", "scan.pdf", []byte("%PDF"))
	if !errors.Is(err, textextract.ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

func TestSaveRendersAndPersists(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	record, err := svc.Save(ctx, "user-1", completeData())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if record.SessionState != StateSaved {
		t.Errorf("state = %s", record.SessionState)
	}
	if record.PDFKey == "" || record.PDFSizeBytes == 0 {
		t.Errorf("artifact not recorded: %+v", record)
	}
	if !strings.HasSuffix(record.PDFKey, "John_Dela_Cruz_Resume.pdf") {
		t.Errorf("pdf key = %q", record.PDFKey)
	}
	if !bytes.HasPrefix(store.objects[record.PDFKey], []byte("%PDF")) {
		t.Error("stored artifact is not a PDF")
	}
	if record.Data.PersonalInfo.CityName != "Quezon City" {
		t.Errorf("city not resolved: %q", record.Data.PersonalInfo.CityName)
	}
}

func TestSaveRoundTripPreservesContent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	original := completeData()
	if _, err := svc.Save(ctx, "user-1", original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := svc.Current(ctx, "user-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	got := reloaded.Data
	if got.Summary != original.Summary {
		t.Errorf("summary = %q", got.Summary)
	}
	if got.PersonalInfo.Email != original.PersonalInfo.Email {
		t.Errorf("email = %q", got.PersonalInfo.Email)
	}
	if len(got.Experience) != 1 || got.Experience[0].Company != "Acme Corporation" {
		t.Errorf("experience = %+v", got.Experience)
	}
	if len(got.Skills) != 1 || got.Skills[0] != "JavaScript" {
		t.Errorf("skills = %v", got.Skills)
	}
	// Enrichment is additive only.
	if got.PersonalInfo.RegionCode != original.PersonalInfo.RegionCode {
		t.Errorf("region code changed: %q", got.PersonalInfo.RegionCode)
	}
}

func TestSaveRejectsInvalidRecord(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	data := completeData()
	data.PersonalInfo.Email = ""
	data.Experience[0].StartDate = "2030-01"

	_, err := svc.Save(ctx, "user-1", data)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := map[string]bool{}
	for _, f := range vErr.Fields {
		fields[f.Field] = true
	}
	if !fields["personalInfo.email"] || !fields["experience[0].startDate"] {
		t.Errorf("fields = %+v", vErr.Fields)
	}

	if _, err := svc.Current(ctx, "user-1"); !errors.Is(err, ErrNotFound) {
		t.Error("rejected save must not persist a record")
	}
}

func TestSaveStoreFailureMarksError(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Parse(ctx, "user-1", "resume.pdf", []byte("%PDF")); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	store.saveErr = errors.New("bucket unavailable")
	if _, err := svc.Save(ctx, "user-1", completeData()); err == nil {
		t.Fatal("expected save failure")
	}

	record, err := svc.Current(ctx, "user-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if record.SessionState != StateError {
		t.Errorf("state = %s, want error", record.SessionState)
	}

	// Retry after the backend recovers.
	store.saveErr = nil
	record, err = svc.Save(ctx, "user-1", completeData())
	if err != nil {
		t.Fatalf("retry Save: %v", err)
	}
	if record.SessionState != StateSaved {
		t.Errorf("state = %s, want saved", record.SessionState)
	}
}

type flakyRepo struct {
	Repo
	getErr  error
	upserts int
}

func (f *flakyRepo) GetByUser(ctx context.Context, userID string) (Resume, error) {
	if f.getErr != nil {
		return Resume{}, f.getErr
	}
	return f.Repo.GetByUser(ctx, userID)
}

func (f *flakyRepo) Upsert(ctx context.Context, resume Resume) error {
	f.upserts++
	return f.Repo.Upsert(ctx, resume)
}

func TestParseAndSaveKeepRecordOnRepoReadFailure(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Save(ctx, "user-1", completeData()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	saved, err := svc.Current(ctx, "user-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}

	repo := &flakyRepo{Repo: svc.Repo, getErr: errors.New("connection reset by peer")}
	svc.Repo = repo

	if _, err := svc.Parse(ctx, "user-1", "resume.pdf", []byte("%PDF")); err == nil {
		t.Fatal("Parse must fail when the record cannot be loaded")
	}
	if _, err := svc.Save(ctx, "user-1", completeData()); err == nil {
		t.Fatal("Save must fail when the record cannot be loaded")
	}
	if repo.upserts != 0 {
		t.Errorf("record written %d times during read failure", repo.upserts)
	}

	repo.getErr = nil
	record, err := svc.Current(ctx, "user-1")
	if err != nil {
		t.Fatalf("Current after recovery: %v", err)
	}
	if record.ID != saved.ID {
		t.Errorf("record replaced: id %q -> %q", saved.ID, record.ID)
	}
}

func TestDownloadGatedOnSavedState(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, _, err := svc.Download(ctx, "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := svc.Parse(ctx, "user-1", "resume.pdf", []byte("%PDF")); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, _, err := svc.Download(ctx, "user-1"); !errors.Is(err, ErrNotSaved) {
		t.Fatalf("expected ErrNotSaved, got %v", err)
	}

	if _, err := svc.Save(ctx, "user-1", completeData()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	fileName, rc, err := svc.Download(ctx, "user-1")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	defer rc.Close()
	if fileName != "John_Dela_Cruz_Resume.pdf" {
		t.Errorf("file name = %q", fileName)
	}
	payload, _ := io.ReadAll(rc)
	if !bytes.HasPrefix(payload, []byte("%PDF")) {
		t.Error("downloaded artifact is not a PDF")
	}
}

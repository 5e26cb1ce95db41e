package documents

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
)

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
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

func TestUploadAcceptsSmallPDF(t *testing.T) {
	svc := &Service{Store: newMemStore(), Repo: NewMemoryRepo()}

	doc, err := svc.Upload(context.Background(), "user-1", "resume.pdf", strings.NewReader("%PDF-1.4 content"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.ID == "" || doc.StorageKey == "" {
		t.Errorf("incomplete document: %+v", doc)
	}

	current, err := svc.Current(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current.FileName != "resume.pdf" {
		t.Errorf("file name = %q", current.FileName)
	}
}

func TestUploadRejectsNonPDF(t *testing.T) {
	svc := &Service{Store: newMemStore(), Repo: NewMemoryRepo()}

	_, err := svc.Upload(context.Background(), "user-1", "resume.docx", strings.NewReader("PK\x03\x04 zip"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := &Service{Store: newMemStore(), Repo: NewMemoryRepo()}

	big := "%PDF" + strings.Repeat("x", MaxDocumentSize)
	_, err := svc.Upload(context.Background(), "user-1", "huge.pdf", strings.NewReader(big))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecordExtractionStoresTextAndStampsDocument(t *testing.T) {
	store := newMemStore()
	svc := &Service{Store: store, Repo: NewMemoryRepo()}
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "user-1", "resume.pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if err := svc.RecordExtraction(ctx, "user-1", doc.ID, "extracted resume text"); err != nil {
		t.Fatalf("RecordExtraction: %v", err)
	}

	current, err := svc.Current(ctx, "user-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current.ExtractedTextKey == "" || current.ExtractedAt == nil {
		t.Errorf("extraction not stamped: %+v", current)
	}
	if string(store.objects[current.ExtractedTextKey]) != "extracted resume text" {
		t.Error("extracted text not stored")
	}
}

func TestListNewestFirst(t *testing.T) {
	svc := &Service{Store: newMemStore(), Repo: NewMemoryRepo()}
	ctx := context.Background()

	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		if _, err := svc.Upload(ctx, "user-1", name, strings.NewReader("%PDF")); err != nil {
			t.Fatalf("Upload %s: %v", name, err)
		}
	}

	docs, err := svc.List(ctx, "user-1", 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len = %d", len(docs))
	}
}

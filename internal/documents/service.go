package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"peso-backend/internal/shared/storage/object"
	"peso-backend/internal/shared/util"
)

// Upload gate for resume source files.
const (
	MaxDocumentSize = 5 << 20 // 5MB
	acceptedMime    = "application/pdf"
)

// Service contains business logic for documents.
type Service struct {
	Store           object.ObjectStore
	Repo            DocumentsRepo
	StorageProvider string
}

// Upload enforces the size and type gate, saves the file to object storage,
// and records the document.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	payload, err := io.ReadAll(io.LimitReader(r, MaxDocumentSize+1))
	if err != nil {
		return Document{}, err
	}
	if len(payload) > MaxDocumentSize {
		return Document{}, fmt.Errorf("%w: file exceeds 5MB limit", ErrInvalidInput)
	}
	if !bytes.HasPrefix(payload, []byte("%PDF")) {
		return Document{}, fmt.Errorf("%w: only PDF files are accepted", ErrInvalidInput)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(payload))
	if err != nil {
		return Document{}, err
	}
	if mimeType == "" {
		mimeType = acceptedMime
	}

	provider := s.StorageProvider
	if provider == "" {
		provider = "local"
	}
	doc := Document{
		ID:              uuid.NewString(),
		UserID:          userID,
		FileName:        fileName,
		MimeType:        mimeType,
		SizeBytes:       size,
		StorageKey:      storageKey,
		StorageProvider: provider,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// RecordExtraction stores the extracted plain text next to the source file
// and stamps the document with its key.
func (s *Service) RecordExtraction(ctx context.Context, userID, documentID, text string) error {
	if documentID == "" {
		return fmt.Errorf("%w: document id is required", ErrInvalidInput)
	}
	key := fmt.Sprintf("extracted/%s/%s.txt", util.HashUserKey(userID), documentID)
	if _, err := s.Store.SaveWithKey(ctx, key, "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		return err
	}
	return s.Repo.UpdateExtraction(ctx, userID, documentID, key, time.Now().UTC())
}

// Current returns the most recent document for a user.
func (s *Service) Current(ctx context.Context, userID string) (Document, error) {
	if userID == "" {
		return Document{}, errors.New("user id required")
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// List returns the user's documents, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if userID == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

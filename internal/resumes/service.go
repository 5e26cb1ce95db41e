package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"peso-backend/internal/documents"
	"peso-backend/internal/fieldextract"
	"peso-backend/internal/locations"
	"peso-backend/internal/shared/metrics"
	"peso-backend/internal/shared/storage/object"
	"peso-backend/internal/shared/telemetry"
	"peso-backend/internal/shared/util"
	"peso-backend/internal/textextract"
	"peso-backend/resume/model"
	"peso-backend/resume/render"
)

// TextExtractor turns an uploaded PDF into plain text.
type TextExtractor interface {
	FromBytes(ctx context.Context, data []byte) (textextract.Result, error)
}

// DocumentRecorder records the uploaded source file and its extracted text.
type DocumentRecorder interface {
	Upload(ctx context.Context, userID, fileName string, r io.Reader) (documents.Document, error)
	RecordExtraction(ctx context.Context, userID, documentID, text string) error
}

// Service contains business logic for the resume lifecycle: parse uploads
// into a prefill, save edited records as rendered PDFs, serve downloads.
type Service struct {
	Extract TextExtractor
	Docs    DocumentRecorder
	Repo    Repo
	Store   object.ObjectStore
	Ref     *locations.Reference
	Now     func() time.Time
}

// ParseResult is the prefill produced from an uploaded document.
type ParseResult struct {
	Data    model.ResumeData
	UsedOCR bool
}

// Parse records the uploaded file, extracts its text, and lifts the
// heuristic parse into an editable record. The user's session restarts in
// the editing state; a previously saved artifact is kept until the next save.
func (s *Service) Parse(ctx context.Context, userID, fileName string, data []byte) (ParseResult, error) {
	metrics.IncParseStarted()
	started := time.Now()

	doc, err := s.Docs.Upload(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		metrics.IncParseFailed()
		return ParseResult{}, err
	}

	extracted, err := s.Extract.FromBytes(ctx, data)
	if err != nil {
		metrics.IncParseFailed()
		return ParseResult{}, err
	}
	if extracted.UsedOCR {
		metrics.IncParseOCRFallback()
	}
	if err := s.Docs.RecordExtraction(ctx, userID, doc.ID, extracted.Text); err != nil {
		telemetry.Error("resumes.record_extraction", map[string]any{
			"user_id": userID,
			"doc_id":  doc.ID,
			"error":   err.Error(),
		})
	}

	prefill := model.FromParsed(fieldextract.Parse(extracted.Text))

	now := s.now()
	record, err := s.Repo.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			metrics.IncParseFailed()
			return ParseResult{}, fmt.Errorf("load resume record: %w", err)
		}
		record = Resume{ID: uuid.NewString(), UserID: userID, CreatedAt: now}
	}
	record.Data = prefill
	record.SessionState = StateEditing
	record.UpdatedAt = now
	if err := s.Repo.Upsert(ctx, record); err != nil {
		metrics.IncParseFailed()
		return ParseResult{}, err
	}

	metrics.IncParseCompleted()
	metrics.ObserveParseDurationMs(float64(time.Since(started).Milliseconds()))
	return ParseResult{Data: prefill, UsedOCR: extracted.UsedOCR}, nil
}

// Current returns the user's resume record.
func (s *Service) Current(ctx context.Context, userID string) (Resume, error) {
	return s.Repo.GetByUser(ctx, userID)
}

// Save validates the edited record, renders the PDF artifact, stores it, and
// persists the record in the saved state. Validation failures return a
// *ValidationError and leave the stored record untouched.
func (s *Service) Save(ctx context.Context, userID string, data model.ResumeData) (Resume, error) {
	now := s.now()
	if fieldErrs := data.Validate(now); len(fieldErrs) > 0 {
		return Resume{}, &ValidationError{Fields: fieldErrs}
	}

	record, err := s.Repo.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return Resume{}, fmt.Errorf("load resume record: %w", err)
		}
		record = Resume{ID: uuid.NewString(), UserID: userID, SessionState: StateEmpty, CreatedAt: now}
	}
	state, err := advanceToSaving(record.SessionState)
	if err != nil {
		return Resume{}, err
	}
	record.SessionState = state

	s.resolveLocationNames(&data.PersonalInfo)

	payload, err := render.Render(data)
	if err != nil {
		metrics.IncSaveFailed()
		s.markError(ctx, record, now)
		return Resume{}, fmt.Errorf("render resume: %w", err)
	}

	key := fmt.Sprintf("resumes/%s/%s", util.HashUserKey(userID), render.DefaultFileName(data))
	size, err := s.Store.SaveWithKey(ctx, key, "application/pdf", bytes.NewReader(payload))
	if err != nil {
		metrics.IncSaveFailed()
		s.markError(ctx, record, now)
		return Resume{}, fmt.Errorf("store resume pdf: %w", err)
	}

	record.Data = data
	record.SessionState = StateSaved
	record.PDFKey = key
	record.PDFSizeBytes = size
	record.UpdatedAt = now
	if err := s.Repo.Upsert(ctx, record); err != nil {
		metrics.IncSaveFailed()
		return Resume{}, err
	}
	metrics.IncSaveCompleted()
	return record, nil
}

// Download streams the saved PDF artifact. Only a record in the saved state
// has one.
func (s *Service) Download(ctx context.Context, userID string) (string, io.ReadCloser, error) {
	record, err := s.Repo.GetByUser(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	if record.SessionState != StateSaved || record.PDFKey == "" {
		return "", nil, ErrNotSaved
	}
	rc, err := s.Store.Open(ctx, record.PDFKey)
	if err != nil {
		return "", nil, err
	}
	return render.DefaultFileName(record.Data), rc, nil
}

// resolveLocationNames fills display names from the reference for any code
// the client did not resolve itself. Lookup misses leave the field alone.
func (s *Service) resolveLocationNames(p *model.PersonalInfo) {
	if s.Ref == nil {
		return
	}
	resolved := s.Ref.Resolve(p.RegionCode, p.ProvinceCode, p.CityCode, p.BarangayCode)
	if resolved.Region != "" {
		p.RegionName = resolved.Region
	}
	if resolved.Province != "" {
		p.ProvinceName = resolved.Province
	}
	if resolved.City != "" {
		p.CityName = resolved.City
	}
	if resolved.Barangay != "" {
		p.BarangayName = resolved.Barangay
	}
}

// advanceToSaving walks the legal transitions from the current state into
// saving, failing if the machine cannot reach it.
func advanceToSaving(state SessionState) (SessionState, error) {
	if state == "" {
		state = StateEmpty
	}
	for _, step := range []SessionState{StateEditing, StateDirty, StateSaving} {
		if state == StateSaving {
			break
		}
		if CanTransition(state, step) {
			state = step
		}
	}
	if state != StateSaving {
		return state, fmt.Errorf("%w: cannot save from state %s", ErrInvalidInput, state)
	}
	return state, nil
}

// markError records the failed save; best effort, the original error wins.
func (s *Service) markError(ctx context.Context, record Resume, now time.Time) {
	record.SessionState = StateError
	record.UpdatedAt = now
	_ = s.Repo.Upsert(ctx, record)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

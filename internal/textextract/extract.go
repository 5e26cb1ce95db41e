package textextract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"peso-backend/internal/ocr"
)

// Text layers shorter than this are treated as unreliable (scanned image
// PDFs often carry a near-empty layer) and the original file is re-processed
// through recognition instead.
const minTextLayerChars = 100

// ErrUnreadable marks a document whose text could not be extracted by the
// text-layer reader nor by the recognition fallback. Terminal for the upload.
var ErrUnreadable = errors.New("unreadable document")

// Result carries the extracted text and how it was obtained.
type Result struct {
	Text    string
	UsedOCR bool
}

// Extractor turns an uploaded PDF payload into plain text, preferring the
// embedded text layer and falling back to a recognition engine.
type Extractor struct {
	Engine ocr.Engine
}

// New constructs an Extractor with the given recognition engine.
func New(engine ocr.Engine) *Extractor {
	return &Extractor{Engine: engine}
}

// readTextLayer is swappable in tests.
var readTextLayer = extractTextLayer

// FromBytes extracts text from an in-memory PDF payload. The caller is
// responsible for MIME and size limits; this stage trusts its input.
func (e *Extractor) FromBytes(ctx context.Context, data []byte) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	text, err := readTextLayer(data)
	if err == nil && len(text) >= minTextLayerChars {
		return Result{Text: text}, nil
	}

	// Corrupt file or thin text layer: recognition gets the original bytes,
	// and the text-layer result is discarded.
	if e.Engine == nil {
		return Result{}, fmt.Errorf("no recognition engine: %w", ErrUnreadable)
	}
	recognized, ocrErr := e.Engine.Recognize(ctx, data)
	if ocrErr != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		return Result{}, fmt.Errorf("text layer and recognition both failed: %w", ErrUnreadable)
	}
	return Result{Text: recognized, UsedOCR: true}, nil
}

func extractTextLayer(data []byte) (text string, err error) {
	// The reader panics on some malformed files; treat that the same as a
	// parse error so the recognition fallback still runs.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("pdf reader panic: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(pageText)
	}
	return strings.TrimSpace(builder.String()), nil
}

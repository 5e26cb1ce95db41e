package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// FitzEngine recognizes document text through MuPDF, which renders and
// reads scanned pages that the plain text-layer reader cannot.
type FitzEngine struct{}

// NewFitzEngine returns the MuPDF-backed recognition engine.
func NewFitzEngine() *FitzEngine {
	return &FitzEngine{}
}

// Recognize runs a full-document pass over the payload and returns one text
// blob. Cancelling ctx aborts between pages.
func (e *FitzEngine) Recognize(ctx context.Context, data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	var builder strings.Builder
	numPages := doc.NumPage()
	for i := 0; i < numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		pageText, err := doc.Text(i)
		if err != nil {
			continue
		}
		builder.WriteString(pageText)
		if i < numPages-1 {
			builder.WriteString("\n")
		}
	}

	text := strings.TrimSpace(builder.String())
	if text == "" {
		return "", fmt.Errorf("no text recognized")
	}
	return text, nil
}

var _ Engine = (*FitzEngine)(nil)

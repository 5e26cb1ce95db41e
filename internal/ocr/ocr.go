// Package ocr defines the abstraction for plugging text-recognition engines
// into the resume upload pipeline. Engines may be backed by native libraries
// or remote services; callers only see a full-document recognition pass.
package ocr

import "context"

// Engine recognizes text from a raw document payload in a single pass.
// Implementations must honor ctx cancellation between units of work.
type Engine interface {
	Recognize(ctx context.Context, data []byte) (string, error)
}

package resumes

import (
	"time"

	"peso-backend/resume/model"
)

// Resume is a jobseeker's single resume record: the editable data, its
// lifecycle state, and the rendered artifact's storage coordinates.
type Resume struct {
	ID           string
	UserID       string
	Data         model.ResumeData
	SessionState SessionState
	PDFKey       string
	PDFSizeBytes int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

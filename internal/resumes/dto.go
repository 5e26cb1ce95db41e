package resumes

import (
	"time"

	"peso-backend/resume/model"
)

// ResumeResponse is the outward-facing representation of a resume record.
type ResumeResponse struct {
	Data         model.ResumeData `json:"data"`
	SessionState SessionState     `json:"sessionState"`
	HasPDF       bool             `json:"hasPdf"`
	PDFSizeBytes int64            `json:"pdfSizeBytes,omitempty"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// ParseResponse is the prefill returned from a parsed upload.
type ParseResponse struct {
	Data    model.ResumeData `json:"data"`
	UsedOCR bool             `json:"usedOcr"`
}

func toResponse(r Resume) ResumeResponse {
	return ResumeResponse{
		Data:         r.Data,
		SessionState: r.SessionState,
		HasPDF:       r.PDFKey != "",
		PDFSizeBytes: r.PDFSizeBytes,
		UpdatedAt:    r.UpdatedAt,
	}
}

package applications

import "time"

// Application statuses. An application advances through review stages and
// ends in either hired or rejected.
const (
	StatusPending     = "pending"
	StatusReviewed    = "reviewed"
	StatusShortlisted = "shortlisted"
	StatusHired       = "hired"
	StatusRejected    = "rejected"
)

var statusTransitions = map[string][]string{
	StatusPending:     {StatusReviewed, StatusShortlisted, StatusRejected},
	StatusReviewed:    {StatusShortlisted, StatusRejected},
	StatusShortlisted: {StatusHired, StatusRejected},
	StatusHired:       {},
	StatusRejected:    {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether a value names a known status.
func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// Application is one jobseeker's application to one job posting.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	JobseekerID string    `json:"jobseekerId"`
	ResumeID    string    `json:"resumeId,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"appliedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

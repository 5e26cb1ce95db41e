package compliance

import "time"

// Compliance item statuses. Admins open items as pending, employers submit
// them, admins approve or reject. A rejected item may be resubmitted.
const (
	StatusPending   = "pending"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

var statusTransitions = map[string][]string{
	StatusPending:   {StatusSubmitted},
	StatusSubmitted: {StatusApproved, StatusRejected},
	StatusApproved:  {},
	StatusRejected:  {StatusSubmitted},
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

// Item is one compliance requirement assigned to an employer, such as a
// business permit or a PhilJobNet registration document.
type Item struct {
	ID          string     `json:"id"`
	EmployerID  string     `json:"employerId"`
	Kind        string     `json:"kind"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
	StorageKey  string     `json:"-"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

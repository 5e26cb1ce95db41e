package jobs

import "time"

// Job statuses. New postings wait for admin approval before going public.
const (
	StatusPending = "pending"
	StatusOpen    = "open"
	StatusClosed  = "closed"
)

// Job is an employer's posting.
type Job struct {
	ID          string    `json:"id"`
	EmployerID  string    `json:"employerId"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	JobType     string    `json:"jobType"`
	RegionCode  string    `json:"regionCode"`
	CityCode    string    `json:"cityCode"`
	SalaryMin   int64     `json:"salaryMin"`
	SalaryMax   int64     `json:"salaryMax"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Filter narrows a public job search. Zero values match everything.
type Filter struct {
	Keyword    string
	Category   string
	JobType    string
	RegionCode string
	CityCode   string
	Limit      int
	Offset     int
}

package model

import "time"

// JobStatus is the publication state of a job posting
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

// JobStatuses lists every known job status
var JobStatuses = []JobStatus{
	JobStatusActive,
	JobStatusClosed,
	JobStatusDraft,
}

// Job represents a placement opening managed from the admin panel
type Job struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title        string    `json:"title"`
	Company      string    `json:"company"`
	ContactEmail string    `json:"contact_email"` // unique within the collection
	Skills       []string  `json:"skills"`
	Location     string    `json:"location"`
	Experience   string    `json:"experience"`
	Salary       string    `json:"salary"`
	Description  string    `json:"description"`
	Status       JobStatus `json:"status"`
}

// JobStats is the dashboard aggregation payload for jobs
type JobStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

package model

import "time"

// CandidateStatus is the review state of a candidate record
type CandidateStatus string

const (
	CandidateStatusPending  CandidateStatus = "pending"
	CandidateStatusApproved CandidateStatus = "approved"
	CandidateStatusRejected CandidateStatus = "rejected"
)

// CandidateStatuses lists every known candidate status (used for zero-filled stats)
var CandidateStatuses = []CandidateStatus{
	CandidateStatusPending,
	CandidateStatusApproved,
	CandidateStatusRejected,
}

// CandidatePriority is the follow-up priority assigned by an admin
type CandidatePriority string

const (
	CandidatePriorityLow    CandidatePriority = "low"
	CandidatePriorityMedium CandidatePriority = "medium"
	CandidatePriorityHigh   CandidatePriority = "high"
)

// CandidatePriorities lists every known candidate priority
var CandidatePriorities = []CandidatePriority{
	CandidatePriorityLow,
	CandidatePriorityMedium,
	CandidatePriorityHigh,
}

// Candidate represents an admission candidate managed from the admin panel.
// Candidates live in the local blob store, not Postgres.
type Candidate struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name           string            `json:"name"`
	Email          string            `json:"email"` // unique within the collection
	Phone          string            `json:"phone"`
	Address        string            `json:"address"`
	City           string            `json:"city"`
	State          string            `json:"state"`
	Course         string            `json:"course"` // free text, not a foreign key
	Status         CandidateStatus   `json:"status"`
	Priority       CandidatePriority `json:"priority"`
	Skills         []string          `json:"skills"`
	ExpectedSalary string            `json:"expected_salary"`
	Notes          string            `json:"notes"`
}

// CandidateStats is the dashboard aggregation payload for candidates
type CandidateStats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	ByPriority map[string]int `json:"by_priority"`
}

package model

import (
	"strings"
	"time"
)

// EnquiryStatus is the follow-up state of a public enquiry
type EnquiryStatus string

const (
	EnquiryStatusNew       EnquiryStatus = "new"
	EnquiryStatusContacted EnquiryStatus = "contacted"
	EnquiryStatusEnrolled  EnquiryStatus = "enrolled"
	EnquiryStatusRejected  EnquiryStatus = "rejected"
)

// EnquiryStatuses lists every known enquiry status
var EnquiryStatuses = []EnquiryStatus{
	EnquiryStatusNew,
	EnquiryStatusContacted,
	EnquiryStatusEnrolled,
	EnquiryStatusRejected,
}

// TechnologyOther is the sentinel value on the public form that must be
// replaced by the free-text technology the visitor typed in
const TechnologyOther = "Others"

// enquiryTransitions is the allowed status transition table.
// enrolled and rejected are terminal.
var enquiryTransitions = map[EnquiryStatus][]EnquiryStatus{
	EnquiryStatusNew:       {EnquiryStatusContacted, EnquiryStatusEnrolled, EnquiryStatusRejected},
	EnquiryStatusContacted: {EnquiryStatusEnrolled, EnquiryStatusRejected},
	EnquiryStatusEnrolled:  {},
	EnquiryStatusRejected:  {},
}

// CanTransition reports whether an enquiry may move from one status to another
func CanTransition(from, to EnquiryStatus) bool {
	for _, allowed := range enquiryTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidEnquiryStatus reports whether s is one of the known statuses
func ValidEnquiryStatus(s EnquiryStatus) bool {
	for _, known := range EnquiryStatuses {
		if known == s {
			return true
		}
	}
	return false
}

// Enquiry represents a course enquiry submitted from the public website.
// Enquiries live in Postgres so they are visible across devices; the
// technology list is flattened to a comma-joined string for storage.
type Enquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string        `gorm:"not null" json:"name"`
	Mobile      string        `gorm:"type:varchar(10);not null;uniqueIndex:idx_enquiries_email_mobile" json:"mobile"`
	Email       string        `gorm:"not null;uniqueIndex:idx_enquiries_email_mobile" json:"email"`
	PassOutYear int           `json:"pass_out_year"`
	Technology  string        `gorm:"type:text" json:"technology"` // comma-joined
	SubmittedAt time.Time     `gorm:"index" json:"submitted_at"`
	Status      EnquiryStatus `gorm:"type:varchar(20);default:'new';index" json:"status"`

	// DuplicateChecked is false when the duplicate guard could not be
	// completed and creation proceeded fail-open
	DuplicateChecked bool `gorm:"default:true" json:"duplicate_checked"`

	// Derived fields, populated on read, never persisted
	Technologies []string `gorm:"-" json:"technologies"`
	Recent       bool     `gorm:"-" json:"recent"`
}

// JoinTechnologies flattens a technology set for storage transport
func JoinTechnologies(techs []string) string {
	return strings.Join(techs, ", ")
}

// SplitTechnologies reconstructs the technology set from its stored form
func SplitTechnologies(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return []string{}
	}
	parts := strings.Split(joined, ",")
	techs := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			techs = append(techs, t)
		}
	}
	return techs
}

// EnquiryStats is the dashboard aggregation payload for enquiries
type EnquiryStats struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"by_status"`
	RecentCount int            `json:"recent_count"`
}

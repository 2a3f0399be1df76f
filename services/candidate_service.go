package services

import (
	"strings"
	"time"

	"github.com/skillpath/institute-api/localstore"
	"github.com/skillpath/institute-api/model"
)

// CandidateService handles candidate records in the local blob store
type CandidateService struct {
	col *localstore.Collection[model.Candidate]
}

// NewCandidateService creates a new candidate service on top of the given KV
func NewCandidateService(kv localstore.KV) *CandidateService {
	return &CandidateService{
		col: localstore.NewCollection[model.Candidate]("candidates", kv),
	}
}

// CreateCandidateInput is the payload for creating a candidate
type CreateCandidateInput struct {
	Name           string                  `json:"name" validate:"required,min=2,max=255"`
	Email          string                  `json:"email" validate:"required,email"`
	Phone          string                  `json:"phone" validate:"required,min=10,max=15"`
	Address        string                  `json:"address" validate:"omitempty,max=500"`
	City           string                  `json:"city" validate:"omitempty,max=100"`
	State          string                  `json:"state" validate:"omitempty,max=100"`
	Course         string                  `json:"course" validate:"omitempty,max=255"`
	Status         model.CandidateStatus   `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	Priority       model.CandidatePriority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Skills         []string                `json:"skills"`
	ExpectedSalary string                  `json:"expected_salary" validate:"omitempty,max=50"`
	Notes          string                  `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateCandidateInput is the payload for partially updating a candidate.
// Nil fields are left unchanged.
type UpdateCandidateInput struct {
	Name           *string                  `json:"name" validate:"omitempty,min=2,max=255"`
	Email          *string                  `json:"email" validate:"omitempty,email"`
	Phone          *string                  `json:"phone" validate:"omitempty,min=10,max=15"`
	Address        *string                  `json:"address" validate:"omitempty,max=500"`
	City           *string                  `json:"city" validate:"omitempty,max=100"`
	State          *string                  `json:"state" validate:"omitempty,max=100"`
	Course         *string                  `json:"course" validate:"omitempty,max=255"`
	Status         *model.CandidateStatus   `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	Priority       *model.CandidatePriority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Skills         *[]string                `json:"skills"`
	ExpectedSalary *string                  `json:"expected_salary" validate:"omitempty,max=50"`
	Notes          *string                  `json:"notes" validate:"omitempty,max=1000"`
}

// InitializeWithSampleData seeds the collection with example records on
// first run only. Subsequent calls are no-ops and never overwrite user data,
// even if every record has since been deleted.
func (s *CandidateService) InitializeWithSampleData() error {
	if s.col.Exists() {
		return nil
	}

	now := time.Now()
	samples := []model.Candidate{
		{
			ID:             s.col.GenerateID(),
			CreatedAt:      now,
			UpdatedAt:      now,
			Name:           "Rahul Sharma",
			Email:          "rahul.sharma@example.com",
			Phone:          "9876501234",
			City:           "Indore",
			State:          "Madhya Pradesh",
			Course:         "Full Stack Development",
			Status:         model.CandidateStatusPending,
			Priority:       model.CandidatePriorityHigh,
			Skills:         []string{"Java", "Spring Boot", "React"},
			ExpectedSalary: "4.5 LPA",
		},
		{
			ID:             s.col.GenerateID(),
			CreatedAt:      now,
			UpdatedAt:      now,
			Name:           "Priya Verma",
			Email:          "priya.verma@example.com",
			Phone:          "8765012345",
			City:           "Bhopal",
			State:          "Madhya Pradesh",
			Course:         "Data Science",
			Status:         model.CandidateStatusApproved,
			Priority:       model.CandidatePriorityMedium,
			Skills:         []string{"Python", "Machine Learning"},
			ExpectedSalary: "6 LPA",
		},
		{
			ID:             s.col.GenerateID(),
			CreatedAt:      now,
			UpdatedAt:      now,
			Name:           "Amit Patel",
			Email:          "amit.patel@example.com",
			Phone:          "7654123890",
			City:           "Ahmedabad",
			State:          "Gujarat",
			Course:         "Cloud Computing",
			Status:         model.CandidateStatusPending,
			Priority:       model.CandidatePriorityLow,
			Skills:         []string{"AWS", "Docker"},
			ExpectedSalary: "5 LPA",
		},
	}

	return s.col.WriteAll(samples)
}

// GetAll returns every candidate in insertion order
func (s *CandidateService) GetAll() []model.Candidate {
	return s.col.ReadAll()
}

// GetByID returns the candidate with the given id, or false if absent
func (s *CandidateService) GetByID(id string) (*model.Candidate, bool) {
	for _, c := range s.col.ReadAll() {
		if c.ID == id {
			return &c, true
		}
	}
	return nil, false
}

// Create adds a new candidate, assigning id and timestamps. It rejects the
// creation when another candidate already uses the same email.
func (s *CandidateService) Create(in CreateCandidateInput) (*model.Candidate, error) {
	records := s.col.ReadAll()

	email := strings.ToLower(strings.TrimSpace(in.Email))
	for _, c := range records {
		if strings.EqualFold(c.Email, email) {
			return nil, ErrDuplicateEmail
		}
	}

	status := in.Status
	if status == "" {
		status = model.CandidateStatusPending
	}
	priority := in.Priority
	if priority == "" {
		priority = model.CandidatePriorityMedium
	}
	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}

	now := time.Now()
	candidate := model.Candidate{
		ID:             s.col.GenerateID(),
		CreatedAt:      now,
		UpdatedAt:      now,
		Name:           strings.TrimSpace(in.Name),
		Email:          email,
		Phone:          strings.TrimSpace(in.Phone),
		Address:        strings.TrimSpace(in.Address),
		City:           strings.TrimSpace(in.City),
		State:          strings.TrimSpace(in.State),
		Course:         strings.TrimSpace(in.Course),
		Status:         status,
		Priority:       priority,
		Skills:         skills,
		ExpectedSalary: strings.TrimSpace(in.ExpectedSalary),
		Notes:          strings.TrimSpace(in.Notes),
	}

	records = append(records, candidate)
	if err := s.col.WriteAll(records); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// Update merges the provided fields into an existing candidate and refreshes
// UpdatedAt. It returns (nil, nil) when the id does not exist; callers decide
// whether that is exceptional. The id itself is never changed.
func (s *CandidateService) Update(id string, in UpdateCandidateInput) (*model.Candidate, error) {
	records := s.col.ReadAll()

	for i := range records {
		if records[i].ID != id {
			continue
		}

		c := &records[i]
		if in.Name != nil {
			c.Name = strings.TrimSpace(*in.Name)
		}
		if in.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*in.Email))
			for j := range records {
				if j != i && strings.EqualFold(records[j].Email, email) {
					return nil, ErrDuplicateEmail
				}
			}
			c.Email = email
		}
		if in.Phone != nil {
			c.Phone = strings.TrimSpace(*in.Phone)
		}
		if in.Address != nil {
			c.Address = strings.TrimSpace(*in.Address)
		}
		if in.City != nil {
			c.City = strings.TrimSpace(*in.City)
		}
		if in.State != nil {
			c.State = strings.TrimSpace(*in.State)
		}
		if in.Course != nil {
			c.Course = strings.TrimSpace(*in.Course)
		}
		if in.Status != nil {
			// Any status may move to any other; candidates have no
			// transition table
			c.Status = *in.Status
		}
		if in.Priority != nil {
			c.Priority = *in.Priority
		}
		if in.Skills != nil {
			c.Skills = *in.Skills
		}
		if in.ExpectedSalary != nil {
			c.ExpectedSalary = strings.TrimSpace(*in.ExpectedSalary)
		}
		if in.Notes != nil {
			c.Notes = strings.TrimSpace(*in.Notes)
		}
		c.UpdatedAt = time.Now()

		if err := s.col.WriteAll(records); err != nil {
			return nil, err
		}
		updated := records[i]
		return &updated, nil
	}

	return nil, nil
}

// Delete removes a candidate. It returns false when the id was not found,
// leaving the collection unchanged.
func (s *CandidateService) Delete(id string) (bool, error) {
	records := s.col.ReadAll()

	for i := range records {
		if records[i].ID == id {
			remaining := append(records[:i:i], records[i+1:]...)
			if err := s.col.WriteAll(remaining); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Search applies the shared status + free-text filter over name, email,
// course, skills and city
func (s *CandidateService) Search(f Filter) []model.Candidate {
	results := []model.Candidate{}
	for _, c := range s.col.ReadAll() {
		searchable := append([]string{c.Name, c.Email, c.Course, c.City}, c.Skills...)
		if matchesFilter(f, string(c.Status), c.Name, searchable...) {
			results = append(results, c)
		}
	}
	return results
}

// GetByStatus returns candidates with the given status, in insertion order
func (s *CandidateService) GetByStatus(status model.CandidateStatus) []model.Candidate {
	return s.Search(Filter{Status: string(status)})
}

// GetByPriority returns candidates with the given priority, in insertion order
func (s *CandidateService) GetByPriority(priority model.CandidatePriority) []model.Candidate {
	results := []model.Candidate{}
	for _, c := range s.col.ReadAll() {
		if c.Priority == priority {
			results = append(results, c)
		}
	}
	return results
}

// Stats aggregates the collection for the dashboard. Every known status and
// priority key is present even when its count is zero.
func (s *CandidateService) Stats() model.CandidateStats {
	records := s.col.ReadAll()

	stats := model.CandidateStats{
		Total:      len(records),
		ByStatus:   zeroFilledCounts(model.CandidateStatuses),
		ByPriority: zeroFilledCounts(model.CandidatePriorities),
	}
	for _, c := range records {
		stats.ByStatus[string(c.Status)]++
		stats.ByPriority[string(c.Priority)]++
	}
	return stats
}

package services

import (
	"strings"
	"time"

	"github.com/skillpath/institute-api/localstore"
	"github.com/skillpath/institute-api/model"
)

// JobService handles placement job records in the local blob store
type JobService struct {
	col *localstore.Collection[model.Job]
}

// NewJobService creates a new job service on top of the given KV
func NewJobService(kv localstore.KV) *JobService {
	return &JobService{
		col: localstore.NewCollection[model.Job]("jobs", kv),
	}
}

// CreateJobInput is the payload for creating a job posting
type CreateJobInput struct {
	Title        string          `json:"title" validate:"required,min=3,max=255"`
	Company      string          `json:"company" validate:"required,min=2,max=255"`
	ContactEmail string          `json:"contact_email" validate:"required,email"`
	Skills       []string        `json:"skills"`
	Location     string          `json:"location" validate:"omitempty,max=255"`
	Experience   string          `json:"experience" validate:"omitempty,max=100"`
	Salary       string          `json:"salary" validate:"omitempty,max=100"`
	Description  string          `json:"description" validate:"omitempty,max=2000"`
	Status       model.JobStatus `json:"status" validate:"omitempty,oneof=active closed draft"`
}

// UpdateJobInput is the payload for partially updating a job posting.
// Nil fields are left unchanged.
type UpdateJobInput struct {
	Title        *string          `json:"title" validate:"omitempty,min=3,max=255"`
	Company      *string          `json:"company" validate:"omitempty,min=2,max=255"`
	ContactEmail *string          `json:"contact_email" validate:"omitempty,email"`
	Skills       *[]string        `json:"skills"`
	Location     *string          `json:"location" validate:"omitempty,max=255"`
	Experience   *string          `json:"experience" validate:"omitempty,max=100"`
	Salary       *string          `json:"salary" validate:"omitempty,max=100"`
	Description  *string          `json:"description" validate:"omitempty,max=2000"`
	Status       *model.JobStatus `json:"status" validate:"omitempty,oneof=active closed draft"`
}

// InitializeWithSampleData seeds the collection with example postings on
// first run only
func (s *JobService) InitializeWithSampleData() error {
	if s.col.Exists() {
		return nil
	}

	now := time.Now()
	samples := []model.Job{
		{
			ID:           s.col.GenerateID(),
			CreatedAt:    now,
			UpdatedAt:    now,
			Title:        "Junior Java Developer",
			Company:      "TechNova Solutions",
			ContactEmail: "hr@technova.example.com",
			Skills:       []string{"Java", "Spring Boot", "MySQL"},
			Location:     "Indore",
			Experience:   "0-1 years",
			Salary:       "3-4.5 LPA",
			Status:       model.JobStatusActive,
		},
		{
			ID:           s.col.GenerateID(),
			CreatedAt:    now,
			UpdatedAt:    now,
			Title:        "React Frontend Developer",
			Company:      "PixelWorks",
			ContactEmail: "careers@pixelworks.example.com",
			Skills:       []string{"React", "JavaScript", "CSS"},
			Location:     "Remote",
			Experience:   "1-2 years",
			Salary:       "5-7 LPA",
			Status:       model.JobStatusActive,
		},
		{
			ID:           s.col.GenerateID(),
			CreatedAt:    now,
			UpdatedAt:    now,
			Title:        "DevOps Engineer",
			Company:      "CloudRidge",
			ContactEmail: "jobs@cloudridge.example.com",
			Skills:       []string{"AWS", "Kubernetes", "Terraform"},
			Location:     "Pune",
			Experience:   "2-4 years",
			Salary:       "8-12 LPA",
			Status:       model.JobStatusDraft,
		},
	}

	return s.col.WriteAll(samples)
}

// GetAll returns every job in insertion order
func (s *JobService) GetAll() []model.Job {
	return s.col.ReadAll()
}

// GetByID returns the job with the given id, or false if absent
func (s *JobService) GetByID(id string) (*model.Job, bool) {
	for _, j := range s.col.ReadAll() {
		if j.ID == id {
			return &j, true
		}
	}
	return nil, false
}

// Create adds a new job posting, assigning id and timestamps. It rejects the
// creation when another posting already uses the same contact email.
func (s *JobService) Create(in CreateJobInput) (*model.Job, error) {
	records := s.col.ReadAll()

	email := strings.ToLower(strings.TrimSpace(in.ContactEmail))
	for _, j := range records {
		if strings.EqualFold(j.ContactEmail, email) {
			return nil, ErrDuplicateEmail
		}
	}

	status := in.Status
	if status == "" {
		status = model.JobStatusDraft
	}
	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}

	now := time.Now()
	job := model.Job{
		ID:           s.col.GenerateID(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Title:        strings.TrimSpace(in.Title),
		Company:      strings.TrimSpace(in.Company),
		ContactEmail: email,
		Skills:       skills,
		Location:     strings.TrimSpace(in.Location),
		Experience:   strings.TrimSpace(in.Experience),
		Salary:       strings.TrimSpace(in.Salary),
		Description:  strings.TrimSpace(in.Description),
		Status:       status,
	}

	records = append(records, job)
	if err := s.col.WriteAll(records); err != nil {
		return nil, err
	}
	return &job, nil
}

// Update merges the provided fields into an existing job and refreshes
// UpdatedAt. It returns (nil, nil) when the id does not exist.
func (s *JobService) Update(id string, in UpdateJobInput) (*model.Job, error) {
	records := s.col.ReadAll()

	for i := range records {
		if records[i].ID != id {
			continue
		}

		j := &records[i]
		if in.Title != nil {
			j.Title = strings.TrimSpace(*in.Title)
		}
		if in.Company != nil {
			j.Company = strings.TrimSpace(*in.Company)
		}
		if in.ContactEmail != nil {
			email := strings.ToLower(strings.TrimSpace(*in.ContactEmail))
			for k := range records {
				if k != i && strings.EqualFold(records[k].ContactEmail, email) {
					return nil, ErrDuplicateEmail
				}
			}
			j.ContactEmail = email
		}
		if in.Skills != nil {
			j.Skills = *in.Skills
		}
		if in.Location != nil {
			j.Location = strings.TrimSpace(*in.Location)
		}
		if in.Experience != nil {
			j.Experience = strings.TrimSpace(*in.Experience)
		}
		if in.Salary != nil {
			j.Salary = strings.TrimSpace(*in.Salary)
		}
		if in.Description != nil {
			j.Description = strings.TrimSpace(*in.Description)
		}
		if in.Status != nil {
			j.Status = *in.Status
		}
		j.UpdatedAt = time.Now()

		if err := s.col.WriteAll(records); err != nil {
			return nil, err
		}
		updated := records[i]
		return &updated, nil
	}

	return nil, nil
}

// Delete removes a job posting. It returns false when the id was not found.
func (s *JobService) Delete(id string) (bool, error) {
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

// Search applies the shared status + free-text filter over title, company,
// skills and location
func (s *JobService) Search(f Filter) []model.Job {
	results := []model.Job{}
	for _, j := range s.col.ReadAll() {
		searchable := append([]string{j.Title, j.Company, j.Location}, j.Skills...)
		if matchesFilter(f, string(j.Status), j.Title, searchable...) {
			results = append(results, j)
		}
	}
	return results
}

// GetByStatus returns jobs with the given status, in insertion order
func (s *JobService) GetByStatus(status model.JobStatus) []model.Job {
	return s.Search(Filter{Status: string(status)})
}

// GetActive returns postings visible on the placements page
func (s *JobService) GetActive() []model.Job {
	return s.GetByStatus(model.JobStatusActive)
}

// Stats aggregates the collection for the dashboard. Every known status key
// is present even when its count is zero.
func (s *JobService) Stats() model.JobStats {
	records := s.col.ReadAll()

	stats := model.JobStats{
		Total:    len(records),
		ByStatus: zeroFilledCounts(model.JobStatuses),
	}
	for _, j := range records {
		stats.ByStatus[string(j.Status)]++
	}
	return stats
}

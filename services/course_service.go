package services

import (
	"strings"
	"time"

	"github.com/skillpath/institute-api/localstore"
	"github.com/skillpath/institute-api/model"
)

// CourseService handles course records in the local blob store
type CourseService struct {
	col *localstore.Collection[model.Course]
}

// NewCourseService creates a new course service on top of the given KV
func NewCourseService(kv localstore.KV) *CourseService {
	return &CourseService{
		col: localstore.NewCollection[model.Course]("courses", kv),
	}
}

// CreateCourseInput is the payload for creating a course
type CreateCourseInput struct {
	Name        string               `json:"name" validate:"required,min=3,max=255"`
	Category    model.CourseCategory `json:"category" validate:"required,oneof=programming web data cloud testing"`
	Duration    string               `json:"duration" validate:"required,max=50"`
	Price       int                  `json:"price" validate:"gte=0"`
	Level       model.CourseLevel    `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Status      model.CourseStatus   `json:"status" validate:"omitempty,oneof=draft published archived"`
	Description string               `json:"description" validate:"omitempty,max=2000"`
}

// UpdateCourseInput is the payload for partially updating a course.
// Nil fields are left unchanged.
type UpdateCourseInput struct {
	Name        *string               `json:"name" validate:"omitempty,min=3,max=255"`
	Category    *model.CourseCategory `json:"category" validate:"omitempty,oneof=programming web data cloud testing"`
	Duration    *string               `json:"duration" validate:"omitempty,max=50"`
	Price       *int                  `json:"price" validate:"omitempty,gte=0"`
	Level       *model.CourseLevel    `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Status      *model.CourseStatus   `json:"status" validate:"omitempty,oneof=draft published archived"`
	Description *string               `json:"description" validate:"omitempty,max=2000"`
}

// InitializeWithSampleData seeds the collection with example courses on
// first run only
func (s *CourseService) InitializeWithSampleData() error {
	if s.col.Exists() {
		return nil
	}

	now := time.Now()
	samples := []model.Course{
		{
			ID:               s.col.GenerateID(),
			CreatedAt:        now,
			UpdatedAt:        now,
			Name:             "Full Stack Java Development",
			Category:         model.CourseCategoryProgramming,
			Duration:         "6 months",
			Price:            45000,
			Level:            model.CourseLevelBeginner,
			Status:           model.CourseStatusPublished,
			Description:      "Core Java, Spring Boot, React and project work.",
			EnrolledStudents: []string{},
		},
		{
			ID:               s.col.GenerateID(),
			CreatedAt:        now,
			UpdatedAt:        now,
			Name:             "Data Science with Python",
			Category:         model.CourseCategoryData,
			Duration:         "4 months",
			Price:            38000,
			Level:            model.CourseLevelIntermediate,
			Status:           model.CourseStatusPublished,
			Description:      "Pandas, scikit-learn and applied machine learning.",
			EnrolledStudents: []string{},
		},
		{
			ID:               s.col.GenerateID(),
			CreatedAt:        now,
			UpdatedAt:        now,
			Name:             "AWS Cloud Practitioner",
			Category:         model.CourseCategoryCloud,
			Duration:         "3 months",
			Price:            30000,
			Level:            model.CourseLevelBeginner,
			Status:           model.CourseStatusDraft,
			Description:      "Cloud fundamentals and certification preparation.",
			EnrolledStudents: []string{},
		},
	}

	return s.col.WriteAll(samples)
}

// GetAll returns every course in insertion order
func (s *CourseService) GetAll() []model.Course {
	return s.col.ReadAll()
}

// GetByID returns the course with the given id, or false if absent
func (s *CourseService) GetByID(id string) (*model.Course, bool) {
	for _, c := range s.col.ReadAll() {
		if c.ID == id {
			return &c, true
		}
	}
	return nil, false
}

// Create adds a new course, assigning id and timestamps
func (s *CourseService) Create(in CreateCourseInput) (*model.Course, error) {
	records := s.col.ReadAll()

	status := in.Status
	if status == "" {
		status = model.CourseStatusDraft
	}

	now := time.Now()
	course := model.Course{
		ID:               s.col.GenerateID(),
		CreatedAt:        now,
		UpdatedAt:        now,
		Name:             strings.TrimSpace(in.Name),
		Category:         in.Category,
		Duration:         strings.TrimSpace(in.Duration),
		Price:            in.Price,
		Level:            in.Level,
		Status:           status,
		Description:      strings.TrimSpace(in.Description),
		EnrolledStudents: []string{},
	}

	records = append(records, course)
	if err := s.col.WriteAll(records); err != nil {
		return nil, err
	}
	return &course, nil
}

// Update merges the provided fields into an existing course and refreshes
// UpdatedAt. It returns (nil, nil) when the id does not exist.
func (s *CourseService) Update(id string, in UpdateCourseInput) (*model.Course, error) {
	records := s.col.ReadAll()

	for i := range records {
		if records[i].ID != id {
			continue
		}

		c := &records[i]
		if in.Name != nil {
			c.Name = strings.TrimSpace(*in.Name)
		}
		if in.Category != nil {
			c.Category = *in.Category
		}
		if in.Duration != nil {
			c.Duration = strings.TrimSpace(*in.Duration)
		}
		if in.Price != nil {
			c.Price = *in.Price
		}
		if in.Level != nil {
			c.Level = *in.Level
		}
		if in.Status != nil {
			c.Status = *in.Status
		}
		if in.Description != nil {
			c.Description = strings.TrimSpace(*in.Description)
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

// Delete hard-deletes a course. It returns false when the id was not found.
// Admin flows that want to keep the record use Archive instead.
func (s *CourseService) Delete(id string) (bool, error) {
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

// Archive marks a course archived without removing it. It returns (nil, nil)
// when the id does not exist.
func (s *CourseService) Archive(id string) (*model.Course, error) {
	status := model.CourseStatusArchived
	return s.Update(id, UpdateCourseInput{Status: &status})
}

// Enroll appends a student id to the course roster. It returns (nil, nil)
// when the course does not exist; enrolling the same student twice is a no-op.
func (s *CourseService) Enroll(id string, studentID string) (*model.Course, error) {
	records := s.col.ReadAll()

	for i := range records {
		if records[i].ID != id {
			continue
		}
		for _, existing := range records[i].EnrolledStudents {
			if existing == studentID {
				enrolled := records[i]
				return &enrolled, nil
			}
		}
		records[i].EnrolledStudents = append(records[i].EnrolledStudents, studentID)
		records[i].UpdatedAt = time.Now()

		if err := s.col.WriteAll(records); err != nil {
			return nil, err
		}
		updated := records[i]
		return &updated, nil
	}

	return nil, nil
}

// Search applies the shared status + free-text filter over name, category
// and description
func (s *CourseService) Search(f Filter) []model.Course {
	results := []model.Course{}
	for _, c := range s.col.ReadAll() {
		if matchesFilter(f, string(c.Status), c.Name, c.Name, string(c.Category), c.Description) {
			results = append(results, c)
		}
	}
	return results
}

// GetPublished returns courses visible on the public catalog
func (s *CourseService) GetPublished() []model.Course {
	return s.Search(Filter{Status: string(model.CourseStatusPublished)})
}

// GetByCategory returns courses in the given category, in insertion order
func (s *CourseService) GetByCategory(category model.CourseCategory) []model.Course {
	results := []model.Course{}
	for _, c := range s.col.ReadAll() {
		if c.Category == category {
			results = append(results, c)
		}
	}
	return results
}

// GetByLevel returns courses at the given level, in insertion order
func (s *CourseService) GetByLevel(level model.CourseLevel) []model.Course {
	results := []model.Course{}
	for _, c := range s.col.ReadAll() {
		if c.Level == level {
			results = append(results, c)
		}
	}
	return results
}

// Stats aggregates the collection for the dashboard. Every known status and
// category key is present even when its count is zero.
func (s *CourseService) Stats() model.CourseStats {
	records := s.col.ReadAll()

	stats := model.CourseStats{
		Total:      len(records),
		ByStatus:   zeroFilledCounts(model.CourseStatuses),
		ByCategory: zeroFilledCounts(model.CourseCategories),
		ByLevel:    zeroFilledCounts(model.CourseLevels),
	}
	for _, c := range records {
		stats.ByStatus[string(c.Status)]++
		stats.ByCategory[string(c.Category)]++
		stats.ByLevel[string(c.Level)]++
		stats.TotalEnrolled += c.EnrolledCount()
	}
	return stats
}

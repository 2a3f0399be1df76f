package model

import "time"

// CourseStatus is the publication state of a course
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusPublished CourseStatus = "published"
	CourseStatusArchived  CourseStatus = "archived"
)

// CourseStatuses lists every known course status
var CourseStatuses = []CourseStatus{
	CourseStatusDraft,
	CourseStatusPublished,
	CourseStatusArchived,
}

// CourseCategory groups courses for the catalog filters
type CourseCategory string

const (
	CourseCategoryProgramming CourseCategory = "programming"
	CourseCategoryWeb         CourseCategory = "web"
	CourseCategoryData        CourseCategory = "data"
	CourseCategoryCloud       CourseCategory = "cloud"
	CourseCategoryTesting     CourseCategory = "testing"
)

// CourseCategories lists every known course category
var CourseCategories = []CourseCategory{
	CourseCategoryProgramming,
	CourseCategoryWeb,
	CourseCategoryData,
	CourseCategoryCloud,
	CourseCategoryTesting,
}

// CourseLevel is the difficulty tier of a course
type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "beginner"
	CourseLevelIntermediate CourseLevel = "intermediate"
	CourseLevelAdvanced     CourseLevel = "advanced"
)

// CourseLevels lists every known course level
var CourseLevels = []CourseLevel{
	CourseLevelBeginner,
	CourseLevelIntermediate,
	CourseLevelAdvanced,
}

// Course represents a training program offered by the institute.
// Courses live in the local blob store, not Postgres.
type Course struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string         `json:"name"`
	Category    CourseCategory `json:"category"`
	Duration    string         `json:"duration"` // e.g. "3 months"
	Price       int            `json:"price"`    // whole currency units
	Level       CourseLevel    `json:"level"`
	Status      CourseStatus   `json:"status"`
	Description string         `json:"description"`
	// Enrolled student ids; only the count is shown on the dashboard
	EnrolledStudents []string `json:"enrolled_students"`
}

// EnrolledCount returns the number of enrolled students
func (c Course) EnrolledCount() int {
	return len(c.EnrolledStudents)
}

// CourseStats is the dashboard aggregation payload for courses
type CourseStats struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"by_status"`
	ByCategory    map[string]int `json:"by_category"`
	ByLevel       map[string]int `json:"by_level"`
	TotalEnrolled int            `json:"total_enrolled"`
}

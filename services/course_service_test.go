package services

import (
	"testing"

	"github.com/skillpath/institute-api/model"
)

func newCourse(t *testing.T, svc *CourseService, name string, status model.CourseStatus, category model.CourseCategory) *model.Course {
	t.Helper()
	created, err := svc.Create(CreateCourseInput{
		Name:     name,
		Category: category,
		Duration: "3 months",
		Price:    30000,
		Level:    model.CourseLevelBeginner,
		Status:   status,
	})
	if err != nil {
		t.Fatalf("Create(%s): %v", name, err)
	}
	return created
}

func TestCourseSampleDataSeedsOnce(t *testing.T) {
	svc := NewCourseService(newTestKV())

	if err := svc.InitializeWithSampleData(); err != nil {
		t.Fatalf("InitializeWithSampleData: %v", err)
	}
	first := len(svc.GetAll())
	if first == 0 {
		t.Fatal("expected sample courses after first init")
	}
	if err := svc.InitializeWithSampleData(); err != nil {
		t.Fatalf("second InitializeWithSampleData: %v", err)
	}
	if got := len(svc.GetAll()); got != first {
		t.Fatalf("second init duplicated data: %d -> %d", first, got)
	}
}

func TestCourseArchiveKeepsRecord(t *testing.T) {
	svc := NewCourseService(newTestKV())
	created := newCourse(t, svc, "Golang Bootcamp", model.CourseStatusPublished, model.CourseCategoryProgramming)

	archived, err := svc.Archive(created.ID)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if archived == nil || archived.Status != model.CourseStatusArchived {
		t.Fatalf("expected archived status, got %+v", archived)
	}

	// Unlike delete, the record stays readable
	got, ok := svc.GetByID(created.ID)
	if !ok {
		t.Fatal("archived course no longer readable")
	}
	if got.Status != model.CourseStatusArchived {
		t.Fatalf("stored status is %q", got.Status)
	}

	// Archived courses drop out of the public catalog
	if published := svc.GetPublished(); len(published) != 0 {
		t.Fatalf("archived course still published: %+v", published)
	}

	absent, err := svc.Archive("missing")
	if err != nil {
		t.Fatalf("Archive missing id: %v", err)
	}
	if absent != nil {
		t.Fatal("expected nil result for unknown id")
	}
}

func TestCourseEnrollIdempotent(t *testing.T) {
	svc := NewCourseService(newTestKV())
	created := newCourse(t, svc, "Golang Bootcamp", model.CourseStatusPublished, model.CourseCategoryProgramming)

	enrolled, err := svc.Enroll(created.ID, "student-1")
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if enrolled.EnrolledCount() != 1 {
		t.Fatalf("expected 1 enrolled, got %d", enrolled.EnrolledCount())
	}

	again, err := svc.Enroll(created.ID, "student-1")
	if err != nil {
		t.Fatalf("repeat Enroll: %v", err)
	}
	if again.EnrolledCount() != 1 {
		t.Fatalf("repeat enroll changed the roster: %d", again.EnrolledCount())
	}

	if _, err := svc.Enroll(created.ID, "student-2"); err != nil {
		t.Fatalf("Enroll second student: %v", err)
	}
	got, _ := svc.GetByID(created.ID)
	if got.EnrolledCount() != 2 {
		t.Fatalf("expected 2 enrolled, got %d", got.EnrolledCount())
	}

	missing, err := svc.Enroll("missing", "student-1")
	if err != nil {
		t.Fatalf("Enroll missing course: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil result for unknown course")
	}
}

func TestCoursePublishedAndCategoryFilters(t *testing.T) {
	svc := NewCourseService(newTestKV())

	newCourse(t, svc, "Golang Bootcamp", model.CourseStatusPublished, model.CourseCategoryProgramming)
	newCourse(t, svc, "React Essentials", model.CourseStatusPublished, model.CourseCategoryWeb)
	newCourse(t, svc, "Selenium Basics", model.CourseStatusDraft, model.CourseCategoryTesting)

	published := svc.GetPublished()
	if len(published) != 2 {
		t.Fatalf("expected 2 published courses, got %d", len(published))
	}
	if published[0].Name != "Golang Bootcamp" || published[1].Name != "React Essentials" {
		t.Fatalf("published out of order: %q, %q", published[0].Name, published[1].Name)
	}

	web := svc.GetByCategory(model.CourseCategoryWeb)
	if len(web) != 1 || web[0].Name != "React Essentials" {
		t.Fatalf("category filter: got %+v", web)
	}
}

func TestCourseStats(t *testing.T) {
	svc := NewCourseService(newTestKV())

	a := newCourse(t, svc, "Golang Bootcamp", model.CourseStatusPublished, model.CourseCategoryProgramming)
	newCourse(t, svc, "React Essentials", model.CourseStatusDraft, model.CourseCategoryWeb)

	if _, err := svc.Enroll(a.ID, "student-1"); err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if _, err := svc.Enroll(a.ID, "student-2"); err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	stats := svc.Stats()
	if stats.Total != 2 {
		t.Fatalf("expected total 2, got %d", stats.Total)
	}
	if stats.ByStatus["published"] != 1 || stats.ByStatus["draft"] != 1 || stats.ByStatus["archived"] != 0 {
		t.Fatalf("unexpected ByStatus: %v", stats.ByStatus)
	}
	if stats.ByCategory["programming"] != 1 || stats.ByCategory["web"] != 1 || stats.ByCategory["cloud"] != 0 {
		t.Fatalf("unexpected ByCategory: %v", stats.ByCategory)
	}
	if stats.ByLevel["beginner"] != 2 || stats.ByLevel["advanced"] != 0 {
		t.Fatalf("unexpected ByLevel: %v", stats.ByLevel)
	}
	if stats.TotalEnrolled != 2 {
		t.Fatalf("expected 2 total enrolled, got %d", stats.TotalEnrolled)
	}
}

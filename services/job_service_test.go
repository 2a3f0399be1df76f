package services

import (
	"testing"

	"github.com/skillpath/institute-api/model"
)

func TestJobSampleDataSeedsOnce(t *testing.T) {
	svc := NewJobService(newTestKV())

	if err := svc.InitializeWithSampleData(); err != nil {
		t.Fatalf("InitializeWithSampleData: %v", err)
	}
	first := len(svc.GetAll())
	if first == 0 {
		t.Fatal("expected sample jobs after first init")
	}
	if err := svc.InitializeWithSampleData(); err != nil {
		t.Fatalf("second InitializeWithSampleData: %v", err)
	}
	if got := len(svc.GetAll()); got != first {
		t.Fatalf("second init duplicated data: %d -> %d", first, got)
	}
}

func TestJobCreateDefaultsToDraft(t *testing.T) {
	svc := NewJobService(newTestKV())

	created, err := svc.Create(CreateJobInput{
		Title:        "Backend Developer",
		Company:      "Acme Software",
		ContactEmail: "hr@acme.example",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != model.JobStatusDraft {
		t.Fatalf("expected default status draft, got %q", created.Status)
	}
}

func TestJobCreateRejectsDuplicateContactEmail(t *testing.T) {
	svc := NewJobService(newTestKV())

	in := CreateJobInput{Title: "Backend Developer", Company: "Acme", ContactEmail: "hr@acme.example"}
	if _, err := svc.Create(in); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	in.Title = "Frontend Developer"
	if _, err := svc.Create(in); err != ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestJobActiveClosedFiltering(t *testing.T) {
	svc := NewJobService(newTestKV())

	seeds := []struct {
		title  string
		status model.JobStatus
	}{
		{"Go Developer", model.JobStatusActive},
		{"QA Engineer", model.JobStatusClosed},
		{"DevOps Engineer", model.JobStatusActive},
		{"Intern", model.JobStatusDraft},
	}
	for i, s := range seeds {
		if _, err := svc.Create(CreateJobInput{
			Title:        s.title,
			Company:      "Acme",
			ContactEmail: string(rune('a'+i)) + "@acme.example",
			Status:       s.status,
		}); err != nil {
			t.Fatalf("Create(%s): %v", s.title, err)
		}
	}

	active := svc.GetActive()
	if len(active) != 2 {
		t.Fatalf("expected 2 active jobs, got %d", len(active))
	}
	if active[0].Title != "Go Developer" || active[1].Title != "DevOps Engineer" {
		t.Fatalf("active jobs out of order: %q, %q", active[0].Title, active[1].Title)
	}

	closed := svc.GetByStatus(model.JobStatusClosed)
	if len(closed) != 1 || closed[0].Title != "QA Engineer" {
		t.Fatalf("closed filter: got %+v", closed)
	}

	stats := svc.Stats()
	if stats.Total != 4 || stats.ByStatus["active"] != 2 || stats.ByStatus["closed"] != 1 || stats.ByStatus["draft"] != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestJobUpdateAndDelete(t *testing.T) {
	svc := NewJobService(newTestKV())

	created, err := svc.Create(CreateJobInput{Title: "Go Developer", Company: "Acme", ContactEmail: "hr@acme.example"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	status := model.JobStatusActive
	salary := "8 LPA"
	updated, err := svc.Update(created.ID, UpdateJobInput{Status: &status, Salary: &salary})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != model.JobStatusActive || updated.Salary != "8 LPA" {
		t.Fatalf("fields not merged: %+v", updated)
	}
	if updated.Title != "Go Developer" {
		t.Fatalf("untouched field changed: %q", updated.Title)
	}

	deleted, err := svc.Delete(created.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete: deleted=%v err=%v", deleted, err)
	}
	if deleted, _ := svc.Delete(created.ID); deleted {
		t.Fatal("second delete must report false")
	}
}

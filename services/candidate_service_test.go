package services

import (
	"testing"

	"github.com/skillpath/institute-api/localstore"
	"github.com/skillpath/institute-api/model"
)

func newTestKV() localstore.KV {
	return localstore.NewMemoryKV()
}

func TestCandidateSampleDataSeedsOnce(t *testing.T) {
	kv := newTestKV()
	svc := NewCandidateService(kv)

	if err := svc.InitializeWithSampleData(); err != nil {
		t.Fatalf("InitializeWithSampleData: %v", err)
	}
	first := svc.GetAll()
	if len(first) == 0 {
		t.Fatal("expected sample candidates after first init")
	}

	if err := svc.InitializeWithSampleData(); err != nil {
		t.Fatalf("second InitializeWithSampleData: %v", err)
	}
	if got := svc.GetAll(); len(got) != len(first) {
		t.Fatalf("second init duplicated data: %d -> %d records", len(first), len(got))
	}
}

func TestCandidateSeedDoesNotResurrectDeletedData(t *testing.T) {
	svc := NewCandidateService(newTestKV())

	if err := svc.InitializeWithSampleData(); err != nil {
		t.Fatalf("InitializeWithSampleData: %v", err)
	}
	for _, c := range svc.GetAll() {
		if _, err := svc.Delete(c.ID); err != nil {
			t.Fatalf("Delete(%s): %v", c.ID, err)
		}
	}

	// The collection entry still exists even though it is empty, so
	// reseeding must not happen
	if err := svc.InitializeWithSampleData(); err != nil {
		t.Fatalf("reinit: %v", err)
	}
	if got := svc.GetAll(); len(got) != 0 {
		t.Fatalf("expected empty collection after deleting all, got %d records", len(got))
	}
}

func TestCandidateCreateAndGetByID(t *testing.T) {
	svc := NewCandidateService(newTestKV())

	created, err := svc.Create(CreateCandidateInput{
		Name:   "Sneha Joshi",
		Email:  "Sneha.Joshi@Example.com",
		Phone:  "9812345670",
		Course: "Data Science",
		Skills: []string{"Python"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Email != "sneha.joshi@example.com" {
		t.Fatalf("expected lowercased email, got %q", created.Email)
	}
	if created.Status != model.CandidateStatusPending {
		t.Fatalf("expected default status pending, got %q", created.Status)
	}
	if created.Priority != model.CandidatePriorityMedium {
		t.Fatalf("expected default priority medium, got %q", created.Priority)
	}

	got, ok := svc.GetByID(created.ID)
	if !ok {
		t.Fatal("GetByID did not find the created candidate")
	}
	if got.Name != "Sneha Joshi" {
		t.Fatalf("got name %q", got.Name)
	}

	if _, ok := svc.GetByID("missing"); ok {
		t.Fatal("GetByID found a candidate for an unknown id")
	}
}

func TestCandidateCreateRejectsDuplicateEmail(t *testing.T) {
	svc := NewCandidateService(newTestKV())

	in := CreateCandidateInput{Name: "Arjun Mehta", Email: "arjun@example.com", Phone: "9876543210"}
	if _, err := svc.Create(in); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	in.Email = "ARJUN@example.com"
	if _, err := svc.Create(in); err != ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if got := svc.GetAll(); len(got) != 1 {
		t.Fatalf("rejected create must not persist, got %d records", len(got))
	}
}

func TestCandidateUpdate(t *testing.T) {
	svc := NewCandidateService(newTestKV())

	created, err := svc.Create(CreateCandidateInput{Name: "Arjun Mehta", Email: "arjun@example.com", Phone: "9876543210"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	status := model.CandidateStatusApproved
	city := "Pune"
	updated, err := svc.Update(created.ID, UpdateCandidateInput{Status: &status, City: &city})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil {
		t.Fatal("Update returned nil for an existing id")
	}
	if updated.ID != created.ID {
		t.Fatalf("id changed on update: %q -> %q", created.ID, updated.ID)
	}
	if updated.Status != model.CandidateStatusApproved || updated.City != "Pune" {
		t.Fatalf("fields not merged: %+v", updated)
	}
	// Untouched fields survive the merge
	if updated.Name != "Arjun Mehta" || updated.Phone != "9876543210" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	absent, err := svc.Update("missing", UpdateCandidateInput{City: &city})
	if err != nil {
		t.Fatalf("Update missing id: %v", err)
	}
	if absent != nil {
		t.Fatal("expected nil result for unknown id")
	}
}

func TestCandidateUpdateRejectsDuplicateEmail(t *testing.T) {
	svc := NewCandidateService(newTestKV())

	if _, err := svc.Create(CreateCandidateInput{Name: "Arjun Mehta", Email: "arjun@example.com", Phone: "9876543210"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(CreateCandidateInput{Name: "Kiran Rao", Email: "kiran@example.com", Phone: "9876543211"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	taken := "arjun@example.com"
	if _, err := svc.Update(second.ID, UpdateCandidateInput{Email: &taken}); err != ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// Re-submitting a record's own email is not a duplicate
	own := "kiran@example.com"
	if _, err := svc.Update(second.ID, UpdateCandidateInput{Email: &own}); err != nil {
		t.Fatalf("updating with own email: %v", err)
	}
}

func TestCandidateDelete(t *testing.T) {
	svc := NewCandidateService(newTestKV())

	created, err := svc.Create(CreateCandidateInput{Name: "Arjun Mehta", Email: "arjun@example.com", Phone: "9876543210"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := svc.Delete(created.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete: deleted=%v err=%v", deleted, err)
	}
	if _, ok := svc.GetByID(created.ID); ok {
		t.Fatal("candidate still readable after delete")
	}

	deleted, err = svc.Delete(created.ID)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if deleted {
		t.Fatal("deleting an already-deleted id must report false")
	}
}

func TestCandidateSearch(t *testing.T) {
	svc := NewCandidateService(newTestKV())

	seeds := []CreateCandidateInput{
		{Name: "Arjun Mehta", Email: "arjun@example.com", Phone: "9876543210", Course: "Full Stack", Skills: []string{"Java"}, Status: model.CandidateStatusApproved},
		{Name: "Kiran Rao", Email: "kiran@example.com", Phone: "9876543211", Course: "Data Science", Skills: []string{"Python"}},
		{Name: "Meera Nair", Email: "meera@example.com", Phone: "9876543212", Course: "Full Stack", Skills: []string{"javascript"}},
	}
	for _, in := range seeds {
		if _, err := svc.Create(in); err != nil {
			t.Fatalf("Create(%s): %v", in.Name, err)
		}
	}

	if got := svc.Search(Filter{Query: "full stack"}); len(got) != 2 {
		t.Fatalf("course search: expected 2, got %d", len(got))
	}
	// Skills participate in the free-text search
	if got := svc.Search(Filter{Query: "JAVA"}); len(got) != 2 {
		t.Fatalf("skills search: expected 2 (Java + javascript), got %d", len(got))
	}
	if got := svc.Search(Filter{Status: "approved"}); len(got) != 1 || got[0].Name != "Arjun Mehta" {
		t.Fatalf("status filter: got %+v", got)
	}
	if got := svc.Search(Filter{Status: "all", Query: "rao"}); len(got) != 1 || got[0].Name != "Kiran Rao" {
		t.Fatalf("combined filter: got %+v", got)
	}
}

func TestCandidateStats(t *testing.T) {
	svc := NewCandidateService(newTestKV())

	// Empty collection still reports every known key
	stats := svc.Stats()
	if stats.Total != 0 {
		t.Fatalf("expected total 0, got %d", stats.Total)
	}
	for _, s := range model.CandidateStatuses {
		if _, ok := stats.ByStatus[string(s)]; !ok {
			t.Errorf("missing status key %q in empty stats", s)
		}
	}
	for _, p := range model.CandidatePriorities {
		if _, ok := stats.ByPriority[string(p)]; !ok {
			t.Errorf("missing priority key %q in empty stats", p)
		}
	}

	if _, err := svc.Create(CreateCandidateInput{Name: "Arjun Mehta", Email: "arjun@example.com", Phone: "9876543210", Status: model.CandidateStatusApproved, Priority: model.CandidatePriorityHigh}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(CreateCandidateInput{Name: "Kiran Rao", Email: "kiran@example.com", Phone: "9876543211"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	stats = svc.Stats()
	if stats.Total != 2 {
		t.Fatalf("expected total 2, got %d", stats.Total)
	}
	if stats.ByStatus["approved"] != 1 || stats.ByStatus["pending"] != 1 || stats.ByStatus["rejected"] != 0 {
		t.Fatalf("unexpected ByStatus: %v", stats.ByStatus)
	}
	if stats.ByPriority["high"] != 1 || stats.ByPriority["medium"] != 1 || stats.ByPriority["low"] != 0 {
		t.Fatalf("unexpected ByPriority: %v", stats.ByPriority)
	}

	sum := 0
	for _, n := range stats.ByStatus {
		sum += n
	}
	if sum != stats.Total {
		t.Fatalf("ByStatus sums to %d, want %d", sum, stats.Total)
	}
}

package localstore

import (
	"testing"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollectionReadAllMissingEntry(t *testing.T) {
	col := NewCollection[record]("records", NewMemoryKV())

	got := col.ReadAll()
	if got == nil {
		t.Fatal("expected empty slice for missing entry, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestCollectionRoundTrip(t *testing.T) {
	col := NewCollection[record]("records", NewMemoryKV())

	want := []record{
		{ID: "1", Name: "first"},
		{ID: "2", Name: "second"},
	}
	if err := col.WriteAll(want); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	got := col.ReadAll()
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCollectionReadAllCorruptEntry(t *testing.T) {
	kv := NewMemoryKV()
	if err := kv.Set("records", []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	col := NewCollection[record]("records", kv)
	got := col.ReadAll()
	if len(got) != 0 {
		t.Fatalf("expected corrupt entry to read as empty, got %d records", len(got))
	}
}

func TestCollectionExists(t *testing.T) {
	col := NewCollection[record]("records", NewMemoryKV())

	if col.Exists() {
		t.Fatal("expected Exists to be false before first write")
	}

	// Writing an empty collection still marks it as existing; deleting every
	// record must not look like a first run
	if err := col.WriteAll([]record{}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if !col.Exists() {
		t.Fatal("expected Exists to be true after writing an empty collection")
	}
}

func TestGenerateIDUnique(t *testing.T) {
	col := NewCollection[record]("records", NewMemoryKV())

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := col.GenerateID()
		if id == "" {
			t.Fatal("GenerateID returned empty id")
		}
		if seen[id] {
			t.Fatalf("GenerateID returned duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestFileKVDeleteMissing(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	if err := kv.Delete("nope"); err != nil {
		t.Fatalf("deleting a missing entry should not error, got %v", err)
	}
}

func TestFileKVRoundTrip(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}

	if _, ok, err := kv.Get("records"); err != nil || ok {
		t.Fatalf("expected missing entry, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set("records", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := kv.Get("records")
	if err != nil || !ok {
		t.Fatalf("expected entry after Set, got ok=%v err=%v", ok, err)
	}
	if string(data) != `[{"id":"1"}]` {
		t.Fatalf("unexpected data: %s", data)
	}
}

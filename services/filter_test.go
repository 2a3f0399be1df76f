package services

import "testing"

func TestMatchesFilter(t *testing.T) {
	tests := []struct {
		name       string
		filter     Filter
		status     string
		primary    string
		searchable []string
		want       bool
	}{
		{
			name:    "empty filter matches everything",
			filter:  Filter{},
			status:  "active",
			primary: "Backend Developer",
			want:    true,
		},
		{
			name:    "status all matches any status",
			filter:  Filter{Status: FilterAll},
			status:  "closed",
			primary: "Backend Developer",
			want:    true,
		},
		{
			name:    "status mismatch excludes",
			filter:  Filter{Status: "active"},
			status:  "closed",
			primary: "Backend Developer",
			want:    false,
		},
		{
			name:       "query matches case-insensitively",
			filter:     Filter{Query: "JAVA"},
			status:     "active",
			primary:    "Backend Developer",
			searchable: []string{"Backend Developer", "java, spring"},
			want:       true,
		},
		{
			name:       "query matches substring",
			filter:     Filter{Query: "dev"},
			status:     "active",
			primary:    "Backend Developer",
			searchable: []string{"Backend Developer"},
			want:       true,
		},
		{
			name:       "query with no match excludes",
			filter:     Filter{Query: "rust"},
			status:     "active",
			primary:    "Backend Developer",
			searchable: []string{"Backend Developer", "java"},
			want:       false,
		},
		{
			name:       "status and query must both match",
			filter:     Filter{Status: "active", Query: "java"},
			status:     "closed",
			primary:    "Backend Developer",
			searchable: []string{"java"},
			want:       false,
		},
		{
			name:    "missing primary field excludes the record",
			filter:  Filter{},
			status:  "active",
			primary: "   ",
			want:    false,
		},
		{
			name:       "blank query is ignored",
			filter:     Filter{Query: "   "},
			status:     "active",
			primary:    "Backend Developer",
			searchable: []string{"Backend Developer"},
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchesFilter(tt.filter, tt.status, tt.primary, tt.searchable...)
			if got != tt.want {
				t.Errorf("matchesFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSearchPreservesOrderAndDoesNotMutate(t *testing.T) {
	svc := NewJobService(newTestKV())

	titles := []string{"Go Developer", "Java Developer", "Python Developer"}
	for _, title := range titles {
		if _, err := svc.Create(CreateJobInput{
			Title:        title,
			Company:      "Acme",
			ContactEmail: title + "@acme.example",
		}); err != nil {
			t.Fatalf("Create(%q): %v", title, err)
		}
	}

	got := svc.Search(Filter{Query: "developer"})
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
	for i, title := range titles {
		if got[i].Title != title {
			t.Errorf("result %d: got %q, want %q (insertion order must be preserved)", i, got[i].Title, title)
		}
	}

	// Filtering must not change the stored collection
	if all := svc.GetAll(); len(all) != 3 {
		t.Fatalf("expected collection unchanged, got %d records", len(all))
	}
}

package services

import "strings"

// FilterAll matches every status
const FilterAll = "all"

// Filter describes a record-list filter request from the admin screens:
// an exact status (or "all") AND an optional free-text search term matched
// case-insensitively against a fixed set of searchable fields.
type Filter struct {
	Status string
	Query  string
}

// matchesFilter applies the shared filter rule to one record. primary is the
// record's primary display field: records missing it are excluded from
// results rather than causing an error. searchable is the field set the
// free-text term is matched against.
//
// Filtering never reorders and never mutates; callers fold this predicate
// over the collection in insertion order.
func matchesFilter(f Filter, status string, primary string, searchable ...string) bool {
	if strings.TrimSpace(primary) == "" {
		return false
	}

	if f.Status != "" && f.Status != FilterAll && f.Status != status {
		return false
	}

	query := strings.TrimSpace(f.Query)
	if query == "" {
		return true
	}

	for _, field := range searchable {
		if containsFold(field, query) {
			return true
		}
	}
	return false
}

// containsFold reports whether s contains substr, case-insensitively
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

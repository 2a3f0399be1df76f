package validation

import "testing"

func TestValidateMobile(t *testing.T) {
	tests := []struct {
		mobile string
		want   bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"1876543210", false}, // first digit must be 6-9
		{"5876543210", false},
		{"98765432", false},    // too short
		{"98765432101", false}, // too long
		{"98765 4321", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidateMobile(tt.mobile); got != tt.want {
			t.Errorf("ValidateMobile(%q) = %v, want %v", tt.mobile, got, tt.want)
		}
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Rohit Kumar", true},
		{"Jo", true},
		{"R", false},
		{"Rohit123", false},
		{"  ", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidateName(tt.name); got != tt.want {
			t.Errorf("ValidateName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestValidatePassOutYear(t *testing.T) {
	currentYear := 2026
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},
		{2026, true},
		{2027, true}, // next year is allowed for final-year students
		{1999, false},
		{2028, false},
	}
	for _, tt := range tests {
		if got := ValidatePassOutYear(tt.year, currentYear); got != tt.want {
			t.Errorf("ValidatePassOutYear(%d, %d) = %v, want %v", tt.year, currentYear, got, tt.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"rohit@example.com", true},
		{"rohit+tag@sub.example.co.in", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"rohit@", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  Rohit\x00 Kumar  "); got != "Rohit Kumar" {
		t.Errorf("SanitizeString: got %q", got)
	}
}

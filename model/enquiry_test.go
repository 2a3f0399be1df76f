package model

import (
	"reflect"
	"testing"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to EnquiryStatus
		want     bool
	}{
		{EnquiryStatusNew, EnquiryStatusContacted, true},
		{EnquiryStatusNew, EnquiryStatusEnrolled, true},
		{EnquiryStatusNew, EnquiryStatusRejected, true},
		{EnquiryStatusContacted, EnquiryStatusEnrolled, true},
		{EnquiryStatusContacted, EnquiryStatusRejected, true},
		{EnquiryStatusContacted, EnquiryStatusNew, false},
		{EnquiryStatusEnrolled, EnquiryStatusRejected, false},
		{EnquiryStatusRejected, EnquiryStatusContacted, false},
		{EnquiryStatusNew, EnquiryStatusNew, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestSplitTechnologiesRoundTrip(t *testing.T) {
	joined := JoinTechnologies([]string{"Java", "React"})
	if joined != "Java, React" {
		t.Fatalf("JoinTechnologies: got %q", joined)
	}
	if got := SplitTechnologies(joined); !reflect.DeepEqual(got, []string{"Java", "React"}) {
		t.Fatalf("SplitTechnologies: got %v", got)
	}
	if got := SplitTechnologies("  "); len(got) != 0 {
		t.Fatalf("expected empty list for blank input, got %v", got)
	}
	if got := SplitTechnologies("Java,, React ,"); !reflect.DeepEqual(got, []string{"Java", "React"}) {
		t.Fatalf("expected empty segments dropped, got %v", got)
	}
}

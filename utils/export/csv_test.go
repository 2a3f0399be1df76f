package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/skillpath/institute-api/model"
)

func TestEnquiriesCSVHeaderOnly(t *testing.T) {
	out, err := EnquiriesCSV(nil)
	if err != nil {
		t.Fatalf("EnquiriesCSV: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("reading produced CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
	for i, col := range EnquiryCSVHeader {
		if rows[0][i] != col {
			t.Errorf("header column %d: got %q, want %q", i, rows[0][i], col)
		}
	}
}

func TestEnquiriesCSVQuotesEmbeddedCommas(t *testing.T) {
	enquiries := []model.Enquiry{
		{
			Name:        "Rohit Kumar",
			Email:       "rohit@example.com",
			Mobile:      "9876543210",
			PassOutYear: 2024,
			Technology:  "Java, React",
			Status:      model.EnquiryStatusNew,
			SubmittedAt: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		},
	}

	out, err := EnquiriesCSV(enquiries)
	if err != nil {
		t.Fatalf("EnquiriesCSV: %v", err)
	}

	// The comma-joined technology value must survive a round-trip as one field
	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("reading produced CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	row := rows[1]
	if len(row) != len(EnquiryCSVHeader) {
		t.Fatalf("expected %d columns, got %d", len(EnquiryCSVHeader), len(row))
	}
	if row[4] != "Java, React" {
		t.Fatalf("technology column corrupted: %q", row[4])
	}
	if row[3] != "2024" {
		t.Fatalf("pass out year column: %q", row[3])
	}
	if row[6] != "2026-03-10 09:30:00" {
		t.Fatalf("submitted at column: %q", row[6])
	}

	// The raw output quotes the field rather than leaking a bare comma
	if !strings.Contains(string(out), `"Java, React"`) {
		t.Fatalf("expected quoted technology field in raw output:\n%s", out)
	}
}

func TestEnquiriesCSVRowOrder(t *testing.T) {
	enquiries := []model.Enquiry{
		{Name: "First Person", Email: "first@example.com", Mobile: "9876543210", Technology: "Java", Status: model.EnquiryStatusNew},
		{Name: "Second Person", Email: "second@example.com", Mobile: "9876543211", Technology: "Python", Status: model.EnquiryStatusContacted},
	}

	out, err := EnquiriesCSV(enquiries)
	if err != nil {
		t.Fatalf("EnquiriesCSV: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("reading produced CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "First Person" || rows[2][0] != "Second Person" {
		t.Fatalf("rows out of order: %q, %q", rows[1][0], rows[2][0])
	}
}

package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/skillpath/institute-api/model"
)

// EnquiryCSVHeader is the fixed header row consumed by the reporting view
var EnquiryCSVHeader = []string{"Name", "Email", "Mobile", "Pass Out Year", "Technology", "Status", "Submitted At"}

// submittedAtLayout is the timestamp format used in exports
const submittedAtLayout = "2006-01-02 15:04:05"

// EnquiriesCSV renders enquiries as CSV, one row per enquiry in the given
// order. Fields containing commas or newlines are quoted per RFC 4180; the
// technology column keeps its comma-joined stored form.
func EnquiriesCSV(enquiries []model.Enquiry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(EnquiryCSVHeader); err != nil {
		return nil, err
	}

	for _, e := range enquiries {
		row := []string{
			e.Name,
			e.Email,
			e.Mobile,
			strconv.Itoa(e.PassOutYear),
			e.Technology,
			string(e.Status),
			e.SubmittedAt.Format(submittedAtLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

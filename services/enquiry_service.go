package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/skillpath/institute-api/model"
	"github.com/skillpath/institute-api/utils/validation"
	"gorm.io/datatypes"
)

// recentWindow is how long an enquiry counts as "recent" for UI emphasis
const recentWindow = 48 * time.Hour

// EnquiryStore is the remote document store behind the enquiry workflow.
// Enquiries live remotely (not in the local blob store) because they must be
// visible across devices. Implementations return ErrEnquiryNotFound for
// unknown ids and ErrDuplicateEnquiry when the store-level uniqueness
// constraint on (email, mobile) rejects an insert.
type EnquiryStore interface {
	Create(ctx context.Context, enquiry *model.Enquiry) error
	FindByEmail(ctx context.Context, email string) ([]model.Enquiry, error)
	List(ctx context.Context) ([]model.Enquiry, error)
	ListByStatus(ctx context.Context, status model.EnquiryStatus) ([]model.Enquiry, error)
	GetByID(ctx context.Context, id uint) (*model.Enquiry, error)
	UpdateStatus(ctx context.Context, id uint, status model.EnquiryStatus) error
	LogAdminAction(ctx context.Context, entry *model.AdminAuditLog) error
}

// EnquiryService implements the enquiry workflow: validated public creation
// with a duplicate guard, admin listing and status transitions.
//
// The duplicate guard is check-then-act over two round-trips with no
// transaction between them; the store's unique index on (email, mobile) is
// the backstop for near-simultaneous submissions. The check itself fails
// open: when it cannot be completed, creation proceeds and the record is
// marked unverified instead of blocking a legitimate submission.
type EnquiryService struct {
	store EnquiryStore
	now   func() time.Time
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(store EnquiryStore) *EnquiryService {
	return &EnquiryService{
		store: store,
		now:   time.Now,
	}
}

// CreateEnquiryInput is the public enquiry form payload
type CreateEnquiryInput struct {
	Name        string   `json:"name"`
	Mobile      string   `json:"mobile"`
	Email       string   `json:"email"`
	PassOutYear int      `json:"pass_out_year"`
	Technology  []string `json:"technology"`
	// OtherTechnology replaces the "Others" sentinel when it was selected
	OtherTechnology string `json:"other_technology"`
}

// validate applies the enquiry field rules and returns field-level messages
func (s *EnquiryService) validate(in CreateEnquiryInput) ([]string, error) {
	fields := make(map[string]string)

	if !validation.ValidateName(in.Name) {
		fields["name"] = "Name must be at least 2 characters and contain only letters and spaces"
	}
	if !validation.ValidateMobile(strings.TrimSpace(in.Mobile)) {
		fields["mobile"] = "Mobile must be a valid 10-digit number starting with 6-9"
	}
	if !validation.ValidateEmail(strings.TrimSpace(in.Email)) {
		fields["email"] = "Invalid email format"
	}
	if !validation.ValidatePassOutYear(in.PassOutYear, s.now().Year()) {
		fields["pass_out_year"] = fmt.Sprintf("Pass out year must be between %d and %d",
			validation.MinPassOutYear, s.now().Year()+1)
	}

	// Build the technology set, substituting the "Others" sentinel with the
	// free-text value before persistence
	techs := make([]string, 0, len(in.Technology))
	for _, t := range in.Technology {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if t == model.TechnologyOther {
			other := strings.TrimSpace(in.OtherTechnology)
			if other == "" {
				fields["technology"] = "Please specify the technology when selecting Others"
				continue
			}
			techs = append(techs, other)
			continue
		}
		techs = append(techs, t)
	}
	if len(techs) == 0 && fields["technology"] == "" {
		fields["technology"] = "Select at least one technology"
	}

	if err := newValidationError(fields); err != nil {
		return nil, err
	}
	return techs, nil
}

// Create validates and persists a public enquiry with status "new".
//
// Duplicate guard: existing enquiries sharing the email are fetched first;
// if any of them also shares the mobile, creation is rejected with
// ErrDuplicateEnquiry. Same email with a different mobile is accepted.
// A failed check does not block creation (fail open); the record is then
// persisted with DuplicateChecked=false so the skip stays observable.
func (s *EnquiryService) Create(ctx context.Context, in CreateEnquiryInput) (*model.Enquiry, error) {
	techs, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	mobile := strings.TrimSpace(in.Mobile)

	duplicateChecked := true
	existing, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("enquiry: duplicate check failed, proceeding unverified: %v", err)
		duplicateChecked = false
	} else {
		for _, e := range existing {
			if e.Mobile == mobile {
				return nil, ErrDuplicateEnquiry
			}
		}
	}

	enquiry := &model.Enquiry{
		Name:             validation.SanitizeString(in.Name),
		Mobile:           mobile,
		Email:            email,
		PassOutYear:      in.PassOutYear,
		Technology:       model.JoinTechnologies(techs),
		SubmittedAt:      s.now(),
		Status:           model.EnquiryStatusNew,
		DuplicateChecked: duplicateChecked,
	}

	if err := s.store.Create(ctx, enquiry); err != nil {
		return nil, err
	}

	s.decorate(enquiry)
	return enquiry, nil
}

// GetAll returns every enquiry ordered by submission time descending
func (s *EnquiryService) GetAll(ctx context.Context) ([]model.Enquiry, error) {
	enquiries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range enquiries {
		s.decorate(&enquiries[i])
	}
	return enquiries, nil
}

// GetByStatus returns enquiries with the given status ordered by submission
// time descending
func (s *EnquiryService) GetByStatus(ctx context.Context, status model.EnquiryStatus) ([]model.Enquiry, error) {
	if !model.ValidEnquiryStatus(status) {
		return nil, newValidationError(map[string]string{
			"status": fmt.Sprintf("unknown status %q", status),
		})
	}
	enquiries, err := s.store.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	for i := range enquiries {
		s.decorate(&enquiries[i])
	}
	return enquiries, nil
}

// UpdateStatus moves an enquiry through its lifecycle. Transitions are
// checked against the table in model: new may move anywhere, contacted may
// close out, enrolled and rejected are terminal. Each transition is written
// to the admin audit log.
func (s *EnquiryService) UpdateStatus(ctx context.Context, id uint, status model.EnquiryStatus, adminID uint) (*model.Enquiry, error) {
	if !model.ValidEnquiryStatus(status) {
		return nil, newValidationError(map[string]string{
			"status": fmt.Sprintf("unknown status %q", status),
		})
	}

	enquiry, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(enquiry.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, enquiry.Status, status)
	}

	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	// Audit logging is best effort; a failed write must not fail the
	// transition itself
	details, _ := json.Marshal(map[string]interface{}{
		"enquiry_id": id,
		"from":       enquiry.Status,
		"to":         status,
	})
	entry := &model.AdminAuditLog{
		AdminID:  adminID,
		Action:   "update_status",
		Resource: "enquiry",
		Details:  datatypes.JSON(details),
	}
	if err := s.store.LogAdminAction(ctx, entry); err != nil {
		log.Printf("enquiry: failed to write audit log for enquiry %d: %v", id, err)
	}

	enquiry.Status = status
	s.decorate(enquiry)
	return enquiry, nil
}

// Stats aggregates enquiries for the dashboard. Every known status key is
// present even when its count is zero.
func (s *EnquiryService) Stats(ctx context.Context) (*model.EnquiryStats, error) {
	enquiries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.EnquiryStats{
		Total:    len(enquiries),
		ByStatus: zeroFilledCounts(model.EnquiryStatuses),
	}
	now := s.now()
	for _, e := range enquiries {
		stats.ByStatus[string(e.Status)]++
		if now.Sub(e.SubmittedAt) <= recentWindow {
			stats.RecentCount++
		}
	}
	return stats, nil
}

// decorate fills the derived, non-persisted fields on a read enquiry
func (s *EnquiryService) decorate(e *model.Enquiry) {
	e.Technologies = model.SplitTechnologies(e.Technology)
	e.Recent = s.now().Sub(e.SubmittedAt) <= recentWindow
}

package database

import (
	"context"
	"errors"

	"github.com/skillpath/institute-api/model"
	"github.com/skillpath/institute-api/services"
	"gorm.io/gorm"
)

// EnquiryRepository is the Postgres-backed implementation of the enquiry
// store used by the enquiry workflow
type EnquiryRepository struct {
	db *gorm.DB
}

var _ services.EnquiryStore = (*EnquiryRepository)(nil)

// NewEnquiryRepository creates a new enquiry repository
func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

// Create inserts a new enquiry. The composite unique index on
// (email, mobile) closes the window left by the client-side duplicate check:
// the second of two near-simultaneous submissions fails here.
func (r *EnquiryRepository) Create(ctx context.Context, enquiry *model.Enquiry) error {
	if err := r.db.WithContext(ctx).Create(enquiry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return services.ErrDuplicateEnquiry
		}
		return err
	}
	return nil
}

// FindByEmail returns every enquiry sharing the given email
func (r *EnquiryRepository) FindByEmail(ctx context.Context, email string) ([]model.Enquiry, error) {
	var enquiries []model.Enquiry
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&enquiries).Error
	return enquiries, err
}

// List returns all enquiries ordered by submission time descending
func (r *EnquiryRepository) List(ctx context.Context) ([]model.Enquiry, error) {
	var enquiries []model.Enquiry
	err := r.db.WithContext(ctx).
		Order("submitted_at DESC").
		Find(&enquiries).Error
	return enquiries, err
}

// ListByStatus returns enquiries with the given status ordered by submission
// time descending
func (r *EnquiryRepository) ListByStatus(ctx context.Context, status model.EnquiryStatus) ([]model.Enquiry, error) {
	var enquiries []model.Enquiry
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("submitted_at DESC").
		Find(&enquiries).Error
	return enquiries, err
}

// GetByID returns one enquiry or services.ErrEnquiryNotFound
func (r *EnquiryRepository) GetByID(ctx context.Context, id uint) (*model.Enquiry, error) {
	var enquiry model.Enquiry
	if err := r.db.WithContext(ctx).First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrEnquiryNotFound
		}
		return nil, err
	}
	return &enquiry, nil
}

// UpdateStatus sets the status of one enquiry
func (r *EnquiryRepository) UpdateStatus(ctx context.Context, id uint, status model.EnquiryStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.Enquiry{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return services.ErrEnquiryNotFound
	}
	return nil
}

// LogAdminAction appends an admin audit log entry
func (r *EnquiryRepository) LogAdminAction(ctx context.Context, entry *model.AdminAuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

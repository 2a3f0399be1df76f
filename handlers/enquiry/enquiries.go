package enquiry

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skillpath/institute-api/model"
	"github.com/skillpath/institute-api/services"
	"github.com/skillpath/institute-api/utils/export"
	"github.com/skillpath/institute-api/utils/middleware"
	"github.com/skillpath/institute-api/utils/response"
)

// EnquiryHandler handles public enquiry submission and admin follow-up
type EnquiryHandler struct {
	service *services.EnquiryService
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(service *services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{service: service}
}

// CreateEnquiry handles POST /api/v1/enquiries, the public course enquiry
// form and the only unauthenticated write path
func (h *EnquiryHandler) CreateEnquiry(c *fiber.Ctx) error {
	// Parse request body
	var req services.CreateEnquiryInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	enquiry, err := h.service.Create(c.Context(), req)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return response.ValidationError(c, vErr.Fields)
		}
		if errors.Is(err, services.ErrDuplicateEnquiry) {
			return response.Duplicate(c, "An enquiry with this email and mobile has already been submitted")
		}
		// Remote-store faults surface as a generic, retry-able message
		return response.InternalServerError(c, "Failed to submit enquiry. Please try again.")
	}

	return response.Created(c, enquiry)
}

// ListEnquiries handles GET /api/v1/enquiries
func (h *EnquiryHandler) ListEnquiries(c *fiber.Ctx) error {
	status := c.Query("status", "all")

	var (
		enquiries []model.Enquiry
		err       error
	)
	if status == "" || status == services.FilterAll {
		enquiries, err = h.service.GetAll(c.Context())
	} else {
		enquiries, err = h.service.GetByStatus(c.Context(), model.EnquiryStatus(status))
	}
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return response.ValidationError(c, vErr.Fields)
		}
		return response.InternalServerError(c, "Failed to fetch enquiries")
	}

	return response.Success(c, enquiries)
}

// UpdateStatusRequest represents the request body for a status transition
type UpdateStatusRequest struct {
	Status model.EnquiryStatus `json:"status"`
}

// UpdateEnquiryStatus handles PATCH /api/v1/enquiries/:id/status
func (h *EnquiryHandler) UpdateEnquiryStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid enquiry id")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	enquiry, err := h.service.UpdateStatus(c.Context(), uint(id), req.Status, middleware.GetUserID(c))
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return response.ValidationError(c, vErr.Fields)
		}
		if errors.Is(err, services.ErrEnquiryNotFound) {
			return response.NotFound(c, "Enquiry not found")
		}
		if errors.Is(err, services.ErrInvalidTransition) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to update enquiry status")
	}

	return response.SuccessWithMessage(c, "Enquiry status updated successfully", enquiry)
}

// ExportEnquiries handles GET /api/v1/enquiries/export, a CSV download for
// the reporting view
func (h *EnquiryHandler) ExportEnquiries(c *fiber.Ctx) error {
	enquiries, err := h.service.GetAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch enquiries")
	}

	data, err := export.EnquiriesCSV(enquiries)
	if err != nil {
		return response.InternalServerError(c, "Failed to export enquiries")
	}

	filename := fmt.Sprintf("enquiries-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

// EnquiryStats handles GET /api/v1/enquiries/stats
func (h *EnquiryHandler) EnquiryStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute enquiry stats")
	}
	return response.Success(c, stats)
}

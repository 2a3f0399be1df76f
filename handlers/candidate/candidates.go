package candidate

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/skillpath/institute-api/services"
	"github.com/skillpath/institute-api/utils/response"
	"github.com/skillpath/institute-api/utils/validation"
)

// CandidateHandler handles candidate-related requests
type CandidateHandler struct {
	service   *services.CandidateService
	validator *validation.Validator
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(service *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListCandidates handles GET /api/v1/candidates
func (h *CandidateHandler) ListCandidates(c *fiber.Ctx) error {
	// Parse query parameters
	status := c.Query("status", "")
	search := c.Query("search", "")

	if status == "" && search == "" {
		return response.Success(c, h.service.GetAll())
	}

	candidates := h.service.Search(services.Filter{
		Status: status,
		Query:  search,
	})
	return response.Success(c, candidates)
}

// GetCandidate handles GET /api/v1/candidates/:id
func (h *CandidateHandler) GetCandidate(c *fiber.Ctx) error {
	id := c.Params("id")

	candidate, ok := h.service.GetByID(id)
	if !ok {
		return response.NotFound(c, "Candidate not found")
	}
	return response.Success(c, candidate)
}

// CreateCandidate handles POST /api/v1/candidates
func (h *CandidateHandler) CreateCandidate(c *fiber.Ctx) error {
	// Parse request body
	var req services.CreateCandidateInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate request
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	candidate, err := h.service.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return response.Conflict(c, "Candidate with this email already exists")
		}
		return response.InternalServerError(c, "Failed to create candidate")
	}

	return response.Created(c, candidate)
}

// UpdateCandidate handles PUT /api/v1/candidates/:id
func (h *CandidateHandler) UpdateCandidate(c *fiber.Ctx) error {
	id := c.Params("id")

	// Parse request body
	var req services.UpdateCandidateInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate request
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	candidate, err := h.service.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return response.Conflict(c, "Candidate with this email already exists")
		}
		return response.InternalServerError(c, "Failed to update candidate")
	}
	if candidate == nil {
		return response.NotFound(c, "Candidate not found")
	}

	return response.SuccessWithMessage(c, "Candidate updated successfully", candidate)
}

// DeleteCandidate handles DELETE /api/v1/candidates/:id
func (h *CandidateHandler) DeleteCandidate(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := h.service.Delete(id)
	if err != nil {
		return response.InternalServerError(c, "Failed to delete candidate")
	}
	if !deleted {
		return response.NotFound(c, "Candidate not found")
	}

	return response.SuccessWithMessage(c, "Candidate deleted successfully", nil)
}

// CandidateStats handles GET /api/v1/candidates/stats
func (h *CandidateHandler) CandidateStats(c *fiber.Ctx) error {
	return response.Success(c, h.service.Stats())
}

package job

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/skillpath/institute-api/services"
	"github.com/skillpath/institute-api/utils/response"
	"github.com/skillpath/institute-api/utils/validation"
)

// JobHandler handles job-posting requests
type JobHandler struct {
	service   *services.JobService
	validator *validation.Validator
}

// NewJobHandler creates a new job handler
func NewJobHandler(service *services.JobService) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListJobs handles GET /api/v1/jobs
func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	// Parse query parameters
	status := c.Query("status", "")
	search := c.Query("search", "")

	if status == "" && search == "" {
		return response.Success(c, h.service.GetAll())
	}

	jobs := h.service.Search(services.Filter{
		Status: status,
		Query:  search,
	})
	return response.Success(c, jobs)
}

// ListActiveJobs handles GET /api/v1/jobs/active (public placements page)
func (h *JobHandler) ListActiveJobs(c *fiber.Ctx) error {
	return response.Success(c, h.service.GetActive())
}

// GetJob handles GET /api/v1/jobs/:id
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	id := c.Params("id")

	job, ok := h.service.GetByID(id)
	if !ok {
		return response.NotFound(c, "Job not found")
	}
	return response.Success(c, job)
}

// CreateJob handles POST /api/v1/jobs
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	// Parse request body
	var req services.CreateJobInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate request
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	job, err := h.service.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return response.Conflict(c, "Job with this contact email already exists")
		}
		return response.InternalServerError(c, "Failed to create job")
	}

	return response.Created(c, job)
}

// UpdateJob handles PUT /api/v1/jobs/:id
func (h *JobHandler) UpdateJob(c *fiber.Ctx) error {
	id := c.Params("id")

	// Parse request body
	var req services.UpdateJobInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate request
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	job, err := h.service.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return response.Conflict(c, "Job with this contact email already exists")
		}
		return response.InternalServerError(c, "Failed to update job")
	}
	if job == nil {
		return response.NotFound(c, "Job not found")
	}

	return response.SuccessWithMessage(c, "Job updated successfully", job)
}

// DeleteJob handles DELETE /api/v1/jobs/:id
func (h *JobHandler) DeleteJob(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := h.service.Delete(id)
	if err != nil {
		return response.InternalServerError(c, "Failed to delete job")
	}
	if !deleted {
		return response.NotFound(c, "Job not found")
	}

	return response.SuccessWithMessage(c, "Job deleted successfully", nil)
}

// JobStats handles GET /api/v1/jobs/stats
func (h *JobHandler) JobStats(c *fiber.Ctx) error {
	return response.Success(c, h.service.Stats())
}

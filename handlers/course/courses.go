package course

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillpath/institute-api/model"
	"github.com/skillpath/institute-api/services"
	"github.com/skillpath/institute-api/utils/response"
	"github.com/skillpath/institute-api/utils/validation"
)

// CourseHandler handles course-related requests
type CourseHandler struct {
	service   *services.CourseService
	validator *validation.Validator
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(service *services.CourseService) *CourseHandler {
	return &CourseHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListCourses handles GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	// Parse query parameters
	status := c.Query("status", "")
	search := c.Query("search", "")
	category := c.Query("category", "")
	level := c.Query("level", "")

	if category != "" {
		return response.Success(c, h.service.GetByCategory(model.CourseCategory(category)))
	}
	if level != "" {
		return response.Success(c, h.service.GetByLevel(model.CourseLevel(level)))
	}
	if status == "" && search == "" {
		return response.Success(c, h.service.GetAll())
	}

	courses := h.service.Search(services.Filter{
		Status: status,
		Query:  search,
	})
	return response.Success(c, courses)
}

// ListPublishedCourses handles GET /api/v1/courses/published (public catalog)
func (h *CourseHandler) ListPublishedCourses(c *fiber.Ctx) error {
	return response.Success(c, h.service.GetPublished())
}

// GetCourse handles GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	course, ok := h.service.GetByID(id)
	if !ok {
		return response.NotFound(c, "Course not found")
	}
	return response.Success(c, course)
}

// CreateCourse handles POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	// Parse request body
	var req services.CreateCourseInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate request
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	course, err := h.service.Create(req)
	if err != nil {
		return response.InternalServerError(c, "Failed to create course")
	}

	return response.Created(c, course)
}

// UpdateCourse handles PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	// Parse request body
	var req services.UpdateCourseInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate request
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	course, err := h.service.Update(id, req)
	if err != nil {
		return response.InternalServerError(c, "Failed to update course")
	}
	if course == nil {
		return response.NotFound(c, "Course not found")
	}

	return response.SuccessWithMessage(c, "Course updated successfully", course)
}

// ArchiveCourse handles POST /api/v1/courses/:id/archive.
// Archiving keeps the record; DELETE removes it for good.
func (h *CourseHandler) ArchiveCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	course, err := h.service.Archive(id)
	if err != nil {
		return response.InternalServerError(c, "Failed to archive course")
	}
	if course == nil {
		return response.NotFound(c, "Course not found")
	}

	return response.SuccessWithMessage(c, "Course archived successfully", course)
}

// EnrollRequest represents the request body for enrolling a student
type EnrollRequest struct {
	StudentID string `json:"student_id" validate:"required"`
}

// EnrollStudent handles POST /api/v1/courses/:id/enroll
func (h *CourseHandler) EnrollStudent(c *fiber.Ctx) error {
	id := c.Params("id")

	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	course, err := h.service.Enroll(id, req.StudentID)
	if err != nil {
		return response.InternalServerError(c, "Failed to enroll student")
	}
	if course == nil {
		return response.NotFound(c, "Course not found")
	}

	return response.SuccessWithMessage(c, "Student enrolled successfully", course)
}

// DeleteCourse handles DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := h.service.Delete(id)
	if err != nil {
		return response.InternalServerError(c, "Failed to delete course")
	}
	if !deleted {
		return response.NotFound(c, "Course not found")
	}

	return response.SuccessWithMessage(c, "Course deleted successfully", nil)
}

// CourseStats handles GET /api/v1/courses/stats
func (h *CourseHandler) CourseStats(c *fiber.Ctx) error {
	return response.Success(c, h.service.Stats())
}

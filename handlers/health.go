package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillpath/institute-api/database"
	"github.com/skillpath/institute-api/utils/response"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	store *database.GORMStore
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store *database.GORMStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	dbStatus := "up"
	if err := h.store.HealthCheck(); err != nil {
		dbStatus = "down"
	}

	return response.Success(c, fiber.Map{
		"status":   "ok",
		"database": dbStatus,
	})
}

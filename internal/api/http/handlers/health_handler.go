package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthHandler responds to monitoring probes. The body is fixed: the
// endpoint reports process liveness only, never dependency state.
type HealthHandler struct{}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health GET /health.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Complaints API saludable",
	})
}

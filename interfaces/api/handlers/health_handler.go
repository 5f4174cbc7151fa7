package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"task-tracker-api/domain/dto"
)

type HealthHandler struct {
	environment string
}

func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{environment: environment}
}

// Health GET /healthz
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
		Environment: h.environment,
	})
}

// Root GET /
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to Task Manager API",
		"version": "1.0.0",
		"docs":    "/api",
		"health":  "/healthz",
	})
}

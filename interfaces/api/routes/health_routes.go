package routes

import (
	"github.com/gofiber/fiber/v2"

	"task-tracker-api/interfaces/api/handlers"
)

func SetupHealthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/healthz", h.HealthHandler.Health)
	app.Get("/", h.HealthHandler.Root)
}

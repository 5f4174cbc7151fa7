package routes

import (
	"github.com/gofiber/fiber/v2"

	"task-tracker-api/interfaces/api/handlers"
	"task-tracker-api/pkg/utils"
)

// Middleware holds the per-route middleware built by the app from config.
type Middleware struct {
	Protected   fiber.Handler
	AuthLimiter fiber.Handler
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, mw Middleware) {
	SetupHealthRoutes(app, h)

	api := app.Group("/api")

	SetupAuthRoutes(api, h, mw)
	SetupTaskRoutes(api, h, mw)

	// must stay last
	app.Use(utils.RouteNotFoundResponse)
}

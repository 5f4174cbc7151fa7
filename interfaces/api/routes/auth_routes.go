package routes

import (
	"github.com/gofiber/fiber/v2"

	"task-tracker-api/interfaces/api/handlers"
	"task-tracker-api/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, mw Middleware) {
	auth := api.Group("/auth")

	// the limiter only sees the final status once errors are rendered
	auth.Post("/register", mw.AuthLimiter, middleware.HandleErrors(), h.AuthHandler.Register)
	auth.Post("/login", mw.AuthLimiter, middleware.HandleErrors(), h.AuthHandler.Login)

	auth.Get("/profile", mw.Protected, h.AuthHandler.GetProfile)
}

package api

import (
	"github.com/gofiber/fiber/v2"

	"task-tracker-api/domain/services"
	"task-tracker-api/interfaces/api/handlers"
	"task-tracker-api/interfaces/api/middleware"
	"task-tracker-api/interfaces/api/routes"
	"task-tracker-api/pkg/config"
)

type Dependencies struct {
	Config      *config.Config
	AuthService services.AuthService
	TaskService services.TaskService
	// LimiterStorage backs both rate limiters; nil keeps counters in memory.
	LimiterStorage fiber.Storage
}

// NewApp builds the fiber app with the full middleware chain and routes.
func NewApp(deps Dependencies) *fiber.App {
	cfg := deps.Config

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: middleware.ErrorHandler(!cfg.IsProduction()),
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	})

	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.HandleErrors())
	app.Use(middleware.Recover(cfg.IsDevelopment()))
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.CorsMiddleware(cfg.CORS))
	app.Use(middleware.GlobalRateLimiter(cfg.RateLimit, deps.LimiterStorage))

	h := handlers.NewHandlers(&handlers.Services{
		AuthService: deps.AuthService,
		TaskService: deps.TaskService,
		Environment: cfg.App.Env,
	})

	routes.SetupRoutes(app, h, routes.Middleware{
		Protected:   middleware.Protected(deps.AuthService),
		AuthLimiter: middleware.AuthRateLimiter(cfg.RateLimit, deps.LimiterStorage),
	})

	return app
}

package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"task-tracker-api/interfaces/api"
	"task-tracker-api/pkg/di"
	"task-tracker-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		// logger may not be ready yet
		panic("Failed to initialize container: " + err.Error())
	}

	app := api.NewApp(container.AppDependencies())

	done := setupGracefulShutdown(app, container)

	cfg := container.GetConfig()
	logger.Info("Server starting",
		"port", cfg.App.Port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
	)
	logger.Info("Endpoints available",
		"health", "http://localhost:"+cfg.App.Port+"/healthz",
		"api", "http://localhost:"+cfg.App.Port+"/api",
	)

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logger.Error("Server failed to start", "error", err)
		_ = container.Cleanup()
		os.Exit(1)
	}

	<-done
}

// setupGracefulShutdown drains in-flight requests on SIGINT/SIGTERM, then
// releases the container. The returned channel closes once cleanup is done.
func setupGracefulShutdown(app *fiber.App, container *di.Container) <-chan struct{} {
	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		s := <-sig
		logger.Info("Gracefully shutting down...", "signal", s.String())

		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}

		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		close(done)
	}()

	return done
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"task-tracker-api/domain/services"
	"task-tracker-api/pkg/logger"
	"task-tracker-api/pkg/utils"
)

// Services contains all the services needed for handlers
type Services struct {
	AuthService services.AuthService
	TaskService services.TaskService
	Environment string
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler   *AuthHandler
	TaskHandler   *TaskHandler
	HealthHandler *HealthHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:   NewAuthHandler(services.AuthService),
		TaskHandler:   NewTaskHandler(services.TaskService),
		HealthHandler: NewHealthHandler(services.Environment),
	}
}

// bindAndValidate parses the JSON body into req, normalizes it and runs the
// validator. When ok is false a 400 has been written and err is the write result.
func bindAndValidate(c *fiber.Ctx, req normalizer) (bool, error) {
	ctx := c.UserContext()

	if err := c.BodyParser(req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return false, utils.BadRequestResponse(c, "Invalid request body")
	}

	req.Normalize()

	return validate(c, req)
}

func validate(c *fiber.Ctx, req any) (bool, error) {
	if err := utils.ValidateStruct(req); err != nil {
		errs := utils.GetValidationErrors(err, req)
		logger.WarnContext(c.UserContext(), "Validation failed", "errors", errs)
		return false, utils.ValidationErrorResponse(c, errs)
	}
	return true, nil
}

type normalizer interface {
	Normalize()
}

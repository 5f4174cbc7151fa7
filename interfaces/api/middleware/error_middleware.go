package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"task-tracker-api/domain/repositories"
	"task-tracker-api/domain/services"
	"task-tracker-api/pkg/logger"
	"task-tracker-api/pkg/utils"
)

// StatusFor maps a handler error to its status code and client message.
func StatusFor(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	case errors.Is(err, services.ErrDuplicateEmail):
		return fiber.StatusConflict, "User with this email already exists"
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, services.ErrTaskNotFound):
		return fiber.StatusNotFound, "Task not found"
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound, "User not found"
	case errors.Is(err, services.ErrInvalidInput):
		return fiber.StatusBadRequest, "Invalid input"
	case errors.Is(err, utils.ErrInvalidToken), errors.Is(err, utils.ErrMissingToken):
		return fiber.StatusUnauthorized, "Invalid or expired token"
	case errors.Is(err, repositories.ErrDuplicate):
		return fiber.StatusConflict, "Resource already exists"
	case errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound, "Resource not found"
	}
	return fiber.StatusInternalServerError, "Internal Server Error"
}

// ErrorHandler renders every error returned by a handler as the failure
// envelope. showDetails adds the raw error text.
func ErrorHandler(showDetails bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, message := StatusFor(err)

		logFunc := logger.WarnContext
		if code >= fiber.StatusInternalServerError {
			logFunc = logger.ErrorContext
		}
		logFunc(c.UserContext(), "Request failed",
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		resp := utils.Response{
			Success: false,
			Message: message,
		}
		if showDetails {
			resp.Error = err.Error()
		}
		return c.Status(code).JSON(resp)
	}
}

// HandleErrors renders downstream errors in place so that middleware running
// before it (logger, rate limiters) sees the final status code.
func HandleErrors() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}
		return c.App().Config().ErrorHandler(c, err)
	}
}

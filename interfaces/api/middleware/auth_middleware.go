package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"task-tracker-api/domain/services"
	"task-tracker-api/pkg/logger"
	"task-tracker-api/pkg/utils"
)

// Protected middleware validates the bearer token, loads its user and sets
// the user context
func Protected(authService services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		token := utils.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return utils.UnauthorizedResponse(c, "Access token is required")
		}

		user, err := authService.Authenticate(ctx, token)
		switch {
		case err == nil:
		case errors.Is(err, utils.ErrInvalidToken), errors.Is(err, utils.ErrMissingToken):
			logger.WarnContext(ctx, "Token validation failed", "error", err)
			return utils.UnauthorizedResponse(c, "Invalid or expired token")
		case errors.Is(err, services.ErrUserNotFound):
			logger.WarnContext(ctx, "Token for unknown user")
			return utils.UnauthorizedResponse(c, "User not found")
		default:
			return err
		}

		utils.SetUserContext(c, &utils.UserContext{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			CreatedAt: user.CreatedAt,
		})

		return c.Next()
	}
}

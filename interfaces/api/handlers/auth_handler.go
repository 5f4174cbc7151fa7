package handlers

import (
	"github.com/gofiber/fiber/v2"

	"task-tracker-api/domain/dto"
	"task-tracker-api/domain/services"
	"task-tracker-api/pkg/logger"
	"task-tracker-api/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	token, user, err := h.authService.Register(ctx, &req)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID)

	return utils.CreatedResponse(c, "User registered successfully", dto.AuthResponse{
		User:  *dto.UserToUserResponse(user),
		Token: token,
	})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	token, user, err := h.authService.Login(ctx, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, "Login successful", dto.AuthResponse{
		User:  *dto.UserToUserResponse(user),
		Token: token,
	})
}

// GetProfile GET /api/auth/profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	// Protected already loaded the user for this request
	return utils.SuccessResponse(c, "", dto.ProfileResponse{
		User: dto.UserResponse{
			ID:        userCtx.ID,
			Email:     userCtx.Email,
			Name:      userCtx.Name,
			CreatedAt: userCtx.CreatedAt,
		},
	})
}

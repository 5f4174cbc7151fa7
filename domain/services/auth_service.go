package services

import (
	"context"

	"task-tracker-api/domain/dto"
	"task-tracker-api/domain/models"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetProfile(ctx context.Context, userID uint) (*models.User, error)
	// Authenticate verifies a bearer token and loads its user.
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

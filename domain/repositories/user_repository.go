package repositories

import (
	"context"

	"task-tracker-api/domain/models"
)

type UserRepository interface {
	// Create returns ErrDuplicate when the email is already taken.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

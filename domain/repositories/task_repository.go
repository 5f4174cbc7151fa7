package repositories

import (
	"context"

	"task-tracker-api/domain/models"
)

// TaskFilter scopes a list query to one owner. Empty strings mean "any".
type TaskFilter struct {
	UserID   uint
	Status   models.TaskStatus
	Priority models.TaskPriority
	Search   string
	Offset   int
	Limit    int
}

type TaskRepository interface {
	// CreateWithTags upserts every tag by name and inserts the task and its
	// join rows in a single transaction.
	CreateWithTags(ctx context.Context, task *models.Task, tagNames []string) error
	// GetByIDForUser preloads tags. ErrNotFound covers both absent and foreign tasks.
	GetByIDForUser(ctx context.Context, id, userID uint) (*models.Task, error)
	ExistsForUser(ctx context.Context, id, userID uint) (bool, error)
	ListByUser(ctx context.Context, filter TaskFilter) ([]*models.Task, error)
	CountByUser(ctx context.Context, filter TaskFilter) (int64, error)
	// UpdateForUser applies fields only where id and owner both match.
	UpdateForUser(ctx context.Context, id, userID uint, fields map[string]any) error
	// DeleteForUser removes the task's join rows and the task; tags are kept.
	DeleteForUser(ctx context.Context, id, userID uint) error
}

package services

import (
	"context"

	"task-tracker-api/domain/dto"
	"task-tracker-api/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uint, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTasks(ctx context.Context, userID uint, req *dto.TaskFilterRequest) ([]*models.Task, dto.Pagination, error)
	GetTaskByID(ctx context.Context, userID, taskID uint) (*models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint) error
}

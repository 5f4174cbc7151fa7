package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"task-tracker-api/domain/dto"
	"task-tracker-api/domain/models"
	"task-tracker-api/domain/repositories"
	"task-tracker-api/domain/services"
	"task-tracker-api/pkg/logger"
	"task-tracker-api/pkg/utils"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	maxPage      = 1_000_000 // keeps (page-1)*limit far from overflowing
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	now      func() time.Time
}

func NewTaskService(taskRepo repositories.TaskRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uint, req *dto.CreateTaskRequest) (*models.Task, error) {
	status := models.TaskStatus(req.Status)
	if status == "" {
		status = models.TaskStatusPending
	}
	priority := models.TaskPriority(req.Priority)
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	if !status.IsValid() || !priority.IsValid() {
		return nil, fmt.Errorf("%w: unknown status or priority", services.ErrInvalidInput)
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
	}

	if err := s.taskRepo.CreateWithTags(ctx, task, uniqueTagNames(req.Tags)); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created successfully", "task_id", task.ID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) GetTasks(ctx context.Context, userID uint, req *dto.TaskFilterRequest) ([]*models.Task, dto.Pagination, error) {
	page, limit := req.Page, req.Limit
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if page > maxPage {
		return nil, dto.Pagination{}, fmt.Errorf("%w: page must be at most %d", services.ErrInvalidInput, maxPage)
	}

	filter := repositories.TaskFilter{
		UserID:   userID,
		Status:   models.TaskStatus(req.Status),
		Priority: models.TaskPriority(req.Priority),
		Search:   strings.TrimSpace(req.Search),
		Offset:   (page - 1) * limit,
		Limit:    limit,
	}

	tasks, err := s.taskRepo.ListByUser(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get user tasks", "user_id", userID, "error", err)
		return nil, dto.Pagination{}, err
	}

	total, err := s.taskRepo.CountByUser(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count user tasks", "user_id", userID, "error", err)
		return nil, dto.Pagination{}, err
	}

	return tasks, dto.NewPagination(page, limit, total), nil
}

func (s *TaskServiceImpl) GetTaskByID(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByIDForUser(ctx, taskID, userID)
	if err != nil {
		return nil, s.notFoundOr(ctx, "Failed to get task", taskID, userID, err)
	}
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	exists, err := s.taskRepo.ExistsForUser(ctx, taskID, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check task", "task_id", taskID, "error", err)
		return nil, err
	}
	if !exists {
		logger.WarnContext(ctx, "Task not found for update", "task_id", taskID, "user_id", userID)
		return nil, services.ErrTaskNotFound
	}

	fields, err := s.updateFields(req)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.UpdateForUser(ctx, taskID, userID, fields); err != nil {
		return nil, s.notFoundOr(ctx, "Failed to update task", taskID, userID, err)
	}

	logger.InfoContext(ctx, "Task updated successfully", "task_id", taskID, "user_id", userID)

	return s.GetTaskByID(ctx, userID, taskID)
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uint) error {
	exists, err := s.taskRepo.ExistsForUser(ctx, taskID, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check task", "task_id", taskID, "error", err)
		return err
	}
	if !exists {
		logger.WarnContext(ctx, "Task not found for delete", "task_id", taskID, "user_id", userID)
		return services.ErrTaskNotFound
	}

	if err := s.taskRepo.DeleteForUser(ctx, taskID, userID); err != nil {
		return s.notFoundOr(ctx, "Failed to delete task", taskID, userID, err)
	}

	logger.InfoContext(ctx, "Task deleted successfully", "task_id", taskID, "user_id", userID)

	return nil
}

// updateFields maps the supplied fields to columns. updated_at always changes.
func (s *TaskServiceImpl) updateFields(req *dto.UpdateTaskRequest) (map[string]any, error) {
	fields := map[string]any{"updated_at": s.now()}

	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", services.ErrInvalidInput, *req.Status)
		}
		fields["status"] = status
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		if !priority.IsValid() {
			return nil, fmt.Errorf("%w: unknown priority %q", services.ErrInvalidInput, *req.Priority)
		}
		fields["priority"] = priority
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	if dueDate != nil {
		fields["due_date"] = *dueDate
	}

	return fields, nil
}

func (s *TaskServiceImpl) notFoundOr(ctx context.Context, msg string, taskID, userID uint, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		logger.WarnContext(ctx, "Task not found", "task_id", taskID, "user_id", userID)
		return services.ErrTaskNotFound
	}
	logger.ErrorContext(ctx, msg, "task_id", taskID, "user_id", userID, "error", err)
	return err
}

// parseDueDate returns nil for an absent or blank value.
func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := utils.ParseISO8601(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: dueDate must be ISO 8601", services.ErrInvalidInput)
	}
	return &t, nil
}

// uniqueTagNames trims names, drops empties and keeps the first occurrence.
func uniqueTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}

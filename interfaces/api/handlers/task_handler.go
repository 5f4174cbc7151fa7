package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"task-tracker-api/domain/dto"
	"task-tracker-api/domain/services"
	"task-tracker-api/pkg/logger"
	"task-tracker-api/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask POST /api/tasks
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, "Task created successfully", dto.TaskEnvelope{
		Task: *dto.TaskToTaskResponse(task),
	})
}

// GetTasks GET /api/tasks?page&limit&status&priority&search
func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	req := dto.TaskFilterRequest{
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 10),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	}
	if ok, err := validate(c, &req); !ok {
		return err
	}

	tasks, pagination, err := h.taskService.GetTasks(ctx, user.ID, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, "", dto.TaskListResponse{
		Tasks:      dto.TasksToTaskResponses(tasks),
		Pagination: pagination,
	})
}

// GetTask GET /api/tasks/:id
func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return invalidTaskID(c)
	}

	task, err := h.taskService.GetTaskByID(ctx, user.ID, taskID)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, "", dto.TaskEnvelope{
		Task: *dto.TaskToTaskResponse(task),
	})
}

// UpdateTask PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return invalidTaskID(c)
	}

	var req dto.UpdateTaskRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	task, err := h.taskService.UpdateTask(ctx, user.ID, taskID, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, "Task updated successfully", dto.TaskEnvelope{
		Task: *dto.TaskToTaskResponse(task),
	})
}

// DeleteTask DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return invalidTaskID(c)
	}

	if err := h.taskService.DeleteTask(ctx, user.ID, taskID); err != nil {
		return err
	}

	return utils.SuccessResponse(c, "Task deleted successfully", nil)
}

func parseTaskID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func invalidTaskID(c *fiber.Ctx) error {
	logger.WarnContext(c.UserContext(), "Invalid task ID", "task_id", c.Params("id"))
	return utils.ValidationErrorResponse(c, map[string][]string{
		"id": {"Task ID must be a positive integer"},
	})
}

// queryInt returns def for a missing parameter and 0 for a malformed one, so
// the validator rejects it.
func queryInt(c *fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

package dto

import (
	"strings"
	"time"
)

var taskMessages = map[string]string{
	"title":       "Title is required and must be less than 200 characters",
	"description": "Description must be less than 1000 characters",
	"status":      "Status must be one of: PENDING, IN_PROGRESS, COMPLETED, CANCELLED",
	"priority":    "Priority must be one of: LOW, MEDIUM, HIGH, URGENT",
	"dueDate":     "Due date must be a valid ISO 8601 date",
	"tags":        "Each tag must be between 1 and 50 characters",
	"tags.max":    "A task can have at most 20 tags",
	"page":        "Page must be between 1 and 1000000",
	"limit":       "Limit must be between 1 and 100",
	"search":      "Search must be less than 200 characters",
}

type CreateTaskRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Status      string   `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	DueDate     *string  `json:"dueDate" validate:"omitempty,iso8601"`
	Tags        []string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
}

func (r *CreateTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = trimPtr(r.Description)
	for i, tag := range r.Tags {
		r.Tags[i] = strings.TrimSpace(tag)
	}
}

func (r *CreateTaskRequest) ValidationMessages() map[string]string {
	return taskMessages
}

// UpdateTaskRequest is a partial update: nil fields are left untouched.
// Tags are not updatable.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Status      *string `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	DueDate     *string `json:"dueDate" validate:"omitempty,iso8601"`
}

func (r *UpdateTaskRequest) Normalize() {
	r.Title = trimPtr(r.Title)
	r.Description = trimPtr(r.Description)
}

func (r *UpdateTaskRequest) ValidationMessages() map[string]string {
	messages := map[string]string{
		"title": "Title must be between 1 and 200 characters",
	}
	for k, v := range taskMessages {
		if _, ok := messages[k]; !ok {
			messages[k] = v
		}
	}
	return messages
}

// IsEmpty reports whether no updatable field was supplied.
func (r *UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Status == nil && r.Priority == nil && r.DueDate == nil
}

type TaskFilterRequest struct {
	Page     int    `query:"page" validate:"min=1,max=1000000"`
	Limit    int    `query:"limit" validate:"min=1,max=100"`
	Status   string `query:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Priority string `query:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Search   string `query:"search" validate:"omitempty,max=200"`
}

func (r *TaskFilterRequest) ValidationMessages() map[string]string {
	return taskMessages
}

type TagResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type TaskResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Status      string        `json:"status"`
	Priority    string        `json:"priority"`
	DueDate     *time.Time    `json:"dueDate"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Tags        []TagResponse `json:"tags"`
}

type TaskEnvelope struct {
	Task TaskResponse `json:"task"`
}

type TaskListResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

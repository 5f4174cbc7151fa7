package dto

import (
	"task-tracker-api/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

// TaskToTaskResponse flattens the join rows into {id, name, color} tags.
func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}

	tags := make([]TagResponse, 0, len(task.Tags))
	for _, taskTag := range task.Tags {
		tags = append(tags, TagResponse{
			ID:    taskTag.Tag.ID,
			Name:  taskTag.Tag.Name,
			Color: taskTag.Tag.Color,
		})
	}

	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		Tags:        tags,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, *TaskToTaskResponse(task))
	}
	return responses
}

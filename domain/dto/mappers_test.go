package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker-api/domain/models"
)

func TestTaskToTaskResponseExposesOnlyPublicFields(t *testing.T) {
	color := "#ff0000"
	task := &models.Task{
		ID:       7,
		UserID:   3,
		Title:    "Write report",
		Status:   models.TaskStatusPending,
		Priority: models.TaskPriorityHigh,
		Tags: []models.TaskTag{
			{TaskID: 7, TagID: 1, Tag: models.Tag{ID: 1, Name: "work", Color: &color}},
			{TaskID: 7, TagID: 2, Tag: models.Tag{ID: 2, Name: "urgent"}},
		},
	}

	resp := TaskToTaskResponse(task)
	require.NotNil(t, resp)
	assert.Equal(t, []TagResponse{
		{ID: 1, Name: "work", Color: &color},
		{ID: 2, Name: "urgent"},
	}, resp.Tags)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "userId")
	assert.NotContains(t, fields, "UserID")

	tags := fields["tags"].([]any)
	assert.Len(t, tags, 2)
	for _, tag := range tags {
		keys := tag.(map[string]any)
		assert.Len(t, keys, 3)
		assert.NotContains(t, keys, "taskId")
	}
}

func TestTaskToTaskResponseEmptyTags(t *testing.T) {
	resp := TaskToTaskResponse(&models.Task{ID: 1, Title: "x"})
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tags":[]`)
}

func TestUserResponseOmitsPassword(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@b.com", Password: "hash", CreatedAt: time.Now()}
	raw, err := json.Marshal(UserToUserResponse(user))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
	assert.NotContains(t, string(raw), "password")
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, Limit: 2, Total: 3, Pages: 2}, NewPagination(1, 2, 3))
	assert.Equal(t, Pagination{Page: 1, Limit: 10, Total: 0, Pages: 0}, NewPagination(1, 10, 0))
	assert.Equal(t, 5, NewPagination(1, 20, 100).Pages)
}

func TestRegisterRequestNormalize(t *testing.T) {
	name := "  Jane  "
	req := &RegisterRequest{Email: "  Jane@Example.COM ", Name: &name}
	req.Normalize()
	assert.Equal(t, "jane@example.com", req.Email)
	assert.Equal(t, "Jane", *req.Name)
}

package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"task-tracker-api/domain/dto"
	"task-tracker-api/domain/models"
	"task-tracker-api/domain/services"
	"task-tracker-api/infrastructure/postgres"
	"task-tracker-api/pkg/testutil"
)

func ptr[T any](v T) *T { return &v }

func newTaskService(t *testing.T) (services.TaskService, *gorm.DB) {
	db := testutil.NewTestDB(t)
	return NewTaskService(postgres.NewTaskRepository(db)), db
}

func TestTaskService_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	svc, db := newTaskService(t)
	user := testutil.CreateUser(t, db, "owner@example.com")

	task, err := svc.CreateTask(ctx, user.ID, &dto.CreateTaskRequest{Title: "  Write report  "})
	require.NoError(t, err)

	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, models.TaskStatusPending, task.Status)
	assert.Equal(t, models.TaskPriorityMedium, task.Priority)
	assert.Nil(t, task.DueDate)
	assert.Empty(t, task.Tags)
}

func TestTaskService_CreateWithTagsAndDueDate(t *testing.T) {
	ctx := context.Background()
	svc, db := newTaskService(t)
	user := testutil.CreateUser(t, db, "owner@example.com")

	task, err := svc.CreateTask(ctx, user.ID, &dto.CreateTaskRequest{
		Title:    "Ship",
		Status:   "IN_PROGRESS",
		Priority: "URGENT",
		DueDate:  ptr("2030-05-01T09:00:00Z"),
		Tags:     []string{"release", " release ", "", "ops"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.TaskStatusInProgress, task.Status)
	assert.Equal(t, models.TaskPriorityUrgent, task.Priority)
	require.NotNil(t, task.DueDate)
	assert.True(t, task.DueDate.Equal(time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)))

	resp := dto.TaskToTaskResponse(task)
	require.Len(t, resp.Tags, 2)
	assert.Equal(t, "release", resp.Tags[0].Name)
	assert.Equal(t, "ops", resp.Tags[1].Name)
}

func TestTaskService_CreateRejectsBadDueDate(t *testing.T) {
	ctx := context.Background()
	svc, db := newTaskService(t)
	user := testutil.CreateUser(t, db, "owner@example.com")

	_, err := svc.CreateTask(ctx, user.ID, &dto.CreateTaskRequest{Title: "x", DueDate: ptr("next week")})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestTaskService_GetTasksPagination(t *testing.T) {
	ctx := context.Background()
	svc, db := newTaskService(t)
	user := testutil.CreateUser(t, db, "owner@example.com")

	for i := 0; i < 5; i++ {
		_, err := svc.CreateTask(ctx, user.ID, &dto.CreateTaskRequest{Title: "task"})
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		req      dto.TaskFilterRequest
		wantLen  int
		wantPage dto.Pagination
	}{
		{"defaults", dto.TaskFilterRequest{}, 5, dto.Pagination{Page: 1, Limit: 10, Total: 5, Pages: 1}},
		{"first page", dto.TaskFilterRequest{Page: 1, Limit: 2}, 2, dto.Pagination{Page: 1, Limit: 2, Total: 5, Pages: 3}},
		{"last page", dto.TaskFilterRequest{Page: 3, Limit: 2}, 1, dto.Pagination{Page: 3, Limit: 2, Total: 5, Pages: 3}},
		{"past the end", dto.TaskFilterRequest{Page: 9, Limit: 2}, 0, dto.Pagination{Page: 9, Limit: 2, Total: 5, Pages: 3}},
		{"no matches", dto.TaskFilterRequest{Page: 1, Limit: 10, Status: "COMPLETED"}, 0, dto.Pagination{Page: 1, Limit: 10, Total: 0, Pages: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			tasks, pagination, err := svc.GetTasks(ctx, user.ID, &req)
			require.NoError(t, err)
			assert.Len(t, tasks, tt.wantLen)
			assert.Equal(t, tt.wantPage, pagination)
		})
	}
}

func TestTaskService_GetTasksRejectsHugePage(t *testing.T) {
	svc, db := newTaskService(t)
	user := testutil.CreateUser(t, db, "owner@example.com")

	_, _, err := svc.GetTasks(context.Background(), user.ID, &dto.TaskFilterRequest{Page: 922337203685477581, Limit: 100})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestTaskService_OwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	svc, db := newTaskService(t)
	owner := testutil.CreateUser(t, db, "owner@example.com")
	intruder := testutil.CreateUser(t, db, "intruder@example.com")

	task, err := svc.CreateTask(ctx, owner.ID, &dto.CreateTaskRequest{Title: "mine"})
	require.NoError(t, err)

	_, err = svc.GetTaskByID(ctx, intruder.ID, task.ID)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)

	_, err = svc.UpdateTask(ctx, intruder.ID, task.ID, &dto.UpdateTaskRequest{Title: ptr("hijacked")})
	assert.ErrorIs(t, err, services.ErrTaskNotFound)

	err = svc.DeleteTask(ctx, intruder.ID, task.ID)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)

	tasks, _, err := svc.GetTasks(ctx, intruder.ID, &dto.TaskFilterRequest{})
	require.NoError(t, err)
	assert.Empty(t, tasks)

	still, err := svc.GetTaskByID(ctx, owner.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", still.Title)
}

func TestTaskService_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	svc, db := newTaskService(t)
	user := testutil.CreateUser(t, db, "owner@example.com")

	created, err := svc.CreateTask(ctx, user.ID, &dto.CreateTaskRequest{
		Title:       "Original",
		Description: ptr("details"),
		Priority:    "LOW",
		Tags:        []string{"keep"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, user.ID, created.ID, &dto.UpdateTaskRequest{
		Status:  ptr("COMPLETED"),
		DueDate: ptr("2031-01-02"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Original", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "details", *updated.Description)
	assert.Equal(t, models.TaskPriorityLow, updated.Priority)
	assert.Equal(t, models.TaskStatusCompleted, updated.Status)
	require.NotNil(t, updated.DueDate)
	assert.True(t, updated.DueDate.Equal(time.Date(2031, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Len(t, updated.Tags, 1)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestTaskService_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	svc, db := newTaskService(t)
	user := testutil.CreateUser(t, db, "owner@example.com")

	_, err := svc.UpdateTask(ctx, user.ID, 404, &dto.UpdateTaskRequest{Title: ptr("nope")})
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, db := newTaskService(t)
	user := testutil.CreateUser(t, db, "owner@example.com")

	task, err := svc.CreateTask(ctx, user.ID, &dto.CreateTaskRequest{Title: "bye", Tags: []string{"shared"}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, user.ID, task.ID))

	_, err = svc.GetTaskByID(ctx, user.ID, task.ID)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)

	assert.ErrorIs(t, svc.DeleteTask(ctx, user.ID, task.ID), services.ErrTaskNotFound)

	var tags int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	assert.Equal(t, int64(1), tags)
}

func TestUniqueTagNames(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{nil, []string{}},
		{[]string{"a", "b", "a"}, []string{"a", "b"}},
		{[]string{" a ", "a", "", "  "}, []string{"a"}},
		{[]string{"B", "b"}, []string{"B", "b"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, uniqueTagNames(tt.in))
	}
}

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"task-tracker-api/domain/models"
	"task-tracker-api/domain/repositories"
	"task-tracker-api/infrastructure/postgres"
	"task-tracker-api/pkg/testutil"
)

func newTask(userID uint, title string, priority models.TaskPriority) *models.Task {
	return &models.Task{
		UserID:   userID,
		Title:    title,
		Status:   models.TaskStatusPending,
		Priority: priority,
	}
}

func tagNames(task *models.Task) []string {
	names := make([]string, 0, len(task.Tags))
	for _, tt := range task.Tags {
		names = append(names, tt.Tag.Name)
	}
	return names
}

func TestTaskRepository_CreateWithTags(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repo := postgres.NewTaskRepository(db)
	user := testutil.CreateUser(t, db, "owner@example.com")

	first := newTask(user.ID, "first", models.TaskPriorityMedium)
	require.NoError(t, repo.CreateWithTags(ctx, first, []string{"work", "home"}))
	require.NotZero(t, first.ID)
	assert.Equal(t, []string{"work", "home"}, tagNames(first))

	// existing tags are reused, not duplicated
	second := newTask(user.ID, "second", models.TaskPriorityMedium)
	require.NoError(t, repo.CreateWithTags(ctx, second, []string{"work"}))

	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(2), tagCount)

	loaded, err := repo.GetByIDForUser(ctx, second.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"work"}, tagNames(loaded))
	assert.Equal(t, first.Tags[0].TagID, loaded.Tags[0].TagID)
}

func TestTaskRepository_CreateWithoutTags(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repo := postgres.NewTaskRepository(db)
	user := testutil.CreateUser(t, db, "owner@example.com")

	task := newTask(user.ID, "untagged", models.TaskPriorityLow)
	require.NoError(t, repo.CreateWithTags(ctx, task, nil))

	loaded, err := repo.GetByIDForUser(ctx, task.ID, user.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Tags)
	assert.Equal(t, models.TaskStatusPending, loaded.Status)
}

func TestTaskRepository_CreateIsAtomic(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repo := postgres.NewTaskRepository(db)
	user := testutil.CreateUser(t, db, "owner@example.com")

	err := db.Callback().Create().Before("gorm:create").Register("test:fail_task_tags", func(tx *gorm.DB) {
		if tx.Statement.Table == "task_tags" {
			_ = tx.AddError(errors.New("forced join failure"))
		}
	})
	require.NoError(t, err)

	task := newTask(user.ID, "doomed", models.TaskPriorityHigh)
	require.Error(t, repo.CreateWithTags(ctx, task, []string{"fresh"}))

	var tasks, tags int64
	require.NoError(t, db.Model(&models.Task{}).Count(&tasks).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	assert.Zero(t, tasks)
	assert.Zero(t, tags)
}

func TestTaskRepository_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repo := postgres.NewTaskRepository(db)
	owner := testutil.CreateUser(t, db, "owner@example.com")
	other := testutil.CreateUser(t, db, "other@example.com")

	task := newTask(owner.ID, "private", models.TaskPriorityMedium)
	require.NoError(t, repo.CreateWithTags(ctx, task, nil))

	_, err := repo.GetByIDForUser(ctx, task.ID, other.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	exists, err := repo.ExistsForUser(ctx, task.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsForUser(ctx, task.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	err = repo.UpdateForUser(ctx, task.ID, other.ID, map[string]any{"title": "stolen"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = repo.DeleteForUser(ctx, task.ID, other.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	loaded, err := repo.GetByIDForUser(ctx, task.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", loaded.Title)
}

func TestTaskRepository_UpdateForUser(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repo := postgres.NewTaskRepository(db)
	user := testutil.CreateUser(t, db, "owner@example.com")

	desc := "keep me"
	task := newTask(user.ID, "before", models.TaskPriorityLow)
	task.Description = &desc
	require.NoError(t, repo.CreateWithTags(ctx, task, []string{"x"}))

	err := repo.UpdateForUser(ctx, task.ID, user.ID, map[string]any{
		"title":  "after",
		"status": models.TaskStatusCompleted,
	})
	require.NoError(t, err)

	loaded, err := repo.GetByIDForUser(ctx, task.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", loaded.Title)
	assert.Equal(t, models.TaskStatusCompleted, loaded.Status)
	assert.Equal(t, models.TaskPriorityLow, loaded.Priority)
	require.NotNil(t, loaded.Description)
	assert.Equal(t, "keep me", *loaded.Description)
	assert.Equal(t, []string{"x"}, tagNames(loaded))

	err = repo.UpdateForUser(ctx, 12345, user.ID, map[string]any{"title": "ghost"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestTaskRepository_DeleteKeepsTags(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repo := postgres.NewTaskRepository(db)
	user := testutil.CreateUser(t, db, "owner@example.com")

	task := newTask(user.ID, "short lived", models.TaskPriorityMedium)
	require.NoError(t, repo.CreateWithTags(ctx, task, []string{"a", "b"}))

	require.NoError(t, repo.DeleteForUser(ctx, task.ID, user.ID))

	_, err := repo.GetByIDForUser(ctx, task.ID, user.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	var joins, tags int64
	require.NoError(t, db.Model(&models.TaskTag{}).Count(&joins).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	assert.Zero(t, joins)
	assert.Equal(t, int64(2), tags)

	// a later task picks the same tag rows back up
	next := newTask(user.ID, "successor", models.TaskPriorityMedium)
	require.NoError(t, repo.CreateWithTags(ctx, next, []string{"b", "a"}))
	assert.ElementsMatch(t, tagIDs(task), tagIDs(next))

	reloaded, err := repo.GetByIDForUser(ctx, next.ID, user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, tagIDs(task), tagIDs(reloaded))

	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	assert.Equal(t, int64(2), tags)
}

func tagIDs(task *models.Task) []uint {
	ids := make([]uint, 0, len(task.Tags))
	for _, taskTag := range task.Tags {
		ids = append(ids, taskTag.Tag.ID)
	}
	return ids
}

func TestTaskRepository_ListOrdering(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repo := postgres.NewTaskRepository(db)
	user := testutil.CreateUser(t, db, "owner@example.com")

	soon := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)

	fixtures := []struct {
		title    string
		priority models.TaskPriority
		due      *time.Time
	}{
		{"low", models.TaskPriorityLow, nil},
		{"high-undated", models.TaskPriorityHigh, nil},
		{"high-later", models.TaskPriorityHigh, &later},
		{"urgent", models.TaskPriorityUrgent, nil},
		{"high-soon", models.TaskPriorityHigh, &soon},
		{"medium", models.TaskPriorityMedium, nil},
	}
	for _, f := range fixtures {
		task := newTask(user.ID, f.title, f.priority)
		task.DueDate = f.due
		require.NoError(t, repo.CreateWithTags(ctx, task, nil))
	}

	tasks, err := repo.ListByUser(ctx, repositories.TaskFilter{UserID: user.ID, Limit: 10})
	require.NoError(t, err)

	titles := make([]string, 0, len(tasks))
	for _, task := range tasks {
		titles = append(titles, task.Title)
	}
	assert.Equal(t, []string{"urgent", "high-soon", "high-later", "high-undated", "medium", "low"}, titles)
}

func TestTaskRepository_FiltersAndPaging(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repo := postgres.NewTaskRepository(db)
	user := testutil.CreateUser(t, db, "owner@example.com")
	other := testutil.CreateUser(t, db, "other@example.com")

	desc := "Call the PLUMBER"
	withDesc := newTask(user.ID, "house", models.TaskPriorityMedium)
	withDesc.Description = &desc
	require.NoError(t, repo.CreateWithTags(ctx, withDesc, nil))

	percent := newTask(user.ID, "100% done", models.TaskPriorityMedium)
	percent.Status = models.TaskStatusCompleted
	require.NoError(t, repo.CreateWithTags(ctx, percent, nil))

	require.NoError(t, repo.CreateWithTags(ctx, newTask(user.ID, "100 items", models.TaskPriorityHigh), nil))
	require.NoError(t, repo.CreateWithTags(ctx, newTask(other.ID, "plumber visit", models.TaskPriorityMedium), nil))

	tests := []struct {
		name   string
		filter repositories.TaskFilter
		want   int64
	}{
		{"owner only", repositories.TaskFilter{}, 3},
		{"status", repositories.TaskFilter{Status: models.TaskStatusCompleted}, 1},
		{"priority", repositories.TaskFilter{Priority: models.TaskPriorityHigh}, 1},
		{"search description case-insensitive", repositories.TaskFilter{Search: "plumber"}, 1},
		{"search title", repositories.TaskFilter{Search: "HOUSE"}, 1},
		{"percent is literal", repositories.TaskFilter{Search: "100%"}, 1},
		{"underscore is literal", repositories.TaskFilter{Search: "_"}, 0},
		{"combined", repositories.TaskFilter{Search: "100", Priority: models.TaskPriorityMedium}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := tt.filter
			filter.UserID = user.ID
			filter.Limit = 10

			count, err := repo.CountByUser(ctx, filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, count)

			tasks, err := repo.ListByUser(ctx, filter)
			require.NoError(t, err)
			assert.Len(t, tasks, int(tt.want))
		})
	}

	page, err := repo.ListByUser(ctx, repositories.TaskFilter{UserID: user.ID, Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"task-tracker-api/domain/models"
	"task-tracker-api/domain/repositories"
)

const (
	orderByPriority = "CASE priority WHEN 'URGENT' THEN 4 WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 WHEN 'LOW' THEN 1 ELSE 0 END DESC"
	orderByDueDate  = "CASE WHEN due_date IS NULL THEN 1 ELSE 0 END ASC, due_date ASC"
	orderByCreated  = "created_at DESC, id DESC"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) CreateWithTags(ctx context.Context, task *models.Task, tagNames []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := make([]models.Tag, 0, len(tagNames))
		for _, name := range tagNames {
			tag, err := upsertTag(tx, name)
			if err != nil {
				return err
			}
			tags = append(tags, tag)
		}

		if err := tx.Omit(clause.Associations).Create(task).Error; err != nil {
			return err
		}

		if len(tags) == 0 {
			task.Tags = []models.TaskTag{}
			return nil
		}

		taskTags := make([]models.TaskTag, 0, len(tags))
		for _, tag := range tags {
			taskTags = append(taskTags, models.TaskTag{TaskID: task.ID, TagID: tag.ID})
		}
		if err := tx.Omit(clause.Associations).Create(&taskTags).Error; err != nil {
			return err
		}

		for i := range taskTags {
			taskTags[i].Tag = tags[i]
		}
		task.Tags = taskTags
		return nil
	})
	return translateError("create task", err)
}

// upsertTag inserts the tag if no row has that name yet, then reads it back.
func upsertTag(tx *gorm.DB, name string) (models.Tag, error) {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&models.Tag{Name: name}).Error
	if err != nil {
		return models.Tag{}, err
	}

	var tag models.Tag
	if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

func (r *TaskRepositoryImpl) GetByIDForUser(ctx context.Context, id, userID uint) (*models.Task, error) {
	var task models.Task
	err := r.withTags(r.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error
	if err != nil {
		return nil, translateError("get task", err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) ExistsForUser(ctx context.Context, id, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error
	if err != nil {
		return false, translateError("check task", err)
	}
	return count > 0, nil
}

func (r *TaskRepositoryImpl) ListByUser(ctx context.Context, filter repositories.TaskFilter) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.withTags(r.db.WithContext(ctx)).
		Scopes(filterScope(filter)).
		Order(orderByPriority).
		Order(orderByDueDate).
		Order(orderByCreated).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&tasks).Error
	if err != nil {
		return nil, translateError("list tasks", err)
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) CountByUser(ctx context.Context, filter repositories.TaskFilter) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Scopes(filterScope(filter)).
		Count(&count).Error
	if err != nil {
		return 0, translateError("count tasks", err)
	}
	return count, nil
}

func (r *TaskRepositoryImpl) UpdateForUser(ctx context.Context, id, userID uint, fields map[string]any) error {
	result := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return translateError("update task", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) DeleteForUser(ctx context.Context, id, userID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.Task{}).Select("id").Where("id = ? AND user_id = ?", id, userID)
		if err := tx.Where("task_id IN (?)", owned).Delete(&models.TaskTag{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repositories.ErrNotFound
		}
		return nil
	})
	return translateError("delete task", err)
}

func (r *TaskRepositoryImpl) withTags(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tag_id ASC")
		}).
		Preload("Tags.Tag")
}

func filterScope(filter repositories.TaskFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", filter.UserID)
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if filter.Priority != "" {
			db = db.Where("priority = ?", filter.Priority)
		}
		if filter.Search != "" {
			pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
			db = db.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(COALESCE(description, '')) LIKE ? ESCAPE '\')`, pattern, pattern)
		}
		return db
	}
}

package models

import (
	"time"
)

// Tag is a global label shared by every user's tasks, unique by name.
type Tag struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:50;uniqueIndex;not null"`
	Color     *string `gorm:"size:20"`
	CreatedAt time.Time
}

func (Tag) TableName() string {
	return "tags"
}

// TaskTag joins one task to one tag. Rows go away with their task; the tag stays.
type TaskTag struct {
	TaskID    uint `gorm:"primaryKey"`
	TagID     uint `gorm:"primaryKey;index"`
	Tag       Tag  `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

func (TaskTag) TableName() string {
	return "task_tags"
}

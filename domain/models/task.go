package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// IsValid reports whether s is one of the four known statuses.
// Any status may follow any other; there is no enforced workflow.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

// Rank orders priorities LOW < MEDIUM < HIGH < URGENT. Unknown values rank 0.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityLow:
		return 1
	case TaskPriorityMedium:
		return 2
	case TaskPriorityHigh:
		return 3
	case TaskPriorityUrgent:
		return 4
	}
	return 0
}

func (p TaskPriority) IsValid() bool {
	return p.Rank() > 0
}

type Task struct {
	ID          uint         `gorm:"primaryKey"`
	UserID      uint         `gorm:"not null;index"`
	User        User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string       `gorm:"size:200;not null"`
	Description *string      `gorm:"size:1000"`
	Status      TaskStatus   `gorm:"size:20;not null;default:'PENDING';index"`
	Priority    TaskPriority `gorm:"size:20;not null;default:'MEDIUM';index"`
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Tags []TaskTag `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

func (Task) TableName() string {
	return "tasks"
}

package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"size:255;uniqueIndex;not null"` // stored lower-cased
	Password  string    `gorm:"size:255;not null" json:"-"`
	Name      *string   `gorm:"size:50"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

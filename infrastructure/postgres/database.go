package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"task-tracker-api/domain/models"
	"task-tracker-api/pkg/config"
	"task-tracker-api/pkg/logger"
)

// GormConfig is shared by the server, dbtool and the sqlite test database so
// every dialect translates errors and timestamps the same way.
func GormConfig(logLevel string) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.NewGormLogger(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func NewDatabase(cfg config.DatabaseConfig, logLevel string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), GormConfig(logLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Task{},
		&models.TaskTag{},
	)
}

// Reset empties every table and restarts the id sequences. Postgres only.
func Reset(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE task_tags, tasks, tags, users RESTART IDENTITY CASCADE").Error
}

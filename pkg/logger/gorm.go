package logger

import (
	"log/slog"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// NewGormLogger routes GORM's SQL logging through the slog default logger.
// level follows the app log level: debug shows every statement, info and warn
// show slow queries and errors, error shows errors only.
func NewGormLogger(level string) gormlogger.Interface {
	gormLevel := gormlogger.Warn
	switch level {
	case "debug":
		gormLevel = gormlogger.Info
	case "error":
		gormLevel = gormlogger.Error
	case "silent":
		gormLevel = gormlogger.Silent
	}

	return gormlogger.New(
		slog.NewLogLogger(GetLogger().Handler(), slog.LevelInfo),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

package main

import (
	"flag"
	"fmt"
	"os"

	"task-tracker-api/infrastructure/postgres"
	"task-tracker-api/pkg/config"
	"task-tracker-api/pkg/logger"
)

func main() {
	force := flag.Bool("force", false, "Allow reset of a production database")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: dbtool [-force] <migrate|reset>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	logConfig := logger.DefaultConfig()
	logConfig.Level = cfg.Log.Level
	logConfig.Format = "text"
	logConfig.Output = "stdout"
	if err := logger.Init(logConfig); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to init logger:", err)
		os.Exit(1)
	}

	db, err := postgres.NewDatabase(cfg.Database, cfg.Log.Level)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	switch cmd := flag.Arg(0); cmd {
	case "migrate":
		if err := postgres.Migrate(db); err != nil {
			logger.Error("Migration failed", "error", err)
			os.Exit(1)
		}
		logger.Info("Database migrated")

	case "reset":
		if cfg.IsProduction() && !*force {
			logger.Error("Refusing to reset a production database without -force")
			os.Exit(1)
		}
		if err := postgres.Migrate(db); err != nil {
			logger.Error("Migration failed", "error", err)
			os.Exit(1)
		}
		if err := postgres.Reset(db); err != nil {
			logger.Error("Reset failed", "error", err)
			os.Exit(1)
		}
		logger.Info("Database reset")

	default:
		logger.Error("Unknown command", "command", cmd)
		flag.Usage()
		os.Exit(2)
	}
}

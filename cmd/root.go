package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "task-tracker",
	Short:         "Task tracking API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads .env and the config, then builds the logger and opens the
// migrated database shared by every command.
func bootstrap() (config.Config, *zap.Logger, *gorm.DB, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	log := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
		File:     cfg.LogFile,
	})
	if envErr != nil {
		log.Debug(".env file not found, using environment variables")
	}

	db, err := config.NewDatabaseClient(cfg.DatabaseDriver, cfg.DatabaseDSN, cfg.IsDevelopment())
	if err != nil {
		_ = log.Sync()
		return config.Config{}, nil, nil, err
	}
	if err := config.Migrate(db); err != nil {
		closeDatabase(db)
		_ = log.Sync()
		return config.Config{}, nil, nil, err
	}

	log.Info("database ready", zap.String("driver", cfg.DatabaseDriver))
	return cfg, log, db, nil
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

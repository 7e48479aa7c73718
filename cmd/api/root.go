package main

import (
	"fmt"

	"github.com/sefazor/snapvault-backend/internal/config"
	"github.com/sefazor/snapvault-backend/pkg/database"
	"github.com/sefazor/snapvault-backend/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "SnapVault studio backend",
	Long:  `SnapVault serves the studio portal API: events, collections, photos and platform settings.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	// Running the binary without a subcommand starts the server.
	RunE: runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

// bootstrap loads config, builds the logger and opens the database.
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := database.Open(cfg.DBDriver, cfg.DatabaseURL, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return cfg, log, db, nil
}

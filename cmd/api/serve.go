package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sefazor/snapvault-backend/internal/router"
	"github.com/sefazor/snapvault-backend/pkg/database"
	"github.com/sefazor/snapvault-backend/pkg/email"
	"github.com/sefazor/snapvault-backend/pkg/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveFlags struct {
	skipMigrations bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Start the HTTP API. Pending migrations are applied first unless --skip-migrations is set.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveFlags.skipMigrations, "skip-migrations", false, "Do not apply pending migrations on startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() {
		_ = database.Close(db)
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !serveFlags.skipMigrations {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	var store storage.StorageService
	if cfg.S3.Enabled() {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize object storage: %w", err)
		}
		store = s3Storage
	} else {
		log.Warn("S3_BUCKET is not set, photo uploads are disabled")
	}

	app := router.New(router.Deps{
		Config:  cfg,
		DB:      db,
		Logger:  log,
		Storage: store,
		Mailer:  email.NewSender(cfg.Email, log),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting API server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	return app.ShutdownWithTimeout(10 * time.Second)
}

package main

import (
	"fmt"

	"github.com/sefazor/snapvault-backend/pkg/database"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		m, log, closeDB, err := openMigrator()
		if err != nil {
			return err
		}
		defer closeDB()

		applied, err := m.Up(cmd.Context())
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		log.Info("migrations applied", zap.Int64s("versions", applied))
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		m, log, closeDB, err := openMigrator()
		if err != nil {
			return err
		}
		defer closeDB()

		version, err := m.Down(cmd.Context())
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		log.Info("migration rolled back", zap.Int64("version", version))
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which migrations are applied",
	RunE: func(cmd *cobra.Command, _ []string) error {
		m, _, closeDB, err := openMigrator()
		if err != nil {
			return err
		}
		defer closeDB()

		statuses, err := m.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("migrate status: %w", err)
		}
		out := cmd.OutOrStdout()
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Fprintf(out, "%05d  %s\n", s.Version, state)
		}
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}

func openMigrator() (*database.Migrator, *zap.Logger, func(), error) {
	_, log, db, err := bootstrap()
	if err != nil {
		return nil, nil, nil, err
	}
	closeDB := func() {
		_ = database.Close(db)
		_ = log.Sync()
	}

	m, err := database.NewMigrator(db)
	if err != nil {
		closeDB()
		return nil, nil, nil, err
	}
	return m, log, closeDB, nil
}

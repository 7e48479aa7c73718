// Package migrations holds the schema history. Each step is a goose Go
// migration that drives gorm's Migrator, so the same history runs on
// PostgreSQL and SQLite. Steps work on frozen snapshot structs, never on
// the live models.
package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

type migrateFunc func(tx *gorm.DB) error

// All returns every migration in version order, bound to db.
func All(db *gorm.DB) []*goose.Migration {
	return []*goose.Migration{
		step(db, 1, upInitialSchema, downInitialSchema),
		step(db, 2, upAddPhotoFileSize, downAddPhotoFileSize),
		step(db, 3, upAddPhotoCollection, downAddPhotoCollection),
		step(db, 4, upReshapeStudioSettings, downReshapeStudioSettings),
		step(db, 5, upAddOwnershipAndTimestamps, downAddOwnershipAndTimestamps),
		step(db, 6, upSuperAdminSingleton, downSuperAdminSingleton),
	}
}

func step(db *gorm.DB, version int64, up, down migrateFunc) *goose.Migration {
	return goose.NewGoMigration(version, run(db, up), run(db, down))
}

// run executes fn in a gorm transaction. goose's own transaction is
// disabled since gorm needs to own the connection.
func run(db *gorm.DB, fn migrateFunc) *goose.GoFunc {
	return &goose.GoFunc{
		Mode: goose.TransactionDisabled,
		RunDB: func(ctx context.Context, _ *sql.DB) error {
			return db.WithContext(ctx).Transaction(fn)
		},
	}
}

func dropColumns(m gorm.Migrator, value interface{}, columns ...string) error {
	for _, col := range columns {
		if err := m.DropColumn(value, col); err != nil {
			return err
		}
	}
	return nil
}

func addColumns(m gorm.Migrator, value interface{}, fields ...string) error {
	for _, f := range fields {
		if err := m.AddColumn(value, f); err != nil {
			return err
		}
	}
	return nil
}

// dropIndexIfExists tolerates indexes SQLite already lost while rebuilding a
// table for DropColumn.
func dropIndexIfExists(m gorm.Migrator, value interface{}, name string) error {
	if !m.HasIndex(value, name) {
		return nil
	}
	return m.DropIndex(value, name)
}

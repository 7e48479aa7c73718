// Package testutil provides a migrated throwaway database for tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sefazor/snapvault-backend/pkg/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns an on-disk SQLite database with every migration applied.
// It is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "snapvault.db") + "?_pragma=busy_timeout(5000)"
	db, err := database.Open(database.DriverSQLite, dsn, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

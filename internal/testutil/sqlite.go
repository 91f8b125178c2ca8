// Package testutil opens throwaway databases for integration tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shared-ledger/internal/config"
	"shared-ledger/internal/db"
	"shared-ledger/pkg/logger"
)

// OpenSQLite returns a migrated SQLite database in a temp dir, closed when the
// test ends.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.DBConfig{SQLitePath: filepath.Join(t.TempDir(), "ledger.db")}
	conn, err := db.Open(cfg, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(conn)
	})

	require.NoError(t, db.Migrate(conn))
	return conn
}

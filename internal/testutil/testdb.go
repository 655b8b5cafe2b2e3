package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/effortlog/internal/db"
)

// NewTestDB opens a migrated in-memory store that is closed at test cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openStore(t, ":memory:")
}

// NewFileTestDB opens a migrated store under t.TempDir and returns it with
// its path, for tests that reopen the same file.
func NewFileTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "effortlog.db")
	return openStore(t, path), path
}

// NewTestUoW wraps database in the transaction runner the services use.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

func openStore(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	require.NoError(t, err, "opening store at %s", path)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

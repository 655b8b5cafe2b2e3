package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/effortlog/internal/db"
	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is needed to exercise WAL readers next to a writer.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// A report can be generated while an append import is writing.
func TestConcurrentAccess_ListDuringImport(t *testing.T) {
	database := newConcurrentTestDB(t)
	repo := NewSQLiteSessionRecordRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.CreateBatch(ctx, testutil.NewTestRecords(10)))

	var wg sync.WaitGroup
	errs := make(chan error, 40)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			rec := testutil.NewTestRecord(testutil.WithIndex(100 + i))
			if err := repo.CreateBatch(ctx, []domain.SessionRecord{rec}); err != nil {
				errs <- err
			}
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 5; i++ {
				list, err := repo.List(ctx)
				if err != nil {
					errs <- err
					continue
				}
				if len(list) < 10 {
					errs <- assert.AnError
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent access error: %v", err)
	}

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, n)
}

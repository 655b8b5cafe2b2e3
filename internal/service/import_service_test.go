package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/effortlog/internal/importer"
	"github.com/alexanderramin/effortlog/internal/repository"
	"github.com/alexanderramin/effortlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importCSV = `Date,StartTime,EndTime,Effort,Tag,Descriptor,IsSoftwareProject,IsReleaseDay
2024-03-01,20:00,00:00,4h 00m,#dev,NW.Foo v1.0.0,yes,no
2024-03-02,,,1h 30m,#study,reading,no,no
2024-03-03,09:00,10:00,1h 00m,#ops,NW.Bar v0.1.0,yes,yes
`

func writeImportFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func sessionRows(n int) []importer.SessionRow {
	rows := make([]importer.SessionRow, n)
	for i := range rows {
		rows[i] = importer.SessionRow{Line: i + 2, Date: "2024-01-02", Effort: "1h 00m", Tag: "#t"}
	}
	return rows
}

func TestImportFile_ReplacesStore(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewImportService(r.records, r.uow, obs)

	require.NoError(t, r.records.CreateBatch(ctx, testutil.NewTestRecords(2)))

	result, err := svc.ImportFile(ctx, writeImportFile(t, "log.csv", importCSV), ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.RecordCount)
	assert.Equal(t, 2, result.ReplacedCount)
	assert.Equal(t, 0, result.FirstIndex)

	list, err := r.records.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "NW.Foo v1.0.0", list[0].Descriptor)
	assert.True(t, list[2].IsReleaseDay)

	ev := obs.last()
	assert.Equal(t, "import-session-log", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 3, ev.Fields["record_count"])
}

func TestImportRows_Append(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewImportService(r.records, r.uow)

	_, err := svc.ImportRows(ctx, sessionRows(2), ImportOptions{})
	require.NoError(t, err)
	result, err := svc.ImportRows(ctx, sessionRows(3), ImportOptions{Append: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.FirstIndex)

	list, err := r.records.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i, rec := range list {
		assert.Equal(t, i, rec.Index)
	}
}

func TestImportRows_ValidationFailsWithAllErrors(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewImportService(r.records, r.uow, obs)

	rows := sessionRows(3)
	rows[0].Effort = "1.5h"
	rows[2].Date = "yesterday"

	_, err := svc.ImportRows(ctx, rows, ImportOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors")
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "line 4")

	n, err := r.records.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, obs.last().Success)
}

func TestImportRows_RollbackKeepsPreviousRecords(t *testing.T) {
	database := testutil.NewTestDB(t)
	records := repository.NewSQLiteSessionRecordRepo(database)
	ctx := context.Background()
	require.NoError(t, records.CreateBatch(ctx, testutil.NewTestRecords(2)))

	// Exec calls: #1 = delete all, #2..#4 = inserts. Fail on the second insert.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 3,
		Err:    fmt.Errorf("injected insert failure"),
	}
	svc := NewImportService(records, failUoW)

	_, err := svc.ImportRows(ctx, sessionRows(3), ImportOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected insert failure")

	n, err := records.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "replace-all import rolled back")
}

func TestImportFile_Missing(t *testing.T) {
	r := setupRepos(t)
	svc := NewImportService(r.records, r.uow)

	_, err := svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "none.csv"), ImportOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRunRepo_CreateAndListRecent(t *testing.T) {
	repo := NewSQLiteReportRunRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		run := &domain.ReportRun{
			ID:             uuid.New().String(),
			GeneratedAt:    base,
			Years:          []int{2023, 2024},
			RecordCount:    10 + i,
			TotalEffort:    time.Duration(i+1) * time.Hour,
			WarningCount:   i,
			IncorrectCount: 2 * i,
			CreatedAt:      base.Add(time.Duration(i) * time.Millisecond),
		}
		require.NoError(t, repo.Create(ctx, run))
	}

	runs, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 12, runs[0].RecordCount, "newest first")
	assert.Equal(t, 11, runs[1].RecordCount)
	assert.Equal(t, []int{2023, 2024}, runs[0].Years)
	assert.Equal(t, 3*time.Hour, runs[0].TotalEffort)
	assert.Equal(t, 4, runs[0].IncorrectCount)
	assert.True(t, base.Equal(runs[0].GeneratedAt))
}

func TestReportRunRepo_NoYears(t *testing.T) {
	repo := NewSQLiteReportRunRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.ReportRun{ID: "r1", GeneratedAt: time.Now(), CreatedAt: time.Now()}))

	runs, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Nil(t, runs[0].Years)
}

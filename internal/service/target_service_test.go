package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/repository"
	"github.com/alexanderramin/effortlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetService_StoredOverridesConfigured(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	configured := domain.NewTargetTable([]domain.YearlyTarget{
		testutil.NewTestTarget(2023, 200),
		testutil.NewTestTarget(2024, 250),
	})
	svc := NewTargetService(r.targets, configured)

	require.NoError(t, svc.Set(ctx, 2024, 300*time.Hour))
	require.NoError(t, svc.Set(ctx, 2025, 100*time.Hour))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.YearlyTarget{
		testutil.NewTestTarget(2023, 200),
		testutil.NewTestTarget(2024, 300),
		testutil.NewTestTarget(2025, 100),
	}, list)
}

func TestTargetService_SetRejectsBadInput(t *testing.T) {
	r := setupRepos(t)
	svc := NewTargetService(r.targets, nil)

	assert.Error(t, svc.Set(context.Background(), 0, time.Hour))
	assert.Error(t, svc.Set(context.Background(), 2024, -time.Hour))
}

func TestTargetService_Remove(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewTargetService(r.targets, nil)

	require.NoError(t, svc.Set(ctx, 2024, time.Hour))
	require.NoError(t, svc.Remove(ctx, 2024))

	err := svc.Remove(ctx, 2024)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

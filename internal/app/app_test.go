package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordspark/echo/internal/app"
	"github.com/wordspark/echo/internal/config"
	"github.com/wordspark/echo/internal/models"
)

func testConfig(t *testing.T) config.Config {
	dir := t.TempDir()
	return config.Config{
		Addr:              ":0",
		DBPath:            filepath.Join(dir, "echo.db"),
		SeedDBPath:        filepath.Join(dir, "missing-seed.db"),
		LogLevel:          "ERROR",
		UserID:            1,
		DefaultDailyGoal:  5,
		Timezone:          "UTC",
		WeekStart:         "monday",
		ImportWorkerCount: 1,
		ImportQueueSize:   2,
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.DefaultDailyGoal = 0

	_, err := app.New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestBootstrap_EmptyStore(t *testing.T) {
	ctx := context.Background()
	a, err := app.New(ctx, testConfig(t))
	require.NoError(t, err)
	defer func() { assert.NoError(t, a.Close()) }()

	require.NoError(t, a.Bootstrap(ctx))

	user, err := a.Users.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	plan, err := a.Plans.Today(ctx)
	require.NoError(t, err)
	assert.Empty(t, plan.NewWords)
	assert.Equal(t, 5, plan.DailyGoal)
}

func TestImportThroughPool(t *testing.T) {
	ctx := context.Background()
	a, err := app.New(ctx, testConfig(t))
	require.NoError(t, err)
	defer func() { assert.NoError(t, a.Close()) }()
	require.NoError(t, a.Bootstrap(ctx))
	a.ImportPool.Start(ctx)

	result, err := a.Imports.Import(ctx, []models.Word{{ID: 1, Text: "alpha"}, {ID: 2, Text: "beta"}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Queued, "first import creates the plan")

	require.NoError(t, a.Jobs.EnqueueImport([]models.Word{{ID: 3, Text: "gamma"}}))
	a.ImportPool.Stop()

	plan, err := a.Plans.Today(ctx)
	require.NoError(t, err)
	assert.Len(t, plan.NewWords, 3, "queued import ran before the pool stopped")
}

func TestImportIntoEmptyStoreReachesPlan(t *testing.T) {
	ctx := context.Background()
	a, err := app.New(ctx, testConfig(t))
	require.NoError(t, err)
	defer func() { assert.NoError(t, a.Close()) }()
	require.NoError(t, a.Bootstrap(ctx))
	a.ImportPool.Start(ctx)

	require.NoError(t, a.Jobs.EnqueueImport([]models.Word{{ID: 1, Text: "alpha"}, {ID: 2, Text: "beta"}}))
	a.ImportPool.Stop()

	plan, err := a.Plans.Today(ctx)
	require.NoError(t, err)
	assert.Len(t, plan.NewWords, 2)
	assert.Equal(t, 5, plan.DailyGoal)
}

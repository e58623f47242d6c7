package trackers_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	"github.com/KirkDiggler/pathtracker/internal/errors"
	"github.com/KirkDiggler/pathtracker/internal/repositories/trackers"
	"github.com/KirkDiggler/pathtracker/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_RoundTrip(t *testing.T) {
	repo := trackers.NewInMemoryRepository()
	ctx := context.Background()
	state := testutils.CreateTestState()

	require.NoError(t, repo.Save(ctx, "encounter", state))

	loaded, err := repo.Load(ctx, "encounter")
	require.NoError(t, err)
	requireSameState(t, state, loaded)

	assert.Equal(t, []string{"encounter"}, repo.Keys())
}

func TestInMemoryRepository_LoadedStateIsIndependent(t *testing.T) {
	repo := trackers.NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "encounter", testutils.CreateTestState()))

	first, err := repo.Load(ctx, "encounter")
	require.NoError(t, err)
	first.Characters[0].Name = "Changed"

	second, err := repo.Load(ctx, "encounter")
	require.NoError(t, err)
	assert.Equal(t, "Lucifer", second.Characters[0].Name)
}

func TestInMemoryRepository_Errors(t *testing.T) {
	repo := trackers.NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Load(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))

	err = repo.Save(ctx, " ", tracker.NewState(tracker.DefaultSettings()))
	assert.True(t, errors.IsInvalidArgument(err))

	err = repo.Save(ctx, "encounter", nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNoopRepository(t *testing.T) {
	repo := trackers.NewNoopRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "encounter", testutils.CreateTestState()))

	_, err := repo.Load(ctx, "encounter")
	assert.True(t, errors.IsNotFound(err))
}

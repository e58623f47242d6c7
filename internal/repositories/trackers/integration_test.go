//go:build integration
// +build integration

package trackers_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/pathtracker/internal/errors"
	"github.com/KirkDiggler/pathtracker/internal/repositories/trackers"
	"github.com/KirkDiggler/pathtracker/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := trackers.NewRedis(client)
	ctx := context.Background()

	t.Run("save and load", func(t *testing.T) {
		state := testutils.CreateTestState()
		require.NoError(t, repo.Save(ctx, "encounter", state))

		loaded, err := repo.Load(ctx, "encounter")
		require.NoError(t, err)
		requireSameState(t, state, loaded)

		raw, err := client.Get(ctx, "tracker:encounter").Result()
		require.NoError(t, err)
		assert.Contains(t, raw, `"Lucifer"`)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := repo.Load(ctx, "nope")
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestPostgresRepository_Integration(t *testing.T) {
	dsn := testutils.StartPostgresContainer(t)

	repo, err := trackers.OpenPostgres(dsn)
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	state := testutils.CreateTestState()

	t.Run("save and load", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "encounter", state))

		loaded, err := repo.Load(ctx, "encounter")
		require.NoError(t, err)
		requireSameState(t, state, loaded)
	})

	t.Run("save twice upserts", func(t *testing.T) {
		state.Characters = state.Characters[:2]
		require.NoError(t, repo.Save(ctx, "encounter", state))

		loaded, err := repo.Load(ctx, "encounter")
		require.NoError(t, err)
		assert.Len(t, loaded.Characters, 2)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := repo.Load(ctx, "nope")
		assert.True(t, errors.IsNotFound(err))
	})
}

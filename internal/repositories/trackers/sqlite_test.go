package trackers_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/pathtracker/internal/errors"
	"github.com/KirkDiggler/pathtracker/internal/repositories/trackers"
	"github.com/KirkDiggler/pathtracker/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *trackers.SQLiteRepository {
	t.Helper()
	repo, err := trackers.OpenSQLite(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	repo := openSQLite(t)
	ctx := context.Background()
	state := testutils.CreateTestState()

	before := time.Now().Add(-time.Second)
	require.NoError(t, repo.Save(ctx, "encounter", state))

	loaded, err := repo.Load(ctx, "encounter")
	require.NoError(t, err)
	requireSameState(t, state, loaded)

	updated, err := repo.UpdatedAt(ctx, "encounter")
	require.NoError(t, err)
	assert.True(t, updated.After(before))
}

func TestSQLiteRepository_Upsert(t *testing.T) {
	repo := openSQLite(t)
	ctx := context.Background()
	state := testutils.CreateTestState()

	require.NoError(t, repo.Save(ctx, "encounter", state))
	state.Characters = append(state.Characters, testutils.CreateTestCharacter("Zelda", 5, true))
	require.NoError(t, repo.Save(ctx, "encounter", state))

	loaded, err := repo.Load(ctx, "encounter")
	require.NoError(t, err)
	assert.Len(t, loaded.Characters, 4)
}

func TestSQLiteRepository_InMemory(t *testing.T) {
	repo, err := trackers.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, "a", testutils.CreateTestState()))
	_, err = repo.Load(ctx, "a")
	require.NoError(t, err)
}

func TestSQLiteRepository_Errors(t *testing.T) {
	repo := openSQLite(t)
	ctx := context.Background()

	_, err := repo.Load(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.UpdatedAt(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))

	_, err = trackers.OpenSQLite("  ")
	assert.Error(t, err)
}

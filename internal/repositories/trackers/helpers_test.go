package trackers_test

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	"github.com/stretchr/testify/require"
)

// requireSameState compares the serialized form, which is what the
// repositories promise to preserve
func requireSameState(t *testing.T, want, got *tracker.State) {
	t.Helper()
	require.NotNil(t, got)

	wantJSON, err := json.Marshal(want)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(got)
	require.NoError(t, err)

	require.JSONEq(t, string(wantJSON), string(gotJSON))
}

package trackers

//go:generate mockgen -destination=mock/mock_repository.go -package=mocktrackers -source=repository.go

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	"github.com/KirkDiggler/pathtracker/internal/errors"
	"github.com/KirkDiggler/pathtracker/internal/repositories"
)

// Repository saves and loads whole tracker documents by key
type Repository interface {
	// Save stores state under key, replacing anything already there
	Save(ctx context.Context, key string, state *tracker.State) error

	// Load returns the state stored under key. A missing key is a not found error.
	Load(ctx context.Context, key string) (*tracker.State, error)
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.InvalidArgument("save key is required")
	}
	return nil
}

func encode(state *tracker.State) ([]byte, error) {
	if state == nil {
		return nil, errors.InvalidArgument("tracker state cannot be nil")
	}
	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize tracker state")
	}
	return data, nil
}

// decode parses a stored document and checks it is usable. Fields the
// document omits keep the values of a fresh tracker.
func decode(key string, data []byte) (*tracker.State, error) {
	state := tracker.NewState(tracker.DefaultSettings())
	if err := json.Unmarshal(data, state); err != nil {
		return nil, repositories.NewCorruptRecordError(key, err)
	}
	state.Normalize()
	if err := state.Validate(); err != nil {
		return nil, repositories.NewCorruptRecordError(key, err)
	}
	return state, nil
}

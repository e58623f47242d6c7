package trackers

import (
	"context"
	"sync"

	"github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	"github.com/KirkDiggler/pathtracker/internal/repositories"
)

// InMemoryRepository keeps serialized documents in a map. Storing the
// encoded bytes means callers never share state with the repository.
type InMemoryRepository struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		docs: make(map[string][]byte),
	}
}

// Save stores state under key
func (r *InMemoryRepository) Save(ctx context.Context, key string, state *tracker.State) error {
	if err := validateKey(key); err != nil {
		return err
	}
	data, err := encode(state)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[key] = data
	return nil
}

// Load returns the state stored under key
func (r *InMemoryRepository) Load(ctx context.Context, key string) (*tracker.State, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	r.mu.RLock()
	data, exists := r.docs[key]
	r.mu.RUnlock()

	if !exists {
		return nil, repositories.NewRecordNotFoundError(key)
	}
	return decode(key, data)
}

// Keys lists the stored keys
func (r *InMemoryRepository) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.docs))
	for k := range r.docs {
		keys = append(keys, k)
	}
	return keys
}

// NoopRepository discards saves and never has anything to load. Use it
// for trackers that should not persist.
type NoopRepository struct{}

// NewNoopRepository creates a repository that stores nothing
func NewNoopRepository() *NoopRepository {
	return &NoopRepository{}
}

// Save does nothing
func (NoopRepository) Save(ctx context.Context, key string, state *tracker.State) error {
	return nil
}

// Load always reports the key as missing
func (NoopRepository) Load(ctx context.Context, key string) (*tracker.State, error) {
	return nil, repositories.NewRecordNotFoundError(key)
}

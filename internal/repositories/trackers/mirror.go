package trackers

import (
	"context"
	"log"

	"github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	"github.com/KirkDiggler/pathtracker/internal/errors"
	"golang.org/x/sync/errgroup"
)

// MirrorRepository writes every save to a primary and any number of
// mirrors concurrently. Loads come from the primary only.
type MirrorRepository struct {
	primary Repository
	mirrors []Repository
}

// NewMirrorRepository fans saves out to primary and mirrors
func NewMirrorRepository(primary Repository, mirrors ...Repository) *MirrorRepository {
	if primary == nil {
		panic("primary repository is required")
	}
	return &MirrorRepository{primary: primary, mirrors: mirrors}
}

// Save writes to every backend and returns the first failure. The state
// is only read, so sharing it across goroutines is safe.
func (r *MirrorRepository) Save(ctx context.Context, key string, state *tracker.State) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.primary.Save(gctx, key, state)
	})
	for i, mirror := range r.mirrors {
		g.Go(func() error {
			if err := mirror.Save(gctx, key, state); err != nil {
				log.Printf("[STORAGE] Mirror %d failed to save %s: %v", i, key, err)
				return errors.Wrapf(err, "mirror %d", i)
			}
			return nil
		})
	}

	return g.Wait()
}

// Load reads from the primary
func (r *MirrorRepository) Load(ctx context.Context, key string) (*tracker.State, error) {
	return r.primary.Load(ctx, key)
}

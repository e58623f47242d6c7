package tracker

import (
	"context"
	"log"

	trackerstate "github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	"github.com/KirkDiggler/pathtracker/internal/errors"
	"github.com/KirkDiggler/pathtracker/internal/events"
)

// txn is the working set of one mutating operation
type txn struct {
	state     *trackerstate.State
	events    []events.Event
	unchanged bool
}

func (t *txn) emit(e events.Event) {
	t.events = append(t.events, e)
}

// mutate runs fn as an undoable transaction. The pre-change snapshot is
// pushed onto the undo stack and the redo stack is cleared once fn
// succeeds; on failure the state is restored and nothing is saved. A
// committed change whose save fails stays committed and the error carries
// CodePersistence.
func (s *service) mutate(ctx context.Context, operation string, fn func(tx *txn) error) error {
	s.mu.Lock()

	snap := s.state.Snapshot(s.ids.New(), operation)
	tx := &txn{state: s.state}

	if err := fn(tx); err != nil {
		s.state.Restore(snap)
		s.mu.Unlock()
		return err
	}
	if tx.unchanged {
		s.mu.Unlock()
		return nil
	}

	s.state.Undo.Push(snap)
	s.state.Redo.Clear()

	err := s.saveLocked(ctx)
	s.mu.Unlock()

	s.publish(tx.events)
	return err
}

// update applies a change that is saved but not recorded in history
func (s *service) update(ctx context.Context, fn func(state *trackerstate.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.state); err != nil {
		return err
	}
	return s.saveLocked(ctx)
}

func (s *service) saveLocked(ctx context.Context) error {
	if err := s.repository.Save(ctx, s.saveKey, s.state); err != nil {
		log.Printf("[TRACKER] Failed to save %s: %v", s.saveKey, err)
		return errors.Persistence(err, "failed to save tracker "+s.saveKey)
	}
	return nil
}

// Save writes the current state without changing it
func (s *service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

// publish delivers events outside the lock so listeners may call back
// into the tracker
func (s *service) publish(evts []events.Event) {
	if s.bus == nil {
		return
	}
	for _, e := range evts {
		if err := s.bus.Emit(e); err != nil {
			log.Printf("[TRACKER] Event %s for %s failed: %v", e.GetType(), e.GetCharacter(), err)
		}
	}
}

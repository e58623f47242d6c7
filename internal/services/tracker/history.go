package tracker

import (
	"context"
	"log"

	"github.com/KirkDiggler/pathtracker/internal/domain/character"
	trackerstate "github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	"github.com/KirkDiggler/pathtracker/internal/errors"
	"github.com/KirkDiggler/pathtracker/internal/events"
)

// Undo restores the state from before the most recent change. The current
// state moves onto the redo stack.
func (s *service) Undo(ctx context.Context) error {
	return s.travel(ctx, s.undoStack, s.redoStack, events.EventTypeUndone)
}

// Redo reapplies the most recently undone change. The current state moves
// back onto the undo stack.
func (s *service) Redo(ctx context.Context) error {
	return s.travel(ctx, s.redoStack, s.undoStack, events.EventTypeRedone)
}

func (s *service) undoStack() *trackerstate.History { return s.state.Undo }
func (s *service) redoStack() *trackerstate.History { return s.state.Redo }

func (s *service) travel(ctx context.Context, from, to func() *trackerstate.History, eventType events.EventType) error {
	s.mu.Lock()

	snap, ok := from().Pop()
	if !ok {
		s.mu.Unlock()
		if eventType == events.EventTypeUndone {
			return errors.NothingToUndo()
		}
		return errors.NothingToRedo()
	}

	to().Push(s.state.Snapshot(snap.ID, snap.Operation))
	s.state.Restore(snap)

	// The snapshot was ordered under the tie break in force when it was taken
	actor := acting(s.state)
	character.Sort(s.state.Characters, s.state.Settings.TieBreak)
	follow(s.state, actor)
	log.Printf("[TRACKER] %s %s", eventType, snap.Operation)

	err := s.saveLocked(ctx)
	s.mu.Unlock()

	s.publish([]events.Event{&events.HistoryEvent{
		BaseEvent: events.BaseEvent{Type: eventType},
		Operation: snap.Operation,
	}})
	return err
}

// UndoHistory lists undo entries, newest first
func (s *service) UndoHistory() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return historyEntries(s.state.Undo)
}

// RedoHistory lists redo entries, newest first
func (s *service) RedoHistory() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return historyEntries(s.state.Redo)
}

func historyEntries(h *trackerstate.History) []HistoryEntry {
	snaps := h.Entries()
	entries := make([]HistoryEntry, 0, len(snaps))
	for _, snap := range snaps {
		entries = append(entries, HistoryEntry{ID: snap.ID, Operation: snap.Operation})
	}
	return entries
}

// Characters returns a copy of the roster in turn order
func (s *service) Characters() []*character.Character {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster := make([]*character.Character, len(s.state.Characters))
	for i, c := range s.state.Characters {
		roster[i] = c.Clone()
	}
	return roster
}

// Character returns a copy of one roster entry
func (s *service) Character(name string) (*character.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.state.Characters, name)
	if idx < 0 {
		return nil, errors.UnknownCharacter(name)
	}
	return s.state.Characters[idx].Clone(), nil
}

// InTurn returns a copy of the acting character, or nil when no one is acting
func (s *service) InTurn() *character.Character {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.InTurn == nil {
		return nil
	}
	return s.state.Characters[*s.state.InTurn].Clone()
}

// Settings returns the current settings
func (s *service) Settings() trackerstate.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

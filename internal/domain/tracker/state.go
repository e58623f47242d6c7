// Package tracker holds the serializable state of an initiative tracker:
// the roster, the acting index, conditions, settings and the undo/redo
// histories. Behaviour lives in services/tracker.
package tracker

import (
	"github.com/KirkDiggler/pathtracker/internal/domain/character"
	"github.com/KirkDiggler/pathtracker/internal/domain/conditions"
	"github.com/KirkDiggler/pathtracker/internal/errors"
)

// SchemaVersion is written into every saved document
const SchemaVersion = 1

// DefaultUndoSize bounds each history stack unless configured otherwise
const DefaultUndoSize = 128

// Settings are user preferences that persist with the tracker but are not
// part of undo history
type Settings struct {
	UndoSize int                `json:"undo_size"`
	TieBreak character.TieBreak `json:"tie_break"`
}

// DefaultSettings returns the settings of a fresh tracker
func DefaultSettings() Settings {
	return Settings{
		UndoSize: DefaultUndoSize,
		TieBreak: character.DefaultTieBreak,
	}
}

// Validate checks the settings values
func (s Settings) Validate() error {
	if s.UndoSize < 0 {
		return errors.InvalidArgumentf("undo size must not be negative, got %d", s.UndoSize)
	}
	if !s.TieBreak.IsValid() {
		return errors.InvalidArgumentf("unknown tie break %q", s.TieBreak)
	}
	return nil
}

// State is the full persisted document
type State struct {
	Version    int                    `json:"version"`
	Characters []*character.Character `json:"characters"`
	InTurn     *int                   `json:"in_turn"`
	Conditions *conditions.Manager    `json:"conditions"`
	Undo       *History               `json:"undo"`
	Redo       *History               `json:"redo"`
	Settings   Settings               `json:"settings"`
}

// NewState returns an empty tracker state
func NewState(settings Settings) *State {
	return &State{
		Version:    SchemaVersion,
		Characters: []*character.Character{},
		Conditions: conditions.NewManager(),
		Undo:       NewHistory(settings.UndoSize),
		Redo:       NewHistory(settings.UndoSize),
		Settings:   settings,
	}
}

// Normalize fills in anything an older or hand-edited document may lack
// and applies the configured history bound
func (s *State) Normalize() {
	if s.Version == 0 {
		s.Version = SchemaVersion
	}
	if s.Settings.TieBreak == "" {
		s.Settings.TieBreak = character.DefaultTieBreak
	}
	if s.Characters == nil {
		s.Characters = []*character.Character{}
	}
	if s.Conditions == nil {
		s.Conditions = conditions.NewManager()
	}
	if s.Undo == nil {
		s.Undo = NewHistory(s.Settings.UndoSize)
	}
	if s.Redo == nil {
		s.Redo = NewHistory(s.Settings.UndoSize)
	}
	s.Undo.Resize(s.Settings.UndoSize)
	s.Redo.Resize(s.Settings.UndoSize)

	for _, h := range []*History{s.Undo, s.Redo} {
		for _, snap := range h.entries {
			if snap == nil {
				continue
			}
			if snap.Characters == nil {
				snap.Characters = []*character.Character{}
			}
			if snap.Conditions == nil {
				snap.Conditions = conditions.NewManager()
			}
		}
	}
}

// Validate checks the invariants a loaded document must hold
func (s *State) Validate() error {
	if s.Version > SchemaVersion {
		return errors.InvalidArgumentf("unsupported tracker schema version %d", s.Version)
	}
	if err := s.Settings.Validate(); err != nil {
		return err
	}
	if err := validateRoster(s.Characters, s.InTurn); err != nil {
		return err
	}
	for _, h := range []*History{s.Undo, s.Redo} {
		if h == nil {
			continue
		}
		for _, snap := range h.entries {
			if snap == nil {
				return errors.InvalidArgument("history contains an empty entry")
			}
			if err := validateRoster(snap.Characters, snap.InTurn); err != nil {
				return errors.Wrapf(err, "history entry %s", snap.ID)
			}
		}
	}
	return nil
}

// Snapshot captures the undoable part of the state
func (s *State) Snapshot(id, operation string) *Snapshot {
	return &Snapshot{
		ID:         id,
		Operation:  operation,
		Characters: cloneRoster(s.Characters),
		InTurn:     cloneIndex(s.InTurn),
		Conditions: s.Conditions.Clone(),
	}
}

// Restore replaces the undoable part of the state with snap
func (s *State) Restore(snap *Snapshot) {
	s.Characters = cloneRoster(snap.Characters)
	s.InTurn = cloneIndex(snap.InTurn)
	s.Conditions = snap.Conditions.Clone()
}

// Snapshot is one history entry
type Snapshot struct {
	ID         string                 `json:"id"`
	Operation  string                 `json:"operation"`
	Characters []*character.Character `json:"characters"`
	InTurn     *int                   `json:"in_turn"`
	Conditions *conditions.Manager    `json:"conditions"`
}

func validateRoster(roster []*character.Character, inTurn *int) error {
	seen := make(map[string]struct{}, len(roster))
	for _, c := range roster {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, ok := seen[c.Name]; ok {
			return errors.DuplicateName(c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	if inTurn != nil && (*inTurn < 0 || *inTurn >= len(roster)) {
		return errors.InvalidArgumentf("turn index %d is outside a roster of %d", *inTurn, len(roster))
	}
	return nil
}

func cloneRoster(roster []*character.Character) []*character.Character {
	clone := make([]*character.Character, len(roster))
	for i, c := range roster {
		clone[i] = c.Clone()
	}
	return clone
}

func cloneIndex(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

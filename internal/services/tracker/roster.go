package tracker

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/pathtracker/internal/domain/character"
	trackerstate "github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	"github.com/KirkDiggler/pathtracker/internal/errors"
	"github.com/KirkDiggler/pathtracker/internal/events"
)

// AddCharacter inserts c and re-sorts. Whoever was acting keeps acting.
func (s *service) AddCharacter(ctx context.Context, c *character.Character) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return s.mutate(ctx, OpAddCharacter, func(tx *txn) error {
		st := tx.state
		if indexOf(st.Characters, c.Name) >= 0 {
			return errors.DuplicateName(c.Name)
		}

		actor := acting(st)
		st.Characters = append(st.Characters, c.Clone())
		character.Sort(st.Characters, st.Settings.TieBreak)
		follow(st, actor)

		log.Printf("[TRACKER] Added %s", c)
		tx.emit(&events.CharacterAddedEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeCharacterAdded, Character: c.Name},
		})
		return nil
	})
}

// RemoveCharacter drops name and its conditions. Removing the acting
// character hands the turn to whoever takes its place in the order,
// wrapping to the top of the round; that character's turn starts.
func (s *service) RemoveCharacter(ctx context.Context, name string) error {
	return s.mutate(ctx, OpRemoveCharacter, func(tx *txn) error {
		st := tx.state
		idx := indexOf(st.Characters, name)
		if idx < 0 {
			return errors.UnknownCharacter(name)
		}

		st.Characters = append(st.Characters[:idx], st.Characters[idx+1:]...)
		st.Conditions.RemoveCharacter(name)
		log.Printf("[TRACKER] Removed %s", name)
		tx.emit(&events.CharacterRemovedEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeCharacterRemoved, Character: name},
		})

		if len(st.Characters) == 0 {
			st.InTurn = nil
			return nil
		}
		if st.InTurn == nil {
			return nil
		}

		i := *st.InTurn
		switch {
		case idx < i:
			i--
			st.InTurn = &i
		case idx == i:
			if i >= len(st.Characters) {
				i = 0
			}
			st.InTurn = &i
			s.startTurn(tx, i)
		}
		return nil
	})
}

// EndTurn ends the acting character's turn, applying persistent damage,
// and starts the next character's turn
func (s *service) EndTurn(ctx context.Context) (*character.Character, error) {
	var next *character.Character

	err := s.mutate(ctx, OpEndTurn, func(tx *txn) error {
		st := tx.state
		if len(st.Characters) == 0 {
			tx.unchanged = true
			return nil
		}

		i := 0
		if st.InTurn != nil {
			s.endTurn(tx, *st.InTurn)
			i = (*st.InTurn + 1) % len(st.Characters)
		}
		st.InTurn = &i
		s.startTurn(tx, i)

		next = st.Characters[i].Clone()
		return nil
	})
	if err != nil && next == nil {
		return nil, err
	}
	return next, err
}

func (s *service) endTurn(tx *txn, i int) {
	c := tx.state.Characters[i]

	damage := tx.state.Conditions.EndOfTurn(c.Name)
	if damage > 0 {
		lost := 0
		if c.Health != nil {
			lost = c.Health.Damage(damage)
		}
		log.Printf("[TRACKER] %s takes %d persistent damage", c.Name, damage)
		tx.emit(&events.PersistentDamageEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypePersistentDamage, Character: c.Name},
			Amount:    damage,
			Lost:      lost,
		})
	}

	tx.emit(&events.TurnEndedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeTurnEnded, Character: c.Name},
	})
}

func (s *service) startTurn(tx *txn, i int) {
	c := tx.state.Characters[i]
	tx.state.Conditions.StartOfTurn(c.Name)

	log.Printf("[TRACKER] %s's turn", c.Name)
	tx.emit(&events.TurnStartedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeTurnStarted, Character: c.Name},
		Index:     i,
	})
}

// ChangeInitiative gives name a new initiative and repairs the turn
func (s *service) ChangeInitiative(ctx context.Context, name string, initiative int) (*trackerstate.MovedStatus, error) {
	var status *trackerstate.MovedStatus
	err := s.mutate(ctx, OpChangeInitiative, func(tx *txn) error {
		var err error
		status, err = reorder(tx, name, func(c *character.Character) {
			c.Initiative = initiative
		})
		return err
	})
	return status, err
}

// SetPlayer moves name to the given side and repairs the turn
func (s *service) SetPlayer(ctx context.Context, name string, player bool) (*trackerstate.MovedStatus, error) {
	var status *trackerstate.MovedStatus
	err := s.mutate(ctx, OpSetPlayer, func(tx *txn) error {
		var err error
		status, err = reorder(tx, name, func(c *character.Character) {
			c.Player = player
		})
		return err
	})
	return status, err
}

// reorder applies change to name, re-sorts and repairs the turn index.
//
// When someone other than the acting character moves, the acting character
// keeps acting. Jumping from after the actor to before it means the mover
// misses this round (Skipped); jumping from before to after means it acts
// again this round (TwoTurns).
//
// When the acting character itself moves, the index stays put and whoever
// now occupies it acts. Moving later means the mover will act a second
// time; moving earlier puts someone who already acted back in turn.
func reorder(tx *txn, name string, change func(c *character.Character)) (*trackerstate.MovedStatus, error) {
	st := tx.state
	oldPos := indexOf(st.Characters, name)
	if oldPos < 0 {
		return nil, errors.UnknownCharacter(name)
	}

	actor := acting(st)
	change(st.Characters[oldPos])
	character.Sort(st.Characters, st.Settings.TieBreak)
	newPos := indexOf(st.Characters, name)

	if st.InTurn == nil {
		return nil, nil
	}

	var status *trackerstate.MovedStatus
	i := *st.InTurn
	if actor == name {
		switch {
		case newPos > i:
			status = trackerstate.TwoTurns(name)
		case newPos < i:
			status = trackerstate.TwoTurns(st.Characters[i].Name)
		}
	} else {
		follow(st, actor)
		j := *st.InTurn
		switch {
		case oldPos > i && newPos < j:
			status = trackerstate.Skipped(name)
		case oldPos < i && newPos > j:
			status = trackerstate.TwoTurns(name)
		}
	}

	if status != nil {
		log.Printf("[TRACKER] %s", status)
		tx.emit(&events.CharacterMovedEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeCharacterMoved, Character: status.Character},
			Kind:      string(status.Kind),
		})
	}
	return status, nil
}

// Rename changes from to to in the roster and in every condition
func (s *service) Rename(ctx context.Context, from, to string) error {
	if strings.TrimSpace(to) == "" {
		return errors.InvalidArgument("character name is required")
	}

	return s.mutate(ctx, OpRename, func(tx *txn) error {
		st := tx.state
		idx := indexOf(st.Characters, from)
		if idx < 0 {
			return errors.UnknownCharacter(from)
		}
		if from == to {
			tx.unchanged = true
			return nil
		}
		if indexOf(st.Characters, to) >= 0 {
			return errors.DuplicateName(to)
		}

		st.Characters[idx].Name = to
		st.Conditions.RenameCharacter(from, to)
		log.Printf("[TRACKER] Renamed %s to %s", from, to)
		return nil
	})
}

// SetTieBreak changes how ties are ordered. The acting character keeps acting.
func (s *service) SetTieBreak(ctx context.Context, tieBreak character.TieBreak) error {
	if !tieBreak.IsValid() {
		return errors.InvalidArgumentf("unknown tie break %q", tieBreak)
	}

	return s.update(ctx, func(st *trackerstate.State) error {
		actor := acting(st)
		st.Settings.TieBreak = tieBreak
		character.Sort(st.Characters, tieBreak)
		follow(st, actor)
		return nil
	})
}

// SetUndoSize bounds both history stacks, dropping the oldest entries
func (s *service) SetUndoSize(ctx context.Context, size int) error {
	if size < 0 {
		return errors.InvalidArgumentf("undo size must not be negative, got %d", size)
	}

	return s.update(ctx, func(st *trackerstate.State) error {
		st.Settings.UndoSize = size
		st.Undo.Resize(size)
		st.Redo.Resize(size)
		return nil
	})
}

func indexOf(roster []*character.Character, name string) int {
	for i, c := range roster {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// acting returns the name of the acting character, or ""
func acting(st *trackerstate.State) string {
	if st.InTurn == nil {
		return ""
	}
	return st.Characters[*st.InTurn].Name
}

// follow points the turn index back at name after a re-sort
func follow(st *trackerstate.State, name string) {
	if name == "" {
		return
	}
	i := indexOf(st.Characters, name)
	st.InTurn = &i
}

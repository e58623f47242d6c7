package tracker

import (
	"context"

	"github.com/KirkDiggler/pathtracker/internal/domain/conditions"
	"github.com/KirkDiggler/pathtracker/internal/errors"
)

// AddCondition applies cond to name. Re-adding an effect the character
// already has at an equal or higher level changes nothing.
func (s *service) AddCondition(ctx context.Context, name string, cond conditions.Condition) error {
	if err := cond.Validate(); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid condition")
	}

	return s.mutate(ctx, OpAddCondition, func(tx *txn) error {
		if indexOf(tx.state.Characters, name) < 0 {
			return errors.UnknownCharacter(name)
		}
		if !tx.state.Conditions.Add(name, cond) {
			tx.unchanged = true
		}
		return nil
	})
}

// RemoveCondition removes the effect from name. Removing an effect the
// character does not have changes nothing.
func (s *service) RemoveCondition(ctx context.Context, name string, effect conditions.Effect) error {
	return s.mutate(ctx, OpRemoveCondition, func(tx *txn) error {
		if indexOf(tx.state.Characters, name) < 0 {
			return errors.UnknownCharacter(name)
		}
		if !tx.state.Conditions.Remove(name, effect) {
			tx.unchanged = true
		}
		return nil
	})
}

// GetConditions lists the conditions on name. It does not save.
func (s *service) GetConditions(name string) ([]conditions.Condition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOf(s.state.Characters, name) < 0 {
		return nil, errors.UnknownCharacter(name)
	}
	return s.state.Conditions.Get(name), nil
}

// Conditions lists every condition in the encounter
func (s *service) Conditions() []conditions.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Conditions.Entries()
}

package tracker

import (
	"context"
	"log"

	"github.com/KirkDiggler/pathtracker/internal/domain/character"
	"github.com/KirkDiggler/pathtracker/internal/errors"
)

// Damage removes hit points from name, temporary ones first
func (s *service) Damage(ctx context.Context, name string, amount int) error {
	return s.changeHealth(ctx, OpDamage, name, func(h *character.Health) {
		lost := h.Damage(amount)
		log.Printf("[TRACKER] %s loses %d HP (%s)", name, lost, h)
	})
}

// Heal restores hit points to name, up to its maximum
func (s *service) Heal(ctx context.Context, name string, amount int) error {
	return s.changeHealth(ctx, OpHeal, name, func(h *character.Health) {
		h.Heal(amount)
	})
}

// SetCurrentHealth sets name's current hit points, clamped to its maximum
func (s *service) SetCurrentHealth(ctx context.Context, name string, current int) error {
	return s.changeHealth(ctx, OpSetCurrentHealth, name, func(h *character.Health) {
		h.SetCurrent(current)
	})
}

// SetTempHealth replaces name's temporary hit points
func (s *service) SetTempHealth(ctx context.Context, name string, amount int) error {
	return s.changeHealth(ctx, OpSetTempHealth, name, func(h *character.Health) {
		h.SetTemp(amount)
	})
}

// AddTempHealth stacks temporary hit points onto name
func (s *service) AddTempHealth(ctx context.Context, name string, amount int) error {
	return s.changeHealth(ctx, OpAddTempHealth, name, func(h *character.Health) {
		h.AddTemp(amount)
	})
}

// SetMaxHealth sets name's maximum hit points. A character without a
// health pool gets a full one.
func (s *service) SetMaxHealth(ctx context.Context, name string, maxHP int) error {
	if maxHP < 0 {
		return errors.InvalidArgumentf("max hit points must not be negative, got %d", maxHP)
	}

	return s.mutate(ctx, OpSetMaxHealth, func(tx *txn) error {
		idx := indexOf(tx.state.Characters, name)
		if idx < 0 {
			return errors.UnknownCharacter(name)
		}

		c := tx.state.Characters[idx]
		if c.Health == nil {
			c.WithHealth(maxHP)
			return nil
		}
		c.Health.SetMax(maxHP)
		return nil
	})
}

func (s *service) changeHealth(ctx context.Context, operation, name string, change func(h *character.Health)) error {
	return s.mutate(ctx, operation, func(tx *txn) error {
		idx := indexOf(tx.state.Characters, name)
		if idx < 0 {
			return errors.UnknownCharacter(name)
		}

		c := tx.state.Characters[idx]
		if c.Health == nil {
			return errors.InvalidArgumentf("%s has no health to change", name).WithMeta("name", name)
		}
		change(c.Health)
		return nil
	})
}

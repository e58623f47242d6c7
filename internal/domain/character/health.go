package character

import (
	"fmt"

	"github.com/KirkDiggler/pathtracker/internal/errors"
)

// Health tracks hit points. Current never exceeds Max and temporary hit
// points are spent before Current.
type Health struct {
	Current int `json:"current"`
	Max     int `json:"max"`
	Temp    int `json:"temp,omitempty"`
}

// NewHealth returns a full pool
func NewHealth(maxHP int) *Health {
	maxHP = nonNegative(maxHP)
	return &Health{Current: maxHP, Max: maxHP}
}

// Damage removes hit points, temporary first. Returns the hit points
// actually lost from Current.
func (h *Health) Damage(amount int) int {
	amount = nonNegative(amount)

	if h.Temp > 0 {
		if amount <= h.Temp {
			h.Temp -= amount
			return 0
		}
		amount -= h.Temp
		h.Temp = 0
	}

	if amount > h.Current {
		amount = h.Current
	}
	h.Current -= amount
	return amount
}

// Heal restores hit points up to Max
func (h *Health) Heal(amount int) {
	h.Current += nonNegative(amount)
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// SetMax changes the maximum and clamps Current down if needed
func (h *Health) SetMax(maxHP int) {
	h.Max = nonNegative(maxHP)
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// SetCurrent sets Current, clamped to [0, Max]
func (h *Health) SetCurrent(current int) {
	h.Current = nonNegative(current)
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// SetTemp overwrites the temporary pool
func (h *Health) SetTemp(amount int) {
	h.Temp = nonNegative(amount)
}

// AddTemp stacks more temporary hit points onto the pool
func (h *Health) AddTemp(amount int) {
	h.Temp += nonNegative(amount)
}

// IsDown reports whether the character is at 0 hit points
func (h *Health) IsDown() bool {
	return h.Current == 0
}

// Validate checks the pool invariants, used when loading saved state
func (h *Health) Validate() error {
	if h.Current < 0 || h.Max < 0 || h.Temp < 0 {
		return errors.InvalidArgumentf("hit points cannot be negative (%s)", h)
	}
	if h.Current > h.Max {
		return errors.InvalidArgumentf("current hit points %d exceed max %d", h.Current, h.Max)
	}
	return nil
}

func (h *Health) String() string {
	if h.Temp > 0 {
		return fmt.Sprintf("%d/%d HP +%d temp", h.Current, h.Max, h.Temp)
	}
	return fmt.Sprintf("%d/%d HP", h.Current, h.Max)
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

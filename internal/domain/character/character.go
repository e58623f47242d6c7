package character

import (
	"strings"

	"github.com/KirkDiggler/pathtracker/internal/errors"
)

// Character is one entry in the initiative roster. Name is the unique key.
type Character struct {
	Name       string  `json:"name"`
	Initiative int     `json:"initiative"`
	Player     bool    `json:"player"`
	Health     *Health `json:"health,omitempty"`
}

// New creates a roster entry without a health pool
func New(name string, initiative int, player bool) *Character {
	return &Character{
		Name:       name,
		Initiative: initiative,
		Player:     player,
	}
}

// WithHealth gives the character a full health pool of max hit points
func (c *Character) WithHealth(maxHP int) *Character {
	c.Health = NewHealth(maxHP)
	return c
}

// IsFoe reports whether the character is on the non-player side
func (c *Character) IsFoe() bool {
	return !c.Player
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	clone := *c
	if c.Health != nil {
		h := *c.Health
		clone.Health = &h
	}
	return &clone
}

// Validate checks the entry can be placed in a roster
func (c *Character) Validate() error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.InvalidArgument("character name is required")
	}
	if c.Health != nil {
		return c.Health.Validate()
	}
	return nil
}

func (c *Character) String() string {
	side := "foe"
	if c.Player {
		side = "player"
	}
	if c.Health == nil {
		return c.Name + " (" + side + ")"
	}
	return c.Name + " (" + side + ", " + c.Health.String() + ")"
}

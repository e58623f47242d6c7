package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_Damage(t *testing.T) {
	tests := []struct {
		name     string
		health   Health
		amount   int
		expected Health
		lost     int
	}{
		{
			name:     "temp absorbs all",
			health:   Health{Current: 20, Max: 30, Temp: 5},
			amount:   4,
			expected: Health{Current: 20, Max: 30, Temp: 1},
			lost:     0,
		},
		{
			name:     "temp then current",
			health:   Health{Current: 20, Max: 30, Temp: 5},
			amount:   8,
			expected: Health{Current: 17, Max: 30},
			lost:     3,
		},
		{
			name:     "saturates at zero",
			health:   Health{Current: 6, Max: 30},
			amount:   50,
			expected: Health{Current: 0, Max: 30},
			lost:     6,
		},
		{
			name:     "negative is ignored",
			health:   Health{Current: 6, Max: 30},
			amount:   -4,
			expected: Health{Current: 6, Max: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.health
			assert.Equal(t, tt.lost, h.Damage(tt.amount))
			assert.Equal(t, tt.expected, h)
		})
	}
}

func TestHealth_HealCapsAtMax(t *testing.T) {
	h := Health{Current: 25, Max: 30}
	h.Heal(3)
	assert.Equal(t, 28, h.Current)
	h.Heal(100)
	assert.Equal(t, 30, h.Current)
}

func TestHealth_SetMaxClampsCurrent(t *testing.T) {
	h := NewHealth(30)
	h.SetMax(20)
	assert.Equal(t, Health{Current: 20, Max: 20}, *h)

	h.SetMax(40)
	assert.Equal(t, Health{Current: 20, Max: 40}, *h)
}

func TestHealth_SetCurrentClamps(t *testing.T) {
	h := NewHealth(30)
	h.SetCurrent(45)
	assert.Equal(t, 30, h.Current)
	h.SetCurrent(-2)
	assert.Equal(t, 0, h.Current)
	assert.True(t, h.IsDown())
}

func TestHealth_TempPool(t *testing.T) {
	h := NewHealth(10)
	h.SetTemp(5)
	h.AddTemp(3)
	assert.Equal(t, 8, h.Temp)
	h.SetTemp(2)
	assert.Equal(t, 2, h.Temp)
	assert.Equal(t, "10/10 HP +2 temp", h.String())
}

func TestHealth_Validate(t *testing.T) {
	assert.NoError(t, NewHealth(10).Validate())
	assert.Error(t, (&Health{Current: 11, Max: 10}).Validate())
	assert.Error(t, (&Health{Current: 1, Max: 10, Temp: -1}).Validate())
}

func TestCharacter_CloneIsDeep(t *testing.T) {
	c := New("Ana", 12, true).WithHealth(20)
	clone := c.Clone()

	clone.Health.Damage(5)
	clone.Initiative = 3

	assert.Equal(t, 20, c.Health.Current)
	assert.Equal(t, 12, c.Initiative)
}

func TestCharacter_Validate(t *testing.T) {
	assert.NoError(t, New("Ana", 1, true).Validate())
	assert.Error(t, New("  ", 1, true).Validate())

	var missing *Character
	assert.Error(t, missing.Validate())
}

func TestSort(t *testing.T) {
	tests := []struct {
		name     string
		tieBreak TieBreak
		expected []string
	}{
		{"foes first", TieBreakFoesFirst, []string{"Bucky", "Goblin", "Hellen", "Kobold", "Skelly Boy"}},
		{"players first", TieBreakPlayersFirst, []string{"Bucky", "Hellen", "Goblin", "Kobold", "Skelly Boy"}},
		{"none keeps join order", TieBreakNone, []string{"Bucky", "Hellen", "Goblin", "Kobold", "Skelly Boy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := []*Character{
				New("Skelly Boy", 3, false),
				New("Hellen", 27, true),
				New("Bucky", 30, true),
				New("Goblin", 27, false),
				New("Kobold", 10, false),
			}

			Sort(roster, tt.tieBreak)

			names := make([]string, 0, len(roster))
			for _, c := range roster {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.expected, names)
			assert.True(t, IsSorted(roster, tt.tieBreak))
		})
	}
}

func TestParseTieBreak(t *testing.T) {
	tb, err := ParseTieBreak("players_first")
	require.NoError(t, err)
	assert.Equal(t, TieBreakPlayersFirst, tb)

	_, err = ParseTieBreak("dexterity")
	assert.Error(t, err)
}

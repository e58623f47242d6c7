package character

import (
	"sort"

	"github.com/KirkDiggler/pathtracker/internal/errors"
)

// TieBreak decides the order of characters with equal initiative
type TieBreak string

const (
	// TieBreakFoesFirst puts non-player characters ahead of players
	TieBreakFoesFirst TieBreak = "foes_first"
	// TieBreakPlayersFirst puts players ahead of non-player characters
	TieBreakPlayersFirst TieBreak = "players_first"
	// TieBreakNone keeps tied characters in the order they joined
	TieBreakNone TieBreak = "none"
)

// DefaultTieBreak is the rule used when none is configured
const DefaultTieBreak = TieBreakFoesFirst

// ParseTieBreak converts a configuration value into a TieBreak
func ParseTieBreak(s string) (TieBreak, error) {
	tb := TieBreak(s)
	if !tb.IsValid() {
		return "", errors.InvalidArgumentf("unknown tie break %q", s)
	}
	return tb, nil
}

// IsValid reports whether the rule is known
func (t TieBreak) IsValid() bool {
	switch t {
	case TieBreakFoesFirst, TieBreakPlayersFirst, TieBreakNone:
		return true
	}
	return false
}

// Less reports whether a acts before b
func (t TieBreak) Less(a, b *Character) bool {
	if a.Initiative != b.Initiative {
		return a.Initiative > b.Initiative
	}
	switch t {
	case TieBreakFoesFirst:
		return !a.Player && b.Player
	case TieBreakPlayersFirst:
		return a.Player && !b.Player
	default:
		return false
	}
}

// Sort orders the roster by descending initiative using the tie-break
// rule. The sort is stable so fully tied characters keep their order.
func Sort(roster []*Character, t TieBreak) {
	sort.SliceStable(roster, func(i, j int) bool {
		return t.Less(roster[i], roster[j])
	})
}

// IsSorted reports whether the roster already respects the ordering
func IsSorted(roster []*Character, t TieBreak) bool {
	return sort.SliceIsSorted(roster, func(i, j int) bool {
		return t.Less(roster[i], roster[j])
	})
}

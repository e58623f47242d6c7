package testutils

import (
	"github.com/KirkDiggler/pathtracker/internal/domain/character"
	"github.com/KirkDiggler/pathtracker/internal/domain/conditions"
	"github.com/KirkDiggler/pathtracker/internal/domain/tracker"
)

// CreateTestCharacter creates a roster entry with 20 HP
func CreateTestCharacter(name string, initiative int, player bool) *character.Character {
	return character.New(name, initiative, player).WithHealth(20)
}

// CreateTestRoster returns a sorted three-character roster:
// Lucifer (25, foe), Hugo (15, player), Link (10, player)
func CreateTestRoster() []*character.Character {
	return []*character.Character{
		CreateTestCharacter("Lucifer", 25, false),
		CreateTestCharacter("Hugo", 15, true),
		CreateTestCharacter("Link", 10, true),
	}
}

// CreateTestState builds a mid-encounter state: Hugo is acting, Link is
// frightened and bleeding, and one undo entry exists
func CreateTestState() *tracker.State {
	state := tracker.NewState(tracker.DefaultSettings())
	state.Characters = CreateTestRoster()

	state.Undo.Push(state.Snapshot("snap-1", "add_character"))

	inTurn := 1
	state.InTurn = &inTurn

	state.Conditions.Add("Link", conditions.NewBuilder(conditions.Frightened).
		WithLevel(2).
		WithTerm(conditions.Reduced(conditions.EndOfNextTurn("Link"), 1)).
		MustBuild())
	state.Conditions.Add("Link", conditions.NewPersistentDamage(conditions.Bleed).
		WithLevel(3).
		MustBuild())

	return state
}

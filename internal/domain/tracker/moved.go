package tracker

import "fmt"

// MoveKind says how a reorder affected whose turn it is
type MoveKind string

const (
	// MoveSkipped means the character's turn was passed over by the reorder
	MoveSkipped MoveKind = "skipped"
	// MoveTwoTurns means the character will act a second time this round
	MoveTwoTurns MoveKind = "two_turns"
)

// MovedStatus is returned by reordering operations when the acting
// position changed under someone
type MovedStatus struct {
	Kind      MoveKind `json:"kind"`
	Character string   `json:"character"`
}

// Skipped reports that name lost its turn this round
func Skipped(name string) *MovedStatus {
	return &MovedStatus{Kind: MoveSkipped, Character: name}
}

// TwoTurns reports that name acts twice this round
func TwoTurns(name string) *MovedStatus {
	return &MovedStatus{Kind: MoveTwoTurns, Character: name}
}

func (m *MovedStatus) String() string {
	switch m.Kind {
	case MoveSkipped:
		return fmt.Sprintf("%s's turn was skipped", m.Character)
	case MoveTwoTurns:
		return fmt.Sprintf("%s gets two turns this round", m.Character)
	default:
		return fmt.Sprintf("%s: %s", m.Character, m.Kind)
	}
}

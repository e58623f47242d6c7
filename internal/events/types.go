package events

// EventType represents the type of tracker event
type EventType string

// Event is the base interface for all tracker events
type Event interface {
	GetType() EventType
	GetCharacter() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Character string
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType   { return e.Type }
func (e *BaseEvent) GetCharacter() string { return e.Character }
func (e *BaseEvent) IsCancelled() bool    { return e.Cancelled }
func (e *BaseEvent) Cancel()              { e.Cancelled = true }

// TurnStartedEvent fires after a character becomes the acting character
type TurnStartedEvent struct {
	BaseEvent
	Index int
}

// TurnEndedEvent fires after a character's turn ends
type TurnEndedEvent struct {
	BaseEvent
}

// PersistentDamageEvent fires when end of turn applies persistent damage.
// Lost is what came off current hit points after temporary ones absorbed
// their share; it is zero for characters without a health pool.
type PersistentDamageEvent struct {
	BaseEvent
	Amount int
	Lost   int
}

// CharacterAddedEvent fires after a character joins the roster
type CharacterAddedEvent struct {
	BaseEvent
}

// CharacterRemovedEvent fires after a character leaves the roster
type CharacterRemovedEvent struct {
	BaseEvent
}

// CharacterMovedEvent fires when a reorder changed who acts. Character
// names the affected character; Kind is "skipped" or "two_turns".
type CharacterMovedEvent struct {
	BaseEvent
	Kind string
}

// HistoryEvent fires after undo or redo. Operation is the label of the
// operation that was reverted or reapplied.
type HistoryEvent struct {
	BaseEvent
	Operation string
}

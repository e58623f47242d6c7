package events

// Event type constants
const (
	// Turn Events
	EventTypeTurnStarted      EventType = "turn_started"
	EventTypeTurnEnded        EventType = "turn_ended"
	EventTypePersistentDamage EventType = "persistent_damage"

	// Roster Events
	EventTypeCharacterAdded   EventType = "character_added"
	EventTypeCharacterRemoved EventType = "character_removed"
	EventTypeCharacterMoved   EventType = "character_moved"

	// History Events
	EventTypeUndone EventType = "undone"
	EventTypeRedone EventType = "redone"
)

// Priority levels for listener order
const (
	PriorityRules     = 0   // Listeners that react to game state
	PriorityDefault   = 100 // Most listeners
	PriorityReporting = 500 // Logging and display, after everything else
)

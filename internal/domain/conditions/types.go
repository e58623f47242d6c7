package conditions

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/pathtracker/internal/domain/gametime"
)

// ConditionType names a status effect
type ConditionType string

// Valued conditions carry a severity level
const (
	PersistentDamage ConditionType = "persistent_damage" // Deals its level as damage at end of turn
	Clumsy           ConditionType = "clumsy"
	Doomed           ConditionType = "doomed"
	Drained          ConditionType = "drained"
	Dying            ConditionType = "dying"
	Enfeebled        ConditionType = "enfeebled"
	Frightened       ConditionType = "frightened"
	Sickened         ConditionType = "sickened"
	Slowed           ConditionType = "slowed"
	Stunned          ConditionType = "stunned"
	Stupefied        ConditionType = "stupefied"
	Wounded          ConditionType = "wounded"
)

// Non-valued conditions are either present or not
const (
	Blinded     ConditionType = "blinded"
	Broken      ConditionType = "broken"
	Concealed   ConditionType = "concealed"
	Confused    ConditionType = "confused"
	Controlled  ConditionType = "controlled"
	Dazzled     ConditionType = "dazzled"
	Deafened    ConditionType = "deafened"
	Encumbered  ConditionType = "encumbered"
	Fascinated  ConditionType = "fascinated"
	Fatigued    ConditionType = "fatigued"
	OffGuard    ConditionType = "off_guard" // Flat-footed before the remaster
	Fleeing     ConditionType = "fleeing"
	Friendly    ConditionType = "friendly"
	Grabbed     ConditionType = "grabbed"
	Helpful     ConditionType = "helpful"
	Hidden      ConditionType = "hidden"
	Hostile     ConditionType = "hostile"
	Immobilized ConditionType = "immobilized"
	Indifferent ConditionType = "indifferent"
	Invisible   ConditionType = "invisible"
	Observed    ConditionType = "observed"
	Paralyzed   ConditionType = "paralyzed"
	Petrified   ConditionType = "petrified"
	Prone       ConditionType = "prone"
	Quickened   ConditionType = "quickened"
	Restrained  ConditionType = "restrained"
	Unconscious ConditionType = "unconscious"
	Undetected  ConditionType = "undetected"
	Unfriendly  ConditionType = "unfriendly"
	Unnoticed   ConditionType = "unnoticed"
)

var catalog = map[ConditionType]bool{
	PersistentDamage: true,
	Clumsy:           true,
	Doomed:           true,
	Drained:          true,
	Dying:            true,
	Enfeebled:        true,
	Frightened:       true,
	Sickened:         true,
	Slowed:           true,
	Stunned:          true,
	Stupefied:        true,
	Wounded:          true,

	Blinded:     false,
	Broken:      false,
	Concealed:   false,
	Confused:    false,
	Controlled:  false,
	Dazzled:     false,
	Deafened:    false,
	Encumbered:  false,
	Fascinated:  false,
	Fatigued:    false,
	OffGuard:    false,
	Fleeing:     false,
	Friendly:    false,
	Grabbed:     false,
	Helpful:     false,
	Hidden:      false,
	Hostile:     false,
	Immobilized: false,
	Indifferent: false,
	Invisible:   false,
	Observed:    false,
	Paralyzed:   false,
	Petrified:   false,
	Prone:       false,
	Quickened:   false,
	Restrained:  false,
	Unconscious: false,
	Undetected:  false,
	Unfriendly:  false,
	Unnoticed:   false,
}

// IsKnown reports whether the type is part of the condition catalog
func (t ConditionType) IsKnown() bool {
	_, ok := catalog[t]
	return ok
}

// IsValued reports whether conditions of this type carry a level
func (t ConditionType) IsValued() bool {
	return catalog[t]
}

// DamageType qualifies persistent damage
type DamageType string

const (
	Bleed       DamageType = "bleed"
	Poison      DamageType = "poison"
	Piercing    DamageType = "piercing"
	Bludgeoning DamageType = "bludgeoning"
	Slashing    DamageType = "slashing"
	Acid        DamageType = "acid"
	Cold        DamageType = "cold"
	Electricity DamageType = "electricity"
	Fire        DamageType = "fire"
	Sonic       DamageType = "sonic"
	Vitality    DamageType = "vitality"
	Void        DamageType = "void"
	Force       DamageType = "force"
	Chaotic     DamageType = "chaotic"
	Evil        DamageType = "evil"
	Good        DamageType = "good"
	Lawful      DamageType = "lawful"
)

var damageTypes = map[DamageType]struct{}{
	Bleed: {}, Poison: {}, Piercing: {}, Bludgeoning: {}, Slashing: {}, Acid: {},
	Cold: {}, Electricity: {}, Fire: {}, Sonic: {}, Vitality: {}, Void: {},
	Force: {}, Chaotic: {}, Evil: {}, Good: {}, Lawful: {},
}

// IsKnown reports whether the damage type is recognised
func (d DamageType) IsKnown() bool {
	_, ok := damageTypes[d]
	return ok
}

// Effect is the identity of a condition. Two conditions with the same
// Effect on the same character are the same condition, whatever their
// level or term.
type Effect struct {
	Type       ConditionType `json:"type"`
	DamageType DamageType    `json:"damage_type,omitempty"` // Only for PersistentDamage
}

// String returns the display name of the effect
func (e Effect) String() string {
	if e.Type == PersistentDamage {
		return "persistent " + string(e.DamageType)
	}
	return strings.ReplaceAll(string(e.Type), "_", "-")
}

func (e Effect) less(o Effect) bool {
	if e.Type != o.Type {
		return e.Type < o.Type
	}
	return e.DamageType < o.DamageType
}

// TurnEventKind says which edge of a turn an event marks
type TurnEventKind string

const (
	StartOfNextTurnEvent  TurnEventKind = "start_of_next_turn"
	EndOfNextTurnEvent    TurnEventKind = "end_of_next_turn"
	EndOfCurrentTurnEvent TurnEventKind = "end_of_current_turn"
)

// TurnEvent fires only for the character it names
type TurnEvent struct {
	Kind      TurnEventKind `json:"kind"`
	Character string        `json:"character"`
}

// StartOfNextTurn fires when character's next turn begins
func StartOfNextTurn(character string) TurnEvent {
	return TurnEvent{Kind: StartOfNextTurnEvent, Character: character}
}

// EndOfNextTurn fires when character's next turn ends
func EndOfNextTurn(character string) TurnEvent {
	return TurnEvent{Kind: EndOfNextTurnEvent, Character: character}
}

// EndOfCurrentTurn fires when character's current turn ends
func EndOfCurrentTurn(character string) TurnEvent {
	return TurnEvent{Kind: EndOfCurrentTurnEvent, Character: character}
}

// String renders the event for display
func (e TurnEvent) String() string {
	switch e.Kind {
	case StartOfNextTurnEvent:
		return fmt.Sprintf("start of %s's next turn", e.Character)
	case EndOfNextTurnEvent:
		return fmt.Sprintf("end of %s's next turn", e.Character)
	case EndOfCurrentTurnEvent:
		return fmt.Sprintf("end of %s's current turn", e.Character)
	default:
		return fmt.Sprintf("%s of %s", e.Kind, e.Character)
	}
}

func (e TurnEvent) valid() bool {
	switch e.Kind {
	case StartOfNextTurnEvent, EndOfNextTurnEvent, EndOfCurrentTurnEvent:
		return e.Character != ""
	default:
		return false
	}
}

// TermKind is the termination rule of a condition
type TermKind string

const (
	TermManual  TermKind = "manual"  // Never expires on its own
	TermFor     TermKind = "for"     // Counts down one turn at the end of each of the affected character's turns
	TermUntil   TermKind = "until"   // Removed when its event fires
	TermReduced TermKind = "reduced" // Level drops by Reduction each time its event fires; valued only
)

// Term describes when a condition ends. Terms are values: the engine
// replaces them, it never edits one in place.
type Term struct {
	Kind      TermKind           `json:"kind"`
	Duration  *gametime.GameTime `json:"duration,omitempty"`
	Event     *TurnEvent         `json:"event,omitempty"`
	Reduction int                `json:"reduction,omitempty"`
}

// Manual is a term that never expires automatically
func Manual() Term {
	return Term{Kind: TermManual}
}

// For expires after d has elapsed, measured in the affected character's turns
func For(d gametime.GameTime) Term {
	return Term{Kind: TermFor, Duration: &d}
}

// Until expires the moment ev fires
func Until(ev TurnEvent) Term {
	return Term{Kind: TermUntil, Event: &ev}
}

// Reduced lowers the level by amount each time ev fires
func Reduced(ev TurnEvent, amount int) Term {
	return Term{Kind: TermReduced, Event: &ev, Reduction: amount}
}

// String renders the term as a suffix for Condition.String
func (t Term) String() string {
	switch t.Kind {
	case TermFor:
		if t.Duration == nil {
			return " for 0 turns"
		}
		return " for " + t.Duration.String()
	case TermUntil:
		if t.Event == nil {
			return ""
		}
		return " until " + t.Event.String()
	case TermReduced:
		if t.Event == nil {
			return ""
		}
		return fmt.Sprintf(", reduced by %d at %s", t.Reduction, t.Event.String())
	default:
		return ""
	}
}

func (t Term) renamed(from, to string) Term {
	if t.Event == nil || t.Event.Character != from {
		return t
	}
	ev := TurnEvent{Kind: t.Event.Kind, Character: to}
	t.Event = &ev
	return t
}

// Condition is a status effect on a character
type Condition struct {
	Effect
	Level int  `json:"level,omitempty"`
	Term  Term `json:"term"`
}

// IsValued reports whether the condition carries a level
func (c Condition) IsValued() bool {
	return c.Type.IsValued()
}

// String renders the condition, e.g. "frightened 2, reduced by 1 at end of Ana's next turn"
func (c Condition) String() string {
	name := c.Effect.String()
	if c.IsValued() {
		name = fmt.Sprintf("%s %d", name, c.Level)
	}
	return name + c.Term.String()
}

// Validate checks the invariants a built condition must hold
func (c Condition) Validate() error {
	if !c.Type.IsKnown() {
		return fmt.Errorf("unknown condition type %q", c.Type)
	}
	if c.Type == PersistentDamage {
		if !c.DamageType.IsKnown() {
			return fmt.Errorf("unknown damage type %q", c.DamageType)
		}
	} else if c.DamageType != "" {
		return fmt.Errorf("%s does not take a damage type", c.Type)
	}

	if c.IsValued() {
		if c.Level < 1 {
			return fmt.Errorf("%s needs a level of at least 1", c.Effect)
		}
	} else if c.Level != 0 {
		return fmt.Errorf("%s does not take a level", c.Effect)
	}

	switch c.Term.Kind {
	case TermManual:
	case TermFor:
		if c.Term.Duration == nil {
			return fmt.Errorf("%s term needs a duration", c.Term.Kind)
		}
	case TermUntil:
		if c.Term.Event == nil || !c.Term.Event.valid() {
			return fmt.Errorf("%s term needs a turn event naming a character", c.Term.Kind)
		}
	case TermReduced:
		if !c.IsValued() {
			return fmt.Errorf("%s cannot be reduced, it has no level", c.Effect)
		}
		if c.Term.Event == nil || !c.Term.Event.valid() {
			return fmt.Errorf("%s term needs a turn event naming a character", c.Term.Kind)
		}
		if c.Term.Reduction < 1 {
			return fmt.Errorf("reduction must be at least 1")
		}
	default:
		return fmt.Errorf("unknown term kind %q", c.Term.Kind)
	}
	return nil
}

package conditions

import (
	"encoding/json"
	"log"
	"sort"

	"github.com/KirkDiggler/pathtracker/internal/domain/gametime"
)

type key struct {
	character string
	effect    Effect
}

func (k key) less(o key) bool {
	if k.character != o.character {
		return k.character < o.character
	}
	return k.effect.less(o.effect)
}

// Entry pairs a condition with the character it affects
type Entry struct {
	Character string    `json:"character"`
	Condition Condition `json:"condition"`
}

// Manager tracks every condition on every character in an encounter and
// advances them as turns start and end. It is not safe for concurrent use;
// the owning tracker serialises access.
type Manager struct {
	conditions map[key]Condition
	// Conditions inserted since the acting character's turn began. Cleared
	// by StartOfTurn and EndOfTurn.
	added map[key]struct{}
}

// NewManager creates an empty condition manager
func NewManager() *Manager {
	return &Manager{
		conditions: make(map[key]Condition),
		added:      make(map[key]struct{}),
	}
}

// Add applies cond to character. An existing condition with the same effect
// is kept when its level is not lower (non-valued conditions are always
// kept). Returns true if cond was stored.
func (m *Manager) Add(character string, cond Condition) bool {
	k := key{character: character, effect: cond.Effect}

	if existing, ok := m.conditions[k]; ok {
		if !existing.IsValued() || existing.Level >= cond.Level {
			log.Printf("[CONDITIONS] %s already has %s, keeping it over %s", character, existing, cond)
			return false
		}
	}

	m.conditions[k] = cond
	m.added[k] = struct{}{}
	log.Printf("[CONDITIONS] %s gains %s", character, cond)
	return true
}

// Remove deletes the condition with the given effect from character.
// Returns false if there was nothing to remove.
func (m *Manager) Remove(character string, effect Effect) bool {
	k := key{character: character, effect: effect}
	if _, ok := m.conditions[k]; !ok {
		return false
	}
	delete(m.conditions, k)
	delete(m.added, k)
	log.Printf("[CONDITIONS] %s is no longer %s", character, effect)
	return true
}

// Get returns the conditions on character, ordered by effect
func (m *Manager) Get(character string) []Condition {
	var result []Condition
	for _, k := range m.sortedKeys() {
		if k.character == character {
			result = append(result, m.conditions[k])
		}
	}
	return result
}

// Find looks up a single condition by effect
func (m *Manager) Find(character string, effect Effect) (Condition, bool) {
	cond, ok := m.conditions[key{character: character, effect: effect}]
	return cond, ok
}

// Has reports whether character has a condition with the given effect
func (m *Manager) Has(character string, effect Effect) bool {
	_, ok := m.Find(character, effect)
	return ok
}

// StartOfTurn fires StartOfNextTurn(character) and clears the added-this-turn set
func (m *Manager) StartOfTurn(character string) {
	m.fire(StartOfNextTurn(character))
	m.clearAdded()
}

// EndOfTurn fires EndOfCurrentTurn(character) then EndOfNextTurn(character)
// and clears the added-this-turn set. It returns the persistent damage the
// character takes, summed before any condition was advanced.
func (m *Manager) EndOfTurn(character string) int {
	damage := m.PersistentDamage(character)

	m.fire(EndOfCurrentTurn(character))
	m.fire(EndOfNextTurn(character))
	m.clearAdded()

	return damage
}

// PersistentDamage sums the levels of every persistent damage condition on character
func (m *Manager) PersistentDamage(character string) int {
	total := 0
	for k, cond := range m.conditions {
		if k.character == character && k.effect.Type == PersistentDamage {
			total += cond.Level
		}
	}
	return total
}

// RemoveCharacter drops every condition on character
func (m *Manager) RemoveCharacter(character string) {
	for k := range m.conditions {
		if k.character == character {
			delete(m.conditions, k)
			delete(m.added, k)
		}
	}
}

// RenameCharacter moves conditions from one name to another and rewrites
// any turn event that names the old one
func (m *Manager) RenameCharacter(from, to string) {
	conditions := make(map[key]Condition, len(m.conditions))
	for k, cond := range m.conditions {
		if k.character == from {
			k.character = to
		}
		cond.Term = cond.Term.renamed(from, to)
		conditions[k] = cond
	}
	m.conditions = conditions

	added := make(map[key]struct{}, len(m.added))
	for k := range m.added {
		if k.character == from {
			k.character = to
		}
		added[k] = struct{}{}
	}
	m.added = added
}

// Entries lists every (character, condition) pair in a stable order
func (m *Manager) Entries() []Entry {
	keys := m.sortedKeys()
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Character: k.character, Condition: m.conditions[k]})
	}
	return entries
}

// Len returns the number of held conditions
func (m *Manager) Len() int {
	return len(m.conditions)
}

// Clone returns an independent copy, including the added-this-turn set.
// Terms are immutable values, so sharing their pointers is safe.
func (m *Manager) Clone() *Manager {
	clone := NewManager()
	if m == nil {
		return clone
	}
	for k, cond := range m.conditions {
		clone.conditions[k] = cond
	}
	for k := range m.added {
		clone.added[k] = struct{}{}
	}
	return clone
}

// fire runs the advance step for one event over every held condition
func (m *Manager) fire(ev TurnEvent) {
	for _, k := range m.sortedKeys() {
		cond := m.conditions[k]
		_, graced := m.added[k]

		next, keep := advance(k.character, cond, ev, graced)
		if !keep {
			delete(m.conditions, k)
			delete(m.added, k)
			log.Printf("[CONDITIONS] %s on %s expired at %s", cond.Effect, k.character, ev)
			continue
		}
		if next.Level != cond.Level {
			log.Printf("[CONDITIONS] %s on %s reduced to %d at %s", cond.Effect, k.character, next.Level, ev)
		}
		m.conditions[k] = next
	}
}

// advance applies a single event to a single condition. graced is true when
// the condition was added during the current turn.
func advance(character string, cond Condition, ev TurnEvent, graced bool) (Condition, bool) {
	switch cond.Term.Kind {
	case TermFor:
		if ev != EndOfNextTurn(character) || cond.Term.Duration == nil {
			return cond, true
		}
		remaining := cond.Term.Duration.SaturatingSub(gametime.FromTurns(1))
		if remaining.InTurns() == 0 {
			return cond, false
		}
		cond.Term = For(remaining)
		return cond, true

	case TermUntil:
		if cond.Term.Event == nil || *cond.Term.Event != ev {
			return cond, true
		}
		if ev.Kind == EndOfCurrentTurnEvent || !graced {
			return cond, false
		}
		return cond, true

	case TermReduced:
		if cond.Term.Event == nil || *cond.Term.Event != ev {
			return cond, true
		}
		if ev.Kind == EndOfNextTurnEvent && graced {
			return cond, true
		}
		cond.Level -= cond.Term.Reduction
		if cond.Level <= 0 {
			return cond, false
		}
		return cond, true

	case TermManual:
		return cond, true

	default:
		return cond, true
	}
}

func (m *Manager) clearAdded() {
	m.added = make(map[key]struct{})
}

func (m *Manager) sortedKeys() []key {
	keys := make([]key, 0, len(m.conditions))
	for k := range m.conditions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}

// jsonManager is the persisted shape of a Manager
type jsonManager struct {
	Conditions    []Entry       `json:"conditions"`
	AddedThisTurn []addedRecord `json:"added_this_turn,omitempty"`
}

type addedRecord struct {
	Character string `json:"character"`
	Effect
}

// MarshalJSON implements json.Marshaler
func (m *Manager) MarshalJSON() ([]byte, error) {
	doc := jsonManager{Conditions: m.Entries()}

	added := make([]key, 0, len(m.added))
	for k := range m.added {
		added = append(added, k)
	}
	sort.Slice(added, func(i, j int) bool { return added[i].less(added[j]) })
	for _, k := range added {
		doc.AddedThisTurn = append(doc.AddedThisTurn, addedRecord{Character: k.character, Effect: k.effect})
	}

	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler. Every stored condition is
// validated.
func (m *Manager) UnmarshalJSON(data []byte) error {
	var doc jsonManager
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	m.conditions = make(map[key]Condition, len(doc.Conditions))
	for _, e := range doc.Conditions {
		if err := e.Condition.Validate(); err != nil {
			return err
		}
		m.conditions[key{character: e.Character, effect: e.Condition.Effect}] = e.Condition
	}

	m.added = make(map[key]struct{}, len(doc.AddedThisTurn))
	for _, a := range doc.AddedThisTurn {
		k := key{character: a.Character, effect: a.Effect}
		if _, ok := m.conditions[k]; ok {
			m.added[k] = struct{}{}
		}
	}
	return nil
}

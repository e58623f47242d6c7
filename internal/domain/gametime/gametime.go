// Package gametime models in-game durations measured in mixed units.
//
// A GameTime is always kept normalized: every unit except days is smaller
// than the ratio to the next unit. 1 action = 2 seconds, 1 turn = 3 actions,
// 1 minute = 10 turns, 1 hour = 60 minutes, 1 day = 24 hours.
package gametime

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Conversion ratios between adjacent units
const (
	SecondsPerAction = 2
	ActionsPerTurn   = 3
	TurnsPerMinute   = 10
	MinutesPerHour   = 60
	HoursPerDay      = 24
)

// GameTime is an immutable, normalized duration
type GameTime struct {
	seconds int
	actions int
	turns   int
	minutes int
	hours   int
	days    int
}

// Zero is the empty duration
var Zero = GameTime{}

// Builder collects raw unit amounts; Build normalizes them
type Builder struct {
	seconds int
	actions int
	turns   int
	minutes int
	hours   int
	days    int
}

// NewBuilder starts an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithSeconds sets the raw seconds. Negative amounts count as zero.
func (b *Builder) WithSeconds(n int) *Builder {
	b.seconds = clamp(n)
	return b
}

// WithActions sets the raw actions
func (b *Builder) WithActions(n int) *Builder {
	b.actions = clamp(n)
	return b
}

// WithTurns sets the raw turns
func (b *Builder) WithTurns(n int) *Builder {
	b.turns = clamp(n)
	return b
}

// WithMinutes sets the raw minutes
func (b *Builder) WithMinutes(n int) *Builder {
	b.minutes = clamp(n)
	return b
}

// WithHours sets the raw hours
func (b *Builder) WithHours(n int) *Builder {
	b.hours = clamp(n)
	return b
}

// WithDays sets the raw days
func (b *Builder) WithDays(n int) *Builder {
	b.days = clamp(n)
	return b
}

// Build carries overflow upward from the smallest unit to the largest
func (b *Builder) Build() GameTime {
	return normalize(b.seconds, b.actions, b.turns, b.minutes, b.hours, b.days)
}

// FromSeconds returns a normalized GameTime of n seconds
func FromSeconds(n int) GameTime { return NewBuilder().WithSeconds(n).Build() }

// FromActions returns a normalized GameTime of n actions
func FromActions(n int) GameTime { return NewBuilder().WithActions(n).Build() }

// FromTurns returns a normalized GameTime of n turns
func FromTurns(n int) GameTime { return NewBuilder().WithTurns(n).Build() }

// FromMinutes returns a normalized GameTime of n minutes
func FromMinutes(n int) GameTime { return NewBuilder().WithMinutes(n).Build() }

// FromHours returns a normalized GameTime of n hours
func FromHours(n int) GameTime { return NewBuilder().WithHours(n).Build() }

// FromDays returns a normalized GameTime of n days
func FromDays(n int) GameTime { return NewBuilder().WithDays(n).Build() }

// InSeconds projects the whole value onto seconds
func (g GameTime) InSeconds() int { return g.seconds + SecondsPerAction*g.InActions() }

// InActions projects the whole value onto actions, dropping leftover seconds
func (g GameTime) InActions() int { return g.actions + ActionsPerTurn*g.InTurns() }

// InTurns projects the whole value onto turns, dropping leftover actions and seconds
func (g GameTime) InTurns() int { return g.turns + TurnsPerMinute*g.InMinutes() }

// InMinutes projects the whole value onto minutes
func (g GameTime) InMinutes() int { return g.minutes + MinutesPerHour*g.InHours() }

// InHours projects the whole value onto hours
func (g GameTime) InHours() int { return g.hours + HoursPerDay*g.InDays() }

// InDays returns the day component
func (g GameTime) InDays() int { return g.days }

// Seconds returns the normalized seconds field
func (g GameTime) Seconds() int { return g.seconds }

// Actions returns the normalized actions field
func (g GameTime) Actions() int { return g.actions }

// Turns returns the normalized turns field
func (g GameTime) Turns() int { return g.turns }

// Minutes returns the normalized minutes field
func (g GameTime) Minutes() int { return g.minutes }

// Hours returns the normalized hours field
func (g GameTime) Hours() int { return g.hours }

// Days returns the days field
func (g GameTime) Days() int { return g.days }

// IsZero reports whether the duration is empty
func (g GameTime) IsZero() bool { return g == Zero }

// Add returns the normalized sum
func (g GameTime) Add(other GameTime) GameTime {
	return FromSeconds(g.InSeconds() + other.InSeconds())
}

// SaturatingSub returns g - other, floored at zero
func (g GameTime) SaturatingSub(other GameTime) GameTime {
	diff := g.InSeconds() - other.InSeconds()
	if diff < 0 {
		diff = 0
	}
	return FromSeconds(diff)
}

// String renders the non-zero fields from largest to smallest, e.g. "1 minute 2 turns"
func (g GameTime) String() string {
	if g.IsZero() {
		return "0 turns"
	}

	parts := make([]string, 0, 6)
	for _, f := range []struct {
		n    int
		unit string
	}{
		{g.days, "day"},
		{g.hours, "hour"},
		{g.minutes, "minute"},
		{g.turns, "turn"},
		{g.actions, "action"},
		{g.seconds, "second"},
	} {
		if f.n == 0 {
			continue
		}
		unit := f.unit
		if f.n != 1 {
			unit += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", f.n, unit))
	}
	return strings.Join(parts, " ")
}

// jsonGameTime is the persisted shape; fields are re-normalized on decode
type jsonGameTime struct {
	Seconds int `json:"seconds,omitempty"`
	Actions int `json:"actions,omitempty"`
	Turns   int `json:"turns,omitempty"`
	Minutes int `json:"minutes,omitempty"`
	Hours   int `json:"hours,omitempty"`
	Days    int `json:"days,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (g GameTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonGameTime{
		Seconds: g.seconds,
		Actions: g.actions,
		Turns:   g.turns,
		Minutes: g.minutes,
		Hours:   g.hours,
		Days:    g.days,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (g *GameTime) UnmarshalJSON(data []byte) error {
	var raw jsonGameTime
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*g = NewBuilder().
		WithSeconds(raw.Seconds).
		WithActions(raw.Actions).
		WithTurns(raw.Turns).
		WithMinutes(raw.Minutes).
		WithHours(raw.Hours).
		WithDays(raw.Days).
		Build()
	return nil
}

func normalize(seconds, actions, turns, minutes, hours, days int) GameTime {
	actions += seconds / SecondsPerAction
	seconds %= SecondsPerAction

	turns += actions / ActionsPerTurn
	actions %= ActionsPerTurn

	minutes += turns / TurnsPerMinute
	turns %= TurnsPerMinute

	hours += minutes / MinutesPerHour
	minutes %= MinutesPerHour

	days += hours / HoursPerDay
	hours %= HoursPerDay

	return GameTime{
		seconds: seconds,
		actions: actions,
		turns:   turns,
		minutes: minutes,
		hours:   hours,
		days:    days,
	}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

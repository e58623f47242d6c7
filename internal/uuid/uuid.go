// Package uuid generates IDs for history entries and lets tests swap in a
// predictable sequence
package uuid

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator is an interface for generating IDs
type Generator interface {
	New() string
}

// TimeOrderedGenerator produces version 7 UUIDs, which sort by creation
// time. Falls back to a random UUID if the clock source fails.
type TimeOrderedGenerator struct{}

// New generates a new UUID string
func (g *TimeOrderedGenerator) New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// NewTimeOrderedGenerator creates a TimeOrderedGenerator
func NewTimeOrderedGenerator() *TimeOrderedGenerator {
	return &TimeOrderedGenerator{}
}

// SequenceGenerator returns prefix-1, prefix-2, ... and is safe for
// concurrent use
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequenceGenerator creates a SequenceGenerator
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// New returns the next ID in the sequence
func (g *SequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}

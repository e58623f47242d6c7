// Package tracker runs an initiative tracker: it orders the roster, moves
// the turn, drives condition lifecycles and wraps every change in an
// undoable transaction that is saved once it commits.
package tracker

//go:generate mockgen -destination=mock/mock_service.go -package=mocktracker -source=service.go

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/pathtracker/internal/domain/character"
	"github.com/KirkDiggler/pathtracker/internal/domain/conditions"
	trackerstate "github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	"github.com/KirkDiggler/pathtracker/internal/errors"
	"github.com/KirkDiggler/pathtracker/internal/events"
	"github.com/KirkDiggler/pathtracker/internal/repositories/trackers"
	"github.com/KirkDiggler/pathtracker/internal/uuid"
)

// Service defines the tracker interface
type Service interface {
	// AddCharacter inserts a new roster entry. The acting character stays in turn.
	AddCharacter(ctx context.Context, c *character.Character) error

	// RemoveCharacter drops a roster entry and its conditions
	RemoveCharacter(ctx context.Context, name string) error

	// EndTurn ends the acting character's turn and starts the next one.
	// Returns the character now acting, or nil for an empty roster.
	EndTurn(ctx context.Context) (*character.Character, error)

	// ChangeInitiative moves a character in the order. The returned status
	// is non-nil when the move changed who acts or who acts twice.
	ChangeInitiative(ctx context.Context, name string, initiative int) (*trackerstate.MovedStatus, error)

	// SetPlayer switches a character's side, which can reorder ties
	SetPlayer(ctx context.Context, name string, player bool) (*trackerstate.MovedStatus, error)

	// Rename changes a character's name everywhere it is referenced
	Rename(ctx context.Context, from, to string) error

	// AddCondition applies a condition to a character
	AddCondition(ctx context.Context, name string, cond conditions.Condition) error

	// RemoveCondition removes the condition with the given effect
	RemoveCondition(ctx context.Context, name string, effect conditions.Effect) error

	// GetConditions lists a character's conditions
	GetConditions(name string) ([]conditions.Condition, error)

	// Health changes
	Damage(ctx context.Context, name string, amount int) error
	Heal(ctx context.Context, name string, amount int) error
	SetMaxHealth(ctx context.Context, name string, maxHP int) error
	SetCurrentHealth(ctx context.Context, name string, current int) error
	SetTempHealth(ctx context.Context, name string, amount int) error
	AddTempHealth(ctx context.Context, name string, amount int) error

	// Undo reverts the most recent change
	Undo(ctx context.Context) error

	// Redo reapplies the most recently undone change
	Redo(ctx context.Context) error

	// Settings changes are saved but are not part of history
	SetUndoSize(ctx context.Context, size int) error
	SetTieBreak(ctx context.Context, tieBreak character.TieBreak) error

	// Read access. Returned values are copies.
	Characters() []*character.Character
	Character(name string) (*character.Character, error)
	InTurn() *character.Character
	Conditions() []conditions.Entry
	UndoHistory() []HistoryEntry
	RedoHistory() []HistoryEntry
	Settings() trackerstate.Settings

	// Save writes the current state without changing it
	Save(ctx context.Context) error
}

// HistoryEntry describes one undo or redo step
type HistoryEntry struct {
	ID        string
	Operation string
}

// Operation labels recorded in history
const (
	OpAddCharacter     = "add_character"
	OpRemoveCharacter  = "remove_character"
	OpEndTurn          = "end_turn"
	OpChangeInitiative = "change_initiative"
	OpSetPlayer        = "set_player"
	OpRename           = "rename"
	OpAddCondition     = "add_condition"
	OpRemoveCondition  = "remove_condition"
	OpDamage           = "damage"
	OpHeal             = "heal"
	OpSetMaxHealth     = "set_max_health"
	OpSetCurrentHealth = "set_current_health"
	OpSetTempHealth    = "set_temp_health"
	OpAddTempHealth    = "add_temp_health"
)

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository trackers.Repository
	// SaveKey names the document every commit is written to
	SaveKey string
	// Settings seed a tracker that has no save yet
	Settings trackerstate.Settings
	// Bus receives tracker events after each commit. Optional.
	Bus *events.Bus
	// IDGenerator labels history entries. Defaults to time-ordered UUIDs.
	IDGenerator uuid.Generator
}

type service struct {
	mu         sync.Mutex
	state      *trackerstate.State
	repository trackers.Repository
	saveKey    string
	bus        *events.Bus
	ids        uuid.Generator
}

// NewService creates a tracker with an empty roster
func NewService(cfg *ServiceConfig) Service {
	svc := newService(cfg)
	svc.state = trackerstate.NewState(svc.settings(cfg.Settings))
	return svc
}

// Load reads the tracker saved under cfg.SaveKey. A missing save starts a
// fresh tracker; any other failure is returned.
func Load(ctx context.Context, cfg *ServiceConfig) (Service, error) {
	svc := newService(cfg)

	state, err := svc.repository.Load(ctx, svc.saveKey)
	switch {
	case err == nil:
		log.Printf("[TRACKER] Loaded %s: %d characters, %d undo entries", svc.saveKey, len(state.Characters), state.Undo.Len())
		svc.state = state
	case errors.IsNotFound(err):
		log.Printf("[TRACKER] No save found at %s, starting a new tracker", svc.saveKey)
		svc.state = trackerstate.NewState(svc.settings(cfg.Settings))
	default:
		return nil, errors.Persistence(err, "failed to load tracker "+svc.saveKey)
	}

	return svc, nil
}

// FromState wraps an existing state, for callers that loaded it themselves
func FromState(cfg *ServiceConfig, state *trackerstate.State) (Service, error) {
	if state == nil {
		return nil, errors.InvalidArgument("state is required")
	}
	state.Normalize()
	if err := state.Validate(); err != nil {
		return nil, err
	}

	svc := newService(cfg)
	svc.state = state
	return svc, nil
}

func newService(cfg *ServiceConfig) *service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if strings.TrimSpace(cfg.SaveKey) == "" {
		panic("save key is required")
	}

	svc := &service{
		repository: cfg.Repository,
		saveKey:    cfg.SaveKey,
		bus:        cfg.Bus,
	}

	if cfg.IDGenerator != nil {
		svc.ids = cfg.IDGenerator
	} else {
		svc.ids = uuid.NewTimeOrderedGenerator()
	}

	return svc
}

func (s *service) settings(settings trackerstate.Settings) trackerstate.Settings {
	if settings == (trackerstate.Settings{}) {
		return trackerstate.DefaultSettings()
	}
	if settings.TieBreak == "" {
		settings.TieBreak = character.DefaultTieBreak
	}
	return settings
}

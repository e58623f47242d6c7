package tracker_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/pathtracker/internal/domain/character"
	"github.com/KirkDiggler/pathtracker/internal/domain/conditions"
	"github.com/KirkDiggler/pathtracker/internal/events"
	"github.com/KirkDiggler/pathtracker/internal/repositories/trackers"
	"github.com/KirkDiggler/pathtracker/internal/services/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []events.Event
}

func (r *recorder) listen(bus *events.Bus) {
	bus.SubscribeAll(events.NewListener("recorder", events.PriorityReporting, func(e events.Event) error {
		r.events = append(r.events, e)
		return nil
	}),
		events.EventTypeTurnStarted,
		events.EventTypeTurnEnded,
		events.EventTypePersistentDamage,
		events.EventTypeCharacterAdded,
		events.EventTypeCharacterRemoved,
		events.EventTypeCharacterMoved,
		events.EventTypeUndone,
		events.EventTypeRedone,
	)
}

func (r *recorder) types() []events.EventType {
	var types []events.EventType
	for _, e := range r.events {
		types = append(types, e.GetType())
	}
	return types
}

func newEventedService(t *testing.T) (tracker.Service, *recorder) {
	t.Helper()
	bus := events.NewBus()
	rec := &recorder{}
	rec.listen(bus)

	svc := tracker.NewService(&tracker.ServiceConfig{
		Repository: trackers.NewNoopRepository(),
		SaveKey:    saveKey,
		Bus:        bus,
	})
	return svc, rec
}

func TestEvents_EndTurn(t *testing.T) {
	svc, rec := newEventedService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddCharacter(ctx, character.New("Ana", 15, true).WithHealth(10)))
	require.NoError(t, svc.AddCharacter(ctx, character.New("Bo", 10, false)))
	require.NoError(t, svc.AddCondition(ctx, "Ana", conditions.NewPersistentDamage(conditions.Acid).WithLevel(4).MustBuild()))
	_, err := svc.EndTurn(ctx)
	require.NoError(t, err)
	_, err = svc.EndTurn(ctx)
	require.NoError(t, err)

	assert.Equal(t, []events.EventType{
		events.EventTypeCharacterAdded,
		events.EventTypeCharacterAdded,
		events.EventTypeTurnStarted,
		events.EventTypePersistentDamage,
		events.EventTypeTurnEnded,
		events.EventTypeTurnStarted,
	}, rec.types())

	damage, ok := rec.events[3].(*events.PersistentDamageEvent)
	require.True(t, ok)
	assert.Equal(t, "Ana", damage.GetCharacter())
	assert.Equal(t, 4, damage.Amount)
	assert.Equal(t, 4, damage.Lost)

	started, ok := rec.events[5].(*events.TurnStartedEvent)
	require.True(t, ok)
	assert.Equal(t, "Bo", started.GetCharacter())
	assert.Equal(t, 1, started.Index)
}

func TestEvents_MovedAndHistory(t *testing.T) {
	svc, rec := newEventedService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddCharacter(ctx, character.New("Ana", 15, true)))
	require.NoError(t, svc.AddCharacter(ctx, character.New("Bo", 10, false)))
	_, err := svc.EndTurn(ctx)
	require.NoError(t, err)
	rec.events = nil

	_, err = svc.ChangeInitiative(ctx, "Bo", 20)
	require.NoError(t, err)
	require.NoError(t, svc.Undo(ctx))
	require.NoError(t, svc.Redo(ctx))
	require.NoError(t, svc.RemoveCharacter(ctx, "Bo"))

	assert.Equal(t, []events.EventType{
		events.EventTypeCharacterMoved,
		events.EventTypeUndone,
		events.EventTypeRedone,
		events.EventTypeCharacterRemoved,
	}, rec.types())

	moved, ok := rec.events[0].(*events.CharacterMovedEvent)
	require.True(t, ok)
	assert.Equal(t, "Bo", moved.GetCharacter())
	assert.Equal(t, "skipped", moved.Kind)

	undone, ok := rec.events[1].(*events.HistoryEvent)
	require.True(t, ok)
	assert.Equal(t, tracker.OpChangeInitiative, undone.Operation)
}

func TestEvents_ListenerCanReadTracker(t *testing.T) {
	bus := events.NewBus()
	svc := tracker.NewService(&tracker.ServiceConfig{
		Repository: trackers.NewNoopRepository(),
		SaveKey:    saveKey,
		Bus:        bus,
	})

	var seen string
	bus.Subscribe(events.EventTypeTurnStarted, events.NewListener("reader", events.PriorityDefault, func(e events.Event) error {
		seen = svc.InTurn().Name
		return nil
	}))

	require.NoError(t, svc.AddCharacter(context.Background(), character.New("Ana", 15, true)))
	_, err := svc.EndTurn(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana", seen)
}

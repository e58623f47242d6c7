package trackers

import (
	"context"

	"github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	"github.com/KirkDiggler/pathtracker/internal/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/KirkDiggler/pathtracker/internal/repositories/trackers"

// TracedRepository records a span around every save and load
type TracedRepository struct {
	next    Repository
	backend string
	tracer  trace.Tracer
}

// NewTracedRepository wraps next. backend labels the spans. A nil provider
// uses the global one.
func NewTracedRepository(next Repository, backend string, provider trace.TracerProvider) *TracedRepository {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &TracedRepository{
		next:    next,
		backend: backend,
		tracer:  provider.Tracer(tracerName),
	}
}

// Save implements Repository
func (r *TracedRepository) Save(ctx context.Context, key string, state *tracker.State) error {
	ctx, span := r.tracer.Start(ctx, "trackers.Save", trace.WithAttributes(r.attrs(key)...))
	defer span.End()

	if state != nil {
		span.SetAttributes(
			attribute.Int("tracker.characters", len(state.Characters)),
			attribute.Int("tracker.undo_depth", state.Undo.Len()),
		)
	}

	err := r.next.Save(ctx, key, state)
	record(span, err)
	return err
}

// Load implements Repository
func (r *TracedRepository) Load(ctx context.Context, key string) (*tracker.State, error) {
	ctx, span := r.tracer.Start(ctx, "trackers.Load", trace.WithAttributes(r.attrs(key)...))
	defer span.End()

	state, err := r.next.Load(ctx, key)
	if errors.IsNotFound(err) {
		span.SetAttributes(attribute.Bool("tracker.found", false))
		return state, err
	}
	record(span, err)
	return state, err
}

func (r *TracedRepository) attrs(key string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("tracker.key", key),
		attribute.String("tracker.backend", r.backend),
	}
}

func record(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-prelude/prelude/lazy"
)

// Instrument records OpenTelemetry metrics for streams of T:
//
//	<name>.values  counter of values consumed
//	<name>.errors  counter of errors consumed
//	<name>.active  number of streams currently being consumed
//
// Measurements are recorded against the context passed to Instrument.
func Instrument[T any](ctx context.Context, meter metric.Meter, name string) (context.Context, error) {
	values, err := meter.Int64Counter(name+".values", metric.WithDescription("values consumed"))
	if err != nil {
		return ctx, fmt.Errorf("create %s.values counter: %w", name, err)
	}
	errors, err := meter.Int64Counter(name+".errors", metric.WithDescription("errors consumed"))
	if err != nil {
		return ctx, fmt.Errorf("create %s.errors counter: %w", name, err)
	}
	active, err := meter.Int64UpDownCounter(name+".active", metric.WithDescription("streams being consumed"))
	if err != nil {
		return ctx, fmt.Errorf("create %s.active counter: %w", name, err)
	}

	return lazy.WithHooks(ctx, lazy.Hooks[T]{
		OnStart:    func() { active.Add(ctx, 1) },
		OnValue:    func(T) { values.Add(ctx, 1) },
		OnError:    func(error) { errors.Add(ctx, 1) },
		OnComplete: func() { active.Add(ctx, -1) },
	}), nil
}

package observe

import (
	"context"
	"errors"
	"slices"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lguimbarda/min-prelude/prelude/lazy"
)

func failOnZero(n int) int {
	if n == 0 {
		panic("zero")
	}
	return 10 / n
}

func TestCounter(t *testing.T) {
	ctx, counter := WithCounter[int](context.Background())
	lazy.Collect(ctx, lazy.Map(failOnZero).Apply(lazy.FromSlice([]int{1, 0, 2, 5})))

	if counter.Values() != 3 || counter.Errors() != 1 || counter.Total() != 4 {
		t.Errorf("expected 3 values and 1 error, got %d and %d", counter.Values(), counter.Errors())
	}
}

func TestCounterOnlyCountsConsumed(t *testing.T) {
	ctx, counter := WithCounter[int](context.Background())
	_, err := lazy.Slice(ctx, lazy.Take[int](4).Apply(lazy.EnumFrom(0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter.Values() != 4 {
		t.Errorf("expected 4 values, got %d", counter.Values())
	}
}

func TestCounterStopsWithTerminal(t *testing.T) {
	ctx, counter := WithCounter[int](context.Background())
	if _, err := lazy.First(ctx, lazy.EnumFrom(0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter.Values() != 1 {
		t.Errorf("First: expected 1 value, got %d", counter.Values())
	}

	ctx, counter = WithCounter[int](context.Background())
	seen := 0
	for range lazy.All(ctx, lazy.EnumFrom(0)) {
		seen++
		if seen == 3 {
			break
		}
	}
	if counter.Values() != 3 {
		t.Errorf("All: expected 3 values, got %d", counter.Values())
	}
}

func TestHooksAreTyped(t *testing.T) {
	ctx, ints := WithCounter[int](context.Background())
	lazy.Collect(ctx, lazy.FromSlice([]string{"a", "b"}))
	if ints.Total() != 0 {
		t.Errorf("int counter saw a string stream: %d", ints.Total())
	}
}

func TestLifecycleHooks(t *testing.T) {
	var events []string
	ctx := WithStartHook[int](context.Background(), func() { events = append(events, "start") })
	ctx = WithValueHook(ctx, func(int) { events = append(events, "value") })
	ctx = WithCompleteHook[int](ctx, func() { events = append(events, "complete") })

	lazy.Collect(ctx, lazy.Range(0, 2))

	expected := []string{"start", "value", "value", "complete"}
	if !slices.Equal(events, expected) {
		t.Errorf("expected %v, got %v", expected, events)
	}
}

func TestErrorCollector(t *testing.T) {
	ctx, collector := WithErrorCollector[int](context.Background())
	lazy.Collect(ctx, lazy.Map(failOnZero).Apply(lazy.FromSlice([]int{0, 1, 0})))

	errs := collector.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errors.Unwrap(errs[0]) != nil {
		t.Errorf("a string panic value should not unwrap, got %v", errors.Unwrap(errs[0]))
	}
}

func TestInstrument(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("prelude/observe")

	ctx, err := Instrument[int](context.Background(), meter, "prelude.test")
	if err != nil {
		t.Fatalf("instrument: %v", err)
	}
	ctx, counter := WithCounter[int](ctx)

	results := lazy.Collect(ctx, lazy.Map(failOnZero).Apply(lazy.FromSlice([]int{1, 0, 2})))
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if counter.Values() != 2 || counter.Errors() != 1 {
		t.Errorf("instrumented stream should still reach later hooks, got %d/%d", counter.Values(), counter.Errors())
	}
}

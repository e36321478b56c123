// Package observe attaches observers to lazy streams.
//
// Observers are lazy.Hooks registered on the context for one element type,
// and fire as a terminal consumes the stream:
//
//	ctx, counter := observe.WithCounter[int](ctx)
//	xs, _ := lazy.Slice(ctx, stream)
//	fmt.Println(counter.Values())
package observe

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lguimbarda/min-prelude/prelude/lazy"
)

// WithValueHook calls callback for each value consumed from a stream of T.
func WithValueHook[T any](ctx context.Context, callback func(T)) context.Context {
	return lazy.WithHooks(ctx, lazy.Hooks[T]{OnValue: callback})
}

// WithErrorHook calls callback for each error consumed from a stream of T.
func WithErrorHook[T any](ctx context.Context, callback func(error)) context.Context {
	return lazy.WithHooks(ctx, lazy.Hooks[T]{OnError: callback})
}

// WithStartHook calls callback when a stream of T starts being consumed.
func WithStartHook[T any](ctx context.Context, callback func()) context.Context {
	return lazy.WithHooks(ctx, lazy.Hooks[T]{OnStart: callback})
}

// WithCompleteHook calls callback when a stream of T ends.
func WithCompleteHook[T any](ctx context.Context, callback func()) context.Context {
	return lazy.WithHooks(ctx, lazy.Hooks[T]{OnComplete: callback})
}

// Counter counts the values and errors of a stream.
type Counter struct {
	values atomic.Int64
	errors atomic.Int64
}

func (c *Counter) Values() int64 { return c.values.Load() }
func (c *Counter) Errors() int64 { return c.errors.Load() }
func (c *Counter) Total() int64  { return c.values.Load() + c.errors.Load() }

// WithCounter attaches a Counter for streams of T.
func WithCounter[T any](ctx context.Context) (context.Context, *Counter) {
	counter := &Counter{}
	ctx = lazy.WithHooks(ctx, lazy.Hooks[T]{
		OnValue: func(T) { counter.values.Add(1) },
		OnError: func(error) { counter.errors.Add(1) },
	})
	return ctx, counter
}

// ErrorCollector keeps every error seen on a stream.
type ErrorCollector struct {
	mu     sync.Mutex
	errors []error
}

// Errors returns a copy of the collected errors.
func (c *ErrorCollector) Errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]error(nil), c.errors...)
}

func (c *ErrorCollector) add(err error) {
	c.mu.Lock()
	c.errors = append(c.errors, err)
	c.mu.Unlock()
}

// WithErrorCollector attaches an ErrorCollector for streams of T.
func WithErrorCollector[T any](ctx context.Context) (context.Context, *ErrorCollector) {
	collector := &ErrorCollector{}
	return WithErrorHook[T](ctx, collector.add), collector
}

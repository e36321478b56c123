package lazy

import (
	"context"

	"github.com/lguimbarda/min-prelude/prelude/core"
)

// Protect calls f, turning a panic into a core.ErrPanic. Custom stages use
// it to run user callbacks.
func Protect[T any](f func() T) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.NewPanicError(r)
		}
	}()
	return f(), nil
}

// Mapper transforms each element of a Stream (1:1 cardinality).
// A panic in the mapping function becomes an error Result carrying a
// core.ErrPanic; the stream goes on.
type Mapper[IN, OUT any] struct {
	f    func(IN) OUT
	opts []Option
}

// Map creates a Mapper from a transformation function.
func Map[IN, OUT any](f func(IN) OUT, opts ...Option) Mapper[IN, OUT] {
	return Mapper[IN, OUT]{f: f, opts: opts}
}

// Apply transforms a stream using this Mapper.
func (m Mapper[IN, OUT]) Apply(s Stream[IN]) Stream[OUT] {
	return Emit(func(ctx context.Context) <-chan Result[OUT] {
		out := newChannel[OUT](ctx, m.opts)
		go func() {
			defer close(out)
			for res := range s.Emit(ctx) {
				var next Result[OUT]
				if res.IsError() {
					next = retype[IN, OUT](res)
				} else if v, err := Protect(func() OUT { return m.f(res.Value()) }); err != nil {
					next = Err[OUT](err)
				} else {
					next = Ok(v)
				}
				if !send(ctx, out, next) {
					return
				}
			}
		}()
		return out
	})
}

// Filter creates a Transformer that keeps only the values satisfying pred.
// Errors pass through.
func Filter[T any](pred func(T) bool, opts ...Option) Transformer[T, T] {
	return Transmit(func(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
		out := newChannel[T](ctx, opts)
		go func() {
			defer close(out)
			for res := range in {
				if res.IsValue() {
					keep, err := Protect(func() bool { return pred(res.Value()) })
					if err != nil {
						res = Err[T](err)
					} else if !keep {
						continue
					}
				}
				if !send(ctx, out, res) {
					return
				}
			}
		}()
		return out
	})
}

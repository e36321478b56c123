package lazy

import (
	"context"
	"iter"
)

// Emitter is a function that produces a channel of Results. It implements
// Stream and is the usual way to build one.
type Emitter[OUT any] func(context.Context) <-chan Result[OUT]

// Emit creates an Emitter from a channel-producing function.
func Emit[OUT any](emitter func(context.Context) <-chan Result[OUT]) Emitter[OUT] {
	return emitter
}

func (e Emitter[OUT]) Emit(ctx context.Context) <-chan Result[OUT] {
	return e(ctx)
}

func (e Emitter[OUT]) Collect(ctx context.Context) []Result[OUT] {
	return Collect(ctx, e)
}

func (e Emitter[OUT]) All(ctx context.Context) iter.Seq[Result[OUT]] {
	return All(ctx, e)
}

// Transmitter transforms one channel of Results into another. It
// implements Transformer.
type Transmitter[IN, OUT any] func(context.Context, <-chan Result[IN]) <-chan Result[OUT]

// Transmit creates a Transmitter from a channel transformation function.
func Transmit[IN, OUT any](transmitter func(context.Context, <-chan Result[IN]) <-chan Result[OUT]) Transmitter[IN, OUT] {
	return transmitter
}

func (t Transmitter[IN, OUT]) Apply(in Stream[IN]) Stream[OUT] {
	return Emit(func(ctx context.Context) <-chan Result[OUT] {
		return t(ctx, in.Emit(ctx))
	})
}

// send delivers res unless ctx is cancelled first. It reports whether the
// value was sent.
func send[T any](ctx context.Context, out chan<- Result[T], res Result[T]) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- res:
		return true
	}
}

// Observe creates a Transmitter that passes every Result through unchanged
// while invoking the Hooks registered on the context for type T. A Result
// is reported only once downstream has accepted it. Terminals already fire
// the hooks, so Observe is for streams of a different element type within
// a pipeline.
func Observe[T any]() Transmitter[T, T] {
	return Transmit(func(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
		hooks := newHookInvoker[T](ctx)
		if !hooks.any() {
			return in
		}

		out := make(chan Result[T])
		go func() {
			defer close(out)

			hooks.invokeStart()
			defer hooks.invokeComplete()

			for res := range in {
				if !send(ctx, out, res) {
					return
				}
				hooks.invokeResult(res)
			}
		}()
		return out
	})
}

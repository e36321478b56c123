// Package lazy provides lazy, possibly infinite lists as streams.
//
// A Stream does no work until a terminal operation (Slice, First, Run,
// Collect, All) consumes it. Terminals own a cancellable context that is
// shared by every stage, so taking a finite prefix of an infinite stream
// such as Iterate or Repeat stops the producers once the prefix is read.
//
//	xs, err := lazy.Slice(ctx, lazy.Take[int](5).Apply(lazy.Iterate(double, 1)))
//	// [1 2 4 8 16]
package lazy

import (
	"context"
	"iter"
)

// Stream is a lazy list. Emit starts producing its elements on a channel
// that is closed when the list ends or ctx is cancelled.
type Stream[OUT any] interface {
	Emit(context.Context) <-chan Result[OUT]

	Collect(context.Context) []Result[OUT]
	All(context.Context) iter.Seq[Result[OUT]]
}

// Collect gathers every Result, errors included. It must not be used on
// an infinite stream.
func Collect[OUT any](ctx context.Context, stream Stream[OUT]) []Result[OUT] {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hooks := startHooks[OUT](ctx)
	defer hooks.invokeComplete()

	var results []Result[OUT]
	for res := range stream.Emit(ctx) {
		hooks.invokeResult(res)
		results = append(results, res)
	}
	return results
}

// All returns an iterator over the stream's Results. Breaking out of the
// loop cancels the stream.
func All[OUT any](ctx context.Context, stream Stream[OUT]) iter.Seq[Result[OUT]] {
	return func(yield func(Result[OUT]) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		hooks := startHooks[OUT](ctx)
		defer hooks.invokeComplete()

		for res := range stream.Emit(ctx) {
			hooks.invokeResult(res)
			if !yield(res) {
				return
			}
		}
	}
}

// Transformer turns a Stream of IN into a Stream of OUT.
type Transformer[IN, OUT any] interface {
	Apply(Stream[IN]) Stream[OUT]
}

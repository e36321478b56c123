package lazy

import (
	"context"

	"github.com/lguimbarda/min-prelude/prelude/core"
)

// Terminal functions consume a stream and produce a final result. Each
// owns a cancellable context so that producers stop once it returns, and
// fires the context's Hooks on the consuming goroutine.

// Slice collects all stream values into a slice, stopping at the first
// error. It never returns on an infinite stream; Take a prefix first.
func Slice[OUT any](ctx context.Context, in Stream[OUT]) ([]OUT, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hooks := startHooks[OUT](ctx)
	defer hooks.invokeComplete()

	result := []OUT{}
	for res := range in.Emit(ctx) {
		hooks.invokeResult(res)
		if res.IsError() {
			return nil, res.Error()
		}
		result = append(result, res.Value())
	}
	return result, ctx.Err()
}

// First returns the first element of the stream, or core.ErrEmptyList.
func First[OUT any](ctx context.Context, in Stream[OUT]) (OUT, error) {
	var zero OUT

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hooks := startHooks[OUT](ctx)
	defer hooks.invokeComplete()

	res, ok := <-in.Emit(ctx)
	if ok {
		hooks.invokeResult(res)
	}
	switch {
	case !ok:
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, core.ErrEmptyList
	case res.IsError():
		return zero, res.Error()
	default:
		return res.Value(), nil
	}
}

// Run consumes the stream for its side effects, stopping at the first
// error.
func Run[OUT any](ctx context.Context, in Stream[OUT]) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hooks := startHooks[OUT](ctx)
	defer hooks.invokeComplete()

	for res := range in.Emit(ctx) {
		hooks.invokeResult(res)
		if res.IsError() {
			return res.Error()
		}
	}
	return ctx.Err()
}

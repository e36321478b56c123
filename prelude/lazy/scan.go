package lazy

import (
	"context"

	"github.com/lguimbarda/min-prelude/prelude/core"
)

// Scanl creates a Transformer that emits acc followed by every
// intermediate accumulator, like fold.Scanl. It is safe on infinite
// streams.
func Scanl[IN, OUT any](f func(OUT, IN) OUT, acc OUT, opts ...Option) Transformer[IN, OUT] {
	return Transmit(func(ctx context.Context, in <-chan Result[IN]) <-chan Result[OUT] {
		out := newChannel[OUT](ctx, opts)
		go func() {
			defer close(out)
			acc := acc
			if !send(ctx, out, Ok(acc)) {
				return
			}
			for res := range in {
				next := retype[IN, OUT](res)
				if res.IsValue() {
					v, err := Protect(func() OUT { return f(acc, res.Value()) })
					if err != nil {
						send(ctx, out, Err[OUT](err))
						return
					}
					acc = v
					next = Ok(acc)
				}
				if !send(ctx, out, next) {
					return
				}
			}
		}()
		return out
	})
}

// ZipWith combines two streams element by element with f. It ends when
// either stream ends. Errors from either side are forwarded without
// consuming an element from the other.
func ZipWith[A, B, C any](f func(A, B) C, as Stream[A], bs Stream[B], opts ...Option) Stream[C] {
	return Emit(func(ctx context.Context) <-chan Result[C] {
		out := newChannel[C](ctx, opts)
		go func() {
			defer close(out)
			inA := as.Emit(ctx)
			inB := bs.Emit(ctx)
			for {
				a, ok := nextValue(ctx, inA, out)
				if !ok {
					return
				}
				b, ok := nextValue(ctx, inB, out)
				if !ok {
					return
				}
				c, err := Protect(func() C { return f(a, b) })
				res := Ok(c)
				if err != nil {
					res = Err[C](err)
				}
				if !send(ctx, out, res) {
					return
				}
			}
		}()
		return out
	})
}

// Zip pairs up two streams.
func Zip[A, B any](as Stream[A], bs Stream[B], opts ...Option) Stream[core.Pair[A, B]] {
	return ZipWith(core.NewPair[A, B], as, bs, opts...)
}

// nextValue reads from in until it finds a value, forwarding errors to
// out. It reports false when in is closed or ctx is cancelled.
func nextValue[T, OUT any](ctx context.Context, in <-chan Result[T], out chan<- Result[OUT]) (T, bool) {
	for res := range in {
		if res.IsValue() {
			return res.Value(), true
		}
		if !send(ctx, out, retype[T, OUT](res)) {
			break
		}
	}
	var zero T
	return zero, false
}

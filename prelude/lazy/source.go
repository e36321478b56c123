package lazy

import (
	"context"
	"iter"

	"github.com/lguimbarda/min-prelude/prelude/core"
)

// Generate builds a source Stream. body runs on its own goroutine each
// time the Stream is emitted; send reports false once ctx is done, after
// which body should return.
func Generate[T any](body func(ctx context.Context, send func(Result[T]) bool), opts ...Option) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := newChannel[T](ctx, opts)
		go func() {
			defer close(out)
			body(ctx, func(res Result[T]) bool {
				return send(ctx, out, res)
			})
		}()
		return out
	})
}

// FromSlice creates a finite Stream from a slice.
func FromSlice[T any](items []T, opts ...Option) Stream[T] {
	return Generate(func(_ context.Context, send func(Result[T]) bool) {
		for _, item := range items {
			if !send(Ok(item)) {
				return
			}
		}
	}, opts...)
}

// FromIter creates a Stream from an iterator.
func FromIter[T any](seq iter.Seq[T], opts ...Option) Stream[T] {
	return Generate(func(_ context.Context, send func(Result[T]) bool) {
		for v := range seq {
			if !send(Ok(v)) {
				return
			}
		}
	}, opts...)
}

// Iterate creates the infinite Stream x, f(x), f(f(x)), ...
// A panic in f ends the Stream with an error Result.
func Iterate[T any](f func(T) T, x T, opts ...Option) Stream[T] {
	return Generate(func(_ context.Context, send func(Result[T]) bool) {
		x := x
		for send(Ok(x)) {
			next, err := Protect(func() T { return f(x) })
			if err != nil {
				send(Err[T](err))
				return
			}
			x = next
		}
	}, opts...)
}

// Repeat creates the infinite Stream x, x, x, ...
func Repeat[T any](x T, opts ...Option) Stream[T] {
	return Generate(func(_ context.Context, send func(Result[T]) bool) {
		for send(Ok(x)) {
		}
	}, opts...)
}

// Replicate creates a Stream of n copies of x.
func Replicate[T any](n int, x T, opts ...Option) Stream[T] {
	return Generate(func(_ context.Context, send func(Result[T]) bool) {
		for i := 0; i < n; i++ {
			if !send(Ok(x)) {
				return
			}
		}
	}, opts...)
}

// Cycle repeats the elements of xs forever. An empty xs gives an empty
// Stream rather than looping without output.
func Cycle[T any](xs []T, opts ...Option) Stream[T] {
	return Generate(func(_ context.Context, send func(Result[T]) bool) {
		if len(xs) == 0 {
			return
		}
		for {
			for _, x := range xs {
				if !send(Ok(x)) {
					return
				}
			}
		}
	}, opts...)
}

// Range creates the Stream start, start+1, ..., end-1.
func Range[T core.Integer](start, end T, opts ...Option) Stream[T] {
	return Generate(func(_ context.Context, send func(Result[T]) bool) {
		for i := start; i < end; i++ {
			if !send(Ok(i)) {
				return
			}
		}
	}, opts...)
}

// EnumFrom creates the infinite Stream start, start+1, start+2, ...
func EnumFrom[T core.Integer](start T, opts ...Option) Stream[T] {
	return Iterate(func(n T) T { return n + 1 }, start, opts...)
}

// Unfold builds a Stream from a seed. f returns the next element, the next
// seed, and false when the Stream should end.
//
//	// Fibonacci numbers
//	lazy.Unfold(func(s [2]int) (int, [2]int, bool) {
//	    return s[0], [2]int{s[1], s[0] + s[1]}, true
//	}, [2]int{0, 1})
func Unfold[T, S any](f func(S) (T, S, bool), seed S, opts ...Option) Stream[T] {
	return Generate(func(_ context.Context, send func(Result[T]) bool) {
		type step struct {
			v    T
			next S
			ok   bool
		}
		seed := seed
		for {
			st, err := Protect(func() step {
				v, next, ok := f(seed)
				return step{v, next, ok}
			})
			if err != nil {
				send(Err[T](err))
				return
			}
			if !st.ok || !send(Ok(st.v)) {
				return
			}
			seed = st.next
		}
	}, opts...)
}

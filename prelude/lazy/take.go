package lazy

import "context"

// Take creates a Transformer that passes through only the first n values.
// Errors pass through without being counted. If n <= 0 the result is
// empty and the input is never consumed.
func Take[T any](n int, opts ...Option) Transformer[T, T] {
	return Transmit(func(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
		out := newChannel[T](ctx, opts)
		go func() {
			defer close(out)
			if n <= 0 {
				return
			}

			count := 0
			for res := range in {
				if !send(ctx, out, res) {
					return
				}
				if res.IsValue() {
					count++
					if count >= n {
						return
					}
				}
			}
		}()
		return out
	})
}

// Drop creates a Transformer that skips the first n values.
func Drop[T any](n int, opts ...Option) Transformer[T, T] {
	return Transmit(func(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
		out := newChannel[T](ctx, opts)
		go func() {
			defer close(out)
			skipped := 0
			for res := range in {
				if res.IsValue() && skipped < n {
					skipped++
					continue
				}
				if !send(ctx, out, res) {
					return
				}
			}
		}()
		return out
	})
}

// TakeWhile creates a Transformer that passes through values while pred
// holds. The stream ends at the first value that fails it.
func TakeWhile[T any](pred func(T) bool, opts ...Option) Transformer[T, T] {
	return Transmit(func(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
		out := newChannel[T](ctx, opts)
		go func() {
			defer close(out)
			for res := range in {
				if res.IsValue() {
					keep, err := Protect(func() bool { return pred(res.Value()) })
					if err != nil {
						send(ctx, out, Err[T](err))
						return
					}
					if !keep {
						return
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

// DropWhile creates a Transformer that skips values while pred holds and
// passes everything after the first value that fails it.
func DropWhile[T any](pred func(T) bool, opts ...Option) Transformer[T, T] {
	return Transmit(func(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
		out := newChannel[T](ctx, opts)
		go func() {
			defer close(out)
			dropping := true
			for res := range in {
				if dropping && res.IsValue() {
					skip, err := Protect(func() bool { return pred(res.Value()) })
					switch {
					case err != nil:
						res = Err[T](err)
					case skip:
						continue
					default:
						dropping = false
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

// Package par evaluates list functions in parallel.
//
// The slice functions keep the order of their input and stop at the first
// error. A panic in a user function is recovered and returned as a
// core.ErrPanic. If n <= 0, one worker is used.
package par

import (
	"github.com/destel/rill"

	"github.com/lguimbarda/min-prelude/prelude/core"
)

func workers(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

// safe calls f, turning a panic into a core.ErrPanic.
func safe[T any](f func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.NewPanicError(r)
		}
	}()
	return f()
}

// Map applies f to every element of xs using n workers.
func Map[A, B any](n int, f func(A) B, xs []A) ([]B, error) {
	return MapErr(n, func(x A) (B, error) { return f(x), nil }, xs)
}

// MapErr is Map for a function that can fail.
func MapErr[A, B any](n int, f func(A) (B, error), xs []A) ([]B, error) {
	in := rill.FromSlice(xs, nil)
	out := rill.OrderedMap(in, workers(n), func(x A) (B, error) {
		return safe(func() (B, error) { return f(x) })
	})
	ys, err := rill.ToSlice(out)
	if err != nil {
		return nil, err
	}
	if ys == nil {
		ys = []B{}
	}
	return ys, nil
}

// Filter keeps the elements of xs that satisfy pred, testing them with n
// workers.
func Filter[T any](n int, pred func(T) bool, xs []T) ([]T, error) {
	in := rill.FromSlice(xs, nil)
	out := rill.OrderedFilter(in, workers(n), func(x T) (bool, error) {
		return safe(func() (bool, error) { return pred(x), nil })
	})
	ys, err := rill.ToSlice(out)
	if err != nil {
		return nil, err
	}
	if ys == nil {
		ys = []T{}
	}
	return ys, nil
}

// Each calls f on every element of xs using n workers. Calls may happen in
// any order.
func Each[T any](n int, f func(T) error, xs []T) error {
	return rill.ForEach(rill.FromSlice(xs, nil), workers(n), func(x T) error {
		_, err := safe(func() (struct{}, error) { return struct{}{}, f(x) })
		return err
	})
}

// Reduce combines the elements of xs with f using n workers. f must be
// associative and commutative, since elements are combined in no fixed
// order. An empty xs returns core.ErrEmptyList.
func Reduce[T any](n int, f func(T, T) T, xs []T) (T, error) {
	in := rill.FromSlice(xs, nil)
	res, ok, err := rill.Reduce(in, workers(n), func(x, y T) (T, error) {
		return safe(func() (T, error) { return f(x, y), nil })
	})
	if err != nil {
		return res, err
	}
	if !ok {
		return res, core.ErrEmptyList
	}
	return res, nil
}

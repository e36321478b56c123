// Package list provides the prelude's basic operations on slices.
//
// Functions never modify their input. Partial functions (Head, Last,
// Index) return an error instead of a zero value when the result is
// undefined.
package list

import (
	"github.com/samber/lo"

	"github.com/lguimbarda/min-prelude/prelude/core"
)

// Map applies f to each element, returning a new slice of the results.
func Map[A, B any](f func(A) B, xs []A) []B {
	return lo.Map(xs, func(x A, _ int) B {
		return f(x)
	})
}

// Filter returns the elements for which pred returns true.
func Filter[A any](pred func(A) bool, xs []A) []A {
	return lo.Filter(xs, func(x A, _ int) bool {
		return pred(x)
	})
}

// Partition splits xs into the elements that satisfy pred and the
// elements that do not, preserving order in both.
func Partition[A any](pred func(A) bool, xs []A) core.Pair[[]A, []A] {
	kept, rejected := lo.FilterReject(xs, func(x A, _ int) bool {
		return pred(x)
	})
	return core.NewPair(kept, rejected)
}

// Append returns a new slice holding xs followed by ys.
func Append[A any](xs, ys []A) []A {
	out := make([]A, 0, len(xs)+len(ys))
	out = append(out, xs...)
	return append(out, ys...)
}

// Each calls f on every element for its side effects and returns xs.
func Each[A any](f func(A), xs []A) []A {
	lo.ForEach(xs, func(x A, _ int) {
		f(x)
	})
	return xs
}

// Head returns the first element, or core.ErrEmptyList.
func Head[A any](xs []A) (A, error) {
	if len(xs) == 0 {
		var zero A
		return zero, core.ErrEmptyList
	}
	return xs[0], nil
}

// Last returns the final element, or core.ErrEmptyList.
func Last[A any](xs []A) (A, error) {
	if len(xs) == 0 {
		var zero A
		return zero, core.ErrEmptyList
	}
	return xs[len(xs)-1], nil
}

// Tail returns everything after the first element. The tail of an empty
// list is empty.
func Tail[A any](xs []A) []A {
	return Drop(1, xs)
}

// Init returns everything except the final element. The init of an empty
// list is empty.
func Init[A any](xs []A) []A {
	if len(xs) == 0 {
		return []A{}
	}
	return Take(len(xs)-1, xs)
}

// Null reports whether xs is empty.
func Null[A any](xs []A) bool {
	return len(xs) == 0
}

// Length returns the number of elements. O(1).
func Length[A any](xs []A) int {
	return len(xs)
}

// Index returns the element at position i, counting from 0.
func Index[A any](xs []A, i int) (A, error) {
	var zero A
	switch {
	case i < 0:
		return zero, core.ErrNegativeIndex
	case i >= len(xs):
		return zero, core.ErrIndexTooLarge
	}
	return xs[i], nil
}

// Reverse returns the elements of xs in reverse order.
func Reverse[A any](xs []A) []A {
	out := make([]A, len(xs))
	copy(out, xs)
	return lo.Reverse(out)
}

// Concat flattens a list of lists.
func Concat[A any](xss [][]A) []A {
	return lo.Flatten(xss)
}

// ConcatMap maps f over xs and concatenates the results.
func ConcatMap[A, B any](f func(A) []B, xs []A) []B {
	return lo.FlatMap(xs, func(x A, _ int) []B {
		return f(x)
	})
}

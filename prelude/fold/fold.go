// Package fold reduces lists to single values (folds) and builds lists of
// intermediate results (scans).
package fold

import (
	"gonum.org/v1/gonum/floats"

	"github.com/lguimbarda/min-prelude/prelude/core"
	"github.com/lguimbarda/min-prelude/prelude/ord"
)

// Foldl reduces xs from the left: f(f(f(acc, x0), x1), x2)...
func Foldl[A, B any](f func(B, A) B, acc B, xs []A) B {
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// Foldl1 is Foldl using the first element as the starting value.
// It returns core.ErrEmptyList for an empty list.
func Foldl1[A any](f func(A, A) A, xs []A) (A, error) {
	if len(xs) == 0 {
		var zero A
		return zero, core.ErrEmptyList
	}
	return Foldl(f, xs[0], xs[1:]), nil
}

// Foldr reduces xs from the right: f(x0, f(x1, f(x2, acc)))...
func Foldr[A, B any](f func(A, B) B, acc B, xs []A) B {
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

// Foldr1 is Foldr using the last element as the starting value.
// It returns core.ErrEmptyList for an empty list.
func Foldr1[A any](f func(A, A) A, xs []A) (A, error) {
	if len(xs) == 0 {
		var zero A
		return zero, core.ErrEmptyList
	}
	last := len(xs) - 1
	return Foldr(f, xs[last], xs[:last]), nil
}

// And reports whether every element is true. And of an empty list is true.
func And(xs []bool) bool {
	return All(func(x bool) bool { return x }, xs)
}

// Or reports whether any element is true. Or of an empty list is false.
func Or(xs []bool) bool {
	return Any(func(x bool) bool { return x }, xs)
}

// Any reports whether pred holds for some element. It stops at the first
// match.
func Any[A any](pred func(A) bool, xs []A) bool {
	for _, x := range xs {
		if pred(x) {
			return true
		}
	}
	return false
}

// All reports whether pred holds for every element. It stops at the first
// failure.
func All[A any](pred func(A) bool, xs []A) bool {
	for _, x := range xs {
		if !pred(x) {
			return false
		}
	}
	return true
}

// Sum adds the elements. The sum of an empty list is 0.
func Sum[T core.Number](xs []T) T {
	return Foldl(func(acc, x T) T { return acc + x }, 0, xs)
}

// SumFloats is Sum for float64 slices.
func SumFloats(xs []float64) float64 {
	return floats.Sum(xs)
}

// Product multiplies the elements. The product of an empty list is 1.
func Product[T core.Number](xs []T) T {
	return Foldl(func(acc, x T) T { return acc * x }, 1, xs)
}

// Maximum returns the largest element, or core.ErrEmptyList. Among equal
// elements the last one wins, as with ord.Max.
func Maximum[T core.Ordered](xs []T) (T, error) {
	return Foldl1(ord.Max[T], xs)
}

// Minimum returns the smallest element, or core.ErrEmptyList. Among equal
// elements the first one wins, as with ord.Min.
func Minimum[T core.Ordered](xs []T) (T, error) {
	return Foldl1(ord.Min[T], xs)
}

// MaximumBy is Maximum under a Comparator.
func MaximumBy[T any](c ord.Comparator[T], xs []T) (T, error) {
	return Foldl1(func(x, y T) T { return ord.MaxBy(c, x, y) }, xs)
}

// MinimumBy is Minimum under a Comparator.
func MinimumBy[T any](c ord.Comparator[T], xs []T) (T, error) {
	return Foldl1(func(x, y T) T { return ord.MinBy(c, x, y) }, xs)
}

package list

import (
	"github.com/samber/lo"

	"github.com/lguimbarda/min-prelude/prelude/core"
)

// Replicate returns a list of n copies of x. n <= 0 gives an empty list.
func Replicate[A any](n int, x A) []A {
	if n <= 0 {
		return []A{}
	}
	return lo.Times(n, func(int) A {
		return x
	})
}

// clamp limits n to [0, len].
func clamp(n, length int) int {
	return max(0, min(n, length))
}

// Take returns the first n elements, or all of xs if it is shorter.
func Take[A any](n int, xs []A) []A {
	n = clamp(n, len(xs))
	out := make([]A, n)
	copy(out, xs[:n])
	return out
}

// Drop returns xs without its first n elements.
func Drop[A any](n int, xs []A) []A {
	return lo.Drop(xs, clamp(n, len(xs)))
}

// SplitAt is (Take(n, xs), Drop(n, xs)).
func SplitAt[A any](n int, xs []A) core.Pair[[]A, []A] {
	return core.NewPair(Take(n, xs), Drop(n, xs))
}

// TakeWhile returns the longest prefix whose elements satisfy pred.
func TakeWhile[A any](pred func(A) bool, xs []A) []A {
	return Take(prefixLength(pred, xs), xs)
}

// DropWhile returns what remains after TakeWhile.
func DropWhile[A any](pred func(A) bool, xs []A) []A {
	return Drop(prefixLength(pred, xs), xs)
}

// Span is (TakeWhile(pred, xs), DropWhile(pred, xs)).
func Span[A any](pred func(A) bool, xs []A) core.Pair[[]A, []A] {
	return SplitAt(prefixLength(pred, xs), xs)
}

// Break is Span with the predicate negated.
func Break[A any](pred func(A) bool, xs []A) core.Pair[[]A, []A] {
	return Span(func(x A) bool { return !pred(x) }, xs)
}

func prefixLength[A any](pred func(A) bool, xs []A) int {
	for i, x := range xs {
		if !pred(x) {
			return i
		}
	}
	return len(xs)
}

// Elem reports whether x occurs in xs.
func Elem[A comparable](x A, xs []A) bool {
	return lo.Contains(xs, x)
}

// NotElem is the negation of Elem.
func NotElem[A comparable](x A, xs []A) bool {
	return !Elem(x, xs)
}

// Lookup finds the value of the first pair whose key equals key.
func Lookup[K comparable, V any](key K, pairs []core.Pair[K, V]) (V, bool) {
	for _, p := range pairs {
		if p.Fst() == key {
			return p.Snd(), true
		}
	}
	var zero V
	return zero, false
}

// Package ord provides ordering functions over cmp.Ordered values.
package ord

import (
	"cmp"

	"github.com/lguimbarda/min-prelude/prelude/core"
)

// Ordering is the result of a comparison.
type Ordering int

const (
	LT Ordering = -1
	EQ Ordering = 0
	GT Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case LT:
		return "LT"
	case EQ:
		return "EQ"
	case GT:
		return "GT"
	default:
		return "Ordering(?)"
	}
}

// Compare returns LT if x < y, GT if x > y and EQ otherwise. NaN compares
// equal to everything, as no ordering holds for it.
func Compare[T core.Ordered](x, y T) Ordering {
	if x < y {
		return LT
	}
	if x > y {
		return GT
	}
	return EQ
}

// Max returns the greater of x and y. When they are equal, or not
// comparable, y is returned.
func Max[T core.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Min returns the lesser of x and y. When they are equal, or not
// comparable, x is returned.
func Min[T core.Ordered](x, y T) T {
	if y < x {
		return y
	}
	return x
}

// Comparator orders two values of T.
type Comparator[T any] func(x, y T) Ordering

// Comparing builds a Comparator that orders by a key, e.g.
//
//	byAge := ord.Comparing(func(p Person) int { return p.Age })
func Comparing[T any, K core.Ordered](key func(T) K) Comparator[T] {
	return func(x, y T) Ordering {
		return Compare(key(x), key(y))
	}
}

// CompareBy adapts a cmp-style function returning an int.
func CompareBy[T any](f func(x, y T) int) Comparator[T] {
	return func(x, y T) Ordering {
		return Ordering(cmp.Compare(f(x, y), 0))
	}
}

// MaxBy is Max under a Comparator. Ties return y.
func MaxBy[T any](c Comparator[T], x, y T) T {
	if c(x, y) == GT {
		return x
	}
	return y
}

// MinBy is Min under a Comparator. Ties return x.
func MinBy[T any](c Comparator[T], x, y T) T {
	if c(y, x) == LT {
		return y
	}
	return x
}

package fn

import "github.com/lguimbarda/min-prelude/prelude/core"

// Curry converts a two argument function into a chain of one argument
// functions.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 is Curry for three arguments.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry is the inverse of Curry.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Uncurry3 is the inverse of Curry3.
func Uncurry3[A, B, C, D any](f func(A) func(B) func(C) D) func(A, B, C) D {
	return func(a A, b B, c C) D {
		return f(a)(b)(c)
	}
}

// CurryPair turns a function on pairs into a function of two arguments.
// This is Haskell's curry.
func CurryPair[A, B, C any](f func(core.Pair[A, B]) C) func(A, B) C {
	return func(a A, b B) C {
		return f(core.NewPair(a, b))
	}
}

// UncurryPair turns a function of two arguments into a function on pairs.
// This is Haskell's uncurry.
func UncurryPair[A, B, C any](f func(A, B) C) func(core.Pair[A, B]) C {
	return func(p core.Pair[A, B]) C {
		return f(p.Unpack())
	}
}

// Variadic turns a function on a slice into a variadic function.
//
//	sum := fn.Variadic(fold.Sum[int])
//	sum(1, 2, 3) // 6
func Variadic[A, B any](f func([]A) B) func(...A) B {
	return func(args ...A) B {
		return f(args)
	}
}

// Spread turns a variadic function into a function on a slice.
func Spread[A, B any](f func(...A) B) func([]A) B {
	return func(args []A) B {
		return f(args...)
	}
}

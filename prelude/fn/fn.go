// Package fn provides the prelude's miscellaneous functions: identity,
// constants, composition, partial application, flipping and currying.
package fn

import "github.com/lguimbarda/min-prelude/prelude/core"

// Not is boolean negation.
func Not(x bool) bool {
	return !x
}

// Id returns its argument.
func Id[A any](x A) A {
	return x
}

// Const returns a function that ignores its argument and always returns x.
func Const[A, B any](x A) func(B) A {
	return func(B) A {
		return x
	}
}

// Const2 returns its first argument.
func Const2[A, B any](x A, _ B) A {
	return x
}

// Compose returns a function that applies g and then f: (f . g).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 is (f . g . h).
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(a A) D {
		return f(g(h(a)))
	}
}

// Pipe is Compose with the arguments in application order: g runs first.
func Pipe[A, B, C any](g func(A) B, f func(B) C) func(A) C {
	return Compose(f, g)
}

// Partial binds the first argument of f.
func Partial[A, B, C any](f func(A, B) C, a A) func(B) C {
	return func(b B) C {
		return f(a, b)
	}
}

// Partial2 binds the first two arguments of f.
func Partial2[A, B, C, D any](f func(A, B, C) D, a A, b B) func(C) D {
	return func(c C) D {
		return f(a, b, c)
	}
}

// Flip swaps the first two arguments of f.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// Call applies f to a.
func Call[A, B any](f func(A) B, a A) B {
	return f(a)
}

// Apply calls a variadic function with args.
func Apply[A, B any](f func(...A) B, args ...A) B {
	return f(args...)
}

// Until applies f to x until pred holds, returning the first value that
// satisfies it. x itself is returned if it already satisfies pred.
func Until[A any](pred func(A) bool, f func(A) A, x A) A {
	for !pred(x) {
		x = f(x)
	}
	return x
}

// Error aborts evaluation with msg. See core.Error.
func Error[T any](msg string) T {
	return core.Error[T](msg)
}

// Package num provides the prelude's numeric functions: sign handling,
// the four integer division variants, rounding and floating point helpers.
package num

import "github.com/lguimbarda/min-prelude/prelude/core"

// Negate returns -x.
func Negate[T core.SignedNumber](x T) T {
	return -x
}

// Abs returns the absolute value of x.
func Abs[T core.Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Signum returns -1, 0 or 1 according to the sign of x. NaN is returned
// unchanged.
func Signum[T core.Number](x T) T {
	switch {
	case x != x:
		return x
	case x > 0:
		return 1
	case x == 0:
		return 0
	default:
		var one T = 1
		return -one
	}
}

// Subtract returns y - x. With the arguments in this order it is useful
// for partial application.
func Subtract[T core.Number](x, y T) T {
	return y - x
}

// FromIntegral converts an integer to any numeric type.
func FromIntegral[I core.Integer, N core.Number](x I) N {
	return N(x)
}

func checkDivisor[T core.Integer](y T) {
	if y == 0 {
		panic(core.ErrDivideByZero)
	}
}

// Quot is integer division truncated toward zero: Quot(-3, 2) == -1.
// It panics with core.ErrDivideByZero when y is 0.
func Quot[T core.Integer](x, y T) T {
	checkDivisor(y)
	return x / y
}

// Rem is the remainder matching Quot: Quot(x, y)*y + Rem(x, y) == x.
// The result has the sign of x.
func Rem[T core.Integer](x, y T) T {
	checkDivisor(y)
	return x % y
}

// Div is integer division truncated toward negative infinity:
// Div(-3, 2) == -2.
func Div[T core.Integer](x, y T) T {
	checkDivisor(y)
	q := x / y
	if r := x % y; r != 0 && (r < 0) != (y < 0) {
		q--
	}
	return q
}

// Mod is the modulus matching Div: Div(x, y)*y + Mod(x, y) == x.
// The result has the sign of y.
func Mod[T core.Integer](x, y T) T {
	checkDivisor(y)
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

// QuotRem returns Quot and Rem together.
func QuotRem[T core.Integer](x, y T) core.Pair[T, T] {
	return core.NewPair(Quot(x, y), Rem(x, y))
}

// DivMod returns Div and Mod together.
func DivMod[T core.Integer](x, y T) core.Pair[T, T] {
	return core.NewPair(Div(x, y), Mod(x, y))
}

// Even reports whether x is divisible by 2.
func Even[T core.Integer](x T) bool {
	return x%2 == 0
}

// Odd reports whether x is not divisible by 2.
func Odd[T core.Integer](x T) bool {
	return x%2 != 0
}

// Gcd returns the greatest common divisor of x and y. The result is never
// negative and Gcd(0, 0) == 0.
func Gcd[T core.Integer](x, y T) T {
	x, y = Abs(x), Abs(y)
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// Lcm returns the smallest non-negative number that both x and y divide.
// It is 0 when either argument is 0.
func Lcm[T core.Integer](x, y T) T {
	if x == 0 || y == 0 {
		return 0
	}
	return Abs(Quot(x, Gcd(x, y)) * y)
}

// IntPow raises x to a non-negative integer power by repeated squaring.
// A negative exponent aborts with a core.UserError.
func IntPow[T core.Number, E core.Integer](x T, e E) T {
	if e < 0 {
		return core.Error[T]("negative exponent")
	}
	var result T = 1
	for e > 0 {
		if e&1 == 1 {
			result *= x
		}
		x *= x
		e >>= 1
	}
	return result
}

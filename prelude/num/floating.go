package num

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/lguimbarda/min-prelude/prelude/core"
)

// Recip returns 1/x.
func Recip[F core.Float](x F) F {
	return 1 / x
}

// Pi returns π.
func Pi() float64 {
	return math.Pi
}

func Exp[F core.Float](x F) F  { return F(math.Exp(float64(x))) }
func Sqrt[F core.Float](x F) F { return F(math.Sqrt(float64(x))) }
func Log[F core.Float](x F) F  { return F(math.Log(float64(x))) }
func Sin[F core.Float](x F) F  { return F(math.Sin(float64(x))) }
func Cos[F core.Float](x F) F  { return F(math.Cos(float64(x))) }
func Tan[F core.Float](x F) F  { return F(math.Tan(float64(x))) }
func Asin[F core.Float](x F) F { return F(math.Asin(float64(x))) }
func Acos[F core.Float](x F) F { return F(math.Acos(float64(x))) }
func Atan[F core.Float](x F) F { return F(math.Atan(float64(x))) }

// Atan2 returns the arc tangent of y/x, using the signs of both to pick
// the quadrant.
func Atan2[F core.Float](y, x F) F {
	return F(math.Atan2(float64(y), float64(x)))
}

// Pow returns x**y.
func Pow[F core.Float](x, y F) F {
	return F(math.Pow(float64(x), float64(y)))
}

// LogBase returns the logarithm of x in base b.
func LogBase[F core.Float](b, x F) F {
	return F(math.Log(float64(x)) / math.Log(float64(b)))
}

// ProperFraction splits x into an integral part, truncated toward zero, and
// a fractional part with the same sign as x:
//
//	ProperFraction(-7.25) // (-7, -0.25)
func ProperFraction[F core.Float](x F) core.Pair[int, F] {
	ip, frac := math.Modf(float64(x))
	return core.NewPair(int(ip), F(frac))
}

// Truncate returns the integer nearest x between 0 and x.
func Truncate[F core.Float](x F) F {
	return F(math.Trunc(float64(x)))
}

// Round returns the nearest integer to x, rounding halves to even:
// Round(2.5) == 2, Round(-1.5) == -2.
func Round[F core.Float](x F) F {
	return F(math.RoundToEven(float64(x)))
}

// RoundTo rounds x to the given number of decimal digits, rounding halves
// to even. Negative digits round to tens, hundreds, and so on.
func RoundTo(x float64, digits int) float64 {
	return scalar.RoundEven(x, digits)
}

// Ceiling returns the least integer not less than x.
func Ceiling[F core.Float](x F) F {
	return F(math.Ceil(float64(x)))
}

// Floor returns the greatest integer not greater than x.
func Floor[F core.Float](x F) F {
	return F(math.Floor(float64(x)))
}

// IsInfinite reports whether x is positive or negative infinity.
func IsInfinite[F core.Float](x F) bool {
	return math.IsInf(float64(x), 0)
}

// IsNaN reports whether x is not a number.
func IsNaN[F core.Float](x F) bool {
	return x != x
}

// IsNegativeZero reports whether x is -0.
func IsNegativeZero[F core.Float](x F) bool {
	return x == 0 && math.Signbit(float64(x))
}

package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

// SignedPow raises |base| to exponent and keeps the sign of base, so that
// transfer curves stay odd-symmetric for negative (out of gamut) inputs.
func SignedPow[T constraints.Float](base T, exponent T) T {
	if base < 0 {
		return -T(math.Pow(float64(-base), float64(exponent)))
	}
	return T(math.Pow(float64(base), float64(exponent)))
}

// Cbrt is the signed cube root.
func Cbrt[T constraints.Float](x T) T {
	return T(math.Cbrt(float64(x)))
}

// Wrap maps v into [0, period).
func Wrap[T constraints.Float](v T, period T) T {
	r := T(math.Mod(float64(v), float64(period)))
	if r < 0 {
		r += period
	}
	// -tiny + period can round up to period itself
	if r >= period {
		r = 0
	}
	return r
}

// MinMax3 returns the smallest and largest of three values. A NaN argument
// makes both results NaN.
func MinMax3[T constraints.Float](a T, b T, c T) (T, T) {
	if a != a || b != b || c != c {
		nan := T(math.NaN())
		return nan, nan
	}
	lo, hi := a, a
	for _, v := range [2]T{b, c} {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

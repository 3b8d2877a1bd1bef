package geocart

import (
	"math"

	"golang.org/x/exp/constraints"
)

// All kernel types are parameterized by a floating-point width. Formulas are
// written against these shims so that no function body hard-codes float64;
// the width is resolved once at the call site.

func abs[T constraints.Float](x T) T {
	return T(math.Abs(float64(x)))
}

func sin[T constraints.Float](x T) T {
	return T(math.Sin(float64(x)))
}

func cos[T constraints.Float](x T) T {
	return T(math.Cos(float64(x)))
}

func tan[T constraints.Float](x T) T {
	return T(math.Tan(float64(x)))
}

func asin[T constraints.Float](x T) T {
	return T(math.Asin(float64(x)))
}

func acos[T constraints.Float](x T) T {
	return T(math.Acos(float64(x)))
}

func atan[T constraints.Float](x T) T {
	return T(math.Atan(float64(x)))
}

func sqrt[T constraints.Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// remEuclid returns the least non-negative remainder of x modulo y.
func remEuclid[T constraints.Float](x, y T) T {
	r := T(math.Mod(float64(x), float64(y)))
	if r < 0 {
		r += abs(y)
	}
	return r
}

// clamp1 restricts x to [-1, 1] before it reaches an inverse trig function.
// Rounding can push a dot product of unit vectors a few ulps past 1, where
// acos would return NaN.
func clamp1[T constraints.Float](x T) T {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// sincosExact computes sin(rad) and cos(rad), returning exact 0/±1 at the
// boundary angles 0, ±π/2 and ±π so that canonical points (poles, equator
// crossings) convert without trig rounding error.
func sincosExact[T constraints.Float](rad T) (T, T) {
	switch {
	case rad == 0:
		return 0, 1
	case abs(rad) == T(math.Pi/2):
		if rad > 0 {
			return 1, 0
		}
		return -1, 0
	case abs(rad) == T(math.Pi):
		return 0, -1
	default:
		return sin(rad), cos(rad)
	}
}

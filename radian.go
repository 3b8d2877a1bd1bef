package geocart

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Radian is an angle normalized into the range [0, 2π). Any scalar angle can
// be used to construct one; values outside the range are remapped by
// Euclidean modulo, so -π/2 becomes 3π/2 and 2π becomes 0.
type Radian[T constraints.Float] struct {
	value T
}

func NewRadian[T constraints.Float](value T) Radian[T] {
	tau := T(2 * math.Pi)
	if value >= 0 && value < tau {
		return Radian[T]{value: value}
	}
	return Radian[T]{value: remEuclid(value, tau)}
}

// Value returns the angle as a plain scalar.
func (r Radian[T]) Value() T {
	return r.value
}

// Mul scales the angle by the given factor, re-normalizing the result.
func (r Radian[T]) Mul(factor T) Radian[T] {
	return NewRadian(r.value * factor)
}

package geocart

import "golang.org/x/exp/constraints"

// Positive is a scalar that is always greater than or equal to zero. The
// absolute value of the input is taken at construction, so a Positive can be
// built from any scalar without error.
type Positive[T constraints.Float] struct {
	value T
}

func NewPositive[T constraints.Float](value T) Positive[T] {
	return Positive[T]{value: abs(value)}
}

// Value returns the inner scalar.
func (p Positive[T]) Value() T {
	return p.value
}

package geocart

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Cartesian is a point in Euclidean 3-space. The zero value is the coordinate
// origin. Points are plain values; the WithX/WithY/WithZ builders return a
// modified copy rather than mutating in place.
type Cartesian[T constraints.Float] struct {
	X T
	Y T
	Z T
}

func (c Cartesian[T]) WithX(x T) Cartesian[T] {
	c.X = x
	return c
}

func (c Cartesian[T]) WithY(y T) Cartesian[T] {
	c.Y = y
	return c
}

func (c Cartesian[T]) WithZ(z T) Cartesian[T] {
	c.Z = z
	return c
}

// Div scales the point by 1/divisor.
func (c Cartesian[T]) Div(divisor T) Cartesian[T] {
	return Cartesian[T]{X: c.X / divisor, Y: c.Y / divisor, Z: c.Z / divisor}
}

// Distance returns the Euclidean distance between the two points.
func (c Cartesian[T]) Distance(other Cartesian[T]) T {
	dx := c.X - other.X
	dy := c.Y - other.Y
	dz := c.Z - other.Z
	return sqrt(dx*dx + dy*dy + dz*dz)
}

// Transform applies the given transformation to the point.
func (c Cartesian[T]) Transform(t Transform[T]) Cartesian[T] {
	return t.Transform(c)
}

// Geographic converts the point into geographic coordinates as specified by
// the spherical coordinate system. The zero vector has no direction, so it
// falls back to longitude and latitude 0 while keeping altitude 0.
func (c Cartesian[T]) Geographic() Geographic[T] {
	return Geographic[T]{
		Longitude: LongitudeFromCartesian(c),
		Latitude:  LatitudeFromCartesian(c),
		Altitude:  AltitudeFromCartesian(c),
	}
}

// Vector reinterprets the point as a free vector.
func (c Cartesian[T]) Vector() Vector[T] {
	return Vector[T](c)
}

// Vector is a free vector in 3-space, carrying the same data as a Cartesian
// point but with vector-algebra operations. Nothing enforces unit magnitude;
// operations that require a unit vector (such as a rotation axis) rely on the
// caller normalizing first.
type Vector[T constraints.Float] Cartesian[T]

// Cartesian reinterprets the vector as a point.
func (v Vector[T]) Cartesian() Cartesian[T] {
	return Cartesian[T](v)
}

// Dot returns the dot product of the two vectors.
func (v Vector[T]) Dot(other Vector[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v × other.
func (v Vector[T]) Cross(other Vector[T]) Vector[T] {
	return Vector[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Magnitude returns the Euclidean norm of the vector.
func (v Vector[T]) Magnitude() T {
	return sqrt(v.Dot(v))
}

// Normalize returns the unit vector in the same direction. A zero vector has
// no direction: the components of the result are NaN, per standard floating
// point semantics of dividing zero by zero.
func (v Vector[T]) Normalize() Vector[T] {
	m := v.Magnitude()
	return Vector[T]{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
}

// IsZero reports whether all components are exactly zero.
func (v Vector[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// UnitX returns the unit vector along the x axis.
func UnitX[T constraints.Float]() Vector[T] {
	return Vector[T]{X: 1}
}

// UnitY returns the unit vector along the y axis.
func UnitY[T constraints.Float]() Vector[T] {
	return Vector[T]{Y: 1}
}

// UnitZ returns the unit vector along the z axis.
func UnitZ[T constraints.Float]() Vector[T] {
	return Vector[T]{Z: 1}
}

// Cartesian converts the geographic point into Cartesian coordinates,
// treating it as a spherical coordinate with radial distance = altitude,
// polar angle = π/2 − latitude and azimuth = longitude. An altitude of
// exactly zero is interpreted as the unit sphere rather than the 3-D origin,
// so the degenerate default geographic point maps to (1, 0, 0).
func (g Geographic[T]) Cartesian() Cartesian[T] {
	radialDistance := g.Altitude.Value()
	if radialDistance == 0 {
		radialDistance = 1
	}

	theta := T(math.Pi/2) - g.Latitude.Value()
	phi := g.Longitude.Value()

	thetaSin, thetaCos := sincosExact(theta)
	phiSin, phiCos := sincosExact(phi)

	return Cartesian[T]{
		X: radialDistance * thetaSin * phiCos,
		Y: radialDistance * thetaSin * phiSin,
		Z: radialDistance * thetaCos,
	}
}

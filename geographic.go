package geocart

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Longitude is the horizontal angle of a geographic point, normalized into
// the range [-π, π). Both boundaries of the range address the same meridian,
// so overflowing one boundary continues from the other in the same direction:
// NewLongitude(π + 1) equals NewLongitude(-π + 1).
type Longitude[T constraints.Float] struct {
	value T
}

func NewLongitude[T constraints.Float](value T) Longitude[T] {
	pi := T(math.Pi)
	if value >= -pi && value < pi {
		return Longitude[T]{value: value}
	}
	return Longitude[T]{value: remEuclid(value+pi, 2*pi) - pi}
}

// LongitudeFromCartesian computes the longitude of the given point as
// specified by the spherical coordinate system. The zero vector has no
// azimuth and falls back to 0.
func LongitudeFromCartesian[T constraints.Float](point Cartesian[T]) Longitude[T] {
	var value T
	switch x, y := point.X, point.Y; {
	case x > 0:
		value = atan(y / x)
	case x < 0 && y >= 0:
		value = atan(y/x) + T(math.Pi)
	case x < 0 && y < 0:
		value = atan(y/x) - T(math.Pi)
	case x == 0 && y > 0:
		value = T(math.Pi / 2)
	case x == 0 && y < 0:
		value = -T(math.Pi / 2)
	default:
		// fallback value
		value = 0
	}
	return NewLongitude(value)
}

// Value returns the angle as a plain scalar.
func (l Longitude[T]) Value() T {
	return l.value
}

// Latitude is the vertical angle of a geographic point, normalized into the
// range [-π/2, π/2]. Out-of-range input is refolded via asin(sin(x)), which
// behaves like moving away from the crossed boundary towards the opposite
// one; the refold is approximate for input far outside the range.
type Latitude[T constraints.Float] struct {
	value T
}

func NewLatitude[T constraints.Float](value T) Latitude[T] {
	half := T(math.Pi / 2)
	if value >= -half && value <= half {
		return Latitude[T]{value: value}
	}
	return Latitude[T]{value: asin(sin(value))}
}

// LatitudeFromCartesian computes the latitude of the given point as specified
// by the spherical coordinate system. The zero vector has no inclination and
// falls back to 0.
func LatitudeFromCartesian[T constraints.Float](point Cartesian[T]) Latitude[T] {
	var theta T
	switch x, y, z := point.X, point.Y, point.Z; {
	case z > 0:
		theta = atan(sqrt(x*x+y*y) / z)
	case z < 0:
		theta = T(math.Pi) + atan(sqrt(x*x+y*y)/z)
	case z == 0 && x*y != 0:
		theta = T(math.Pi / 2)
	default:
		// fallback value
		theta = T(math.Pi / 2)
	}
	return NewLatitude(T(math.Pi/2) - theta)
}

// Value returns the angle as a plain scalar.
func (l Latitude[T]) Value() T {
	return l.value
}

// Altitude is the radial distance of a geographic point from the center of
// the sphere, always positive.
type Altitude[T constraints.Float] struct {
	value Positive[T]
}

func NewAltitude[T constraints.Float](value T) Altitude[T] {
	return Altitude[T]{value: NewPositive(value)}
}

// AltitudeFromCartesian computes the altitude of the given point as the
// Euclidean norm of its coordinates.
func AltitudeFromCartesian[T constraints.Float](point Cartesian[T]) Altitude[T] {
	return NewAltitude(sqrt(point.X*point.X + point.Y*point.Y + point.Z*point.Z))
}

// Value returns the distance as a plain scalar.
func (a Altitude[T]) Value() T {
	return a.value.Value()
}

// Geographic is a point expressed in the geographic system of coordinates.
// The zero value is the degenerate origin point: longitude 0, latitude 0,
// altitude 0.
type Geographic[T constraints.Float] struct {
	Longitude Longitude[T]
	Latitude  Latitude[T]
	Altitude  Altitude[T]
}

func (g Geographic[T]) WithLongitude(longitude Longitude[T]) Geographic[T] {
	g.Longitude = longitude
	return g
}

func (g Geographic[T]) WithLatitude(latitude Latitude[T]) Geographic[T] {
	g.Latitude = latitude
	return g
}

func (g Geographic[T]) WithAltitude(altitude Altitude[T]) Geographic[T] {
	g.Altitude = altitude
	return g
}

// Distance returns the great-circle distance in radians between the two
// points, via the spherical law of cosines.
func (g Geographic[T]) Distance(other Geographic[T]) T {
	latSinProd := sin(g.Latitude.Value()) * sin(other.Latitude.Value())
	latCosProd := cos(g.Latitude.Value()) * cos(other.Latitude.Value())
	lonDiff := abs(g.Longitude.Value() - other.Longitude.Value())

	return acos(clamp1(latSinProd + latCosProd*cos(lonDiff)))
}

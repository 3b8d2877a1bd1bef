package geocart

import (
	"math"

	"github.com/owlpinetech/flatsphere"
	"golang.org/x/exp/constraints"
)

// Projection maps geographic coordinates onto a 2-D plane and back. Forward
// produces a planar Cartesian point whose z component is always 0; Reverse
// ignores the z component of its input. Altitude is not carried through
// either direction. Implementations are stateless beyond their parameters.
type Projection[T constraints.Float] interface {
	// Forward projects the given geographic coordinates onto the plane.
	Forward(Geographic[T]) Cartesian[T]
	// Reverse recovers geographic coordinates from a point on the plane.
	Reverse(Cartesian[T]) Geographic[T]
}

// Equirectangular is the equirectangular projection on a globe of the given
// radius: x = radius·longitude, y = radius·latitude. Linear, and
// angle-preserving only along meridians.
type Equirectangular[T constraints.Float] struct {
	Radius Positive[T]
}

func NewEquirectangular[T constraints.Float](radius T) Equirectangular[T] {
	return Equirectangular[T]{Radius: NewPositive(radius)}
}

func (e Equirectangular[T]) Forward(point Geographic[T]) Cartesian[T] {
	return Cartesian[T]{
		X: e.Radius.Value() * point.Longitude.Value(),
		Y: e.Radius.Value() * point.Latitude.Value(),
	}
}

func (e Equirectangular[T]) Reverse(point Cartesian[T]) Geographic[T] {
	return Geographic[T]{
		Longitude: NewLongitude(point.X / e.Radius.Value()),
		Latitude:  NewLatitude(point.Y / e.Radius.Value()),
	}
}

// GallStereographic is the Gall stereographic projection on a globe of the
// given radius: x = radius·longitude/√2, y = radius·(1+√2/2)·tan(latitude/2).
type GallStereographic[T constraints.Float] struct {
	Radius Positive[T]
}

func NewGallStereographic[T constraints.Float](radius T) GallStereographic[T] {
	return GallStereographic[T]{Radius: NewPositive(radius)}
}

func (g GallStereographic[T]) Forward(point Geographic[T]) Cartesian[T] {
	return Cartesian[T]{
		X: g.Radius.Value() * point.Longitude.Value() / T(math.Sqrt2),
		Y: g.Radius.Value() * (1 + T(math.Sqrt2)/2) * tan(point.Latitude.Value()/2),
	}
}

func (g GallStereographic[T]) Reverse(point Cartesian[T]) Geographic[T] {
	return Geographic[T]{
		Longitude: NewLongitude(point.X * T(math.Sqrt2) / g.Radius.Value()),
		Latitude:  NewLatitude(2 * atan(point.Y/(g.Radius.Value()*(1+T(math.Sqrt2)/2)))),
	}
}

// Flatsphere adapts any projection from github.com/owlpinetech/flatsphere to
// the Projection interface. Flatsphere projections are defined on the unit
// sphere, so the planar coordinates are scaled by the globe radius on the
// way out and divided by it on the way in.
type Flatsphere struct {
	inner  flatsphere.Projection
	radius Positive[float64]
}

func NewFlatsphere(inner flatsphere.Projection, radius float64) Flatsphere {
	return Flatsphere{inner: inner, radius: NewPositive(radius)}
}

func (f Flatsphere) Forward(point Geographic[float64]) Cartesian[float64] {
	x, y := f.inner.Project(point.Latitude.Value(), point.Longitude.Value())
	return Cartesian[float64]{
		X: x * f.radius.Value(),
		Y: y * f.radius.Value(),
	}
}

func (f Flatsphere) Reverse(point Cartesian[float64]) Geographic[float64] {
	lat, lon := f.inner.Inverse(point.X/f.radius.Value(), point.Y/f.radius.Value())
	return Geographic[float64]{
		Longitude: NewLongitude(lon),
		Latitude:  NewLatitude(lat),
	}
}

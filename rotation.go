package geocart

import "golang.org/x/exp/constraints"

// Transform is a geometric transformation of a Cartesian point.
type Transform[T constraints.Float] interface {
	Transform(Cartesian[T]) Cartesian[T]
}

// Axis names one of the three axes of 3-space.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// AxisVector returns the unit vector along the named axis.
func AxisVector[T constraints.Float](axis Axis) Vector[T] {
	switch axis {
	case AxisY:
		return UnitY[T]()
	case AxisZ:
		return UnitZ[T]()
	default:
		return UnitX[T]()
	}
}

// Rotation rotates Cartesian points about an arbitrary axis by an angle,
// following the right-hand rule, through the closed form of Rodrigues'
// rotation formula. The axis must be a unit vector for a geometrically
// correct rotation; that is the caller's responsibility, not enforced here.
//
// A rotation with theta 0 is the identity for any axis, including the zero
// axis, and a point lying on the axis does not move under its own rotation.
// With a zero axis and a nonzero theta the closed form degenerates to
// scaling by cos(theta) rather than rotating. The zero value is a no-op
// rotation; customize it with WithAxis and WithTheta.
type Rotation[T constraints.Float] struct {
	Axis  Vector[T]
	Theta Radian[T]
}

func (r Rotation[T]) WithAxis(axis Vector[T]) Rotation[T] {
	r.Axis = axis
	return r
}

func (r Rotation[T]) WithTheta(theta Radian[T]) Rotation[T] {
	r.Theta = theta
	return r
}

// Transform rotates the given point.
func (r Rotation[T]) Transform(point Cartesian[T]) Cartesian[T] {
	sinTheta := sin(r.Theta.Value())
	cosTheta := cos(r.Theta.Value())
	oneSubCos := 1 - cosTheta

	x, y, z := r.Axis.X, r.Axis.Y, r.Axis.Z

	return Cartesian[T]{
		X: point.X*(cosTheta+x*x*oneSubCos) +
			point.Y*(x*y*oneSubCos-z*sinTheta) +
			point.Z*(x*z*oneSubCos+y*sinTheta),
		Y: point.X*(y*x*oneSubCos+z*sinTheta) +
			point.Y*(cosTheta+y*y*oneSubCos) +
			point.Z*(y*z*oneSubCos-x*sinTheta),
		Z: point.X*(z*x*oneSubCos-y*sinTheta) +
			point.Y*(z*y*oneSubCos+x*sinTheta) +
			point.Z*(cosTheta+z*z*oneSubCos),
	}
}

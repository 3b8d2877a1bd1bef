package geocart

import "golang.org/x/exp/constraints"

// Arc describes the shorter great-circle path between two geographic points,
// subdivided into a fixed number of equal-angle segments. The descriptor is
// immutable; Iter produces a fresh single-use iterator each time it is
// called.
//
// Two degenerate endpoint pairs exist. When from and to coincide, every
// produced point collapses to that same point. When they are exactly
// antipodal the rotation plane is ambiguous: the cross product of the two
// directions vanishes, so the iterator picks a deterministic perpendicular
// axis and traces one of the infinitely many valid semicircles.
type Arc[T constraints.Float] struct {
	From     Geographic[T]
	To       Geographic[T]
	Segments int
}

// NewArc builds an arc descriptor. The segment count is a construction-time
// contract: it must be at least 1.
func NewArc[T constraints.Float](from, to Geographic[T], segments int) Arc[T] {
	if segments < 1 {
		panic("geocart: arc segment count must be at least 1")
	}
	return Arc[T]{From: from, To: to, Segments: segments}
}

func (a Arc[T]) WithFrom(from Geographic[T]) Arc[T] {
	a.From = from
	return a
}

func (a Arc[T]) WithTo(to Geographic[T]) Arc[T] {
	a.To = to
	return a
}

// Iter returns an iterator over the a.Segments+1 points of the arc, from
// endpoint to endpoint.
func (a Arc[T]) Iter() *ArcIter[T] {
	if a.Segments < 1 {
		panic("geocart: arc segment count must be at least 1")
	}

	from := a.From.Cartesian()
	to := a.To.Cartesian()

	fromUnit := from.Vector().Normalize()
	toUnit := to.Vector().Normalize()

	axis := fromUnit.Cross(toUnit)
	if axis.IsZero() && fromUnit.Dot(toUnit) < 0 {
		// Antipodal endpoints: any direction perpendicular to the endpoints
		// spans a valid rotation plane. Crossing with the basis axis the
		// endpoint direction is least aligned with gives a stable choice.
		axis = fromUnit.Cross(leastAlignedBasis(fromUnit))
	}
	if !axis.IsZero() {
		axis = axis.Normalize()
	}

	totalAngle := acos(clamp1(fromUnit.Dot(toUnit)))

	return &ArcIter[T]{
		from:          from,
		to:            to,
		totalSegments: a.Segments,
		rotation: Rotation[T]{
			Axis:  axis,
			Theta: NewRadian(totalAngle / T(a.Segments)),
		},
	}
}

func leastAlignedBasis[T constraints.Float](v Vector[T]) Vector[T] {
	ax, ay, az := abs(v.X), abs(v.Y), abs(v.Z)
	if ax <= ay && ax <= az {
		return UnitX[T]()
	}
	if ay <= az {
		return UnitY[T]()
	}
	return UnitZ[T]()
}

// ArcIter is a one-shot cursor over the points of an Arc. Each call to Next
// rotates the first endpoint one more segment step about the arc's axis; the
// final point is the second endpoint itself rather than the accumulated
// rotated approximation, so floating drift never reaches the exact end.
type ArcIter[T constraints.Float] struct {
	from          Cartesian[T]
	to            Cartesian[T]
	totalSegments int
	nextSegment   int
	rotation      Rotation[T]
}

// Next returns the next point of the arc, or false when the iterator is
// exhausted.
func (it *ArcIter[T]) Next() (Geographic[T], bool) {
	if it.nextSegment > it.totalSegments {
		return Geographic[T]{}, false
	}

	if it.nextSegment == it.totalSegments {
		it.nextSegment++
		return it.to.Geographic(), true
	}

	step := it.rotation.Theta.Mul(T(it.nextSegment))
	next := it.rotation.WithTheta(step).Transform(it.from)

	it.nextSegment++
	return next.Geographic(), true
}

package geocart

import "fmt"

type PointOutOfBoundsError struct {
	Point Geographic[float64]
}

func NewPointOutOfBoundsError(point Geographic[float64]) PointOutOfBoundsError {
	return PointOutOfBoundsError{Point: point}
}

func (p PointOutOfBoundsError) Error() string {
	return fmt.Sprintf("point (lon %v, lat %v) projects outside the indexed bounds",
		p.Point.Longitude.Value(), p.Point.Latitude.Value())
}

package geocart

import (
	"math"

	"github.com/owlpinetech/healpix"
)

// Common functionality for mapping geographic points to pixel indices within
// a fixed pixelization of the sphere.
type PointIndexer interface {
	ToIndex(Geographic[float64]) (int, error)
	Name() string
	Size() int
}

// PlanarBounds is the axis-aligned extent of a projection's planar image.
type PlanarBounds struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

func (b PlanarBounds) Width() float64 {
	return b.XMax - b.XMin
}

func (b PlanarBounds) Height() float64 {
	return b.YMax - b.YMin
}

func (b PlanarBounds) contains(x, y float64) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// EquirectangularBounds returns the planar extent of the equirectangular
// projection on a globe of the given radius.
func EquirectangularBounds(radius float64) PlanarBounds {
	r := NewPositive(radius).Value()
	halfWidth := r * math.Pi
	return PlanarBounds{
		XMin: -halfWidth,
		XMax: halfWidth,
		YMin: -halfWidth / 2,
		YMax: halfWidth / 2,
	}
}

// GridIndexer maps geographic points through a projection into a
// width-by-height cell grid spanning the given planar bounds. Supports
// either row-major or column-major storage of the grid for particular
// access patterns.
type GridIndexer struct {
	Width    int  `json:"width"`
	Height   int  `json:"height"`
	RowMajor bool `json:"rowmajor"`
	proj     Projection[float64]
	bounds   PlanarBounds
}

func NewGridIndexer(proj Projection[float64], bounds PlanarBounds, width int, height int, rowMajor bool) GridIndexer {
	if width < 1 || height < 1 {
		panic("geocart: grid indexer dimensions must be at least 1x1")
	}
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		panic("geocart: grid indexer bounds must have positive extent")
	}
	return GridIndexer{
		Width:    width,
		Height:   height,
		RowMajor: rowMajor,
		proj:     proj,
		bounds:   bounds,
	}
}

func (g GridIndexer) Name() string {
	return "grid"
}

func (g GridIndexer) Size() int {
	return g.Width * g.Height
}

// CellIndex returns the flat index of the cell at grid position x, y.
func (g GridIndexer) CellIndex(x int, y int) int {
	if g.RowMajor {
		return y*g.Width + x
	}
	return x*g.Height + y
}

func (g GridIndexer) ToIndex(point Geographic[float64]) (int, error) {
	projected := g.proj.Forward(point)
	if !g.bounds.contains(projected.X, projected.Y) {
		return -1, NewPointOutOfBoundsError(point)
	}
	xPix := ((projected.X - g.bounds.XMin) / g.bounds.Width()) * float64(g.Width-1)
	yPix := ((projected.Y - g.bounds.YMin) / g.bounds.Height()) * float64(g.Height-1)
	return g.CellIndex(int(xPix), int(yPix)), nil
}

// HealpixIndexer pixelizes the sphere using the HEALPix method, where every
// pixel covers the same angular area. Both ring and nested storage schemes
// are supported, for making certain data-access patterns more efficient.
type HealpixIndexer struct {
	Scheme healpix.HealpixScheme `json:"scheme"`
	Order  healpix.HealpixOrder  `json:"order"`
}

func NewHealpixIndexer(order healpix.HealpixOrder, scheme healpix.HealpixScheme) HealpixIndexer {
	return HealpixIndexer{
		Scheme: scheme,
		Order:  order,
	}
}

func (h HealpixIndexer) Name() string {
	return "healpix"
}

func (h HealpixIndexer) Size() int {
	return h.Order.Pixels()
}

func (h HealpixIndexer) ToIndex(point Geographic[float64]) (int, error) {
	coord := healpix.NewLatLonCoordinate(point.Latitude.Value(), point.Longitude.Value())
	return coord.PixelId(h.Order, h.Scheme), nil
}

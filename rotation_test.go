package geocart

import (
	"math"
	"testing"
)

func TestRotationTransform(t *testing.T) {
	const eps = 3e-16

	testCases := []struct {
		name  string
		theta float64
		axis  Vector[float64]
		input Cartesian[float64]
		want  Cartesian[float64]
	}{
		{
			name:  "noop rotation must not change the point",
			theta: 0,
			axis:  Vector[float64]{},
			input: Cartesian[float64]{X: 1, Y: 2, Z: 3},
			want:  Cartesian[float64]{X: 1, Y: 2, Z: 3},
		},
		{
			name:  "full rotation on the x axis must not change the y point",
			theta: 2 * math.Pi,
			axis:  UnitX[float64](),
			input: Cartesian[float64]{}.WithY(1),
			want:  Cartesian[float64]{}.WithY(1),
		},
		{
			name:  "half of a whole rotation on the x axis must change the y point",
			theta: math.Pi,
			axis:  UnitX[float64](),
			input: Cartesian[float64]{}.WithY(1),
			want:  Cartesian[float64]{}.WithY(-1),
		},
		{
			name:  "a quarter of a whole rotation on the x axis must change the y point",
			theta: math.Pi / 2,
			axis:  UnitX[float64](),
			input: Cartesian[float64]{}.WithY(1),
			want:  Cartesian[float64]{}.WithZ(1),
		},
		{
			name:  "full rotation on the z axis must not change the y point",
			theta: 2 * math.Pi,
			axis:  UnitZ[float64](),
			input: Cartesian[float64]{}.WithY(1),
			want:  Cartesian[float64]{}.WithY(1),
		},
		{
			name:  "half of a whole rotation on the z axis must change the y point",
			theta: math.Pi,
			axis:  UnitZ[float64](),
			input: Cartesian[float64]{}.WithY(1),
			want:  Cartesian[float64]{}.WithY(-1),
		},
		{
			name:  "a quarter of a whole rotation on the z axis must change the y point",
			theta: math.Pi / 2,
			axis:  UnitZ[float64](),
			input: Cartesian[float64]{}.WithY(1),
			want:  Cartesian[float64]{}.WithX(-1),
		},
		{
			name:  "rotate over itself must not change the point",
			theta: math.Pi / 2,
			axis:  UnitY[float64](),
			input: Cartesian[float64]{}.WithY(1),
			want:  Cartesian[float64]{}.WithY(1),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Rotation[float64]{}.
				WithAxis(tc.axis).
				WithTheta(NewRadian(tc.theta)).
				Transform(tc.input)

			checkPoint(t, got, tc.want, eps)
		})
	}
}

func TestRotationZeroAxisNonzeroTheta(t *testing.T) {
	// A zero axis with a nonzero angle is not a rotation: the closed form
	// collapses to scaling by cos(theta). Only theta 0 makes the zero axis
	// an identity, which is the sole zero-axis case the arc iterator builds.
	theta := math.Pi / 3
	got := Rotation[float64]{}.
		WithTheta(NewRadian(theta)).
		Transform(Cartesian[float64]{X: 1, Y: 2, Z: 3})

	scale := math.Cos(theta)
	want := Cartesian[float64]{X: 1 * scale, Y: 2 * scale, Z: 3 * scale}
	checkPoint(t, got, want, 1e-15)
}

func TestRotationViaTransformInterface(t *testing.T) {
	var transform Transform[float64] = Rotation[float64]{
		Axis:  UnitX[float64](),
		Theta: NewRadian(math.Pi / 2),
	}

	got := Cartesian[float64]{}.WithY(1).Transform(transform)
	checkPoint(t, got, Cartesian[float64]{}.WithZ(1), 3e-16)
}

func TestAxisVector(t *testing.T) {
	testCases := []struct {
		axis Axis
		want Vector[float64]
	}{
		{AxisX, UnitX[float64]()},
		{AxisY, UnitY[float64]()},
		{AxisZ, UnitZ[float64]()},
	}

	for _, tc := range testCases {
		if got := AxisVector[float64](tc.axis); got != tc.want {
			t.Errorf("AxisVector(%v) = %+v, want %+v", tc.axis, got, tc.want)
		}
	}
}

func checkPoint(t *testing.T, got, want Cartesian[float64], eps float64) {
	t.Helper()
	if !approxEq(got.X, want.X, eps) || !approxEq(got.Y, want.Y, eps) || !approxEq(got.Z, want.Z, eps) {
		t.Errorf("got %+v, want %+v ± %v", got, want, eps)
	}
}

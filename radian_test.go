package geocart

import (
	"math"
	"testing"
)

func TestRadianMustNotExceedBoundaries(t *testing.T) {
	testCases := []struct {
		name  string
		input float64
		want  float64
	}{
		{"radian within range must not change", math.Pi, math.Pi},
		{"2π radians must equal zero", 2 * math.Pi, 0},
		{"negative radian must change", -math.Pi / 2, 2*math.Pi - math.Pi/2},
		{"overflowing radian must change", 2*math.Pi + math.Pi/2, math.Pi / 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewRadian(tc.input).Value()
			if !approxEq(got, tc.want, 1e-14) {
				t.Errorf("NewRadian(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestRadianMulRenormalizes(t *testing.T) {
	testCases := []struct {
		name   string
		radian float64
		factor float64
		want   float64
	}{
		{"zero factor", math.Pi, 0, 0},
		{"within range", math.Pi / 2, 3, 3 * math.Pi / 2},
		{"overflowing product", math.Pi / 2, 5, math.Pi / 2},
		{"negative factor", math.Pi / 2, -1, 2*math.Pi - math.Pi/2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewRadian(tc.radian).Mul(tc.factor).Value()
			if !approxEq(got, tc.want, 1e-14) {
				t.Errorf("NewRadian(%v).Mul(%v) = %v, want %v", tc.radian, tc.factor, got, tc.want)
			}
		})
	}
}

func TestRadianFloat32Width(t *testing.T) {
	got := NewRadian(float32(-math.Pi / 2)).Value()
	want := float32(2*math.Pi) - float32(math.Pi/2)
	if !approxEq(float64(got), float64(want), 1e-6) {
		t.Errorf("NewRadian(float32 -π/2) = %v, want %v", got, want)
	}
}

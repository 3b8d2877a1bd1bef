package geocart

import (
	"math"
	"testing"
)

func approxEq(got, want, eps float64) bool {
	return math.Abs(got-want) <= eps
}

func TestRemEuclid(t *testing.T) {
	testCases := []struct {
		name string
		x    float64
		y    float64
		want float64
	}{
		{"within range", 1, 2 * math.Pi, 1},
		{"exact modulus", 2 * math.Pi, 2 * math.Pi, 0},
		{"negative input", -math.Pi / 2, 2 * math.Pi, 2*math.Pi - math.Pi/2},
		{"double overflow", 5 * math.Pi, 2 * math.Pi, math.Pi},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := remEuclid(tc.x, tc.y)
			if !approxEq(got, tc.want, 1e-14) {
				t.Errorf("remEuclid(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestSincosExactBoundaries(t *testing.T) {
	testCases := []struct {
		name    string
		rad     float64
		wantSin float64
		wantCos float64
	}{
		{"zero", 0, 0, 1},
		{"half pi", math.Pi / 2, 1, 0},
		{"negative half pi", -math.Pi / 2, -1, 0},
		{"pi", math.Pi, 0, -1},
		{"negative pi", -math.Pi, 0, -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotSin, gotCos := sincosExact(tc.rad)
			if gotSin != tc.wantSin || gotCos != tc.wantCos {
				t.Errorf("sincosExact(%v) = (%v, %v), want exact (%v, %v)",
					tc.rad, gotSin, gotCos, tc.wantSin, tc.wantCos)
			}
		})
	}

	gotSin, gotCos := sincosExact(1.0)
	if !approxEq(gotSin, math.Sin(1), 0) || !approxEq(gotCos, math.Cos(1), 0) {
		t.Errorf("sincosExact(1) = (%v, %v), want library sin/cos", gotSin, gotCos)
	}
}

func TestSincosExactFloat32(t *testing.T) {
	halfPi := float32(math.Pi / 2)
	gotSin, gotCos := sincosExact(halfPi)
	if gotSin != 1 || gotCos != 0 {
		t.Errorf("sincosExact(float32 π/2) = (%v, %v), want exact (1, 0)", gotSin, gotCos)
	}
}

func TestClamp1(t *testing.T) {
	if got := clamp1(1 + 1e-16); got != 1 {
		t.Errorf("clamp1 above one = %v, want 1", got)
	}
	if got := clamp1(-1 - 1e-16); got != -1 {
		t.Errorf("clamp1 below minus one = %v, want -1", got)
	}
	if got := clamp1(0.5); got != 0.5 {
		t.Errorf("clamp1 inside range = %v, want 0.5", got)
	}
}

func TestPositiveTakesAbsoluteValue(t *testing.T) {
	if got := NewPositive(-1.56).Value(); got != 1.56 {
		t.Errorf("NewPositive(-1.56) = %v, want 1.56", got)
	}
	if got := NewPositive(1.56).Value(); got != 1.56 {
		t.Errorf("NewPositive(1.56) = %v, want 1.56", got)
	}
	if got := NewPositive(0.0).Value(); got != 0 {
		t.Errorf("NewPositive(0) = %v, want 0", got)
	}
}

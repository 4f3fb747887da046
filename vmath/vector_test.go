package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNormalize(t *testing.T) {
	n := V2(3, 4).Normalize()
	if !approx(n.X, 0.6) || !approx(n.Y, 0.8) {
		t.Errorf("Normalize(3,4) = %v, want (0.6,0.8)", n)
	}

	z := Vec2{}.Normalize()
	if !z.IsZero() {
		t.Errorf("Normalize(0,0) = %v, want zero vector", z)
	}
}

func TestClampMagnitude(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		max  float64
		want float64
	}{
		{"over limit", V2(6, 8), 3, 3},
		{"under limit", V2(1, 1), 3, math.Sqrt2},
		{"zero", Vec2{}, 3, 0},
		{"exactly limit", V2(3, 0), 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ClampMagnitude(tt.max)
			if !approx(got.Magnitude(), tt.want) {
				t.Errorf("|ClampMagnitude(%v, %v)| = %v, want %v", tt.in, tt.max, got.Magnitude(), tt.want)
			}
		})
	}

	// Direction preserved
	c := V2(6, 8).ClampMagnitude(3)
	if !approx(c.X, 1.8) || !approx(c.Y, 2.4) {
		t.Errorf("ClampMagnitude changed direction: %v", c)
	}
}

func TestDivByZero(t *testing.T) {
	if got := V2(1, 2).Div(0); !got.IsZero() {
		t.Errorf("Div(0) = %v, want zero vector", got)
	}
	if got := V2(4, 2).Div(2); got != V2(2, 1) {
		t.Errorf("Div(2) = %v, want (2,1)", got)
	}
}

func TestDistance(t *testing.T) {
	if d := V2(1, 1).Distance(V2(4, 5)); !approx(d, 5) {
		t.Errorf("Distance = %v, want 5", d)
	}
}

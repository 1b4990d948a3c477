package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestNormalizeZeroSafe(t *testing.T) {
	n := Vec2{}.Normalize()
	if n.X != 0 || n.Y != 0 {
		t.Errorf("expected zero vector, got %+v", n)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	cases := []Vec2{
		{3, 4},
		{-7, 2},
		{0, -5},
		{1e-3, 1e-3},
	}
	for _, v := range cases {
		mag := v.Normalize().Magnitude()
		if math.Abs(mag-1) > epsilon {
			t.Errorf("Normalize(%+v) magnitude = %f, want 1", v, mag)
		}
	}
}

func TestPerpendicularRotationSense(t *testing.T) {
	// (1,0) rotated 90° CCW must be (0,1)
	p := Vec2{1, 0}.Perpendicular()
	if math.Abs(p.X) > epsilon || math.Abs(p.Y-1) > epsilon {
		t.Errorf("Perpendicular(1,0) = %+v, want (0,1)", p)
	}
	// Perpendicular is always orthogonal to the input
	v := Vec2{3.5, -2.25}
	if dot := v.Dot(v.Perpendicular()); math.Abs(dot) > epsilon {
		t.Errorf("dot with perpendicular = %f, want 0", dot)
	}
}

func TestRotateFullCircle(t *testing.T) {
	v := Vec2{2, 3}
	r := v.Rotate(2 * math.Pi)
	if math.Abs(r.X-v.X) > 1e-9 || math.Abs(r.Y-v.Y) > 1e-9 {
		t.Errorf("full rotation changed vector: %+v -> %+v", v, r)
	}
}

func TestClampMagnitude(t *testing.T) {
	v := Vec2{30, 40} // magnitude 50
	c := v.ClampMagnitude(10)
	if math.Abs(c.Magnitude()-10) > epsilon {
		t.Errorf("clamped magnitude = %f, want 10", c.Magnitude())
	}
	// Direction preserved
	n1, n2 := v.Normalize(), c.Normalize()
	if math.Abs(n1.X-n2.X) > epsilon || math.Abs(n1.Y-n2.Y) > epsilon {
		t.Errorf("direction changed: %+v vs %+v", n1, n2)
	}
	// Under the limit: unchanged
	u := Vec2{1, 1}
	if got := u.ClampMagnitude(10); got != u {
		t.Errorf("vector under limit modified: %+v", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !(Vec2{1, 2}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	bad := []Vec2{
		{math.NaN(), 0},
		{0, math.Inf(1)},
		{math.Inf(-1), math.NaN()},
	}
	for _, v := range bad {
		if v.IsFinite() {
			t.Errorf("%+v reported finite", v)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp bounds violated")
	}
}

package system

import (
	"math"
	"testing"

	"github.com/voidgrid/firecontrol/parameter"
	"github.com/voidgrid/firecontrol/vmath"
)

func TestFireOffsetSingleShotZero(t *testing.T) {
	off := FireOffset(vmath.Vec2{}, vmath.Vec2{X: 100, Y: 0}, 0, 1, 12, parameter.ParallelShotSpacing, parameter.ParallelRadiusMultiplier)
	if off != (vmath.Vec2{}) {
		t.Errorf("single shot offset = %+v, want zero", off)
	}
}

func TestFireOffsetSymmetry(t *testing.T) {
	player := vmath.Vec2{}
	aim := vmath.Vec2{X: 150, Y: 90}
	const count = 4

	offsets := make([]vmath.Vec2, count)
	for i := 0; i < count; i++ {
		offsets[i] = FireOffset(player, aim, i, count, 40, parameter.ParallelShotSpacing, parameter.ParallelRadiusMultiplier)
	}

	// Index 0/3 and 1/2 mirror about the aim line
	pairs := [][2]int{{0, 3}, {1, 2}}
	for _, p := range pairs {
		a, b := offsets[p[0]], offsets[p[1]]
		if math.Abs(a.X+b.X) > 1e-9 || math.Abs(a.Y+b.Y) > 1e-9 {
			t.Errorf("offsets %d and %d not mirrored: %+v vs %+v", p[0], p[1], a, b)
		}
		if math.Abs(a.Magnitude()-b.Magnitude()) > 1e-9 {
			t.Errorf("offsets %d and %d differ in magnitude", p[0], p[1])
		}
	}

	// Every offset is perpendicular to the aim direction
	dir := aim.Sub(player)
	for i, off := range offsets {
		if math.Abs(dir.Dot(off)) > 1e-6 {
			t.Errorf("offset %d not perpendicular to aim line: dot = %f", i, dir.Dot(off))
		}
	}
}

func TestFireOffsetCenteredShotZero(t *testing.T) {
	// Odd stack: middle shot stays on the aim line
	off := FireOffset(vmath.Vec2{}, vmath.Vec2{X: 100, Y: 0}, 1, 3, 12, parameter.ParallelShotSpacing, parameter.ParallelRadiusMultiplier)
	if off != (vmath.Vec2{}) {
		t.Errorf("centered shot offset = %+v, want zero", off)
	}
}

func TestFireOffsetZeroDistanceGuard(t *testing.T) {
	p := vmath.Vec2{X: 42, Y: 42}
	off := FireOffset(p, p, 0, 4, 12, parameter.ParallelShotSpacing, parameter.ParallelRadiusMultiplier)
	if off != (vmath.Vec2{}) {
		t.Errorf("zero-distance offset = %+v, want zero", off)
	}
}

func TestFireOffsetMagnitudeClamped(t *testing.T) {
	const spacing = 14.0
	const radiusMult = 0.8
	const radius = 10.0 // radius*mult < spacing, so the clamp limit is spacing

	// Outermost shot of a wide stack wants 2.5*spacing but clamps to spacing
	off := FireOffset(vmath.Vec2{}, vmath.Vec2{X: 200, Y: 0}, 5, 6, radius, spacing, radiusMult)
	if math.Abs(off.Magnitude()-spacing) > 1e-9 {
		t.Errorf("outer offset magnitude = %f, want clamped to %f", off.Magnitude(), spacing)
	}
}

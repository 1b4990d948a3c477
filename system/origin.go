package system

import (
	"math"

	"github.com/voidgrid/firecontrol/parameter"
	"github.com/voidgrid/firecontrol/vmath"
)

// FireOffset computes the perpendicular offset for one shot of a stacked
// volley, so simultaneous shots at the same target originate from parallel
// barrels instead of stacking. The offset applies to both the fire origin and
// the aim point: projectiles travel parallel, not convergent.
//
// Shots fan symmetrically about the aim line: duplicate indices 0 and n−1
// mirror each other, the centered shot gets a zero offset
func FireOffset(playerPos, aimPoint vmath.Vec2, duplicateIndex, duplicateCount int, targetRadius, spacing, radiusMultiplier float64) vmath.Vec2 {
	if duplicateCount <= 1 {
		return vmath.Vec2{}
	}

	dir := aimPoint.Sub(playerPos)
	if dir.MagnitudeSq() == 0 {
		// No aim direction, no perpendicular
		return vmath.Vec2{}
	}

	slotCenter := float64(duplicateCount-1) / 2
	offsetIndex := float64(duplicateIndex) - slotCenter
	if math.Abs(offsetIndex) < parameter.OffsetCenterEpsilon {
		return vmath.Vec2{}
	}

	limit := math.Max(spacing, targetRadius*radiusMultiplier)
	magnitude := vmath.Clamp(offsetIndex*spacing, -limit, limit)

	return dir.Normalize().Perpendicular().Scale(magnitude)
}

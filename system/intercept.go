package system

import (
	"math"

	"github.com/voidgrid/firecontrol/component"
	"github.com/voidgrid/firecontrol/parameter"
	"github.com/voidgrid/firecontrol/vmath"
)

// InterceptTuning bounds accepted intercept lead times and the linear fallback
type InterceptTuning struct {
	FallbackLeadTime float64
	MinLeadTime      float64
	MaxLeadTime      float64
}

// DefaultInterceptTuning returns the baseline solver tuning
func DefaultInterceptTuning() InterceptTuning {
	return InterceptTuning{
		FallbackLeadTime: parameter.FallbackLeadTimeDefault,
		MinLeadTime:      parameter.MinLeadTimeDefault,
		MaxLeadTime:      parameter.MaxLeadTimeDefault,
	}
}

// Predict returns the aim point for a shot from playerPos at a moving enemy.
// The quadratic dynamic intercept runs when the tier allows it; otherwise, or
// when no valid root exists, the linear fallback applies. The second return
// reports whether the dynamic path produced the point
func Predict(playerPos vmath.Vec2, enemyPos, enemyVel vmath.Vec2, projectileSpeed float64, tier component.Tier, tuning InterceptTuning) (vmath.Vec2, bool) {
	if tier.DynamicPrediction() {
		if t, ok := SolveIntercept(enemyPos.Sub(playerPos), enemyVel, projectileSpeed); ok {
			t = vmath.Clamp(t, tuning.MinLeadTime, tuning.MaxLeadTime)
			return enemyPos.Add(enemyVel.Scale(t)), true
		}
	}
	return enemyPos.Add(enemyVel.Scale(tuning.FallbackLeadTime)), false
}

// SolveIntercept finds the smallest strictly-positive time at which a
// projectile fired from the origin at projectileSpeed meets a target at rel
// moving with velocity v. Shots are fired from the player frame, so the
// player's own velocity does not enter.
//
// Solves a·t² + b·t + c = 0 with a = |v|²−s², b = 2(rel·v), c = |rel|².
// Absence of a valid intercept is a normal outcome, not an error
func SolveIntercept(rel, v vmath.Vec2, projectileSpeed float64) (float64, bool) {
	a := v.MagnitudeSq() - projectileSpeed*projectileSpeed
	b := 2 * rel.Dot(v)
	c := rel.MagnitudeSq()

	var t float64
	if math.Abs(a) < parameter.InterceptEpsilon {
		// Degenerate: projectile speed ≈ enemy speed along the closing axis
		if math.Abs(b) < parameter.InterceptEpsilon {
			return 0, false
		}
		t = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return 0, false
		}
		sqrtDisc := math.Sqrt(disc)
		t1 := (-b + sqrtDisc) / (2 * a)
		t2 := (-b - sqrtDisc) / (2 * a)
		switch {
		case t1 > 0 && t2 > 0:
			t = math.Min(t1, t2)
		case t1 > 0:
			t = t1
		case t2 > 0:
			t = t2
		default:
			return 0, false
		}
	}

	if t <= 0 || !vmath.IsFinite(t) {
		return 0, false
	}
	return t, true
}

package system

import (
	"math"

	"github.com/voidgrid/firecontrol/component"
	"github.com/voidgrid/firecontrol/parameter"
	"github.com/voidgrid/firecontrol/vmath"
)

// Score computes the weighted threat breakdown for one candidate. Pure and
// deterministic: same inputs give the same breakdown
func Score(enemy component.EnemySnapshot, player component.PlayerSnapshot, distance float64, w *parameter.DangerWeights) component.ThreatBreakdown {
	bd := component.ThreatBreakdown{
		Variant:   variantWeight(enemy, w),
		Reward:    rewardScore(enemy, w),
		Direction: directionScore(enemy, player, w),
		Speed:     speedScore(enemy, w),
		Size:      w.Size[enemy.Size],
		Distance:  distanceScore(distance, w),
		Impact:    impactThreat(enemy, player, distance, w),
	}

	// A malformed weight entry must never produce a NaN total; a NaN sorts
	// unpredictably and must not reach the comparator
	bd.Variant = finiteOrZero(bd.Variant)
	bd.Reward = finiteOrZero(bd.Reward)
	bd.Direction = finiteOrZero(bd.Direction)
	bd.Speed = finiteOrZero(bd.Speed)
	bd.Size = finiteOrZero(bd.Size)
	bd.Distance = finiteOrZero(bd.Distance)
	bd.Impact.Total = finiteOrZero(bd.Impact.Total)

	bd.Total = bd.Variant + bd.Reward + bd.Direction + bd.Speed + bd.Size + bd.Distance + bd.Impact.Total
	return bd
}

// variantWeight resolves variant override, then behavior tag, then default
func variantWeight(enemy component.EnemySnapshot, w *parameter.DangerWeights) float64 {
	if v, ok := w.VariantOverrides[enemy.Variant]; ok {
		return v
	}
	if v, ok := w.Behavior[enemy.Behavior]; ok {
		return v
	}
	return w.BehaviorDefault
}

// rewardScore estimates an XP-equivalent value from size/variant multipliers
func rewardScore(enemy component.EnemySnapshot, w *parameter.DangerWeights) float64 {
	base, ok := w.RewardSize[enemy.Size]
	if !ok {
		base = 1
	}
	if mult, ok := w.RewardVariant[enemy.Variant]; ok {
		base *= mult
	}
	if w.RewardNormalization <= 0 {
		return 0
	}
	return base / w.RewardNormalization * w.Reward
}

// directionScore rewards enemies moving toward the player. A stationary enemy
// is mildly deprioritized; the zero-length dot product is never computed
func directionScore(enemy component.EnemySnapshot, player component.PlayerSnapshot, w *parameter.DangerWeights) float64 {
	if enemy.Vel.MagnitudeSq() == 0 {
		return -math.Abs(w.DirectionBias)
	}
	toPlayer := player.Pos.Sub(enemy.Pos)
	if toPlayer.MagnitudeSq() == 0 {
		// On top of the player, heading is meaningless
		return w.Direction * (1 - w.DirectionBias)
	}
	dot := enemy.Vel.Normalize().Dot(toPlayer.Normalize())
	return (dot - w.DirectionBias) * w.Direction
}

func speedScore(enemy component.EnemySnapshot, w *parameter.DangerWeights) float64 {
	if w.SpeedReference <= 0 {
		return 0
	}
	return math.Min(1, enemy.Vel.Magnitude()/w.SpeedReference) * w.Speed
}

func distanceScore(distance float64, w *parameter.DangerWeights) float64 {
	if !vmath.IsFinite(distance) || distance < 0 {
		return 0
	}
	return (1 - vmath.Clamp01(distance/w.TargetingRange)) * w.Distance
}

// impactThreat estimates how soon and how dangerously the enemy will reach
// the player, from relative-motion projection
func impactThreat(enemy component.EnemySnapshot, player component.PlayerSnapshot, distance float64, w *parameter.DangerWeights) component.ImpactThreat {
	iw := w.Impact

	relPos := enemy.Pos.Sub(player.Pos)
	relVel := enemy.Vel.Sub(player.Vel)
	relSq := relVel.MagnitudeSq()

	// Closest-approach time along the relative track. A diverging track
	// never arrives; zero means the enemy is at closest approach right now
	var timeToImpact float64
	if relSq > parameter.InterceptEpsilon {
		if closing := -relPos.Dot(relVel); closing >= 0 {
			timeToImpact = closing / relSq
		} else {
			timeToImpact = math.Inf(1)
		}
	} else {
		// No relative motion: never arrives
		timeToImpact = math.Inf(1)
	}

	clampedT := vmath.Clamp(timeToImpact, 0, iw.TimeNormalization)
	timeComponent := 0.0
	if iw.TimeNormalization > 0 {
		timeComponent = (1 - clampedT/iw.TimeNormalization) * iw.TimeWeight
	}

	var projectedDistance float64
	if math.IsInf(timeToImpact, 1) {
		projectedDistance = distance
	} else {
		projectedDistance = relPos.Add(relVel.Scale(clampedT)).Magnitude()
	}

	distNorm := math.Max(2*player.ShieldRadius, iw.DistanceNormalization)
	distanceComponent := 0.0
	if distNorm > 0 {
		distanceComponent = (1 - vmath.Clamp01(projectedDistance/distNorm)) * iw.DistanceWeight
	}

	hpComponent := 0.0
	if iw.HPNormalization > 0 {
		hpComponent = math.Min(1, enemy.Health/iw.HPNormalization) * iw.HPWeight
	}

	hpRatio := enemy.HPRatio()
	urgency := (iw.UrgencyDistance*safeRatio(distanceComponent, iw.DistanceWeight) +
		iw.UrgencyTime*safeRatio(timeComponent, iw.TimeWeight)) *
		(1 + iw.HPUrgencyMultiplier*hpRatio)

	return component.ImpactThreat{
		DistanceComponent: distanceComponent,
		TimeComponent:     timeComponent,
		HPComponent:       hpComponent,
		TimeToImpact:      timeToImpact,
		ProjectedDistance: projectedDistance,
		Urgency:           urgency,
		RecommendedShots:  recommendedShots(urgency, hpRatio, &w.MultiLock),
		Total:             distanceComponent + timeComponent + hpComponent,
	}
}

// recommendedShots converts urgency into a per-target shot count, always
// within [1, MaxRecommended]
func recommendedShots(urgency, hpRatio float64, ml *parameter.MultiLockWeights) int {
	raw := 1 + urgency*ml.StackMultiplier + ml.StackBase*hpRatio
	if floor := ml.MinStackScore * hpRatio; raw < floor {
		raw = floor
	}
	if !vmath.IsFinite(raw) {
		return 1
	}
	n := int(math.Round(raw))
	if n < 1 {
		return 1
	}
	if n > ml.MaxRecommended {
		return ml.MaxRecommended
	}
	return n
}

// safeRatio treats the ratio as 0 when the weight is 0
func safeRatio(value, weight float64) float64 {
	if weight == 0 {
		return 0
	}
	return value / weight
}

func finiteOrZero(f float64) float64 {
	if !vmath.IsFinite(f) {
		return 0
	}
	return f
}

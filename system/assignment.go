package system

import (
	"github.com/voidgrid/firecontrol/component"
	"github.com/voidgrid/firecontrol/parameter"
)

// shotBudget tracks per-candidate shot allocation during planning
type shotBudget struct {
	candidate   component.RankedCandidate
	rank        int
	urgency     float64
	recommended int
	assigned    int
}

func (b *shotBudget) remainingRecommended() int {
	r := b.recommended - b.assigned
	if r < 0 {
		return 0
	}
	return r
}

// Plan distributes desiredShots across the ranked candidate list. Greedy, not
// globally optimal: a baseline shot per top candidate, then urgency-driven
// stacking, then overflow onto the top-ranked candidate once all
// recommendations are exhausted. Gameplay balance depends on this exact
// iteration order; do not reorder.
//
// The result has exactly desiredShots entries, or none when desiredShots <= 0
// or no candidate survives filtering. O(shots × candidates), both small
func Plan(ranked []component.RankedCandidate, cache *component.ThreatCache, desiredShots int, player component.PlayerSnapshot, tier component.Tier, w *parameter.DangerWeights, tuning InterceptTuning) []component.LockAssignment {
	if desiredShots <= 0 {
		return nil
	}

	// 1. Keep candidates still worth shooting at
	budgets := make([]*shotBudget, 0, len(ranked))
	for i, rc := range ranked {
		if !rc.Enemy.Valid() || rc.Distance > w.TargetingRange {
			continue
		}
		b := &shotBudget{candidate: rc, rank: i, urgency: 0, recommended: 1}
		// 2. Recommendation and urgency from the threat cache; raw score
		// stands in when no breakdown exists
		if bd, ok := cache.Get(rc.Enemy.ID); ok {
			b.urgency = bd.Impact.Urgency
			b.recommended = bd.Impact.RecommendedShots
		} else {
			b.urgency = rc.Score
		}
		if b.recommended > desiredShots {
			b.recommended = desiredShots
		}
		if b.recommended < 1 {
			b.recommended = 1
		}
		budgets = append(budgets, b)
	}
	if len(budgets) == 0 {
		return nil
	}

	// 3. Baseline: one shot each for the top candidates by rank
	remaining := desiredShots
	for i := 0; i < len(budgets) && remaining > 0; i++ {
		budgets[i].assigned++
		remaining--
	}

	// 4. Greedy fill among candidates with unmet recommendations
	for remaining > 0 {
		var best *shotBudget
		bestPriority := 0.0
		for _, b := range budgets {
			if b.remainingRecommended() == 0 {
				continue
			}
			priority := b.urgency*(1+w.MultiLock.StackMultiplier*0.5+float64(b.remainingRecommended())) + b.candidate.Score*0.01
			if best == nil || priority > bestPriority {
				best = b
				bestPriority = priority
			}
		}
		if best == nil {
			break
		}
		best.assigned++
		remaining--
	}

	// 5. Overflow: recommendations exhausted, pile the rest on the top rank
	if remaining > 0 {
		budgets[0].assigned += remaining
	}

	// 6. Expand counts into the flat assignment list, rank order
	assignments := make([]component.LockAssignment, 0, desiredShots)
	for _, b := range budgets {
		if b.assigned == 0 {
			continue
		}
		enemy := b.candidate.Enemy
		aim, dynamic := Predict(player.Pos, enemy.Pos, enemy.Vel, player.Stats.ProjectileSpeed, tier, tuning)
		for dup := 0; dup < b.assigned; dup++ {
			// Offset stays separate; the fire controller applies it to both
			// origin and aim so stacked shots travel parallel
			off := FireOffset(player.Pos, aim, dup, b.assigned, enemy.Radius, parameter.ParallelShotSpacing, parameter.ParallelRadiusMultiplier)
			assignments = append(assignments, component.LockAssignment{
				EnemyID:        enemy.ID,
				AimPoint:       aim,
				Origin:         player.Pos,
				Offset:         off,
				DuplicateIndex: dup,
				DuplicateCount: b.assigned,
				PriorityIndex:  b.rank,
				Dynamic:        dynamic,
			})
		}
	}

	if len(assignments) > desiredShots {
		assignments = assignments[:desiredShots]
	}
	return assignments
}

package system

import (
	"slices"

	"github.com/voidgrid/firecontrol/component"
	"github.com/voidgrid/firecontrol/event"
	"github.com/voidgrid/firecontrol/parameter"
	"github.com/voidgrid/firecontrol/vmath"
)

// Acquisition scans in-range candidates on the target-update cadence, ranks
// them, and maintains the current lock set and per-enemy threat cache. State
// is replaced wholesale at the start of every refresh, never patched
type Acquisition struct {
	Cache       component.ThreatCache
	Locks       component.LockSet
	Assignments []component.LockAssignment

	ranked     []component.RankedCandidate
	primaryID  uint64
	hasPrimary bool
	tuning     InterceptTuning
}

func NewAcquisition() *Acquisition {
	return &Acquisition{tuning: DefaultInterceptTuning()}
}

// Ranked returns the candidate list from the last refresh, best first
func (a *Acquisition) Ranked() []component.RankedCandidate { return a.ranked }

// Primary returns the current primary target id
func (a *Acquisition) Primary() (uint64, bool) { return a.primaryID, a.hasPrimary }

// TargetValid reports whether an enemy still qualifies as a lock target.
// Cheap enough to re-check every frame for the primary
func TargetValid(enemy component.EnemySnapshot, playerPos vmath.Vec2, targetingRange float64) bool {
	return enemy.Valid() && vmath.Distance(enemy.Pos, playerPos) <= targetingRange
}

// Refresh rebuilds the ranked list, threat cache, lock set, and shot
// assignments from the given enemy snapshots. Emits target-locked only when
// the primary identity changes, and target-lost when the lock set empties
func (a *Acquisition) Refresh(player component.PlayerSnapshot, enemies []component.EnemySnapshot, tier component.Tier, w *parameter.DangerWeights, q *event.Queue) {
	a.Cache.Reset()
	a.ranked = a.ranked[:0]

	for _, enemy := range enemies {
		if !enemy.Valid() {
			continue
		}
		d := vmath.Distance(enemy.Pos, player.Pos)
		if d > w.TargetingRange {
			continue
		}
		score := -d // lowest tier: closer is better
		if tier.DangerScoring() {
			bd := Score(enemy, player, d, w)
			a.Cache.Put(enemy.ID, bd)
			score = bd.Total
		}
		a.ranked = append(a.ranked, component.RankedCandidate{Enemy: enemy, Score: score, Distance: d})
	}

	// Descending score, ties broken by ascending distance. The stable sort
	// keeps the tie-break part of the observable contract
	slices.SortStableFunc(a.ranked, func(x, y component.RankedCandidate) int {
		if x.Score > y.Score {
			return -1
		}
		if x.Score < y.Score {
			return 1
		}
		if x.Distance < y.Distance {
			return -1
		}
		if x.Distance > y.Distance {
			return 1
		}
		return 0
	})

	if len(a.ranked) == 0 {
		if a.hasPrimary {
			q.Push(event.GameEvent{Type: event.EventTargetLost, Payload: &event.TargetLostPayload{}})
		}
		a.Locks.Clear()
		a.Assignments = nil
		a.hasPrimary = false
		a.primaryID = 0
		return
	}

	desiredLocks := 1
	if tier.MultiLock() {
		desiredLocks = min(w.MultiLock.Targets, player.ShotCount())
		if desiredLocks < 1 {
			desiredLocks = 1
		}
	}

	// Lock set cycles through available candidates when fewer exist than the
	// desired lock count
	a.Locks.Clear()
	for i := 0; i < desiredLocks; i++ {
		a.Locks.Targets = append(a.Locks.Targets, a.ranked[i%len(a.ranked)])
	}

	if tier.MultiLock() {
		a.Assignments = Plan(a.ranked, &a.Cache, player.ShotCount(), player, tier, w, a.tuning)
	} else {
		a.Assignments = nil
	}

	// Signal only on primary identity change, not every refresh
	primary := a.ranked[0]
	if !a.hasPrimary || a.primaryID != primary.Enemy.ID {
		a.primaryID = primary.Enemy.ID
		a.hasPrimary = true
		q.Push(event.GameEvent{Type: event.EventTargetLocked, Payload: &event.TargetLockedPayload{
			EnemyID:   primary.Enemy.ID,
			Score:     primary.Score,
			LockCount: a.Locks.Len(),
		}})
	}
}

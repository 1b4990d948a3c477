package component

import (
	"github.com/voidgrid/firecontrol/vmath"
)

// RankedCandidate pairs an enemy snapshot with its score and distance at
// ranking time. Ordering: descending score, ties broken by ascending distance
type RankedCandidate struct {
	Enemy    EnemySnapshot
	Score    float64
	Distance float64
}

// LockAssignment is one planned shot: which target, where to aim, and this
// shot's position among the shots stacked on the same target. Rebuilt every
// refresh tick, never persisted past the lock set's lifetime
type LockAssignment struct {
	EnemyID  uint64
	AimPoint vmath.Vec2
	Origin   vmath.Vec2
	Offset   vmath.Vec2

	// DuplicateIndex / DuplicateCount position this shot among the shots
	// assigned to the same target, for parallel-barrel fanning
	DuplicateIndex int
	DuplicateCount int

	// PriorityIndex is the target's rank in the sorted candidate list
	PriorityIndex int

	// Dynamic records whether the quadratic intercept produced AimPoint
	Dynamic bool
}

// LockSet is the ordered group of targets the weapon is tracking. The first
// entry is the primary target. When fewer candidates exist than the desired
// lock count, entries cycle through the available targets
type LockSet struct {
	Targets []RankedCandidate
}

// Primary returns the current primary target
func (ls LockSet) Primary() (RankedCandidate, bool) {
	if len(ls.Targets) == 0 {
		return RankedCandidate{}, false
	}
	return ls.Targets[0], true
}

// Len returns the lock count
func (ls LockSet) Len() int { return len(ls.Targets) }

// Clear drops all locks, keeping capacity
func (ls *LockSet) Clear() {
	ls.Targets = ls.Targets[:0]
}

package component

import (
	"github.com/voidgrid/firecontrol/vmath"
)

// SizeClass buckets enemies for scoring and reward estimation
type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	}
	return "unknown"
}

// EnemySnapshot is a read-only view of a targeting candidate, borrowed from the
// enemy provider for the duration of one scoring pass. The engine never mutates it
type EnemySnapshot struct {
	ID        uint64
	Pos       vmath.Vec2
	Vel       vmath.Vec2
	Radius    float64
	Health    float64
	MaxHealth float64
	Size      SizeClass
	Variant   string
	Behavior  string
	Destroyed bool
}

// Valid reports whether the snapshot is safe to score: alive, with finite
// kinematics. Candidates failing this are skipped for the tick rather than
// letting NaN reach the sort comparator
func (e EnemySnapshot) Valid() bool {
	if e.Destroyed {
		return false
	}
	return e.Pos.IsFinite() && e.Vel.IsFinite() && vmath.IsFinite(e.Radius) && vmath.IsFinite(e.Health)
}

// HPRatio returns remaining health as a fraction of max, clamped to [0,1]
func (e EnemySnapshot) HPRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return vmath.Clamp01(e.Health / e.MaxHealth)
}

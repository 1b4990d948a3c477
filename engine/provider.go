package engine

import (
	"github.com/voidgrid/firecontrol/component"
	"github.com/voidgrid/firecontrol/vmath"
)

// PlayerProvider is the narrow read interface over the externally-owned
// player. Queried once per tick
type PlayerProvider interface {
	Position() vmath.Vec2
	Velocity() vmath.Vec2
	Stats() component.PlayerStats
	ShieldRadius() float64
}

// EnemyProvider is the narrow read interface over the externally-owned enemy
// population. Implementations with a spatial index should restrict
// ActiveEnemiesNear to the queried circle; returning the full active list is
// acceptable
type EnemyProvider interface {
	// ActiveEnemiesNear returns snapshots of live enemies near point. The
	// returned snapshots must not change for the duration of one scoring
	// pass, or tie-break ordering becomes non-deterministic
	ActiveEnemiesNear(point vmath.Vec2, radius float64) []component.EnemySnapshot

	// EnemyByID returns the current snapshot of a single enemy, for the
	// cheap per-frame primary-target validity check
	EnemyByID(id uint64) (component.EnemySnapshot, bool)
}

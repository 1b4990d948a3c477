package component

import (
	"github.com/voidgrid/firecontrol/vmath"
)

// PlayerStats is the weapon stat bundle read from the player provider
type PlayerStats struct {
	Damage          float64
	Multishot       int
	ProjectileSpeed float64
	FireInterval    float64 // seconds between volleys
}

// PlayerSnapshot is the read-only player view, refreshed once per engine tick
type PlayerSnapshot struct {
	Pos          vmath.Vec2
	Vel          vmath.Vec2
	ShieldRadius float64
	Stats        PlayerStats
}

// ShotCount returns the effective number of shots per volley, floor 1
func (p PlayerSnapshot) ShotCount() int {
	if p.Stats.Multishot < 1 {
		return 1
	}
	return p.Stats.Multishot
}

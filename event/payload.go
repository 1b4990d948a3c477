package event

import (
	"github.com/voidgrid/firecontrol/component"
	"github.com/voidgrid/firecontrol/vmath"
)

// TargetLockedPayload describes the new primary target
type TargetLockedPayload struct {
	EnemyID   uint64
	Score     float64
	LockCount int
}

// TargetLostPayload signals an empty lock set. Carries no data; the type
// exists so consumers can switch on payload kind uniformly
type TargetLostPayload struct{}

// WeaponFiredPayload carries one volley. Origins and AimPoints are parallel
// slices, one entry per shot
type WeaponFiredPayload struct {
	Origins   []vmath.Vec2
	AimPoints []vmath.Vec2
	Damage    float64

	PrimaryTargetID uint64
	LockCount       int

	// DynamicPrediction is true when at least one shot used the quadratic
	// intercept path rather than linear fallback
	DynamicPrediction bool
}

// UpgradeAppliedPayload confirms the configuration now in effect
type UpgradeAppliedPayload struct {
	Tier           component.Tier
	WeightsSwapped bool
}

package system

import (
	"github.com/voidgrid/firecontrol/component"
	"github.com/voidgrid/firecontrol/event"
	"github.com/voidgrid/firecontrol/parameter"
	"github.com/voidgrid/firecontrol/vmath"
)

// FireState is the controller's cooldown state
type FireState int

const (
	// FireIdle: cooldown elapsed, waiting for a valid target
	FireIdle FireState = iota

	// FireCharging: cooldown counting down
	FireCharging

	// FireFiring: emitting a volley this frame
	FireFiring
)

// FireController gates firing on cooldown and a valid primary target and
// emits one fire event per shot. Firing never blocks: with no valid target it
// simply does not fire that frame, with no queued fire request
type FireController struct {
	state    FireState
	cooldown float64 // seconds until ready
	tuning   InterceptTuning
}

func NewFireController() *FireController {
	return &FireController{tuning: DefaultInterceptTuning()}
}

// State returns the controller state after the last Update
func (c *FireController) State() FireState { return c.state }

// Update advances the cooldown and fires when it has elapsed and a valid
// primary exists. Returns true when a volley was emitted this frame
func (c *FireController) Update(dt float64, player component.PlayerSnapshot, primary component.EnemySnapshot, primaryValid bool, locks *component.LockSet, assignments []component.LockAssignment, tier component.Tier, q *event.Queue) bool {
	if c.cooldown > 0 {
		c.cooldown -= dt
		if c.cooldown > 0 {
			c.state = FireCharging
			return false
		}
		c.cooldown = 0
	}

	if !primaryValid {
		c.state = FireIdle
		return false
	}

	c.state = FireFiring
	shots := player.ShotCount()
	origins := make([]vmath.Vec2, 0, shots)
	aims := make([]vmath.Vec2, 0, shots)
	dynamic := false

	if tier.MultiLock() && len(assignments) > 0 {
		for i := 0; i < shots; i++ {
			a := assignments[min(i, len(assignments)-1)]
			off := a.Offset
			if off == (vmath.Vec2{}) && a.DuplicateCount > 1 {
				// Assignment arrived without a precomputed offset
				off = FireOffset(player.Pos, a.AimPoint, a.DuplicateIndex, a.DuplicateCount, 0, parameter.ParallelShotSpacing, parameter.ParallelRadiusMultiplier)
			}
			origins = append(origins, a.Origin.Add(off))
			aims = append(aims, a.AimPoint.Add(off))
			dynamic = dynamic || a.Dynamic
		}
	} else {
		// Single lock: all shots at the primary. Multishot fans at angular
		// spread around the predicted point, distinct from the multi-lock
		// parallel-barrel pattern
		aim, dyn := Predict(player.Pos, primary.Pos, primary.Vel, player.Stats.ProjectileSpeed, tier, c.tuning)
		dynamic = dyn
		dir := aim.Sub(player.Pos)
		for i := 0; i < shots; i++ {
			angle := (float64(i) - float64(shots-1)/2) * parameter.SpreadStep
			origins = append(origins, player.Pos)
			aims = append(aims, player.Pos.Add(dir.Rotate(angle)))
		}
	}

	q.Push(event.GameEvent{Type: event.EventWeaponFired, Payload: &event.WeaponFiredPayload{
		Origins:           origins,
		AimPoints:         aims,
		Damage:            player.Stats.Damage,
		PrimaryTargetID:   primary.ID,
		LockCount:         locks.Len(),
		DynamicPrediction: dynamic,
	}})

	interval := player.Stats.FireInterval
	if interval <= 0 {
		interval = parameter.FireIntervalDefault
	}
	c.cooldown = interval
	return true
}

package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/voidgrid/firecontrol/component"
	"github.com/voidgrid/firecontrol/event"
	"github.com/voidgrid/firecontrol/parameter"
	"github.com/voidgrid/firecontrol/system"
)

// Config carries the injected engine configuration. Weights and Tier may be
// hot-swapped later through ApplyUpgrade
type Config struct {
	Weights *parameter.DangerWeights
	Tier    component.Tier

	// Logger defaults to a no-op logger. The engine logs configuration
	// changes, never per-frame activity
	Logger *zerolog.Logger
}

// UpgradeDelta is a discrete "upgrade applied" change: a wholesale weight
// replacement and/or a new capability tier. Nil fields leave the current
// value in place
type UpgradeDelta struct {
	Weights *parameter.DangerWeights
	Tier    *component.Tier
}

// Engine is the fire-control orchestrator. Single-threaded, cooperative: one
// Tick per frame, no internal goroutines, no blocking. Re-acquisition runs on
// its own slower cadence inside the same Tick
type Engine struct {
	players PlayerProvider
	enemies EnemyProvider

	weights *parameter.DangerWeights
	tier    component.Tier

	acq  *system.Acquisition
	fire *system.FireController

	refreshTimer float64
	queue        *event.Queue
	log          zerolog.Logger
}

// New validates providers and configuration once at initialization. Missing
// providers and malformed weights are the only fatal errors; everything after
// this point is a normal per-tick outcome
func New(players PlayerProvider, enemies EnemyProvider, cfg Config) (*Engine, error) {
	if players == nil {
		return nil, errors.New("fire-control engine requires a player provider")
	}
	if enemies == nil {
		return nil, errors.New("fire-control engine requires an enemy provider")
	}

	weights := cfg.Weights
	if weights == nil {
		weights = parameter.DefaultWeights()
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid danger weights: %w", err)
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	e := &Engine{
		players: players,
		enemies: enemies,
		weights: weights,
		tier:    cfg.Tier.Clamp(),
		acq:     system.NewAcquisition(),
		fire:    system.NewFireController(),
		queue:   event.NewQueue(parameter.EventQueueSize),
	}
	e.log = log
	e.log.Info().Stringer("tier", e.tier).Msg("fire-control engine initialized")
	return e, nil
}

// Events returns the outbound queue. Collaborators drain it once per frame
func (e *Engine) Events() *event.Queue { return e.queue }

// Tier returns the current capability tier
func (e *Engine) Tier() component.Tier { return e.tier }

// Locks returns the current lock set
func (e *Engine) Locks() *component.LockSet { return &e.acq.Locks }

// Assignments returns the current shot assignment plan
func (e *Engine) Assignments() []component.LockAssignment { return e.acq.Assignments }

// Ranked returns the candidate ranking from the last refresh
func (e *Engine) Ranked() []component.RankedCandidate { return e.acq.Ranked() }

// ApplyUpgrade swaps weights wholesale and/or raises the tier. Invalid weight
// sets are rejected and logged, keeping the current set in effect
func (e *Engine) ApplyUpgrade(delta UpgradeDelta) {
	swapped := false
	if delta.Weights != nil {
		if err := delta.Weights.Validate(); err != nil {
			e.log.Warn().Err(err).Msg("rejected weight upgrade")
		} else {
			e.weights = delta.Weights
			swapped = true
		}
	}
	if delta.Tier != nil {
		e.tier = delta.Tier.Clamp()
	}
	e.log.Info().Stringer("tier", e.tier).Bool("weights_swapped", swapped).Msg("upgrade applied")

	e.queue.Push(event.GameEvent{Type: event.EventUpgradeApplied, Payload: &event.UpgradeAppliedPayload{
		Tier:           e.tier,
		WeightsSwapped: swapped,
	}})

	// Scoring config changed: force re-acquisition on the next tick
	e.refreshTimer = 0
}

// Tick runs one frame: refresh targets when the update interval elapses or
// the primary became invalid, then evaluate the cooldown-gated fire decision
func (e *Engine) Tick(dt float64) {
	player := component.PlayerSnapshot{
		Pos:          e.players.Position(),
		Vel:          e.players.Velocity(),
		ShieldRadius: e.players.ShieldRadius(),
		Stats:        e.players.Stats(),
	}

	_, hadLock := e.acq.Primary()
	primary, primaryValid := e.currentPrimary(player)

	// Force re-acquisition mid-interval only when an existing lock went
	// invalid; with no lock at all the normal cadence applies
	forceRefresh := hadLock && !primaryValid

	e.refreshTimer -= dt
	if e.refreshTimer <= 0 || forceRefresh {
		enemies := e.enemies.ActiveEnemiesNear(player.Pos, e.weights.TargetingRange)
		e.acq.Refresh(player, enemies, e.tier, e.weights, e.queue)
		e.refreshTimer = parameter.TargetUpdateInterval.Seconds()
		primary, primaryValid = e.currentPrimary(player)
	}

	e.fire.Update(dt, player, primary, primaryValid, &e.acq.Locks, e.acq.Assignments, e.tier, e.queue)
}

// currentPrimary re-validates the primary target against its live snapshot.
// Per-frame and cheap: only the primary, never the whole candidate list
func (e *Engine) currentPrimary(player component.PlayerSnapshot) (component.EnemySnapshot, bool) {
	id, ok := e.acq.Primary()
	if !ok {
		return component.EnemySnapshot{}, false
	}
	enemy, ok := e.enemies.EnemyByID(id)
	if !ok {
		return component.EnemySnapshot{}, false
	}
	if !system.TargetValid(enemy, player.Pos, e.weights.TargetingRange) {
		return component.EnemySnapshot{}, false
	}
	return enemy, true
}

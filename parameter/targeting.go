package parameter

import (
	"time"
)

// Cadence
const (
	// TargetUpdateInterval is the re-acquisition/re-scoring period. Firing is
	// evaluated every frame; scanning is not
	TargetUpdateInterval = 250 * time.Millisecond

	// FireIntervalDefault is seconds between volleys when the player stats
	// carry no fire interval
	FireIntervalDefault = 0.4
)

// Intercept solver
const (
	// InterceptEpsilon is the degeneracy threshold for the quadratic
	// coefficients and for relative-velocity projections
	InterceptEpsilon = 1e-4

	// FallbackLeadTimeDefault is the linear-prediction lead in seconds
	FallbackLeadTimeDefault = 0.25

	// MinLeadTimeDefault / MaxLeadTimeDefault clamp accepted intercept times
	MinLeadTimeDefault = 0.05
	MaxLeadTimeDefault = 1.5
)

// Fire origin fanning
const (
	// ParallelShotSpacing is the perpendicular distance between stacked shots
	// on the same target (world units)
	ParallelShotSpacing = 14.0

	// ParallelRadiusMultiplier scales the target radius into the maximum
	// total offset for a stacked volley
	ParallelRadiusMultiplier = 0.8

	// SpreadStep is the angular fan step between single-lock multishot
	// projectiles (radians)
	SpreadStep = 0.12

	// OffsetCenterEpsilon marks the centered shot of an odd-sized stack
	OffsetCenterEpsilon = 1e-4
)

// Event queue
const (
	// EventQueueSize is the engine's default outbound ring buffer capacity
	EventQueueSize = 256
)

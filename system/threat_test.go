package system

import (
	"math"
	"testing"

	"github.com/voidgrid/firecontrol/component"
	"github.com/voidgrid/firecontrol/parameter"
	"github.com/voidgrid/firecontrol/vmath"
)

func testPlayer() component.PlayerSnapshot {
	return component.PlayerSnapshot{
		ShieldRadius: 20,
		Stats: component.PlayerStats{
			Damage:          10,
			Multishot:       1,
			ProjectileSpeed: 200,
		},
	}
}

func testEnemy(id uint64, x, y, vx, vy float64) component.EnemySnapshot {
	return component.EnemySnapshot{
		ID:        id,
		Pos:       vmath.Vec2{X: x, Y: y},
		Vel:       vmath.Vec2{X: vx, Y: vy},
		Radius:    12,
		Health:    40,
		MaxHealth: 40,
		Size:      component.SizeMedium,
		Behavior:  "chaser",
	}
}

func TestScoreDeterministic(t *testing.T) {
	w := parameter.DefaultWeights()
	player := testPlayer()
	enemy := testEnemy(1, 150, 80, -30, -10)
	d := vmath.Distance(enemy.Pos, player.Pos)

	first := Score(enemy, player, d, w)
	for i := 0; i < 10; i++ {
		if got := Score(enemy, player, d, w); got != first {
			t.Fatalf("score not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestDirectionScoreStationaryEnemy(t *testing.T) {
	w := parameter.DefaultWeights()
	enemy := testEnemy(1, 100, 0, 0, 0)
	bd := Score(enemy, testPlayer(), 100, w)

	want := -math.Abs(w.DirectionBias)
	if math.Abs(bd.Direction-want) > 1e-9 {
		t.Errorf("stationary enemy direction score = %f, want %f", bd.Direction, want)
	}
}

func TestDirectionScorePrefersClosers(t *testing.T) {
	w := parameter.DefaultWeights()
	player := testPlayer()
	closing := testEnemy(1, 100, 0, -50, 0)
	fleeing := testEnemy(2, 100, 0, 50, 0)

	bdClosing := Score(closing, player, 100, w)
	bdFleeing := Score(fleeing, player, 100, w)
	if bdClosing.Direction <= bdFleeing.Direction {
		t.Errorf("closing enemy direction %f not above fleeing %f", bdClosing.Direction, bdFleeing.Direction)
	}
}

func TestVariantWeightFallbackChain(t *testing.T) {
	w := parameter.DefaultWeights()
	player := testPlayer()

	override := testEnemy(1, 100, 0, 0, 0)
	override.Variant = "elite"
	override.Behavior = "chaser"
	if bd := Score(override, player, 100, w); bd.Variant != w.VariantOverrides["elite"] {
		t.Errorf("variant override not applied: got %f", bd.Variant)
	}

	behavior := testEnemy(2, 100, 0, 0, 0)
	behavior.Variant = "no-such-variant"
	behavior.Behavior = "drifter"
	if bd := Score(behavior, player, 100, w); bd.Variant != w.Behavior["drifter"] {
		t.Errorf("behavior weight not applied: got %f", bd.Variant)
	}

	fallback := testEnemy(3, 100, 0, 0, 0)
	fallback.Variant = "no-such-variant"
	fallback.Behavior = "no-such-behavior"
	if bd := Score(fallback, player, 100, w); bd.Variant != w.BehaviorDefault {
		t.Errorf("default weight not applied: got %f", bd.Variant)
	}
}

func TestDistanceScoreCloserIsHigher(t *testing.T) {
	w := parameter.DefaultWeights()
	player := testPlayer()
	near := Score(testEnemy(1, 50, 0, 0, 0), player, 50, w)
	far := Score(testEnemy(2, 500, 0, 0, 0), player, 500, w)
	if near.Distance <= far.Distance {
		t.Errorf("near distance score %f not above far %f", near.Distance, far.Distance)
	}
	// Beyond the targeting range the contribution bottoms out at zero
	out := Score(testEnemy(3, 1e6, 0, 0, 0), player, 1e6, w)
	if out.Distance != 0 {
		t.Errorf("out-of-range distance score = %f, want 0", out.Distance)
	}
}

func TestTotalNeverNaN(t *testing.T) {
	w := parameter.DefaultWeights()
	// Sabotage one map entry; the total must stay finite
	w.Behavior["chaser"] = math.NaN()

	bd := Score(testEnemy(1, 100, 0, -20, 0), testPlayer(), 100, w)
	if !vmath.IsFinite(bd.Total) {
		t.Fatalf("total is not finite: %f", bd.Total)
	}
	if bd.Variant != 0 {
		t.Errorf("NaN variant component not zeroed: %f", bd.Variant)
	}
}

func TestImpactTimeToImpactDiverging(t *testing.T) {
	w := parameter.DefaultWeights()
	player := testPlayer()

	// No relative motion: time to impact is +Inf, projected distance falls
	// back to the current distance
	still := testEnemy(1, 100, 0, 0, 0)
	bd := Score(still, player, 100, w)
	if !math.IsInf(bd.Impact.TimeToImpact, 1) {
		t.Errorf("no relative motion: time to impact = %f, want +Inf", bd.Impact.TimeToImpact)
	}
	if math.Abs(bd.Impact.ProjectedDistance-100) > 1e-9 {
		t.Errorf("projected distance = %f, want 100", bd.Impact.ProjectedDistance)
	}

	// Receding: the track diverges, so the enemy never arrives. The time
	// component must bottom out, not peak as if impact were imminent
	receding := testEnemy(2, 100, 0, 80, 0)
	bd = Score(receding, player, 100, w)
	if !math.IsInf(bd.Impact.TimeToImpact, 1) {
		t.Errorf("receding enemy: time to impact = %f, want +Inf", bd.Impact.TimeToImpact)
	}
	if bd.Impact.TimeComponent != 0 {
		t.Errorf("receding enemy: time component = %f, want 0", bd.Impact.TimeComponent)
	}
	if math.Abs(bd.Impact.ProjectedDistance-100) > 1e-9 {
		t.Errorf("receding enemy: projected distance = %f, want current 100", bd.Impact.ProjectedDistance)
	}

	// At closest approach right now: velocity perpendicular to the line of
	// sight gives zero closing speed and zero time to impact
	crossing := testEnemy(3, 100, 0, 0, 80)
	bd = Score(crossing, player, 100, w)
	if bd.Impact.TimeToImpact != 0 {
		t.Errorf("crossing enemy: time to impact = %f, want 0", bd.Impact.TimeToImpact)
	}
}

func TestImpactApproachingScoresHigher(t *testing.T) {
	w := parameter.DefaultWeights()
	player := testPlayer()
	approaching := Score(testEnemy(1, 100, 0, -60, 0), player, 100, w)
	receding := Score(testEnemy(2, 100, 0, 60, 0), player, 100, w)
	if approaching.Impact.Total <= receding.Impact.Total {
		t.Errorf("approaching impact %f not above receding %f", approaching.Impact.Total, receding.Impact.Total)
	}
}

func TestRecommendedShotsBounds(t *testing.T) {
	ml := &parameter.DefaultWeights().MultiLock
	urgencies := []float64{-1e6, -1, 0, 0.5, 1, 10, 1e6, math.Inf(1), math.NaN()}
	ratios := []float64{0, 0.25, 0.5, 1}
	for _, u := range urgencies {
		for _, hp := range ratios {
			n := recommendedShots(u, hp, ml)
			if n < 1 || n > ml.MaxRecommended {
				t.Errorf("recommendedShots(%f, %f) = %d, outside [1, %d]", u, hp, n, ml.MaxRecommended)
			}
		}
	}
}

func TestUrgencyZeroWeightGuard(t *testing.T) {
	w := parameter.DefaultWeights()
	w.Impact.DistanceWeight = 0
	w.Impact.TimeWeight = 0

	bd := Score(testEnemy(1, 100, 0, -50, 0), testPlayer(), 100, w)
	if !vmath.IsFinite(bd.Impact.Urgency) {
		t.Errorf("urgency not finite with zero weights: %f", bd.Impact.Urgency)
	}
	if bd.Impact.Urgency != 0 {
		t.Errorf("urgency = %f, want 0 with both weights zero", bd.Impact.Urgency)
	}
}

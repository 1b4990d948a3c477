package parameter

import (
	"fmt"

	"github.com/voidgrid/firecontrol/component"
	"github.com/voidgrid/firecontrol/vmath"
)

// ImpactWeights tunes the relative-motion impact threat sub-score
type ImpactWeights struct {
	TimeWeight        float64
	TimeNormalization float64

	DistanceWeight        float64
	DistanceNormalization float64

	HPWeight        float64
	HPNormalization float64

	UrgencyDistance     float64
	UrgencyTime         float64
	HPUrgencyMultiplier float64
}

// MultiLockWeights tunes multi-lock shot stacking
type MultiLockWeights struct {
	// Targets is the maximum number of simultaneously locked enemies
	Targets int

	StackMultiplier float64
	StackBase       float64
	MinStackScore   float64

	// MaxRecommended caps per-target recommended shots
	MaxRecommended int
}

// DangerWeights is the immutable threat-scoring configuration tree. Loaded
// once and hot-swapped wholesale on upgrade events, never partially mutated
// mid-score
type DangerWeights struct {
	// Behavior maps behavior tags to base variant weights; BehaviorDefault
	// applies when neither a variant override nor a behavior entry exists
	Behavior        map[string]float64
	BehaviorDefault float64

	// VariantOverrides take precedence over behavior weights
	VariantOverrides map[string]float64

	// Reward scoring: XP-equivalent estimation from size/variant multipliers
	Reward              float64
	RewardNormalization float64
	RewardSize          map[component.SizeClass]float64
	RewardVariant       map[string]float64

	Direction     float64
	DirectionBias float64

	Speed          float64
	SpeedReference float64

	Size map[component.SizeClass]float64

	Distance       float64
	TargetingRange float64

	Impact    ImpactWeights
	MultiLock MultiLockWeights
}

// DefaultWeights returns the baseline tuning
func DefaultWeights() *DangerWeights {
	return &DangerWeights{
		Behavior: map[string]float64{
			"chaser":  1.2,
			"drifter": 0.8,
			"orbiter": 1.0,
		},
		BehaviorDefault: 1.0,
		VariantOverrides: map[string]float64{
			"elite":    1.6,
			"kamikaze": 2.0,
		},

		Reward:              0.5,
		RewardNormalization: 40.0,
		RewardSize: map[component.SizeClass]float64{
			component.SizeSmall:  10,
			component.SizeMedium: 25,
			component.SizeLarge:  60,
		},
		RewardVariant: map[string]float64{
			"elite": 2.0,
		},

		Direction:     1.0,
		DirectionBias: 0.1,

		Speed:          0.6,
		SpeedReference: 120.0,

		Size: map[component.SizeClass]float64{
			component.SizeSmall:  0.2,
			component.SizeMedium: 0.5,
			component.SizeLarge:  0.9,
		},

		Distance:       1.5,
		TargetingRange: 600.0,

		Impact: ImpactWeights{
			TimeWeight:            1.2,
			TimeNormalization:     3.0,
			DistanceWeight:        1.0,
			DistanceNormalization: 160.0,
			HPWeight:              0.4,
			HPNormalization:       80.0,
			UrgencyDistance:       0.6,
			UrgencyTime:           0.4,
			HPUrgencyMultiplier:   0.5,
		},

		MultiLock: MultiLockWeights{
			Targets:         4,
			StackMultiplier: 1.5,
			StackBase:       0.8,
			MinStackScore:   1.0,
			MaxRecommended:  4,
		},
	}
}

// Clone returns a deep copy, for building a modified set to swap in wholesale
func (w *DangerWeights) Clone() *DangerWeights {
	c := *w
	c.Behavior = cloneStringMap(w.Behavior)
	c.VariantOverrides = cloneStringMap(w.VariantOverrides)
	c.RewardVariant = cloneStringMap(w.RewardVariant)
	c.RewardSize = cloneSizeMap(w.RewardSize)
	c.Size = cloneSizeMap(w.Size)
	return &c
}

// Validate rejects configurations that would corrupt score totals. A single
// malformed entry must never produce a NaN that reaches the sort comparator
func (w *DangerWeights) Validate() error {
	scalars := map[string]float64{
		"behavior_default":     w.BehaviorDefault,
		"reward":               w.Reward,
		"reward_normalization": w.RewardNormalization,
		"direction":            w.Direction,
		"direction_bias":       w.DirectionBias,
		"speed":                w.Speed,
		"speed_reference":      w.SpeedReference,
		"distance":             w.Distance,
		"targeting_range":      w.TargetingRange,
		"impact.time_weight":   w.Impact.TimeWeight,
		"impact.time_norm":     w.Impact.TimeNormalization,
		"impact.dist_weight":   w.Impact.DistanceWeight,
		"impact.dist_norm":     w.Impact.DistanceNormalization,
		"impact.hp_weight":     w.Impact.HPWeight,
		"impact.hp_norm":       w.Impact.HPNormalization,
		"impact.urg_distance":  w.Impact.UrgencyDistance,
		"impact.urg_time":      w.Impact.UrgencyTime,
		"impact.hp_urg_mult":   w.Impact.HPUrgencyMultiplier,
		"multilock.stack_mult": w.MultiLock.StackMultiplier,
		"multilock.stack_base": w.MultiLock.StackBase,
		"multilock.min_stack":  w.MultiLock.MinStackScore,
	}
	for name, v := range scalars {
		if !vmath.IsFinite(v) {
			return fmt.Errorf("weight %s is not finite: %v", name, v)
		}
	}
	for _, m := range []map[string]float64{w.Behavior, w.VariantOverrides, w.RewardVariant} {
		for k, v := range m {
			if !vmath.IsFinite(v) {
				return fmt.Errorf("weight entry %q is not finite: %v", k, v)
			}
		}
	}
	if w.TargetingRange <= 0 {
		return fmt.Errorf("targeting_range must be positive, got %v", w.TargetingRange)
	}
	if w.MultiLock.Targets < 1 {
		return fmt.Errorf("multilock.targets must be at least 1, got %d", w.MultiLock.Targets)
	}
	if w.MultiLock.MaxRecommended < 1 {
		return fmt.Errorf("multilock.max_recommended must be at least 1, got %d", w.MultiLock.MaxRecommended)
	}
	return nil
}

func cloneStringMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	c := make(map[string]float64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func cloneSizeMap(m map[component.SizeClass]float64) map[component.SizeClass]float64 {
	if m == nil {
		return nil
	}
	c := make(map[component.SizeClass]float64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

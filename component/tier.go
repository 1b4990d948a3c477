package component

// Tier is the ordered targeting capability level. Each tier includes the
// behavior of all tiers below it
type Tier int

const (
	// Tier0 aims at the nearest in-range enemy with no scoring
	Tier0 Tier = iota

	// Tier1 enables weighted danger scoring
	Tier1

	// Tier2 enables quadratic dynamic intercept prediction
	Tier2

	// Tier3 enables multi-lock shot distribution
	Tier3
)

// DangerScoring reports whether candidates are ranked by weighted threat score
// instead of raw distance
func (t Tier) DangerScoring() bool { return t >= Tier1 }

// DynamicPrediction reports whether the quadratic intercept path is active
func (t Tier) DynamicPrediction() bool { return t >= Tier2 }

// MultiLock reports whether shots may be distributed across multiple targets
func (t Tier) MultiLock() bool { return t >= Tier3 }

// Clamp bounds the tier to the defined range
func (t Tier) Clamp() Tier {
	if t < Tier0 {
		return Tier0
	}
	if t > Tier3 {
		return Tier3
	}
	return t
}

func (t Tier) String() string {
	switch t.Clamp() {
	case Tier0:
		return "nearest"
	case Tier1:
		return "scored"
	case Tier2:
		return "predictive"
	default:
		return "multilock"
	}
}

package component

// ImpactThreat estimates how soon and how dangerously a candidate will reach
// the player, from relative-motion projection
type ImpactThreat struct {
	DistanceComponent float64
	TimeComponent     float64
	HPComponent       float64

	// TimeToImpact is the closest-approach time in seconds; +Inf when diverging
	// with no relative motion
	TimeToImpact float64

	// ProjectedDistance is the player-relative distance at TimeToImpact
	ProjectedDistance float64

	Urgency float64

	// RecommendedShots is how many shots of a volley this candidate merits,
	// always in [1, MaxRecommended]
	RecommendedShots int

	Total float64
}

// ThreatBreakdown is the per-candidate scoring result. Created fresh each
// refresh tick; cached by enemy id until the next refresh
type ThreatBreakdown struct {
	Variant   float64
	Reward    float64
	Direction float64
	Speed     float64
	Size      float64
	Distance  float64
	Impact    ImpactThreat

	// Total is the sum of all components. Comparative, not normalized
	Total float64
}

// ThreatCache holds breakdowns for the current refresh tick, keyed by stable
// enemy id. Dense slices re-populated wholesale each refresh; lookups are a
// linear scan since candidate counts stay within the targeting radius
type ThreatCache struct {
	ids     []uint64
	entries []ThreatBreakdown
}

// Reset clears the cache for re-population, keeping capacity
func (c *ThreatCache) Reset() {
	c.ids = c.ids[:0]
	c.entries = c.entries[:0]
}

// Put records the breakdown for an enemy id
func (c *ThreatCache) Put(id uint64, bd ThreatBreakdown) {
	c.ids = append(c.ids, id)
	c.entries = append(c.entries, bd)
}

// Get returns the breakdown for an enemy id, if scored this refresh
func (c *ThreatCache) Get(id uint64) (ThreatBreakdown, bool) {
	for i, cid := range c.ids {
		if cid == id {
			return c.entries[i], true
		}
	}
	return ThreatBreakdown{}, false
}

// Len returns the number of cached breakdowns
func (c *ThreatCache) Len() int { return len(c.ids) }

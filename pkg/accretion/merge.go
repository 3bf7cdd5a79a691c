package accretion

// MergeResult is the outcome of one coalescence pass.
type MergeResult struct {
	Active   []Body // survivors in population order, fresh slice
	Promoted []Body // bodies that crossed the promotion mass, in scan order
	Merges   int
}

// MergeEngine coalesces overlapping bodies of the same group.
//
// Pairing policy: bodies are visited in population order; an unconsumed eligible
// body i takes the lowest index j > i that is still unconsumed, eligible and
// overlapping. Both are then consumed, so each body merges at most once per pass.
type MergeEngine struct {
	MinAge          uint32
	PromotionMass   float64
	RadiusScale     float64
	MinRadius       float64
	PlanetMinRadius float64

	grid     *spatialGrid
	consumed []bool
	partner  []int
}

// NewMergeEngine takes the merge gate and radius rules from cfg.
func NewMergeEngine(cfg *Config) *MergeEngine {
	return &MergeEngine{
		MinAge:          cfg.MergeMinAge,
		PromotionMass:   cfg.PromotionMass,
		RadiusScale:     cfg.RadiusScale,
		MinRadius:       cfg.MinRadius,
		PlanetMinRadius: cfg.PlanetMinRadius,
		grid:            newSpatialGrid(),
	}
}

// Eligible reports whether b may take part in a merge at all.
func (m *MergeEngine) Eligible(b *Body) bool {
	return !b.Fixed && !b.Promoted && b.Age > m.MinAge
}

// Overlap reports whether two eligible bodies of the same group touch.
func (m *MergeEngine) Overlap(a, b *Body) bool {
	if a.Group != b.Group {
		return false
	}
	reach := a.Radius + b.Radius
	return a.Pos.DistanceSquaredTo(b.Pos) < reach*reach
}

// Merge combines two bodies conserving mass and momentum. The result keeps the
// identity of a and starts a new life at age zero.
func (m *MergeEngine) Merge(a, b Body) Body {
	mass := a.Mass + b.Mass
	out := a
	out.Mass = mass
	out.Pos = a.Pos.Mul(a.Mass).Add(b.Pos.Mul(b.Mass)).Mul(1 / mass)
	out.Vel = a.Vel.Mul(a.Mass).Add(b.Vel.Mul(b.Mass)).Mul(1 / mass)
	out.Age = 0
	out.Radius = RadiusFor(mass, m.RadiusScale, m.MinRadius)
	if mass > m.PromotionMass {
		out.Promoted = true
		out.Radius = RadiusFor(mass, m.RadiusScale, m.PlanetMinRadius)
	}
	return out
}

// Scan runs one pass over active using the spatial grid. The input slice is not modified.
func (m *MergeEngine) Scan(active []Body) MergeResult {
	m.reset(len(active))

	maxRadius := 0.0
	for i := range active {
		if m.Eligible(&active[i]) && active[i].Radius > maxRadius {
			maxRadius = active[i].Radius
		}
	}
	m.grid.rebuild(active, 2*maxRadius, m.Eligible)

	for i := range active {
		a := &active[i]
		if m.consumed[i] || !m.Eligible(a) {
			continue
		}
		best := -1
		m.grid.neighbours(a, func(j int) {
			if j <= i || m.consumed[j] || (best >= 0 && j >= best) {
				return
			}
			if m.Overlap(a, &active[j]) {
				best = j
			}
		})
		m.pair(i, best)
	}
	return m.collect(active)
}

// scanQuadratic is the O(n^2) reference of Scan, kept for tests and benchmarks.
func (m *MergeEngine) scanQuadratic(active []Body) MergeResult {
	m.reset(len(active))
	for i := range active {
		a := &active[i]
		if m.consumed[i] || !m.Eligible(a) {
			continue
		}
		for j := i + 1; j < len(active); j++ {
			if m.consumed[j] || !m.Eligible(&active[j]) {
				continue
			}
			if m.Overlap(a, &active[j]) {
				m.pair(i, j)
				break
			}
		}
	}
	return m.collect(active)
}

func (m *MergeEngine) reset(n int) {
	if cap(m.consumed) < n {
		m.consumed = make([]bool, n)
		m.partner = make([]int, n)
	}
	m.consumed = m.consumed[:n]
	m.partner = m.partner[:n]
	for i := 0; i < n; i++ {
		m.consumed[i] = false
		m.partner[i] = -1
	}
}

func (m *MergeEngine) pair(i, j int) {
	if j < 0 {
		return
	}
	m.consumed[i] = true
	m.consumed[j] = true
	m.partner[i] = j
}

// collect builds the next population: survivors take the slot of their first body,
// absorbed bodies are dropped.
func (m *MergeEngine) collect(active []Body) MergeResult {
	res := MergeResult{Active: make([]Body, 0, len(active))}
	for i := range active {
		switch {
		case m.partner[i] >= 0:
			merged := m.Merge(active[i], active[m.partner[i]])
			res.Merges++
			if merged.Promoted {
				res.Promoted = append(res.Promoted, merged)
			} else {
				res.Active = append(res.Active, merged)
			}
		case m.consumed[i]:
			// absorbed by a lower index body
		default:
			res.Active = append(res.Active, active[i])
		}
	}
	return res
}

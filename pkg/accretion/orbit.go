package accretion

import (
	"fmt"
	"math"

	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/geometry"
	"golang.org/x/exp/rand"
)

// Seeder places particles on circular orbits inside a ring band.
// IDs keep increasing across calls so a handle is never reused within one Seeder.
type Seeder struct {
	integrator  Integrator
	rng         *rand.Rand
	radiusScale float64
	minRadius   float64
	nextID      uint64
}

// NewSeeder returns a Seeder drawing from rng, with IDs starting at 1.
func NewSeeder(in Integrator, rng *rand.Rand, radiusScale, minRadius float64) *Seeder {
	return &Seeder{
		integrator:  in,
		rng:         rng,
		radiusScale: radiusScale,
		minRadius:   minRadius,
		nextID:      1,
	}
}

// NextID hands out the next body handle.
func (s *Seeder) NextID() uint64 {
	id := s.nextID
	s.nextID++
	return id
}

// Seed creates ring.Count bodies of the given group. The radius is drawn so the
// bodies are uniform over the annulus area, and every body starts on the exact
// circular velocity for its distance.
func (s *Seeder) Seed(ring Ring, group GroupID) ([]Body, error) {
	if err := ring.Validate(); err != nil {
		return nil, err
	}
	clr, err := ParseColor(ring.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	minSq := ring.MinDistance * ring.MinDistance
	maxSq := ring.MaxDistance * ring.MaxDistance
	bodies := make([]Body, 0, ring.Count)
	for i := 0; i < ring.Count; i++ {
		r := math.Sqrt(minSq + s.rng.Float64()*(maxSq-minSq))
		theta := s.rng.Float64() * 2 * math.Pi
		mass := ring.MinMass + s.rng.Float64()*(ring.MaxMass-ring.MinMass)

		// exact speed at r, even inside the MinDistance floor of the integrator
		speed := math.Sqrt(s.integrator.G * s.integrator.StarMass / r)
		bodies = append(bodies, Body{
			ID:     s.NextID(),
			Pos:    s.integrator.Star.Add(geometry.NewVectorPolar(r, theta)),
			Vel:    geometry.NewVectorPolar(speed, theta).Perp(),
			Mass:   mass,
			Radius: RadiusFor(mass, s.radiusScale, s.minRadius),
			Group:  group,
			Color:  clr,
		})
	}
	return bodies, nil
}

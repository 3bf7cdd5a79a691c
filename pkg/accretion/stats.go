package accretion

import (
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/geometry"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises the non-fixed population. The star is never counted.
type Stats struct {
	ActiveCount int
	PlanetCount int
	TotalMass   float64
	LargestMass float64
	MeanMass    float64
	Merges      uint64
	Promotions  uint64
}

// ComputeStats aggregates the masses of active and planets.
func ComputeStats(active, planets []Body) Stats {
	s := Stats{ActiveCount: len(active), PlanetCount: len(planets)}
	masses := make([]float64, 0, len(active)+len(planets))
	for i := range active {
		masses = append(masses, active[i].Mass)
	}
	for i := range planets {
		masses = append(masses, planets[i].Mass)
	}
	if len(masses) == 0 {
		return s
	}
	s.TotalMass = floats.Sum(masses)
	s.LargestMass = floats.Max(masses)
	s.MeanMass = stat.Mean(masses, nil)
	return s
}

// TotalMomentum sums mass times velocity over every given collection.
func TotalMomentum(collections ...[]Body) geometry.Vector2D {
	var p geometry.Vector2D
	for _, bodies := range collections {
		for i := range bodies {
			p = p.Add(bodies[i].Momentum())
		}
	}
	return p
}

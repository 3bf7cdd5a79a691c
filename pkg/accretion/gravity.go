package accretion

import (
	"math"

	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/geometry"
)

// Integrator advances bodies under the pull of the central star only.
// Particles never attract each other.
type Integrator struct {
	G                  float64
	StarMass           float64
	Star               geometry.Vector2D
	MinDistance        float64
	DtScale            float64
	Damping            float64
	StabilizationTicks uint32
}

// NewIntegrator takes the physics constants from cfg; the star sits at the origin.
func NewIntegrator(cfg *Config) Integrator {
	return Integrator{
		G:                  cfg.G,
		StarMass:           cfg.StarMass,
		MinDistance:        cfg.MinDistance,
		DtScale:            cfg.DtScale,
		Damping:            cfg.Damping,
		StabilizationTicks: cfg.StabilizationTicks,
	}
}

// Acceleration returns G*M/dist^2 pointing at the star, with dist floored at MinDistance.
// A body sitting exactly on the star gets a zero acceleration.
func (in Integrator) Acceleration(pos geometry.Vector2D) geometry.Vector2D {
	d := in.Star.Sub(pos)
	dist := math.Max(d.Len(), in.MinDistance)
	return d.Normalize().Mul(in.G * in.StarMass / (dist * dist))
}

// CircularVelocity is the counter-clockwise tangential velocity of a circular orbit through pos.
func (in Integrator) CircularVelocity(pos geometry.Vector2D) geometry.Vector2D {
	r := pos.Sub(in.Star)
	dist := math.Max(r.Len(), in.MinDistance)
	return r.Normalize().Perp().Mul(math.Sqrt(in.G * in.StarMass / dist))
}

// Step integrates one body for one tick (symplectic Euler: velocity first, then position).
// While the body is younger than StabilizationTicks its velocity is forced onto the
// circular orbit, scaled by jitter.
func (in Integrator) Step(b *Body, jitter float64) {
	if b.Fixed {
		return
	}
	if b.Age < in.StabilizationTicks {
		b.Vel = in.CircularVelocity(b.Pos).Mul(jitter)
	} else {
		b.Vel = b.Vel.Add(in.Acceleration(b.Pos).Mul(in.DtScale)).Mul(in.Damping)
	}
	b.Pos = b.Pos.Add(b.Vel)
}

// Stabilizing reports whether Step will override the velocity of b.
func (in Integrator) Stabilizing(b *Body) bool {
	return !b.Fixed && b.Age < in.StabilizationTicks
}

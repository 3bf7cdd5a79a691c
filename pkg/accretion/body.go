package accretion

import (
	"image/color"
	"math"

	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/geometry"
)

// GroupID tags bodies seeded from the same ring. Only bodies of the same group merge.
type GroupID uint32

// Body is a point mass in the accretion disk.
// The star is the only body with Fixed set; it is held by the World outside
// of the active and planets collections.
type Body struct {
	ID       uint64
	Pos      geometry.Vector2D
	Vel      geometry.Vector2D
	Mass     float64
	Radius   float64
	Group    GroupID
	Color    color.RGBA
	Fixed    bool
	Age      uint32
	Promoted bool
}

// Momentum returns mass times velocity.
func (b *Body) Momentum() geometry.Vector2D {
	return b.Vel.Mul(b.Mass)
}

// RadiusFor maps a mass to its display and collision radius:
// max(minRadius, floor(k*ln(mass+1))). It is monotonic non-decreasing in mass.
func RadiusFor(mass, k, minRadius float64) float64 {
	if mass <= 0 {
		return minRadius
	}
	return math.Max(minRadius, math.Floor(k*math.Log(mass+1)))
}

package accretion

import (
	"image/color"
	"slices"

	"github.com/lao-tseu-is-alive/go-accretion-simulation/pb"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/geometry"
)

// PackColor packs c as 0xRRGGBBAA.
func PackColor(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// UnpackColor is the inverse of PackColor.
func UnpackColor(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

func (s RunState) Proto() pb.RunState {
	switch s {
	case RunStateRunning:
		return pb.RunState_RUN_STATE_RUNNING
	case RunStatePaused:
		return pb.RunState_RUN_STATE_PAUSED
	case RunStateStopped:
		return pb.RunState_RUN_STATE_STOPPED
	}
	return pb.RunState_RUN_STATE_UNSPECIFIED
}

func toVector(v geometry.Vector2D) *pb.Vector {
	return &pb.Vector{X: v.X, Y: v.Y}
}

// ToProto converts b into its wire form.
func (b *Body) ToProto() *pb.BodyState {
	kind := pb.BodyKind_BODY_KIND_PARTICLE
	switch {
	case b.Fixed:
		kind = pb.BodyKind_BODY_KIND_STAR
	case b.Promoted:
		kind = pb.BodyKind_BODY_KIND_PLANET
	}
	return &pb.BodyState{
		Id:       b.ID,
		Kind:     kind,
		Position: toVector(b.Pos),
		Velocity: toVector(b.Vel),
		Mass:     b.Mass,
		Radius:   b.Radius,
		Group:    uint32(b.Group),
		Color:    PackColor(b.Color),
		Age:      b.Age,
	}
}

func (s Stats) ToProto() *pb.Stats {
	return &pb.Stats{
		ActiveCount: uint32(s.ActiveCount),
		PlanetCount: uint32(s.PlanetCount),
		TotalMass:   s.TotalMass,
		LargestMass: s.LargestMass,
		MeanMass:    s.MeanMass,
		Merges:      s.Merges,
		Promotions:  s.Promotions,
	}
}

// Snapshot returns a read-only copy of the world; nothing in it aliases World state.
func (w *World) Snapshot() *pb.WorldSnapshot {
	snap := &pb.WorldSnapshot{
		Tick:          w.tick,
		State:         w.state.Proto(),
		Star:          w.star.ToProto(),
		Particles:     make([]*pb.BodyState, 0, len(w.active)),
		Planets:       make([]*pb.BodyState, 0, len(w.planets)),
		Stats:         w.Stats().ToProto(),
		RunId:         w.runID.String(),
		TicksPerFrame: uint32(w.ticksPerFrame),
	}
	for i := range w.active {
		snap.Particles = append(snap.Particles, w.active[i].ToProto())
	}
	for i := range w.planets {
		snap.Planets = append(snap.Planets, w.planets[i].ToProto())
	}
	return snap
}

// PaintOrder lists particles then planets sorted farthest from the star first,
// the order renderers draw them in. The snapshot itself is left untouched.
func PaintOrder(snap *pb.WorldSnapshot) []*pb.BodyState {
	out := make([]*pb.BodyState, 0, len(snap.GetParticles())+len(snap.GetPlanets()))
	out = append(out, snap.GetParticles()...)
	out = append(out, snap.GetPlanets()...)

	sx, sy := snap.GetStar().GetPosition().GetX(), snap.GetStar().GetPosition().GetY()
	distSq := func(b *pb.BodyState) float64 {
		dx, dy := b.GetPosition().GetX()-sx, b.GetPosition().GetY()-sy
		return dx*dx + dy*dy
	}
	slices.SortStableFunc(out, func(a, b *pb.BodyState) int {
		da, db := distSq(a), distSq(b)
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})
	return out
}

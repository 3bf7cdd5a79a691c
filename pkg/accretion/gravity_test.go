package accretion

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/geometry"
)

func testIntegrator() Integrator {
	return NewIntegrator(DefaultConfig())
}

func TestIntegrator_Acceleration(t *testing.T) {
	in := testIntegrator()
	gm := in.G * in.StarMass

	tests := []struct {
		name string
		pos  geometry.Vector2D
		want geometry.Vector2D
	}{
		{"East", geometry.Vector2D{X: 100}, geometry.Vector2D{X: -gm / 10000}},
		{"North", geometry.Vector2D{Y: 50}, geometry.Vector2D{Y: -gm / 2500}},
		{"InsideSofteningFloor", geometry.Vector2D{X: -5}, geometry.Vector2D{X: gm / 400}},
		{"OnTheStar", geometry.Vector2D{}, geometry.Vector2D{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := in.Acceleration(tt.pos)
			if !got.IsFinite() {
				t.Fatalf("Acceleration(%v) is not finite: %v", tt.pos, got)
			}
			if !got.Eq(tt.want) {
				t.Errorf("Acceleration(%v) = %v; want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestIntegrator_CircularVelocity(t *testing.T) {
	in := testIntegrator()
	pos := geometry.Vector2D{X: 30, Y: 40} // r = 50
	v := in.CircularVelocity(pos)

	want := math.Sqrt(in.G * in.StarMass / 50)
	if math.Abs(v.Len()-want) > 1e-9 {
		t.Errorf("speed = %v; want %v", v.Len(), want)
	}
	if math.Abs(v.Dot(pos)) > 1e-9 {
		t.Errorf("velocity %v is not perpendicular to %v", v, pos)
	}
	// counter-clockwise: z component of pos x vel is positive
	if pos.X*v.Y-pos.Y*v.X <= 0 {
		t.Errorf("velocity %v is not counter-clockwise around the star", v)
	}
}

func TestIntegrator_Step(t *testing.T) {
	in := testIntegrator()

	t.Run("FixedIsSkipped", func(t *testing.T) {
		star := Body{Fixed: true, Mass: in.StarMass, Vel: geometry.Vector2D{X: 1}}
		before := star
		in.Step(&star, 1.5)
		if star != before {
			t.Errorf("fixed body moved: %+v -> %+v", before, star)
		}
	})

	t.Run("StabilizationOverridesVelocity", func(t *testing.T) {
		b := Body{Pos: geometry.Vector2D{X: 100}, Vel: geometry.Vector2D{X: 42, Y: -7}, Mass: 1, Age: 1}
		in.Step(&b, 1.02)
		wantVel := in.CircularVelocity(geometry.Vector2D{X: 100}).Mul(1.02)
		if !b.Vel.Eq(wantVel) {
			t.Errorf("Vel = %v; want %v", b.Vel, wantVel)
		}
		if !b.Pos.Eq(geometry.Vector2D{X: 100}.Add(wantVel)) {
			t.Errorf("Pos = %v; want %v", b.Pos, geometry.Vector2D{X: 100}.Add(wantVel))
		}
	})

	t.Run("GravityAndDampingAfterStabilization", func(t *testing.T) {
		pos := geometry.Vector2D{X: 100}
		vel := geometry.Vector2D{Y: 2}
		b := Body{Pos: pos, Vel: vel, Mass: 1, Age: in.StabilizationTicks}
		in.Step(&b, 1.5) // jitter is ignored once stabilised

		wantVel := vel.Add(in.Acceleration(pos).Mul(in.DtScale)).Mul(in.Damping)
		if !b.Vel.Eq(wantVel) {
			t.Errorf("Vel = %v; want %v", b.Vel, wantVel)
		}
		if !b.Pos.Eq(pos.Add(wantVel)) {
			t.Errorf("Pos = %v; want %v", b.Pos, pos.Add(wantVel))
		}
	})

	t.Run("NeverNaNAtTheStar", func(t *testing.T) {
		b := Body{Mass: 1, Age: 100}
		for i := 0; i < 10; i++ {
			in.Step(&b, 1)
		}
		if !b.Pos.IsFinite() || !b.Vel.IsFinite() {
			t.Errorf("body at the star produced non finite state: %+v", b)
		}
	})
}

func TestIntegrator_CircularOrbitStaysBound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Damping = 1
	in := NewIntegrator(cfg)
	pos := geometry.Vector2D{X: 200}
	b := Body{Pos: pos, Vel: in.CircularVelocity(pos), Mass: 1, Age: in.StabilizationTicks}
	for i := 0; i < 2000; i++ {
		in.Step(&b, 1)
	}
	if r := b.Pos.Len(); r < 150 || r > 250 {
		t.Errorf("circular orbit drifted to r = %v after 2000 ticks", r)
	}
}

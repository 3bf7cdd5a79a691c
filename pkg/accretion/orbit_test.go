package accretion

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func newTestSeeder(seed uint64) *Seeder {
	cfg := DefaultConfig()
	return NewSeeder(NewIntegrator(cfg), rand.New(rand.NewSource(seed)), cfg.RadiusScale, cfg.MinRadius)
}

func TestSeeder_Seed(t *testing.T) {
	s := newTestSeeder(1)
	in := s.integrator
	ring := Ring{Name: "Disk", MinDistance: 60, MaxDistance: 350, Count: 500, Color: "#c8c8ff", MinMass: 0.8, MaxMass: 1.2}

	bodies, err := s.Seed(ring, 3)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if len(bodies) != ring.Count {
		t.Fatalf("Seed() returned %d bodies; want %d", len(bodies), ring.Count)
	}

	seen := make(map[uint64]bool)
	for _, b := range bodies {
		r := b.Pos.Len()
		if r < ring.MinDistance-1e-9 || r > ring.MaxDistance+1e-9 {
			t.Errorf("body %d at r = %v outside [%v, %v]", b.ID, r, ring.MinDistance, ring.MaxDistance)
		}
		want := math.Sqrt(in.G * in.StarMass / r)
		if math.Abs(b.Vel.Len()-want) > 1e-9 {
			t.Errorf("body %d speed = %v; want %v", b.ID, b.Vel.Len(), want)
		}
		if cos := b.Vel.Dot(b.Pos) / (b.Vel.Len() * r); math.Abs(cos) > 1e-9 {
			t.Errorf("body %d velocity not perpendicular to radius, cos = %v", b.ID, cos)
		}
		if b.Mass < ring.MinMass || b.Mass > ring.MaxMass {
			t.Errorf("body %d mass %v outside [%v, %v]", b.ID, b.Mass, ring.MinMass, ring.MaxMass)
		}
		if b.Radius != RadiusFor(b.Mass, 1.3, 1) {
			t.Errorf("body %d radius %v not derived from mass %v", b.ID, b.Radius, b.Mass)
		}
		if b.Group != 3 || b.Fixed || b.Promoted || b.Age != 0 {
			t.Errorf("body %d has unexpected flags: %+v", b.ID, b)
		}
		if seen[b.ID] {
			t.Errorf("duplicate body id %d", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestSeeder_CircularSpeedAtAnyDistance(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
	}{
		{"inside the gravity floor", 5, 10},
		{"across the gravity floor", 10, 30},
		{"outside the gravity floor", 200, 210},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSeeder(5)
			in := s.integrator
			ring := Ring{Name: tt.name, MinDistance: tt.min, MaxDistance: tt.max, Count: 50, Color: "#ffffff", MinMass: 1, MaxMass: 1}
			bodies, err := s.Seed(ring, 0)
			if err != nil {
				t.Fatalf("Seed() error = %v", err)
			}
			for _, b := range bodies {
				r := b.Pos.Len()
				want := math.Sqrt(in.G * in.StarMass / r)
				if math.Abs(b.Vel.Len()-want) > 1e-9*want {
					t.Errorf("body %d at r = %.3f: speed = %v; want %v", b.ID, r, b.Vel.Len(), want)
				}
				if cross := b.Pos.X*b.Vel.Y - b.Pos.Y*b.Vel.X; cross <= 0 {
					t.Errorf("body %d does not orbit counter-clockwise", b.ID)
				}
			}
		})
	}
}

func TestSeeder_IDsNeverReused(t *testing.T) {
	s := newTestSeeder(2)
	ring := Ring{Name: "a", MinDistance: 50, MaxDistance: 60, Count: 10, Color: "#ffffff", MinMass: 1, MaxMass: 1}
	first, _ := s.Seed(ring, 0)
	second, _ := s.Seed(ring, 0)
	if second[0].ID <= first[len(first)-1].ID {
		t.Errorf("second batch starts at id %d, first ended at %d", second[0].ID, first[len(first)-1].ID)
	}
}

func TestSeeder_Deterministic(t *testing.T) {
	ring := DefaultConfig().Rings[0]
	a, _ := newTestSeeder(7).Seed(ring, 0)
	b, _ := newTestSeeder(7).Seed(ring, 0)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different body %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSeeder_InvalidRing(t *testing.T) {
	valid := Ring{Name: "ok", MinDistance: 50, MaxDistance: 60, Count: 10, Color: "#ffffff", MinMass: 0.8, MaxMass: 1.2}
	tests := []struct {
		name   string
		mutate func(r *Ring)
	}{
		{"NegativeCount", func(r *Ring) { r.Count = -1 }},
		{"MinAboveMax", func(r *Ring) { r.MinDistance = 70 }},
		{"ZeroMinDistance", func(r *Ring) { r.MinDistance = 0 }},
		{"EmptyMassBand", func(r *Ring) { r.MinMass = 2 }},
		{"ZeroMass", func(r *Ring) { r.MinMass = 0 }},
		{"BadColor", func(r *Ring) { r.Color = "red" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			_, err := newTestSeeder(1).Seed(r, 0)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Seed(%+v) error = %v; want ErrInvalidConfig", r, err)
			}
		})
	}
}

func TestSeeder_EmptyRing(t *testing.T) {
	ring := Ring{Name: "empty", MinDistance: 50, MaxDistance: 50, Count: 0, Color: "#ffffff", MinMass: 1, MaxMass: 1}
	bodies, err := newTestSeeder(1).Seed(ring, 0)
	if err != nil || len(bodies) != 0 {
		t.Errorf("Seed(empty) = %d bodies, %v; want 0, nil", len(bodies), err)
	}
}

package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pb"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/accretion"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return sb.String()
}

func body(kind pb.BodyKind, x, y, radius float64) *pb.BodyState {
	return &pb.BodyState{
		Kind:     kind,
		Position: &pb.Vector{X: x, Y: y},
		Mass:     1,
		Radius:   radius,
		Color:    0xffffffff,
	}
}

func TestRenderer_Draw(t *testing.T) {
	s := newScreen(t, 80, 24)
	// 22 usable rows, so the 110 radius fits 22 columns each side: 5 world units per column
	r := NewRenderer(s, 110)

	snap := &pb.WorldSnapshot{
		Tick:          42,
		State:         pb.RunState_RUN_STATE_PAUSED,
		TicksPerFrame: 3,
		Star:          &pb.BodyState{Kind: pb.BodyKind_BODY_KIND_STAR, Position: &pb.Vector{}, Radius: 15, Color: 0xffff00ff},
		Particles: []*pb.BodyState{
			body(pb.BodyKind_BODY_KIND_PARTICLE, 50, 0, 1),
			body(pb.BodyKind_BODY_KIND_PARTICLE, -50, 0, 3),
			body(pb.BodyKind_BODY_KIND_PARTICLE, 10000, 0, 1), // off screen
		},
		Planets: []*pb.BodyState{
			body(pb.BodyKind_BODY_KIND_PLANET, 0, 50, 4),
		},
		Stats: &pb.Stats{ActiveCount: 3, PlanetCount: 1},
	}
	r.Draw(snap)

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"star at the centre", 40, 12, starRune},
		{"small particle", 50, 12, particleRune},
		{"clump", 30, 12, clumpRune},
		{"planet above the star", 40, 7, planetRune},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runeAt(s, tt.x, tt.y); got != tt.want {
				t.Errorf("cell (%d,%d) = %q; want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if hud := rowText(s, 0); !strings.HasPrefix(hud, "PAUSED x3 | tick 42 | particles 3 | planets 1") {
		t.Errorf("HUD row = %q", hud)
	}
	if help := rowText(s, 23); !strings.HasPrefix(help, helpLine) {
		t.Errorf("help row = %q", help)
	}
}

func TestRenderer_TinyScreen(t *testing.T) {
	s := newScreen(t, 4, 2)
	r := NewRenderer(s, 100)
	defer func() {
		if rec := recover(); rec != nil {
			t.Fatalf("Draw() panicked on a tiny screen: %v", rec)
		}
	}()
	r.Draw(&pb.WorldSnapshot{Star: body(pb.BodyKind_BODY_KIND_STAR, 0, 0, 15)})
}

func TestWorldRadius(t *testing.T) {
	cfg := accretion.DefaultConfig()
	cfg.Rings = []accretion.Ring{{MaxDistance: 100}, {MaxDistance: 300}, {MaxDistance: 200}}
	if got := WorldRadius(cfg); got < 330-1e-9 || got > 330+1e-9 {
		t.Errorf("WorldRadius() = %v; want 330", got)
	}
}

func TestKeyIntent(t *testing.T) {
	tests := []struct {
		name   string
		key    tcell.Key
		r      rune
		want   pb.IntentKind
		wantOK bool
	}{
		{"space toggles", tcell.KeyRune, ' ', pb.IntentKind_INTENT_KIND_TOGGLE_PAUSE, true},
		{"p pauses", tcell.KeyRune, 'p', pb.IntentKind_INTENT_KIND_PAUSE, true},
		{"o resumes", tcell.KeyRune, 'o', pb.IntentKind_INTENT_KIND_RESUME, true},
		{"r resets", tcell.KeyRune, 'r', pb.IntentKind_INTENT_KIND_RESET, true},
		{"i injects", tcell.KeyRune, 'i', pb.IntentKind_INTENT_KIND_INJECT, true},
		{"plus speeds up", tcell.KeyRune, '+', pb.IntentKind_INTENT_KIND_SPEED_UP, true},
		{"equals speeds up", tcell.KeyRune, '=', pb.IntentKind_INTENT_KIND_SPEED_UP, true},
		{"minus slows down", tcell.KeyRune, '-', pb.IntentKind_INTENT_KIND_SLOW_DOWN, true},
		{"q quits", tcell.KeyRune, 'q', pb.IntentKind_INTENT_KIND_QUIT, true},
		{"escape quits", tcell.KeyEscape, 0, pb.IntentKind_INTENT_KIND_QUIT, true},
		{"ctrl-c quits", tcell.KeyCtrlC, 0, pb.IntentKind_INTENT_KIND_QUIT, true},
		{"unbound rune", tcell.KeyRune, 'z', pb.IntentKind_INTENT_KIND_UNSPECIFIED, false},
		{"unbound key", tcell.KeyF1, 0, pb.IntentKind_INTENT_KIND_UNSPECIFIED, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyIntent(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("KeyIntent() = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

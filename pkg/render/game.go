package render

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pb"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/accretion"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

var (
	background  = color.RGBA{R: 5, G: 5, B: 15, A: 255}
	planetRing  = color.RGBA{R: 255, G: 255, B: 255, A: 160}
	ringOutline = color.RGBA{R: 80, G: 80, B: 120, A: 90}
)

// keyIntents maps the keyboard to world intents.
var keyIntents = []struct {
	keys []ebiten.Key
	kind pb.IntentKind
}{
	{[]ebiten.Key{ebiten.KeySpace}, pb.IntentKind_INTENT_KIND_TOGGLE_PAUSE},
	{[]ebiten.Key{ebiten.KeyP}, pb.IntentKind_INTENT_KIND_PAUSE},
	{[]ebiten.Key{ebiten.KeyO}, pb.IntentKind_INTENT_KIND_RESUME},
	{[]ebiten.Key{ebiten.KeyR}, pb.IntentKind_INTENT_KIND_RESET},
	{[]ebiten.Key{ebiten.KeyEscape}, pb.IntentKind_INTENT_KIND_QUIT},
	{[]ebiten.Key{ebiten.KeyI}, pb.IntentKind_INTENT_KIND_INJECT},
	{[]ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, pb.IntentKind_INTENT_KIND_SPEED_UP},
	{[]ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, pb.IntentKind_INTENT_KIND_SLOW_DOWN},
}

// Game is the window collaborator: it turns input into intents, drives the
// world with one Tick per frame and draws the latest snapshot.
type Game struct {
	ctx        context.Context
	worldPID   *actor.PID
	snapshotCh chan *pb.WorldSnapshot
	lastState  *pb.WorldSnapshot
	cfg        *accretion.Config

	// OnPromotion is called with the number of new planets seen since the previous snapshot.
	OnPromotion func(n int)

	// UI Controls
	panel            *ui.Panel
	widgetSpeed      *ui.Slider
	widgetInjectRing *ui.Slider
	widgetShowRings  *ui.Checkbox
	widgetShowHUD    *ui.Checkbox

	// speed slider sync: targetSpeed is 0 unless the slider asked for a new value
	sliderSeen   int
	targetSpeed  int
	speedSentFor *pb.WorldSnapshot

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// NewGame spawns the world actor in system and builds the control panel.
func NewGame(ctx context.Context, cfg *accretion.Config, system actor.ActorSystem, opts ...accretion.Option) (*Game, error) {
	snapshotCh := make(chan *pb.WorldSnapshot, 10)
	worldPID, err := simulation.SpawnWorld(ctx, system, cfg, snapshotCh, opts...)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctx:        ctx,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.WorldSnapshot{}, // Avoid nil pointer
		cfg:        cfg,
	}

	panel := ui.NewPanel("Accretion", 10, 10, 220, 330)
	panel.Visible = cfg.ShowPanel

	panel.AddSection("Run")
	panel.AddButton("Pause / Resume (space)", func() { g.tell(pb.IntentKind_INTENT_KIND_TOGGLE_PAUSE) })
	panel.AddButton("Reset (r)", func() { g.tell(pb.IntentKind_INTENT_KIND_RESET) })
	g.widgetSpeed = panel.AddSlider("Ticks per frame", 1, accretion.MaxTicksPerFrame, float64(cfg.TicksPerFrame), 1)
	g.sliderSeen = cfg.TicksPerFrame
	panel.EndSection()

	panel.AddSection("Spawn burst")
	g.widgetInjectRing = panel.AddSlider("Ring", 0, float64(max(len(cfg.Rings)-1, 1)), 0, 1)
	panel.AddButton(fmt.Sprintf("Inject %d (i)", cfg.InjectCount), func() { g.tell(pb.IntentKind_INTENT_KIND_INJECT) })
	panel.EndSection()

	panel.AddSection("Visualization")
	g.widgetShowRings = panel.AddCheckbox("Show ring bands", false)
	g.widgetShowHUD = panel.AddCheckbox("Show statistics", true)
	panel.EndSection()

	g.panel = panel
	return g, nil
}

func (g *Game) tell(kind pb.IntentKind) {
	intent := &pb.Intent{Kind: kind}
	if kind == pb.IntentKind_INTENT_KIND_INJECT {
		intent.Ring = uint32(g.widgetInjectRing.Int())
	}
	_ = actor.Tell(g.ctx, g.worldPID, intent)
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Drain to the latest state (non-blocking)
	for drained := false; !drained; {
		select {
		case snap := <-g.snapshotCh:
			g.observe(snap)
		default:
			drained = true
		}
	}
	if g.lastState.GetState() == pb.RunState_RUN_STATE_STOPPED {
		return ebiten.Termination
	}

	// 2. Input: panel, keyboard, speed slider
	g.panel.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.panel.Visible = !g.panel.Visible
	}
	for _, binding := range keyIntents {
		for _, k := range binding.keys {
			if !inpututil.IsKeyJustPressed(k) {
				continue
			}
			if binding.kind == pb.IntentKind_INTENT_KIND_SPEED_UP || binding.kind == pb.IntentKind_INTENT_KIND_SLOW_DOWN {
				g.targetSpeed = 0
			}
			g.tell(binding.kind)
		}
	}
	g.syncSpeed()

	// 3. Trigger Simulation Step
	_ = actor.Tell(g.ctx, g.worldPID, &pb.Tick{})
	return nil
}

// observe swaps in a new snapshot and reports fresh promotions.
func (g *Game) observe(snap *pb.WorldSnapshot) {
	prev := g.lastState
	g.lastState = snap
	if snap.GetRunId() != prev.GetRunId() {
		// counters restart with every run
		return
	}
	if n := int(snap.GetStats().GetPromotions()) - int(prev.GetStats().GetPromotions()); n > 0 && g.OnPromotion != nil {
		g.OnPromotion(n)
	}
}

// syncSpeed walks the world towards the slider value one intent per snapshot,
// and follows the world when the speed was changed from the keyboard.
func (g *Game) syncSpeed() {
	if v := g.widgetSpeed.Int(); v != g.sliderSeen {
		g.sliderSeen = v
		g.targetSpeed = v
	}
	tpf := int(g.lastState.GetTicksPerFrame())
	if tpf == 0 || g.speedSentFor == g.lastState {
		return
	}
	switch {
	case g.targetSpeed == 0:
		g.widgetSpeed.Value = float64(tpf)
		g.sliderSeen = tpf
		return
	case g.targetSpeed > tpf:
		g.tell(pb.IntentKind_INTENT_KIND_SPEED_UP)
	case g.targetSpeed < tpf:
		g.tell(pb.IntentKind_INTENT_KIND_SLOW_DOWN)
	default:
		g.targetSpeed = 0
		return
	}
	g.speedSentFor = g.lastState
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(background)
	cx, cy := float32(g.cfg.ScreenWidth)/2, float32(g.cfg.ScreenHeight)/2

	if g.widgetShowRings.Value {
		for _, r := range g.cfg.Rings {
			vector.StrokeCircle(screen, cx, cy, float32(r.MinDistance), 1, ringOutline, true)
			vector.StrokeCircle(screen, cx, cy, float32(r.MaxDistance), 1, ringOutline, true)
		}
	}

	// 1. Star first, then every body farthest first
	if star := g.lastState.GetStar(); star != nil {
		drawBody(screen, cx, cy, star)
	}
	for _, b := range accretion.PaintOrder(g.lastState) {
		drawBody(screen, cx, cy, b)
	}

	// 2. Draw UI Panel
	g.panel.Draw(screen)

	// 3. Statistics and timing on the right side
	if g.widgetShowHUD.Value {
		ebitenutil.DebugPrintAt(screen, g.hud(), g.cfg.ScreenWidth-210, 10)
	}
}

func drawBody(screen *ebiten.Image, cx, cy float32, b *pb.BodyState) {
	x := cx + float32(b.GetPosition().GetX())
	// world y grows upward
	y := cy - float32(b.GetPosition().GetY())
	clr := accretion.UnpackColor(b.GetColor())
	r := float32(b.GetRadius())

	if r < 2 {
		vector.FillRect(screen, x, y, 1, 1, clr, false)
		return
	}
	vector.FillCircle(screen, x, y, r, clr, true)
	if b.GetKind() == pb.BodyKind_BODY_KIND_PLANET {
		vector.StrokeCircle(screen, x, y, r+2, 1, planetRing, true)
	}
}

func (g *Game) hud() string {
	s := g.lastState.GetStats()
	state := "RUNNING"
	if g.lastState.GetState() == pb.RunState_RUN_STATE_PAUSED {
		state = "PAUSED"
	}
	return fmt.Sprintf("%s  x%d\nTick:      %d\nParticles: %d\nPlanets:   %d\nMass:      %.1f\nLargest:   %.2f\nMean:      %.3f\nMerges:    %d\n\nFPS: %.2f  TPS: %.2f\nUpdate: %.2fms\nDraw:   %.2fms",
		state, g.lastState.GetTicksPerFrame(),
		g.lastState.GetTick(),
		s.GetActiveCount(), s.GetPlanetCount(),
		s.GetTotalMass(), s.GetLargestMass(), s.GetMeanMass(), s.GetMerges(),
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.updateAvg, g.drawAvg)
}

func (g *Game) Layout(w, h int) (int, int) { return g.cfg.ScreenWidth, g.cfg.ScreenHeight }

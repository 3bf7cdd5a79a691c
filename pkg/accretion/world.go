package accretion

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pb"
	golog "github.com/tochemey/goakt/v3/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type RunState int

const (
	RunStateRunning RunState = iota
	RunStatePaused
	RunStateStopped
)

func (s RunState) String() string {
	switch s {
	case RunStateRunning:
		return "running"
	case RunStatePaused:
		return "paused"
	case RunStateStopped:
		return "stopped"
	}
	return fmt.Sprintf("RunState(%d)", int(s))
}

// Option customises a World at construction.
type Option func(*World)

// WithLogger sets the logger used for resets, promotions and state changes.
func WithLogger(l golog.Logger) Option {
	return func(w *World) { w.logger = l }
}

// WithRand injects the random source used for seeding and jitter.
func WithRand(r *rand.Rand) Option {
	return func(w *World) { w.rng = r }
}

// World is the authoritative simulation state: one fixed star, the active
// particles and the append-only planets. It is not safe for concurrent use;
// the owning actor serialises every call.
type World struct {
	cfg        *Config
	logger     golog.Logger
	rng        *rand.Rand
	integrator Integrator
	seeder     *Seeder
	merger     *MergeEngine

	star    Body
	active  []Body
	planets []Body

	state         RunState
	tick          uint64
	ticksPerFrame int
	merges        uint64
	promotions    uint64
	runID         uuid.UUID

	// jitter factors drawn for the current tick, one per body in population order
	jitter []float64
}

// NewWorld validates cfg and seeds every ring.
func NewWorld(cfg *Config, opts ...Option) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	starColor, _ := ParseColor(cfg.StarColor)

	w := &World{
		cfg:           cfg,
		logger:        golog.DiscardLogger,
		integrator:    NewIntegrator(cfg),
		merger:        NewMergeEngine(cfg),
		ticksPerFrame: cfg.TicksPerFrame,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		w.rng = rand.New(rand.NewSource(seed))
	}
	w.seeder = NewSeeder(w.integrator, w.rng, cfg.RadiusScale, cfg.MinRadius)
	w.star = Body{
		ID:     w.seeder.NextID(),
		Pos:    w.integrator.Star,
		Mass:   cfg.StarMass,
		Radius: cfg.StarRadius,
		Color:  starColor,
		Fixed:  true,
	}
	if err := w.seed(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) seed() error {
	w.active = w.active[:0]
	for i, ring := range w.cfg.Rings {
		bodies, err := w.seeder.Seed(ring, GroupID(i))
		if err != nil {
			return fmt.Errorf("failed to seed ring %d: %w", i, err)
		}
		w.active = append(w.active, bodies...)
	}
	w.planets = nil
	w.tick = 0
	w.merges = 0
	w.promotions = 0
	w.runID = uuid.New()
	w.logger.Infof("run %s seeded %d particles in %d rings", w.runID, len(w.active), len(w.cfg.Rings))
	return nil
}

// Apply executes one user intent and reports whether anything changed.
// A stopped world ignores every intent.
func (w *World) Apply(intent *pb.Intent) bool {
	if w.state == RunStateStopped {
		return false
	}
	switch intent.GetKind() {
	case pb.IntentKind_INTENT_KIND_PAUSE:
		return w.setState(RunStatePaused)
	case pb.IntentKind_INTENT_KIND_RESUME:
		return w.setState(RunStateRunning)
	case pb.IntentKind_INTENT_KIND_TOGGLE_PAUSE:
		if w.state == RunStatePaused {
			return w.setState(RunStateRunning)
		}
		return w.setState(RunStatePaused)
	case pb.IntentKind_INTENT_KIND_RESET:
		if err := w.seed(); err != nil {
			// rings were validated at construction
			w.logger.Errorf("reset failed: %v", err)
			return false
		}
		w.state = RunStateRunning
		return true
	case pb.IntentKind_INTENT_KIND_QUIT:
		return w.setState(RunStateStopped)
	case pb.IntentKind_INTENT_KIND_INJECT:
		return w.inject(int(intent.GetRing()))
	case pb.IntentKind_INTENT_KIND_SPEED_UP:
		return w.setTicksPerFrame(w.ticksPerFrame + 1)
	case pb.IntentKind_INTENT_KIND_SLOW_DOWN:
		return w.setTicksPerFrame(w.ticksPerFrame - 1)
	}
	return false
}

func (w *World) setState(s RunState) bool {
	if w.state == s {
		return false
	}
	w.logger.Debugf("run %s: %s -> %s", w.runID, w.state, s)
	w.state = s
	return true
}

func (w *World) setTicksPerFrame(n int) bool {
	n = max(1, min(n, MaxTicksPerFrame))
	if n == w.ticksPerFrame {
		return false
	}
	w.ticksPerFrame = n
	return true
}

func (w *World) inject(ring int) bool {
	if w.cfg.InjectCount == 0 {
		return false
	}
	idx := ring % len(w.cfg.Rings)
	r := w.cfg.Rings[idx]
	r.Count = w.cfg.InjectCount
	bodies, err := w.seeder.Seed(r, GroupID(idx))
	if err != nil {
		w.logger.Errorf("inject into ring %d failed: %v", idx, err)
		return false
	}
	w.active = append(w.active, bodies...)
	w.logger.Debugf("injected %d particles into ring %q", len(bodies), r.Name)
	return true
}

// Step runs TicksPerFrame ticks when running and returns how many ran.
func (w *World) Step() int {
	if w.state != RunStateRunning {
		return 0
	}
	for i := 0; i < w.ticksPerFrame; i++ {
		w.advance()
	}
	return w.ticksPerFrame
}

// advance is one tick: age, integrate, merge, bookkeeping.
func (w *World) advance() {
	for i := range w.active {
		w.active[i].Age++
	}
	for i := range w.planets {
		w.planets[i].Age++
	}

	w.drawJitter()
	w.integrate()

	res := w.merger.Scan(w.active)
	w.active = res.Active
	w.planets = append(w.planets, res.Promoted...)
	w.merges += uint64(res.Merges)
	w.promotions += uint64(len(res.Promoted))
	for i := range res.Promoted {
		p := &res.Promoted[i]
		w.logger.Infof("run %s tick %d: body %d promoted to planet (mass %.2f)", w.runID, w.tick+1, p.ID, p.Mass)
	}
	w.tick++
}

// drawJitter draws the stabilisation factors sequentially so the outcome does not
// depend on how integration is split across workers.
func (w *World) drawJitter() {
	n := len(w.active) + len(w.planets)
	if cap(w.jitter) < n {
		w.jitter = make([]float64, n)
	}
	w.jitter = w.jitter[:n]
	j := w.cfg.Jitter
	for i := 0; i < n; i++ {
		b := w.bodyAt(i)
		if w.integrator.Stabilizing(b) {
			w.jitter[i] = 1 + j*(2*w.rng.Float64()-1)
		} else {
			w.jitter[i] = 1
		}
	}
}

func (w *World) bodyAt(i int) *Body {
	if i < len(w.active) {
		return &w.active[i]
	}
	return &w.planets[i-len(w.active)]
}

func (w *World) integrate() {
	n := len(w.active) + len(w.planets)
	workers := w.cfg.Workers
	if workers <= 1 || n < workers {
		for i := 0; i < n; i++ {
			w.integrator.Step(w.bodyAt(i), w.jitter[i])
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				w.integrator.Step(w.bodyAt(i), w.jitter[i])
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (w *World) State() RunState    { return w.state }
func (w *World) Tick() uint64       { return w.tick }
func (w *World) TicksPerFrame() int { return w.ticksPerFrame }
func (w *World) RunID() uuid.UUID   { return w.runID }
func (w *World) Star() Body         { return w.star }
func (w *World) Config() *Config    { return w.cfg }

// Active returns a copy of the active collection in population order.
func (w *World) Active() []Body { return slices.Clone(w.active) }

// Planets returns a copy of the planets collection in promotion order.
func (w *World) Planets() []Body { return slices.Clone(w.planets) }

// Stats aggregates the current population plus the cumulative counters.
func (w *World) Stats() Stats {
	s := ComputeStats(w.active, w.planets)
	s.Merges = w.merges
	s.Promotions = w.promotions
	return s
}

package simulation

import (
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-accretion-simulation/pb"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/accretion"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// WorldActor is the single owner of the accretion World. The mailbox serialises
// Tick and Intent messages, so a tick always completes before the next message.
type WorldActor struct {
	cfg   *accretion.Config
	opts  []accretion.Option
	world *accretion.World
	// Communication with UI
	snapshotCh chan<- *pb.WorldSnapshot

	// --- Telemetry ---
	ticksRun     int
	intentsCount int
	lastLogTime  time.Time
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor creates the world logic unit. The World itself is built in PreStart.
func NewWorldActor(snapshotCh chan<- *pb.WorldSnapshot, cfg *accretion.Config, opts ...accretion.Option) *WorldActor {
	return &WorldActor{
		cfg:         cfg,
		opts:        opts,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	opts := append([]accretion.Option{accretion.WithLogger(ctx.ActorSystem().Logger())}, w.opts...)
	world, err := accretion.NewWorld(w.cfg, opts...)
	if err != nil {
		return fmt.Errorf("failed to create world: %w", err)
	}
	w.world = world
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Infof("World started: run %s with %d particles in %d rings",
			w.world.RunID(), len(w.world.Active()), len(w.cfg.Rings))
		w.pushSnapshot()

	// The main simulation step, driven by the render loop
	case *pb.Tick:
		w.ticksRun += w.world.Step()
		w.logBenchmarks(ctx)
		w.pushSnapshot()

	// Discrete user requests, each applied exactly once
	case *pb.Intent:
		w.intentsCount++
		if w.world.Apply(msg) {
			ctx.Logger().Debugf("intent %s applied, state %s", msg.GetKind(), w.world.State())
			w.pushSnapshot()
		}

	case *pb.GetSnapshot:
		ctx.Response(w.world.Snapshot())

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World is shutdown after %d ticks", w.world.Tick())
	return nil
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		s := w.world.Stats()
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | Intents: %d | Particles: %d | Planets: %d | Merges: %d",
			w.ticksRun, w.intentsCount, s.ActiveCount, s.PlanetCount, s.Merges)
		w.ticksRun = 0
		w.intentsCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	select {
	case w.snapshotCh <- w.world.Snapshot():
	default:
		// UI busy, skip frame
	}
}

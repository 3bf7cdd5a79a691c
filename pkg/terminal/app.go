package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pb"
	"github.com/tochemey/goakt/v3/actor"
)

// KeyIntent maps a key press to a world intent.
func KeyIntent(ev *tcell.EventKey) (pb.IntentKind, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return pb.IntentKind_INTENT_KIND_QUIT, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return pb.IntentKind_INTENT_KIND_TOGGLE_PAUSE, true
		case 'p':
			return pb.IntentKind_INTENT_KIND_PAUSE, true
		case 'o':
			return pb.IntentKind_INTENT_KIND_RESUME, true
		case 'r':
			return pb.IntentKind_INTENT_KIND_RESET, true
		case 'i':
			return pb.IntentKind_INTENT_KIND_INJECT, true
		case '+', '=':
			return pb.IntentKind_INTENT_KIND_SPEED_UP, true
		case '-':
			return pb.IntentKind_INTENT_KIND_SLOW_DOWN, true
		case 'q':
			return pb.IntentKind_INTENT_KIND_QUIT, true
		}
	}
	return pb.IntentKind_INTENT_KIND_UNSPECIFIED, false
}

// App is the terminal collaborator: a frame ticker drives the world, key presses
// become intents and every frame draws the latest snapshot.
type App struct {
	ctx        context.Context
	screen     tcell.Screen
	renderer   *Renderer
	worldPID   *actor.PID
	snapshotCh <-chan *pb.WorldSnapshot
	frame      time.Duration
	lastState  *pb.WorldSnapshot
	injectRing uint32
	ringCount  uint32

	// OnPromotion is called with the number of new planets seen since the previous snapshot.
	OnPromotion func(n int)
}

// NewApp wires an initialised screen to the world actor.
func NewApp(ctx context.Context, screen tcell.Screen, worldRadius float64, ringCount int, worldPID *actor.PID, snapshotCh <-chan *pb.WorldSnapshot) *App {
	return &App{
		ctx:        ctx,
		screen:     screen,
		renderer:   NewRenderer(screen, worldRadius),
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		frame:      16 * time.Millisecond, // ~60 FPS
		lastState:  &pb.WorldSnapshot{},
		ringCount:  uint32(max(ringCount, 1)),
	}
}

// Run loops until the world reports it stopped or ctx is done.
func (a *App) Run() error {
	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// screen finalised
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case <-a.ctx.Done():
			return a.ctx.Err()

		case ev := <-eventChan:
			a.handleEvent(ev)

		case <-ticker.C:
			a.drain()
			if a.lastState.GetState() == pb.RunState_RUN_STATE_STOPPED {
				return nil
			}
			a.renderer.Draw(a.lastState)
			if err := actor.Tell(a.ctx, a.worldPID, &pb.Tick{}); err != nil {
				return err
			}
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		kind, ok := KeyIntent(ev)
		if !ok {
			if ev.Key() == tcell.KeyTab {
				a.injectRing = (a.injectRing + 1) % a.ringCount
			}
			return
		}
		intent := &pb.Intent{Kind: kind}
		if kind == pb.IntentKind_INTENT_KIND_INJECT {
			intent.Ring = a.injectRing
		}
		_ = actor.Tell(a.ctx, a.worldPID, intent)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *App) drain() {
	for {
		select {
		case snap := <-a.snapshotCh:
			prev := a.lastState
			a.lastState = snap
			if snap.GetRunId() != prev.GetRunId() || a.OnPromotion == nil {
				continue
			}
			if n := int(snap.GetStats().GetPromotions()) - int(prev.GetStats().GetPromotions()); n > 0 {
				a.OnPromotion(n)
			}
		default:
			return
		}
	}
}

package simulation

import (
	"context"
	"fmt"

	"github.com/lao-tseu-is-alive/go-accretion-simulation/pb"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/accretion"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

// WorldName is the name the world actor is spawned under.
const WorldName = "world"

// StartSystem creates and starts the actor system hosting the world.
func StartSystem(ctx context.Context, logger golog.Logger) (actor.ActorSystem, error) {
	system, err := actor.NewActorSystem("AccretionWorld",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}
	return system, nil
}

// SpawnWorld spawns the WorldActor. Snapshots are pushed to snapshotCh, dropped when it is full.
func SpawnWorld(ctx context.Context, system actor.ActorSystem, cfg *accretion.Config, snapshotCh chan<- *pb.WorldSnapshot, opts ...accretion.Option) (*actor.PID, error) {
	pid, err := system.Spawn(ctx, WorldName, NewWorldActor(snapshotCh, cfg, opts...))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}
	return pid, nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pb"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/accretion"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/audio"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/terminal"
	golog "github.com/tochemey/goakt/v3/log"
)

var (
	configFile = flag.String("config", "config/accretion.json", "Ring layout and physics settings (empty = built-in single disk)")
	schemaFile = flag.String("schema", "config/accretion.schema.json", "JSON schema the config is validated against")
	logFile    = flag.String("logfile", "", "Write logs to file (the screen owns stdout)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := accretion.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = accretion.LoadConfig(*configFile, *schemaFile); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := golog.New(golog.DebugLevel, out)

	system, err := simulation.StartSystem(ctx, logger)
	if err != nil {
		return err
	}
	defer func() { _ = system.Stop(context.Background()) }()

	snapshotCh := make(chan *pb.WorldSnapshot, 10)
	pid, err := simulation.SpawnWorld(ctx, system, cfg, snapshotCh, accretion.WithLogger(logger))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	app := terminal.NewApp(ctx, screen, terminal.WorldRadius(cfg), len(cfg.Rings), pid, snapshotCh)
	if cfg.Sound {
		chime := audio.NewChime(0.4)
		if err := chime.Initialize(); err != nil {
			logger.Errorf("sound disabled: %v", err)
		} else {
			defer chime.Cleanup()
			app.OnPromotion = chime.PlayPromotion
		}
	}

	if err := app.Run(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

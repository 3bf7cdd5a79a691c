package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/accretion"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/audio"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/render"
	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/simulation"
	golog "github.com/tochemey/goakt/v3/log"
)

var (
	configFile = flag.String("config", "config/accretion.json", "Ring layout and physics settings (empty = built-in single disk)")
	schemaFile = flag.String("schema", "config/accretion.schema.json", "JSON schema the config is validated against")
	debug      = flag.Bool("debug", false, "Log at debug level")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	cfg := accretion.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = accretion.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	level := golog.InfoLevel
	if *debug {
		level = golog.DebugLevel
	}
	logger := golog.New(level, os.Stdout)

	system, err := simulation.StartSystem(ctx, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = system.Stop(ctx) }()

	game, err := render.NewGame(ctx, cfg, system, accretion.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Sound {
		chime := audio.NewChime(0.4)
		if err := chime.Initialize(); err != nil {
			logger.Errorf("sound disabled: %v", err)
		} else {
			defer chime.Cleanup()
			game.OnPromotion = chime.PlayPromotion
		}
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Accretion: star, rings and planets")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/lao-tseu-is-alive/go-accretion-simulation/pkg/accretion"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/encoding/protojson"
)

var (
	configFile = flag.String("config", "config/accretion.json", "Ring layout and physics settings (empty = built-in single disk)")
	schemaFile = flag.String("schema", "config/accretion.schema.json", "JSON schema the config is validated against")
	ticks      = flag.Int("ticks", 2000, "Number of ticks to run")
	seed       = flag.Uint64("seed", 1, "Random seed (0 = time based)")
	workers    = flag.Int("workers", 0, "Integration workers (0 = keep config value)")
	logEvery   = flag.Int("log", 0, "Print statistics every N ticks (0 = disabled)")
	dumpFile   = flag.String("dump", "", "Write the final snapshot as JSON to this file")
	verbose    = flag.Bool("v", false, "Log world events to stdout")
)

func main() {
	flag.Parse()

	cfg := accretion.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = accretion.LoadConfig(*configFile, *schemaFile); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	cfg.Seed = *seed
	cfg.TicksPerFrame = 1
	if *workers > 0 {
		cfg.Workers = *workers
	}

	var logger golog.Logger = golog.DiscardLogger
	if *verbose {
		logger = golog.New(golog.DebugLevel, os.Stdout)
	}
	world, err := accretion.NewWorld(cfg, accretion.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}

	start := time.Now()
	for i := 1; i <= *ticks; i++ {
		world.Step()
		if *logEvery > 0 && i%*logEvery == 0 {
			printStats(world)
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("Benchmark Results:\n")
	fmt.Printf("  Run:          %s\n", world.RunID())
	fmt.Printf("  Rings:        %d\n", len(cfg.Rings))
	fmt.Printf("  Workers:      %d\n", cfg.Workers)
	fmt.Printf("  Total Ticks:  %d\n", world.Tick())
	fmt.Printf("  Total Time:   %v\n", elapsed)
	if *ticks > 0 {
		fmt.Printf("  Avg Tick:     %v\n", elapsed/time.Duration(*ticks))
		fmt.Printf("  Ticks/s:      %.2f\n", float64(*ticks)/elapsed.Seconds())
	}
	printStats(world)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("  Total Alloc:  %d bytes\n", m.TotalAlloc)
	fmt.Printf("  Mallocs:      %d\n", m.Mallocs)

	if *dumpFile != "" {
		data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(world.Snapshot())
		if err != nil {
			log.Fatalf("Failed to encode snapshot: %v", err)
		}
		if err := os.WriteFile(*dumpFile, data, 0o644); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
	}
}

func printStats(w *accretion.World) {
	s := w.Stats()
	fmt.Printf("  tick %6d | particles %5d | planets %3d | mass %9.2f | largest %6.2f | mean %5.3f | merges %6d | promotions %3d\n",
		w.Tick(), s.ActiveCount, s.PlanetCount, s.TotalMass, s.LargestMass, s.MeanMass, s.Merges, s.Promotions)
}

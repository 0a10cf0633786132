package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/slsyy/ects/config"
	"github.com/slsyy/ects/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = use config, which may be unlimited)")
	runs := flag.Int("runs", 1, "Number of consecutive runs, each restarted after the player dies")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	tickLimit := cfg.Sim.MaxTicks
	if *maxTicks > 0 {
		tickLimit = *maxTicks
	}

	opts := game.OptionsFromConfig(cfg)
	opts.Seed = rngSeed
	opts.LogStats = *logStats
	opts.OutputDir = *outputDir
	if *statsWindow > 0 {
		opts.StatsWindowSec = *statsWindow
	}

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	if err := g.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	slog.Info("starting headless run",
		"run_id", g.RunID(),
		"seed", rngSeed,
		"stats_window", opts.StatsWindowSec,
		"max_ticks", tickLimit,
		"runs", *runs,
	)

	pilot := game.NewAutopilot(cfg.Autopilot)
	dt := cfg.Derived.DT

	for run := 1; ; run++ {
		for !g.Over() {
			g.Step(dt, pilot.Decide(g))

			if tickLimit > 0 && int(g.Tick()) >= tickLimit {
				slog.Info("max ticks reached", "tick", g.Tick())
				return
			}
		}

		if run >= *runs {
			return
		}
		g.Reset()
	}
}

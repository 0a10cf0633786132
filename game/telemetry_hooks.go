package game

import (
	"log/slog"

	"github.com/slsyy/ects/components"
	"github.com/slsyy/ects/systems"
	"github.com/slsyy/ects/telemetry"
)

// resetTelemetry starts a fresh collector, bookmark history and run summary.
func (g *Game) resetTelemetry() {
	// Counters always run so the run summary has totals; windows are only
	// flushed when a stats window is configured.
	window := g.opts.StatsWindowSec
	if window <= 0 {
		window = g.opts.DT
	}
	g.collector = telemetry.NewCollector(g.runID, window, g.opts.DT)
	g.bookmarks = telemetry.NewBookmarkDetector(10, GoldGoal, lowHealthThreshold())
	g.summary = telemetry.RunSummary{
		RunID: g.runID,
		Seed:  g.opts.Seed,
		Goal:  GoldGoal,
	}
}

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	if g.opts.StatsWindowSec <= 0 || !g.collector.ShouldFlush(g.tick) {
		return
	}

	g.publishWindow(g.flushWindow())
}

// flushWindow closes the current window and folds it into the run summary.
func (g *Game) flushWindow() telemetry.WindowStats {
	stats := g.collector.Flush(g.tick, g.sample())
	g.summary.Add(stats)
	return stats
}

// publishWindow logs and writes a window and any bookmarks it triggers.
func (g *Game) publishWindow(stats telemetry.WindowStats) {
	if g.opts.StatsCallback != nil {
		g.opts.StatsCallback(stats)
	}
	if g.logStats {
		stats.LogStats()
	}
	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}

	for _, bm := range g.bookmarks.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// sample measures the world state for the end of a window.
func (g *Game) sample() telemetry.Sample {
	var s telemetry.Sample

	query := g.lifeFilter.Query()
	for query.Next() {
		life := query.Get()
		if !life.Alive {
			continue
		}
		switch life.Kind {
		case components.KindEnemy:
			s.Enemies++
			vel := g.velMap.Get(query.Entity())
			s.EnemySpeeds = append(s.EnemySpeeds, systems.Distance(0, 0, vel.X, vel.Y))
		case components.KindBonus:
			s.Bonuses++
		}
	}

	p := g.playerMap.Get(g.player)
	s.PlayerHealth = g.healthMap.Get(g.player).Value
	s.PlayerCharge = p.Charge
	s.PlayerGold = p.Gold
	return s
}

// finishTelemetry flushes the partial window and records the run summary.
func (g *Game) finishTelemetry() {
	stats := g.flushWindow()
	if g.opts.StatsWindowSec > 0 && stats.WindowEndTick > stats.WindowStartTick {
		g.publishWindow(stats)
	}

	res := g.Result()
	g.summary.Ticks = g.tick
	g.summary.SimTimeSec = g.simTime
	g.summary.PlayerDied = g.over
	g.summary.Gold = res.Gold
	g.summary.Percent = res.Percent
	g.summary.GoalReached = g.goalReached

	g.summary.LogSummary()
	if err := g.outputManager.WriteSummary(g.summary); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
}

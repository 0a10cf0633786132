package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slsyy/ects/components"
	"github.com/slsyy/ects/telemetry"
)

func TestTelemetryWindows(t *testing.T) {
	dir := t.TempDir()
	var windows []telemetry.WindowStats

	g := NewGameWithOptions(Options{
		Seed:           5,
		RunID:          "run-test",
		StatsWindowSec: 0.1, // 7 ticks at the default step
		OutputDir:      dir,
		StatsCallback: func(s telemetry.WindowStats) {
			windows = append(windows, s)
		},
	})
	for i := 0; i < 30; i++ {
		g.Step(DefaultDT, Input{})
	}
	if len(windows) != 4 {
		t.Fatalf("windows = %d after 30 ticks, want 4", len(windows))
	}

	g.Unload()
	if len(windows) != 5 {
		t.Fatalf("windows = %d after unload, want 5 including the partial window", len(windows))
	}

	var enemySpawns, bonusSpawns int
	for _, w := range windows {
		if w.RunID != "run-test" {
			t.Errorf("run id = %q", w.RunID)
		}
		enemySpawns += w.WeakSpawns + w.FastSpawns + w.StrongSpawns
		bonusSpawns += w.BonusSpawns
	}
	// Every category fires on the first tick; only gold can fire again this soon.
	if enemySpawns != 1 || bonusSpawns < 3 {
		t.Errorf("spawns = %d enemies %d bonuses, want 1 and at least 3", enemySpawns, bonusSpawns)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 6 {
		t.Errorf("telemetry.csv has %d lines, want header + 5 rows", lines)
	}

	summary, err := os.ReadFile(filepath.Join(dir, "summary.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(summary), "ticks: 30") {
		t.Errorf("summary missing tick count:\n%s", summary)
	}
}

func TestSummaryCountsWithoutWindows(t *testing.T) {
	g := quietGame(t)
	g.playerMap.Get(g.player).Cooldown = -1
	e := g.SpawnEnemy(components.EnemyWeak, 100, 200)
	g.healthMap.Get(e).Value = 0.5

	g.Step(DefaultDT, Input{Attack: true})
	g.finishTelemetry()

	if g.summary.Kills != 1 || g.summary.WavesFired != 1 {
		t.Errorf("summary = %+v, want 1 kill and 1 wave", g.summary)
	}
	if g.summary.Ticks != 1 || g.summary.PlayerDied {
		t.Errorf("summary = %+v", g.summary)
	}
}

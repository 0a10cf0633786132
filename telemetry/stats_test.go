package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slsyy/ects/components"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeDistStats(t *testing.T) {
	values := []float64{300, 100, 200, 400, 500}
	mean, std, p10, p50, p90 := ComputeDistStats(values)

	if math.Abs(mean-300) > 1e-9 {
		t.Errorf("mean = %v, want 300", mean)
	}
	// sample variance = (4+1+0+1+4)*1e4/4 = 25000
	if math.Abs(std-math.Sqrt(25000)) > 1e-9 {
		t.Errorf("std = %v, want %v", std, math.Sqrt(25000))
	}
	if math.Abs(p10-140) > 1e-9 {
		t.Errorf("p10 = %v, want 140", p10)
	}
	if math.Abs(p50-300) > 1e-9 {
		t.Errorf("p50 = %v, want 300", p50)
	}
	if math.Abs(p90-460) > 1e-9 {
		t.Errorf("p90 = %v, want 460", p90)
	}

	// input must be left unsorted
	if values[0] != 300 {
		t.Error("ComputeDistStats modified its input")
	}
}

func TestComputeDistStatsSmall(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeDistStats(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}

	mean, std, _, p50, _ = ComputeDistStats([]float64{42})
	if mean != 42 || std != 0 || p50 != 42 {
		t.Errorf("single value: mean=%v std=%v p50=%v", mean, std, p50)
	}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector("run-1", 1.0, 1.0/70)
	if c.WindowDurationTicks() != 70 {
		t.Fatalf("WindowDurationTicks = %d, want 70", c.WindowDurationTicks())
	}
	if c.ShouldFlush(69) {
		t.Error("ShouldFlush(69) = true before window elapsed")
	}
	if !c.ShouldFlush(70) {
		t.Error("ShouldFlush(70) = false at window end")
	}

	c.RecordSpawn(components.EnemyWeak)
	c.RecordSpawn(components.EnemyStrong)
	c.RecordBonusSpawn()
	c.RecordWave()
	c.RecordWave()
	c.RecordWaveHit(1.0)
	c.RecordWaveHit(0.5)
	c.RecordKill()
	c.RecordContact(1, false)
	c.RecordContact(2, true)
	c.RecordPickup(components.BonusGold, 25)
	c.RecordPickup(components.BonusHealth, 1)
	c.RecordExpired()

	stats := c.Flush(70, Sample{Enemies: 3, PlayerHealth: 29, PlayerGold: 25, EnemySpeeds: []float64{10, 20}})

	if stats.RunID != "run-1" {
		t.Errorf("RunID = %q", stats.RunID)
	}
	if stats.WeakSpawns != 1 || stats.StrongSpawns != 1 || stats.FastSpawns != 0 {
		t.Errorf("spawns = %d/%d/%d, want 1/0/1", stats.WeakSpawns, stats.FastSpawns, stats.StrongSpawns)
	}
	if stats.WaveHits != 2 || math.Abs(stats.DamageDealt-1.5) > 1e-9 {
		t.Errorf("wave hits = %d dealt = %v, want 2 and 1.5", stats.WaveHits, stats.DamageDealt)
	}
	if math.Abs(stats.HitRate-1.0) > 1e-9 || math.Abs(stats.KillRate-0.5) > 1e-9 {
		t.Errorf("hit rate = %v kill rate = %v, want 1 and 0.5", stats.HitRate, stats.KillRate)
	}
	if stats.Contacts != 2 || stats.ContactsBlocked != 1 || stats.DamageTaken != 1 {
		t.Errorf("contacts = %d blocked = %d taken = %v", stats.Contacts, stats.ContactsBlocked, stats.DamageTaken)
	}
	if stats.GoldCollected != 25 || stats.HealthPickups != 1 || stats.BonusesExpired != 1 {
		t.Errorf("pickups: gold=%d health=%d expired=%d", stats.GoldCollected, stats.HealthPickups, stats.BonusesExpired)
	}
	if math.Abs(stats.EnemySpeedMean-15) > 1e-9 {
		t.Errorf("EnemySpeedMean = %v, want 15", stats.EnemySpeedMean)
	}
	if math.Abs(stats.SimTimeSec-1.0) > 1e-9 {
		t.Errorf("SimTimeSec = %v, want 1", stats.SimTimeSec)
	}

	// counters reset, window restarted
	if c.ShouldFlush(139) {
		t.Error("ShouldFlush(139) = true in second window")
	}
	next := c.Flush(140, Sample{})
	if next.Kills != 0 || next.WavesFired != 0 || next.GoldCollected != 0 || next.WindowStartTick != 70 {
		t.Errorf("second window not reset: %+v", next)
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("nil WriteTelemetry: %v", err)
	}
	if err := om.WriteSummary(RunSummary{}); err != nil {
		t.Errorf("nil WriteSummary: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 3; i++ {
		if err := om.WriteTelemetry(WindowStats{RunID: "abc", WindowEndTick: int32(i * 700), Kills: i}); err != nil {
			t.Fatalf("WriteTelemetry: %v", err)
		}
	}
	if err := om.WriteBookmark(Bookmark{RunID: "abc", Type: BookmarkGoldRush, Tick: 700}); err != nil {
		t.Fatalf("WriteBookmark: %v", err)
	}
	if err := om.WriteSummary(RunSummary{RunID: "abc", Gold: 120, Goal: 2000, Percent: 6}); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("telemetry.csv has %d lines, want header + 3 rows:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "run_id,window_end,sim_time") {
		t.Errorf("header = %q", lines[0])
	}
	if strings.Count(string(data), "run_id") != 1 {
		t.Error("header written more than once")
	}

	summary, err := os.ReadFile(filepath.Join(dir, "summary.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(summary), "gold: 120") {
		t.Errorf("summary.yaml missing gold:\n%s", summary)
	}
}

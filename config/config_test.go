package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Arena.X0 != 0 || cfg.Arena.Y0 != 100 || cfg.Arena.X1 != 800 || cfg.Arena.Y1 != 600 {
		t.Errorf("arena = %+v, want [0 100 800 600]", cfg.Arena)
	}
	if cfg.Sim.TargetFPS != 70 {
		t.Errorf("TargetFPS = %d, want 70", cfg.Sim.TargetFPS)
	}
	if math.Abs(cfg.Derived.DT-1.0/70.0) > 1e-12 {
		t.Errorf("Derived.DT = %v, want 1/70", cfg.Derived.DT)
	}
	if cfg.Derived.ArenaWidth != 800 || cfg.Derived.ArenaHeight != 500 {
		t.Errorf("arena size = %vx%v, want 800x500", cfg.Derived.ArenaWidth, cfg.Derived.ArenaHeight)
	}
}

func TestLoadUserOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("sim:\n  target_fps: 60\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Sim.TargetFPS != 60 {
		t.Errorf("TargetFPS = %d, want 60", cfg.Sim.TargetFPS)
	}
	if cfg.Arena.X1 != 800 {
		t.Errorf("Arena.X1 = %d, want default 800", cfg.Arena.X1)
	}
	if cfg.Telemetry.StatsWindow != 10 {
		t.Errorf("StatsWindow = %v, want default 10", cfg.Telemetry.StatsWindow)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty arena", "arena:\n  x0: 10\n  x1: 10\n"},
		{"zero fps", "sim:\n  target_fps: 0\n"},
		{"negative window", "telemetry:\n  stats_window: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%q) succeeded, want error", tt.yaml)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Autopilot.AttackRange = 55

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load written file: %v", err)
	}
	if back.Autopilot.AttackRange != 55 {
		t.Errorf("AttackRange = %v, want 55", back.Autopilot.AttackRange)
	}
}

// Package config provides runtime configuration loading and access.
//
// Gameplay stats are fixed design constants in package game; this package only
// carries settings that describe a run: arena bounds, frame step, telemetry and
// the headless autopilot.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all runtime configuration parameters.
type Config struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Sim       SimConfig       `yaml:"sim"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Autopilot AutopilotConfig `yaml:"autopilot"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ArenaConfig is the playable rectangle [X0, Y0, X1, Y1] in world units.
// The default layout reserves the top 100 units of an 800x600 window for the HUD.
type ArenaConfig struct {
	X0 int `yaml:"x0"`
	Y0 int `yaml:"y0"`
	X1 int `yaml:"x1"`
	Y1 int `yaml:"y1"`
}

// SimConfig holds frame clock parameters for the headless driver.
type SimConfig struct {
	TargetFPS int `yaml:"target_fps"` // frames per simulated second, dt = 1/TargetFPS
	MaxTicks  int `yaml:"max_ticks"`  // 0 = run until the player dies
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds of simulated time per stats row
}

// AutopilotConfig tunes the scripted input source used by headless runs.
type AutopilotConfig struct {
	AttackRange float64 `yaml:"attack_range"` // attack when an enemy center is this close
	FleeRange   float64 `yaml:"flee_range"`   // steer away from enemies inside this range
	ChaseBonus  bool    `yaml:"chase_bonus"`  // steer toward the nearest bonus when safe
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT          float64 // 1 / TargetFPS
	ArenaWidth  float64
	ArenaHeight float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Arena.X1 <= c.Arena.X0 || c.Arena.Y1 <= c.Arena.Y0 {
		return fmt.Errorf("arena is empty: [%d %d %d %d]", c.Arena.X0, c.Arena.Y0, c.Arena.X1, c.Arena.Y1)
	}
	if c.Sim.TargetFPS <= 0 {
		return fmt.Errorf("sim.target_fps must be positive, got %d", c.Sim.TargetFPS)
	}
	if c.Telemetry.StatsWindow <= 0 {
		return fmt.Errorf("telemetry.stats_window must be positive, got %g", c.Telemetry.StatsWindow)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT = 1.0 / float64(c.Sim.TargetFPS)
	c.Derived.ArenaWidth = float64(c.Arena.X1 - c.Arena.X0)
	c.Derived.ArenaHeight = float64(c.Arena.Y1 - c.Arena.Y0)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Package game runs the arena simulation. A Game owns the ECS world and
// advances it one frame per Step.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"github.com/slsyy/ects/components"
	"github.com/slsyy/ects/config"
	"github.com/slsyy/ects/systems"
	"github.com/slsyy/ects/telemetry"
)

// Rand is the injectable randomness source. *rand.Rand satisfies it.
type Rand = systems.Rand

// Options configures a new game.
type Options struct {
	Seed           int64         // RNG seed, used when Rand is nil
	Rand           Rand          // overrides Seed
	Arena          systems.Arena // zero value means DefaultArena
	DT             float64       // nominal frame step for telemetry windows; 0 means DefaultDT
	RunID          string        // empty generates a fresh UUID
	LogStats       bool          // log window stats and bookmarks via slog
	StatsWindowSec float64       // 0 disables telemetry windows
	OutputDir      string        // empty disables file output

	// StatsCallback, if set, receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// DefaultOptions returns options for a default arena with telemetry disabled.
func DefaultOptions() Options {
	return Options{
		Seed:  1,
		Arena: DefaultArena,
		DT:    DefaultDT,
	}
}

// OptionsFromConfig builds options from the runtime config. Seed, output and
// logging settings are left to the caller.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	opts.Arena = systems.Arena{
		X0: float64(cfg.Arena.X0),
		Y0: float64(cfg.Arena.Y0),
		X1: float64(cfg.Arena.X1),
		Y1: float64(cfg.Arena.Y1),
	}
	opts.DT = cfg.Derived.DT
	opts.StatsWindowSec = cfg.Telemetry.StatsWindow
	return opts
}

// Game holds the complete simulation state.
// It is not safe for concurrent use.
type Game struct {
	world *ecs.World
	rng   Rand
	arena systems.Arena
	opts  Options

	// Entity mappers, one per entity kind
	playerMapper *ecs.Map7[
		components.Position,
		components.Velocity,
		components.Body,
		components.Motion,
		components.Life,
		components.Health,
		components.Player,
	]
	enemyMapper *ecs.Map7[
		components.Position,
		components.Velocity,
		components.Body,
		components.Motion,
		components.Life,
		components.Health,
		components.Enemy,
	]
	waveMapper  *ecs.Map4[components.Position, components.Body, components.Life, components.AttackWave]
	bonusMapper *ecs.Map5[components.Position, components.Velocity, components.Body, components.Life, components.Bonus]
	labelMapper *ecs.Map2[components.Position, components.Label]

	lifeFilter  *ecs.Filter1[components.Life]
	labelFilter *ecs.Filter2[components.Position, components.Label]

	// Individual component mappers for lookups
	posMap    *ecs.Map[components.Position]
	velMap    *ecs.Map[components.Velocity]
	bodyMap   *ecs.Map[components.Body]
	motionMap *ecs.Map[components.Motion]
	lifeMap   *ecs.Map[components.Life]
	healthMap *ecs.Map[components.Health]
	playerMap *ecs.Map[components.Player]
	enemyMap  *ecs.Map[components.Enemy]
	waveMap   *ecs.Map[components.AttackWave]
	bonusMap  *ecs.Map[components.Bonus]

	player  ecs.Entity
	spawner *systems.Spawner

	// Per-frame scratch, reused between steps
	live    []ecs.Entity
	enemies []ecs.Entity
	waves   []ecs.Entity
	bonuses []ecs.Entity
	dead    []ecs.Entity
	events  []Event

	// State
	tick        int32
	simTime     float64
	over        bool
	goalReached bool

	// Telemetry
	runID         string
	logStats      bool
	collector     *telemetry.Collector
	bookmarks     *telemetry.BookmarkDetector
	outputManager *telemetry.OutputManager
	summary       telemetry.RunSummary
}

// NewGame creates a game with default options.
func NewGame() *Game {
	return NewGameWithOptions(DefaultOptions())
}

// NewGameWithOptions creates a new game instance.
func NewGameWithOptions(opts Options) *Game {
	if opts.Arena == (systems.Arena{}) {
		opts.Arena = DefaultArena
	}
	if opts.DT <= 0 {
		opts.DT = DefaultDT
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	g := &Game{
		rng:      rng,
		arena:    opts.Arena,
		opts:     opts,
		runID:    runID,
		logStats: opts.LogStats,
	}
	g.resetTelemetry()

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
		}
	}

	g.initWorld()
	return g
}

// initWorld builds a fresh world holding only the player.
func (g *Game) initWorld() {
	world := ecs.NewWorld()

	g.world = world
	g.playerMapper = ecs.NewMap7[
		components.Position,
		components.Velocity,
		components.Body,
		components.Motion,
		components.Life,
		components.Health,
		components.Player,
	](world)
	g.enemyMapper = ecs.NewMap7[
		components.Position,
		components.Velocity,
		components.Body,
		components.Motion,
		components.Life,
		components.Health,
		components.Enemy,
	](world)
	g.waveMapper = ecs.NewMap4[components.Position, components.Body, components.Life, components.AttackWave](world)
	g.bonusMapper = ecs.NewMap5[components.Position, components.Velocity, components.Body, components.Life, components.Bonus](world)
	g.labelMapper = ecs.NewMap2[components.Position, components.Label](world)

	g.lifeFilter = ecs.NewFilter1[components.Life](world)
	g.labelFilter = ecs.NewFilter2[components.Position, components.Label](world)

	g.posMap = ecs.NewMap[components.Position](world)
	g.velMap = ecs.NewMap[components.Velocity](world)
	g.bodyMap = ecs.NewMap[components.Body](world)
	g.motionMap = ecs.NewMap[components.Motion](world)
	g.lifeMap = ecs.NewMap[components.Life](world)
	g.healthMap = ecs.NewMap[components.Health](world)
	g.playerMap = ecs.NewMap[components.Player](world)
	g.enemyMap = ecs.NewMap[components.Enemy](world)
	g.waveMap = ecs.NewMap[components.AttackWave](world)
	g.bonusMap = ecs.NewMap[components.Bonus](world)

	g.spawner = systems.NewSpawner(spawnTable(), g.arena, g.rng)

	g.live = g.live[:0]
	g.events = g.events[:0]
	g.tick = 0
	g.simTime = 0
	g.over = false
	g.goalReached = false

	g.player = g.spawnPlayer()
}

// Reset records the finished run and starts a fresh one in a new world.
// Randomness, run ID and output files carry over.
func (g *Game) Reset() {
	g.finishTelemetry()
	g.resetTelemetry()
	g.initWorld()
	slog.Debug("run reset", "run_id", g.runID)
}

// Tick returns the number of frames simulated since the last reset.
func (g *Game) Tick() int32 {
	return g.tick
}

// RunID returns the identifier stamped on this game's telemetry.
func (g *Game) RunID() string {
	return g.runID
}

// Arena returns the playable rectangle.
func (g *Game) Arena() systems.Arena {
	return g.arena
}

// WriteConfig saves the run configuration next to the telemetry output.
// It does nothing when output is disabled.
func (g *Game) WriteConfig(cfg *config.Config) error {
	return g.outputManager.WriteConfig(cfg)
}

// Unload flushes telemetry, writes the run summary and closes output files.
func (g *Game) Unload() {
	g.finishTelemetry()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// lowHealthThreshold is the health below which the player shows the low tier.
func lowHealthThreshold() float64 {
	return PlayerMinHealth + (PlayerMaxHealth-PlayerMinHealth)/2
}

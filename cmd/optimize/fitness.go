package main

import (
	"math"
	"sync"

	"github.com/slsyy/ects/config"
	"github.com/slsyy/ects/game"
	"github.com/slsyy/ects/telemetry"
)

// FitnessEvaluator runs headless games and scores the autopilot.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	baseConfig  *config.Config
	statsWindow float64

	mu          sync.Mutex
	bestFitness float64
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: 10.0,
		bestFitness: math.Inf(1),
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the results from a single game.
type runResult struct {
	survivalTicks int32 // ticks before the player died (or maxTicks if it survived)
	result        game.Result
	windowStats   []telemetry.WindowStats
}

type seedResult struct {
	fitness float64
	quality float64
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	// Games share nothing, so every seed runs on its own goroutine.
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			r := fe.runSimulation(x, s)
			results[idx] = seedResult{
				fitness: fe.computeFitness(r),
				quality: fe.computeQuality(r),
			}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
	}

	n := float64(len(fe.seeds))
	avgFitness := totalFitness / n

	fe.mu.Lock()
	if avgFitness < fe.bestFitness {
		fe.bestFitness = avgFitness
	}
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return avgFitness
}

// runSimulation plays one game with the autopilot until the player dies or
// maxTicks elapse.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) *runResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	result := &runResult{}

	opts := game.OptionsFromConfig(cfg)
	opts.Seed = seed
	opts.StatsWindowSec = fe.statsWindow
	opts.StatsCallback = func(stats telemetry.WindowStats) {
		result.windowStats = append(result.windowStats, stats)
	}
	g := game.NewGameWithOptions(opts)
	pilot := game.NewAutopilot(cfg.Autopilot)

	for g.Tick() < fe.maxTicks && !g.Over() {
		g.Step(cfg.Derived.DT, pilot.Decide(g))
	}

	result.survivalTicks = g.Tick()
	result.result = g.Result()
	g.Unload()
	return result
}

// copyConfig creates a copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// computeFitness calculates the scalar fitness (lower = better).
// Formula: -(survivalTicks × (1.0 + 0.2 × quality))
// Survival dominates; quality adds up to 20% to separate runs that survive
// equally long.
func (fe *FitnessEvaluator) computeFitness(r *runResult) float64 {
	survival := float64(r.survivalTicks)
	return -(survival * (1.0 + 0.2*fe.computeQuality(r)))
}

// Quality component weights.
const (
	qualityWeightGold    = 0.6
	qualityWeightHitRate = 0.4
)

// computeQuality scores a run in [0, 1] from its gold progress and how often
// fired waves connected.
func (fe *FitnessEvaluator) computeQuality(r *runResult) float64 {
	gold := math.Min(float64(r.result.Percent)/100, 1)

	var fired, hits int
	for _, w := range r.windowStats {
		fired += w.WavesFired
		hits += w.WaveHits
	}
	var hitRate float64
	if fired > 0 {
		hitRate = math.Min(float64(hits)/float64(fired), 1)
	}

	return qualityWeightGold*gold + qualityWeightHitRate*hitRate
}

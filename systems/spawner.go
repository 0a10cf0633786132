package systems

import "github.com/slsyy/ects/components"

// Rand is the randomness source used by the simulation. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Range is a closed float interval.
type Range struct {
	Min, Max float64
}

// Sample draws uniformly from the range.
func (r Range) Sample(rng Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// IntRange is a closed integer interval.
type IntRange struct {
	Min, Max int
}

// Sample draws uniformly from the range, both ends inclusive.
func (r IntRange) Sample(rng Rand) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// SpawnCategory identifies one of the independent spawn timers.
type SpawnCategory uint8

const (
	SpawnEnemy SpawnCategory = iota
	SpawnGold
	SpawnHealth
	SpawnAttack
	spawnCategoryCount
)

// String returns the category name.
func (c SpawnCategory) String() string {
	switch c {
	case SpawnEnemy:
		return "enemy"
	case SpawnGold:
		return "gold"
	case SpawnHealth:
		return "health"
	case SpawnAttack:
		return "attack"
	}
	return "unknown"
}

// SpawnTable holds the spawn intervals and roll tables.
type SpawnTable struct {
	Intervals [spawnCategoryCount]Range

	// Enemy roll: Intn(EnemyRoll) below FastBelow is fast, below StrongBelow is
	// strong, anything else weak.
	EnemyRoll   int
	FastBelow   int
	StrongBelow int

	// Gold roll: 1-in-GoldRareOdds picks the rare tiers, and within those
	// 1-in-GoldRareOdds picks the top tier.
	GoldRareOdds int
	GoldCommon   IntRange
	GoldRare     IntRange
	GoldTop      IntRange

	HealthValue int

	// Bonus lifetimes in seconds, indexed by bonus variant.
	BonusTTL [3]Range
}

// SpawnRequest describes one entity to create. The caller creates it outside of
// any query iteration.
type SpawnRequest struct {
	Category SpawnCategory
	X, Y     float64
	Enemy    components.EnemyVariant
	Bonus    components.BonusVariant
	Value    int
	TTL      float64
}

// Spawner runs four countdown timers over simulated time.
type Spawner struct {
	table  SpawnTable
	arena  Arena
	rng    Rand
	timers [spawnCategoryCount]float64

	requests []SpawnRequest // reused between updates
}

// NewSpawner creates a spawner whose timers start at zero, so every category
// fires on the first update.
func NewSpawner(table SpawnTable, arena Arena, rng Rand) *Spawner {
	return &Spawner{
		table:    table,
		arena:    arena,
		rng:      rng,
		requests: make([]SpawnRequest, 0, spawnCategoryCount),
	}
}

// Timer returns the remaining countdown for a category.
func (s *Spawner) Timer(c SpawnCategory) float64 {
	return s.timers[c]
}

// Update advances the timers by dt and returns the spawns due this frame.
// A timer that reaches zero is re-armed by adding a fresh interval, so any
// overshoot carries into the next period. The returned slice is only valid
// until the next call.
func (s *Spawner) Update(dt float64) []SpawnRequest {
	s.requests = s.requests[:0]
	for c := SpawnCategory(0); c < spawnCategoryCount; c++ {
		s.timers[c] -= dt
		if s.timers[c] > 0 {
			continue
		}
		s.timers[c] += s.table.Intervals[c].Sample(s.rng)
		s.requests = append(s.requests, s.roll(c))
	}
	return s.requests
}

func (s *Spawner) roll(c SpawnCategory) SpawnRequest {
	req := SpawnRequest{Category: c}
	req.X = float64(IntRange{Min: int(s.arena.X0), Max: int(s.arena.X1)}.Sample(s.rng))
	req.Y = float64(IntRange{Min: int(s.arena.Y0), Max: int(s.arena.Y1)}.Sample(s.rng))

	switch c {
	case SpawnEnemy:
		req.Enemy = s.rollEnemy()
	case SpawnGold:
		req.Bonus = components.BonusGold
		req.Value = s.rollGold()
	case SpawnHealth:
		req.Bonus = components.BonusHealth
		req.Value = s.table.HealthValue
	case SpawnAttack:
		req.Bonus = components.BonusAttack
	}

	if c != SpawnEnemy {
		req.TTL = s.table.BonusTTL[req.Bonus].Sample(s.rng)
	}
	return req
}

func (s *Spawner) rollEnemy() components.EnemyVariant {
	n := s.rng.Intn(s.table.EnemyRoll)
	switch {
	case n < s.table.FastBelow:
		return components.EnemyFast
	case n < s.table.StrongBelow:
		return components.EnemyStrong
	}
	return components.EnemyWeak
}

func (s *Spawner) rollGold() int {
	if s.rng.Intn(s.table.GoldRareOdds) != 0 {
		return s.table.GoldCommon.Sample(s.rng)
	}
	if s.rng.Intn(s.table.GoldRareOdds) == 0 {
		return s.table.GoldTop.Sample(s.rng)
	}
	return s.table.GoldRare.Sample(s.rng)
}

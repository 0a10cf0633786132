// Package telemetry provides gameplay statistics windows, bookmarks and run output.
package telemetry

import (
	"math"

	"github.com/slsyy/ects/components"
)

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	runID               string
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	weakSpawns      int
	fastSpawns      int
	strongSpawns    int
	bonusSpawns     int
	wavesFired      int
	waveHits        int
	kills           int
	damageDealt     float64
	contacts        int
	contactsBlocked int
	damageTaken     float64
	goldCollected   int
	healthPickups   int
	attackPickups   int
	bonusesExpired  int
}

// Sample is the world state measured at the end of a window.
type Sample struct {
	Enemies      int
	Bonuses      int
	PlayerHealth float64
	PlayerCharge float64
	PlayerGold   int
	EnemySpeeds  []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(runID string, windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(math.Round(windowDurationSec / dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		runID:               runID,
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordSpawn records an enemy spawn.
func (c *Collector) RecordSpawn(variant components.EnemyVariant) {
	switch variant {
	case components.EnemyWeak:
		c.weakSpawns++
	case components.EnemyFast:
		c.fastSpawns++
	case components.EnemyStrong:
		c.strongSpawns++
	}
}

// RecordBonusSpawn records a bonus spawn.
func (c *Collector) RecordBonusSpawn() {
	c.bonusSpawns++
}

// RecordWave records an attack wave being fired.
func (c *Collector) RecordWave() {
	c.wavesFired++
}

// RecordWaveHit records a wave striking an enemy.
func (c *Collector) RecordWaveHit(damage float64) {
	c.waveHits++
	c.damageDealt += damage
}

// RecordKill records an enemy death.
func (c *Collector) RecordKill() {
	c.kills++
}

// RecordContact records an enemy touching the player. Blocked contacts landed
// during the invulnerability window and dealt no damage.
func (c *Collector) RecordContact(damage float64, blocked bool) {
	c.contacts++
	if blocked {
		c.contactsBlocked++
		return
	}
	c.damageTaken += damage
}

// RecordPickup records a collected bonus.
func (c *Collector) RecordPickup(variant components.BonusVariant, value int) {
	switch variant {
	case components.BonusGold:
		c.goldCollected += value
	case components.BonusHealth:
		c.healthPickups++
	case components.BonusAttack:
		c.attackPickups++
	}
}

// RecordExpired records a bonus timing out uncollected.
func (c *Collector) RecordExpired() {
	c.bonusesExpired++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, sample Sample) WindowStats {
	var hitRate, killRate float64
	if c.wavesFired > 0 {
		hitRate = float64(c.waveHits) / float64(c.wavesFired)
	}
	if c.waveHits > 0 {
		killRate = float64(c.kills) / float64(c.waveHits)
	}

	speedMean, speedStd, speedP10, speedP50, speedP90 := ComputeDistStats(sample.EnemySpeeds)

	stats := WindowStats{
		RunID:           c.runID,
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Enemies: sample.Enemies,
		Bonuses: sample.Bonuses,

		WeakSpawns:   c.weakSpawns,
		FastSpawns:   c.fastSpawns,
		StrongSpawns: c.strongSpawns,
		BonusSpawns:  c.bonusSpawns,

		WavesFired:      c.wavesFired,
		WaveHits:        c.waveHits,
		Kills:           c.kills,
		DamageDealt:     c.damageDealt,
		Contacts:        c.contacts,
		ContactsBlocked: c.contactsBlocked,
		DamageTaken:     c.damageTaken,
		HitRate:         hitRate,
		KillRate:        killRate,

		GoldCollected:  c.goldCollected,
		HealthPickups:  c.healthPickups,
		AttackPickups:  c.attackPickups,
		BonusesExpired: c.bonusesExpired,

		PlayerHealth: sample.PlayerHealth,
		PlayerCharge: sample.PlayerCharge,
		PlayerGold:   sample.PlayerGold,

		EnemySpeedMean: speedMean,
		EnemySpeedStd:  speedStd,
		EnemySpeedP10:  speedP10,
		EnemySpeedP50:  speedP50,
		EnemySpeedP90:  speedP90,
	}

	c.reset(currentTick)
	return stats
}

// reset clears counters and starts a new window.
func (c *Collector) reset(currentTick int32) {
	c.windowStartTick = currentTick
	c.weakSpawns = 0
	c.fastSpawns = 0
	c.strongSpawns = 0
	c.bonusSpawns = 0
	c.wavesFired = 0
	c.waveHits = 0
	c.kills = 0
	c.damageDealt = 0
	c.contacts = 0
	c.contactsBlocked = 0
	c.damageTaken = 0
	c.goldCollected = 0
	c.healthPickups = 0
	c.attackPickups = 0
	c.bonusesExpired = 0
}

// WindowDurationTicks returns the window size in ticks.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}

package game

import (
	"github.com/slsyy/ects/components"
	"github.com/slsyy/ects/systems"
)

// DefaultArena matches an 800x600 window with the top 100 units reserved for the HUD.
var DefaultArena = systems.Arena{X0: 0, Y0: 100, X1: 800, Y1: 600}

// DefaultDT is the nominal frame step (70 frames per second).
const DefaultDT = 1.0 / 70.0

// Player
const (
	PlayerMaxHealth    = 30.0
	PlayerMinHealth    = 15.0
	PlayerMaxVelocity  = 300.0
	PlayerFriction     = 3000.0
	PlayerAcceleration = 4000.0
	PlayerMass         = 1.0
	PlayerSize         = 32.0

	ChargeMax      = 1.0
	ChargeCost     = 0.5
	ChargeRegen    = 0.15 // per second
	ChargeGate     = 0.5  // minimum charge/max ratio to fire
	AttackCooldown = 0.3  // seconds

	InvulnWindow = 0.3 // seconds
)

// Attack wave
const (
	WaveMaxRadius  = 120.0
	WaveGrowthRate = 2 * WaveMaxRadius // radius units per second
	WaveBaseDamage = 1.25
	WavePushForce  = 1500.0
)

// Enemies
const (
	EnemyMinHealth = 1.0
	EnemyPushMass  = 1.0
	EnemyFriction  = 3000.0

	WeakHealth       = 2.0
	WeakMaxVelocity  = 300.0
	WeakAcceleration = 4000.0
	WeakMass         = 0.25
	WeakMoveCycle    = 0.55
	WeakDamage       = 1.0
	WeakSize         = 32.0

	FastHealth       = WeakHealth
	FastMaxVelocity  = WeakMaxVelocity * 1.3
	FastAcceleration = WeakAcceleration * 2
	FastMass         = WeakMass / 1.2
	FastMoveCycle    = WeakMoveCycle / 5
	FastDamage       = WeakDamage
	FastSize         = 28.0

	StrongHealth       = 4.0
	StrongMaxVelocity  = 100.0
	StrongAcceleration = 4000.0
	StrongMass         = 10.0
	StrongMoveCycle    = 3.0
	StrongDamage       = 2.0
	StrongSize         = 44.0

	// StrongRetargetOdds is the 1-in-N chance a strong enemy re-targets when its
	// cycle elapses. At 1 it always does.
	StrongRetargetOdds = 1
)

// Bonuses
const (
	BonusSize        = 20.0
	HealthBonusValue = 1
	GoldGoal         = 2000
)

// Labels
const (
	LabelVelocity = -20.0 // world units per second, upward
	LabelLifetime = 1.0   // seconds
)

// spawnTable returns the spawn intervals and roll tables.
func spawnTable() systems.SpawnTable {
	return systems.SpawnTable{
		Intervals: [4]systems.Range{
			systems.SpawnEnemy:  {Min: 3, Max: 8},
			systems.SpawnGold:   {Min: 0.25, Max: 2.25},
			systems.SpawnHealth: {Min: 2.5, Max: 12.5},
			systems.SpawnAttack: {Min: 2, Max: 12},
		},
		EnemyRoll:    21,
		FastBelow:    3,
		StrongBelow:  6,
		GoldRareOdds: 10,
		GoldCommon:   systems.IntRange{Min: 10, Max: 30},
		GoldRare:     systems.IntRange{Min: 40, Max: 80},
		GoldTop:      systems.IntRange{Min: 80, Max: 100},
		HealthValue:  HealthBonusValue,
		BonusTTL: [3]systems.Range{
			components.BonusGold:   {Min: 3, Max: 8},
			components.BonusHealth: {Min: 1, Max: 5},
			components.BonusAttack: {Min: 2, Max: 5},
		},
	}
}

// enemyStats is the per-variant construction table.
type enemyStats struct {
	health       float64
	maxVelocity  float64
	acceleration float64
	mass         float64
	moveCycle    float64
	damage       float64
	size         float64
}

func statsFor(v components.EnemyVariant) enemyStats {
	switch v {
	case components.EnemyFast:
		return enemyStats{FastHealth, FastMaxVelocity, FastAcceleration, FastMass, FastMoveCycle, FastDamage, FastSize}
	case components.EnemyStrong:
		return enemyStats{StrongHealth, StrongMaxVelocity, StrongAcceleration, StrongMass, StrongMoveCycle, StrongDamage, StrongSize}
	}
	return enemyStats{WeakHealth, WeakMaxVelocity, WeakAcceleration, WeakMass, WeakMoveCycle, WeakDamage, WeakSize}
}

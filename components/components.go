// Package components defines ECS components for the arena simulation.
package components

import "github.com/mlange-42/ark/ecs"

// Kind tags what an entity is. The simulation step switches on it.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindAttackWave
	KindBonus
	KindLabel
)

// EnemyVariant selects an enemy's stats and movement behavior.
type EnemyVariant uint8

const (
	EnemyWeak EnemyVariant = iota
	EnemyFast
	EnemyStrong
)

// BonusVariant selects what a pickup grants.
type BonusVariant uint8

const (
	BonusGold BonusVariant = iota
	BonusHealth
	BonusAttack
)

// Tier is the player's display tier, derived from health each frame.
type Tier uint8

const (
	TierNormal Tier = iota
	TierLow
	TierCritical
)

// Direction is a per-axis movement intent.
type Direction int8

const (
	DirNone     Direction = 0
	DirNegative Direction = -1 // left or up
	DirPositive Direction = 1  // right or down
)

// Life is present on every entity. Alive=false means the entity is reaped at
// the end of the current frame.
type Life struct {
	Alive bool
	Kind  Kind
}

// Player holds player-only state.
type Player struct {
	Gold         int
	Charge       float64
	MaxCharge    float64
	Cooldown     float64 // seconds until the next attack is allowed; allowed once negative
	Invulnerable bool
	InvulnTimer  float64 // seconds since the invulnerability window opened
	Tier         Tier
}

// Enemy holds enemy AI state.
type Enemy struct {
	Variant   EnemyVariant
	Damage    float64
	PushMass  float64
	MoveCycle float64
	MoveTimer float64
	IntentX   Direction
	IntentY   Direction
	TargetX   float64 // strong enemies: last locked player position
	TargetY   float64
}

// AttackWave is a radial pulse centered on its owner.
// Struck only grows over the wave's lifetime.
type AttackWave struct {
	Owner      ecs.Entity
	CenterX    float64
	CenterY    float64
	Radius     float64
	MaxRadius  float64
	BaseDamage float64
	Struck     map[ecs.Entity]struct{}
}

// Damage returns the damage dealt at the current radius.
func (w *AttackWave) Damage() float64 {
	return w.BaseDamage * (1 - w.Radius/w.MaxRadius)
}

// HasStruck reports whether e was already hit by this wave.
func (w *AttackWave) HasStruck(e ecs.Entity) bool {
	_, ok := w.Struck[e]
	return ok
}

// MarkStruck records e as hit.
func (w *AttackWave) MarkStruck(e ecs.Entity) {
	if w.Struck == nil {
		w.Struck = make(map[ecs.Entity]struct{})
	}
	w.Struck[e] = struct{}{}
}

// Bonus is a collectible pickup that expires after TTL seconds.
type Bonus struct {
	Variant   BonusVariant
	Value     int
	TTL       float64
	Collected bool
}

// Label is a floating text marker. Purely cosmetic.
type Label struct {
	Text      string
	Remaining float64
}

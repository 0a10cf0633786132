package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/slsyy/ects/components"
	"github.com/slsyy/ects/systems"
)

// spawnPlayer creates the player with its box centered in the arena.
func (g *Game) spawnPlayer() ecs.Entity {
	pos := components.Position{
		X: (g.arena.X0+g.arena.X1)/2 - PlayerSize/2,
		Y: (g.arena.Y0+g.arena.Y1)/2 - PlayerSize/2,
	}
	vel := components.Velocity{}
	body := components.Body{W: PlayerSize, H: PlayerSize}
	motion := components.Motion{
		MaxVelocity:  PlayerMaxVelocity,
		Friction:     PlayerFriction,
		Acceleration: PlayerAcceleration,
		Mass:         PlayerMass,
	}
	life := components.Life{Alive: true, Kind: components.KindPlayer}
	health := components.Health{Value: PlayerMaxHealth, Max: PlayerMaxHealth, Min: PlayerMinHealth}
	player := components.Player{
		Charge:    ChargeMax,
		MaxCharge: ChargeMax,
		Cooldown:  AttackCooldown,
	}

	return g.playerMapper.NewEntity(&pos, &vel, &body, &motion, &life, &health, &player)
}

// SpawnEnemy creates an enemy of the given variant with its top-left corner at (x, y).
func (g *Game) SpawnEnemy(variant components.EnemyVariant, x, y float64) ecs.Entity {
	st := statsFor(variant)

	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{}
	body := components.Body{W: st.size, H: st.size}
	motion := components.Motion{
		MaxVelocity:  st.maxVelocity,
		Friction:     EnemyFriction,
		Acceleration: st.acceleration,
		Mass:         st.mass,
	}
	life := components.Life{Alive: true, Kind: components.KindEnemy}
	health := components.Health{Value: st.health, Max: st.health, Min: EnemyMinHealth}
	enemy := components.Enemy{
		Variant:   variant,
		Damage:    st.damage,
		PushMass:  EnemyPushMass,
		MoveCycle: st.moveCycle,
	}

	return g.enemyMapper.NewEntity(&pos, &vel, &body, &motion, &life, &health, &enemy)
}

// SpawnBonus creates a bonus pickup with its top-left corner at (x, y).
// Value is the gold amount or health restored; attack bonuses ignore it.
func (g *Game) SpawnBonus(variant components.BonusVariant, value int, ttl, x, y float64) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{}
	body := components.Body{W: BonusSize, H: BonusSize}
	life := components.Life{Alive: true, Kind: components.KindBonus}
	bonus := components.Bonus{Variant: variant, Value: value, TTL: ttl}

	return g.bonusMapper.NewEntity(&pos, &vel, &body, &life, &bonus)
}

// spawnWave creates an attack wave centered on its owner.
func (g *Game) spawnWave(owner ecs.Entity) ecs.Entity {
	cx, cy := g.bodyMap.Get(owner).Center(*g.posMap.Get(owner))

	pos := components.Position{X: cx, Y: cy}
	body := components.Body{}
	life := components.Life{Alive: true, Kind: components.KindAttackWave}
	wave := components.AttackWave{
		Owner:      owner,
		CenterX:    cx,
		CenterY:    cy,
		MaxRadius:  WaveMaxRadius,
		BaseDamage: WaveBaseDamage,
		Struck:     make(map[ecs.Entity]struct{}),
	}

	return g.waveMapper.NewEntity(&pos, &body, &life, &wave)
}

// spawnLabel creates a floating text marker.
func (g *Game) spawnLabel(text string, x, y float64) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	label := components.Label{Text: text, Remaining: LabelLifetime}
	return g.labelMapper.NewEntity(&pos, &label)
}

// handleSpawns turns spawner requests into entities.
func (g *Game) handleSpawns(requests []systems.SpawnRequest) {
	for _, req := range requests {
		if req.Category == systems.SpawnEnemy {
			g.SpawnEnemy(req.Enemy, req.X, req.Y)
			g.collector.RecordSpawn(req.Enemy)
			continue
		}
		g.SpawnBonus(req.Bonus, req.Value, req.TTL, req.X, req.Y)
		g.collector.RecordBonusSpawn()
	}
}

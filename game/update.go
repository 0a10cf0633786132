package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/slsyy/ects/components"
	"github.com/slsyy/ects/systems"
)

// updateEntity runs the per-kind logic for one entity.
func (g *Game) updateEntity(e ecs.Entity, life *components.Life, dt float64) {
	switch life.Kind {
	case components.KindPlayer:
		g.updatePlayer(e, dt)
	case components.KindEnemy:
		g.updateEnemy(e, life, dt)
	case components.KindAttackWave:
		g.updateWave(e, life, dt)
	case components.KindBonus:
		g.updateBonus(e, life, dt)
	}
}

// updatePlayer advances cooldown, charge and invulnerability and picks the display tier.
func (g *Game) updatePlayer(e ecs.Entity, dt float64) {
	p := g.playerMap.Get(e)
	h := g.healthMap.Get(e)

	p.Cooldown -= dt
	p.Charge = min(p.Charge+ChargeRegen*dt, p.MaxCharge)

	if p.Invulnerable {
		p.InvulnTimer += dt
		if p.InvulnTimer > InvulnWindow {
			p.Invulnerable = false
		}
	}

	p.Tier = tierFor(h)
}

// tierFor selects the display tier from health.
func tierFor(h *components.Health) components.Tier {
	switch {
	case h.Value == h.Min:
		return components.TierCritical
	case h.Value < h.Min+(h.Max-h.Min)/2:
		return components.TierLow
	}
	return components.TierNormal
}

// updateEnemy runs the variant AI, then the death check.
func (g *Game) updateEnemy(e ecs.Entity, life *components.Life, dt float64) {
	en := g.enemyMap.Get(e)

	switch en.Variant {
	case components.EnemyStrong:
		g.updateStrongEnemy(e, en, dt)
	default:
		g.updateWanderingEnemy(e, en, dt)
	}

	if g.healthMap.Get(e).BelowMin() {
		life.Alive = false
	}
}

// updateWanderingEnemy re-rolls a random direction per axis every move cycle
// and keeps pushing that way in between.
func (g *Game) updateWanderingEnemy(e ecs.Entity, en *components.Enemy, dt float64) {
	en.MoveTimer += dt
	if en.MoveTimer > en.MoveCycle {
		en.MoveTimer = 0
		en.IntentX = rollDirection(g.rng)
		en.IntentY = rollDirection(g.rng)
	}

	systems.ApplyIntent(g.velMap.Get(e), *g.motionMap.Get(e), en.IntentX, en.IntentY, dt)
}

// rollDirection picks none, negative or positive with equal odds.
func rollDirection(rng Rand) components.Direction {
	switch rng.Intn(3) {
	case 1:
		return components.DirNegative
	case 2:
		return components.DirPositive
	}
	return components.DirNone
}

// updateStrongEnemy chases the player's live position on both axes.
func (g *Game) updateStrongEnemy(e ecs.Entity, en *components.Enemy, dt float64) {
	pos := g.posMap.Get(e)
	target := g.posMap.Get(g.player)

	en.MoveTimer += dt
	if en.MoveTimer > en.MoveCycle {
		en.MoveTimer = 0
		// The locked target is informational; steering below always uses the
		// live position.
		if g.rng.Intn(StrongRetargetOdds) == 0 {
			en.TargetX, en.TargetY = target.X, target.Y
		}
	}

	dx := components.DirPositive
	if target.X < pos.X {
		dx = components.DirNegative
	}
	dy := components.DirPositive
	if target.Y < pos.Y {
		dy = components.DirNegative
	}

	systems.ApplyIntent(g.velMap.Get(e), *g.motionMap.Get(e), dx, dy, dt)
}

// updateWave grows the wave radius and follows the owner.
func (g *Game) updateWave(e ecs.Entity, life *components.Life, dt float64) {
	w := g.waveMap.Get(e)

	w.Radius += WaveGrowthRate * dt
	if w.Radius >= w.MaxRadius {
		w.Radius = w.MaxRadius
		life.Alive = false
	}

	g.syncWaveCenter(e, w)
}

// syncWaveCenter moves the wave to its owner's box center. A wave whose owner
// is gone keeps its last center.
func (g *Game) syncWaveCenter(e ecs.Entity, w *components.AttackWave) {
	if g.world.Alive(w.Owner) {
		w.CenterX, w.CenterY = g.bodyMap.Get(w.Owner).Center(*g.posMap.Get(w.Owner))
	}

	pos := g.posMap.Get(e)
	pos.X, pos.Y = w.CenterX, w.CenterY
	g.bodyMap.Get(e).Radius = w.Radius
}

// updateBonus counts down the time to live.
func (g *Game) updateBonus(e ecs.Entity, life *components.Life, dt float64) {
	b := g.bonusMap.Get(e)
	b.TTL -= dt
	if b.TTL <= 0 {
		life.Alive = false
	}
}

// updateLabels floats labels upward and reaps expired ones.
func (g *Game) updateLabels(dt float64) {
	g.dead = g.dead[:0]

	query := g.labelFilter.Query()
	for query.Next() {
		pos, label := query.Get()
		pos.Y += LabelVelocity * dt
		label.Remaining -= dt
		if label.Remaining <= 0 {
			g.dead = append(g.dead, query.Entity())
		}
	}

	for _, e := range g.dead {
		g.world.RemoveEntity(e)
	}
}

package game

import (
	"github.com/slsyy/ects/components"
	"github.com/slsyy/ects/systems"
)

// partition splits this frame's entities by kind. Entities flagged dead during
// the update stay in the lists so they still take part in the passes.
func (g *Game) partition() {
	g.enemies = g.enemies[:0]
	g.waves = g.waves[:0]
	g.bonuses = g.bonuses[:0]

	for _, e := range g.live {
		switch g.lifeMap.Get(e).Kind {
		case components.KindEnemy:
			g.enemies = append(g.enemies, e)
		case components.KindAttackWave:
			g.waves = append(g.waves, e)
		case components.KindBonus:
			g.bonuses = append(g.bonuses, e)
		}
	}
}

// playerEnemyPass bounces the player off every touching enemy. Only the first
// contact of a frame deals damage, and none does while the player is invulnerable.
func (g *Game) playerEnemyPass() {
	g.partition()

	p := g.playerMap.Get(g.player)
	ppos := g.posMap.Get(g.player)
	prect := g.bodyMap.Get(g.player).Rect(*ppos)

	if p.Invulnerable {
		for _, e := range g.enemies {
			if systems.RectsOverlap(prect, g.bodyMap.Get(e).Rect(*g.posMap.Get(e))) {
				g.collector.RecordContact(0, true)
			}
		}
		return
	}

	pvel := g.velMap.Get(g.player)
	pmass := g.motionMap.Get(g.player).Mass
	health := g.healthMap.Get(g.player)
	damaged := false

	for _, e := range g.enemies {
		epos := g.posMap.Get(e)
		if !systems.RectsOverlap(prect, g.bodyMap.Get(e).Rect(*epos)) {
			continue
		}

		systems.MomentumBounce(*ppos, pvel, pmass, *epos, g.velMap.Get(e), g.motionMap.Get(e).Mass)

		if damaged {
			continue
		}
		damaged = true

		dmg := g.enemyMap.Get(e).Damage
		health.Hurt(dmg)
		p.Invulnerable = true
		p.InvulnTimer = 0
		g.collector.RecordContact(dmg, false)
		g.emit(Event{Kind: EventPlayerDamaged, Amount: dmg, Enemy: g.enemyMap.Get(e).Variant, X: ppos.X, Y: ppos.Y})

		if health.BelowMin() {
			g.lifeMap.Get(g.player).Alive = false
		}
	}
}

// waveEnemyPass damages and pushes every enemy a wave reaches, once per wave.
func (g *Game) waveEnemyPass() {
	for _, we := range g.waves {
		w := g.waveMap.Get(we)
		g.syncWaveCenter(we, w)

		origin := components.Position{X: w.CenterX, Y: w.CenterY}
		if g.world.Alive(w.Owner) {
			origin = *g.posMap.Get(w.Owner)
		}

		for _, e := range g.enemies {
			if w.HasStruck(e) {
				continue
			}
			epos := g.posMap.Get(e)
			body := g.bodyMap.Get(e)
			cx, cy := body.Center(*epos)
			if !systems.CirclesOverlap(w.CenterX, w.CenterY, w.Radius, cx, cy, body.CircleRadius()) {
				continue
			}

			en := g.enemyMap.Get(e)
			dmg := w.Damage()
			g.healthMap.Get(e).Hurt(dmg)
			w.MarkStruck(e)
			g.collector.RecordWaveHit(dmg)
			g.emit(Event{Kind: EventEnemyDamaged, Amount: dmg, Enemy: en.Variant, X: epos.X, Y: epos.Y})

			systems.WavePush(origin, *epos, g.velMap.Get(e), w.Radius, w.MaxRadius, WavePushForce, en.PushMass)
		}
	}
}

// playerBonusPass collects every bonus the player touches.
func (g *Game) playerBonusPass() {
	ppos := g.posMap.Get(g.player)
	pbody := g.bodyMap.Get(g.player)
	px, py := pbody.Center(*ppos)
	pr := pbody.CircleRadius()

	for _, e := range g.bonuses {
		b := g.bonusMap.Get(e)
		if b.Collected {
			continue
		}
		pos := g.posMap.Get(e)
		body := g.bodyMap.Get(e)
		bx, by := body.Center(*pos)
		if !systems.CirclesOverlap(px, py, pr, bx, by, body.CircleRadius()) {
			continue
		}

		g.applyBonus(b)
		b.Collected = true
		g.lifeMap.Get(e).Alive = false
		g.collector.RecordPickup(b.Variant, b.Value)
		g.emit(Event{Kind: EventPickup, Amount: float64(b.Value), Bonus: b.Variant, X: pos.X, Y: pos.Y})
	}
}

// applyBonus grants a bonus's effect to the player.
func (g *Game) applyBonus(b *components.Bonus) {
	p := g.playerMap.Get(g.player)
	switch b.Variant {
	case components.BonusGold:
		p.Gold += b.Value
	case components.BonusHealth:
		g.healthMap.Get(g.player).Heal(float64(b.Value))
	case components.BonusAttack:
		p.Charge = p.MaxCharge
	}
}

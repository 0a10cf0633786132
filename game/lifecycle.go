package game

import (
	"github.com/slsyy/ects/components"
)

// reapDead removes entities flagged dead this frame. The player is never
// removed so its final state stays readable after the run ends.
func (g *Game) reapDead() {
	// First pass: collect dead entities
	g.dead = g.dead[:0]
	for _, e := range g.live {
		if e == g.player {
			continue
		}
		if !g.lifeMap.Get(e).Alive {
			g.dead = append(g.dead, e)
		}
	}

	// Second pass: record and remove
	for _, e := range g.dead {
		pos := g.posMap.Get(e)

		switch g.lifeMap.Get(e).Kind {
		case components.KindEnemy:
			g.collector.RecordKill()
			g.emit(Event{Kind: EventEnemyKilled, Enemy: g.enemyMap.Get(e).Variant, X: pos.X, Y: pos.Y})
		case components.KindBonus:
			if b := g.bonusMap.Get(e); !b.Collected {
				g.collector.RecordExpired()
				g.emit(Event{Kind: EventBonusExpired, Amount: float64(b.Value), Bonus: b.Variant, X: pos.X, Y: pos.Y})
			}
		}

		g.world.RemoveEntity(e)
	}
}

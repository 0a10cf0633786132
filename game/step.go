package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/slsyy/ects/components"
	"github.com/slsyy/ects/systems"
)

// StepResult summarizes one simulated frame.
type StepResult struct {
	Tick   int32   // frames simulated so far, including this one
	Over   bool    // the player has died
	Events []Event // this frame's events; valid until the next Step
}

// Step advances the simulation by dt seconds with the given player input.
// Once the run is over further calls do nothing.
func (g *Game) Step(dt float64, in Input) StepResult {
	if g.over {
		return StepResult{Tick: g.tick, Over: true}
	}

	g.events = g.events[:0]

	g.applyInput(in, dt)

	g.handleSpawns(g.spawner.Update(dt))

	g.updateEntities(dt)

	g.playerEnemyPass()
	g.waveEnemyPass()
	g.playerBonusPass()

	g.reapDead()

	g.materializeLabels()
	g.updateLabels(dt)

	g.checkRunState()
	g.tick++
	g.simTime += dt
	g.flushTelemetry()

	return StepResult{Tick: g.tick, Over: g.over, Events: g.events}
}

// applyInput turns this frame's input into player impulses and an attack attempt.
func (g *Game) applyInput(in Input, dt float64) {
	vel := g.velMap.Get(g.player)
	m := *g.motionMap.Get(g.player)

	if in.Left {
		systems.ApplyImpulse(vel, m, systems.AxisX, -1, dt)
	}
	if in.Right {
		systems.ApplyImpulse(vel, m, systems.AxisX, 1, dt)
	}
	if in.Up {
		systems.ApplyImpulse(vel, m, systems.AxisY, -1, dt)
	}
	if in.Down {
		systems.ApplyImpulse(vel, m, systems.AxisY, 1, dt)
	}

	if in.Attack {
		g.tryAttack()
	}
}

// tryAttack fires a wave when the player has enough charge and the cooldown
// has elapsed.
func (g *Game) tryAttack() bool {
	p := g.playerMap.Get(g.player)
	if p.Charge/p.MaxCharge < ChargeGate || p.Cooldown >= 0 {
		return false
	}

	g.spawnWave(g.player)
	p.Cooldown = AttackCooldown
	p.Charge -= ChargeCost * p.MaxCharge
	g.collector.RecordWave()
	return true
}

// updateEntities runs the kind update and physics for every live entity.
func (g *Game) updateEntities(dt float64) {
	g.collectLive()

	for _, e := range g.live {
		life := g.lifeMap.Get(e)
		g.updateEntity(e, life, dt)
		if !life.Alive {
			continue
		}
		switch {
		case g.motionMap.Has(e):
			g.integrate(e, life, dt, g.motionMap.Get(e).Friction)
		case g.velMap.Has(e):
			// Bonuses have no motion stats and drift without friction.
			g.integrate(e, life, dt, 0)
		}
	}
}

// integrate applies friction, bounces off the arena edges and moves the entity.
func (g *Game) integrate(e ecs.Entity, life *components.Life, dt, friction float64) {
	pos := g.posMap.Get(e)
	vel := g.velMap.Get(e)

	if friction > 0 {
		systems.ApplyFriction(vel, friction, dt)
	}

	if systems.ReflectBounds(pos, vel, *g.bodyMap.Get(e), g.arena) && life.Kind == components.KindEnemy {
		// Force a fresh decision next frame.
		en := g.enemyMap.Get(e)
		en.MoveTimer = en.MoveCycle + dt
	}

	systems.Integrate(pos, *vel, dt)
}

// collectLive gathers every entity with a Life component into g.live.
// Structural changes are not allowed while the query is open.
func (g *Game) collectLive() {
	g.live = g.live[:0]
	query := g.lifeFilter.Query()
	for query.Next() {
		g.live = append(g.live, query.Entity())
	}
}

// checkRunState ends the run on player death and notes the gold goal.
func (g *Game) checkRunState() {
	if !g.lifeMap.Get(g.player).Alive {
		g.over = true
		pos := g.posMap.Get(g.player)
		g.emit(Event{Kind: EventPlayerDied, X: pos.X, Y: pos.Y})
		slog.Info("player died", "run_id", g.runID, "tick", g.tick, "gold", g.playerMap.Get(g.player).Gold)
	}

	if !g.goalReached && g.playerMap.Get(g.player).Gold >= GoldGoal {
		g.goalReached = true
		slog.Info("gold goal reached", "run_id", g.runID, "tick", g.tick, "goal", GoldGoal)
	}
}

package game

import (
	"github.com/slsyy/ects/components"
	"github.com/slsyy/ects/config"
	"github.com/slsyy/ects/systems"
)

// Input is the directional and attack state for one frame.
type Input struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Attack bool
}

// Autopilot produces input for headless runs. It fires when an enemy is in
// range, steers away from close enemies and otherwise heads for the nearest bonus.
type Autopilot struct {
	cfg config.AutopilotConfig
}

// NewAutopilot creates an autopilot with the given tuning.
func NewAutopilot(cfg config.AutopilotConfig) *Autopilot {
	return &Autopilot{cfg: cfg}
}

// Decide returns the input for the next frame of g.
func (a *Autopilot) Decide(g *Game) Input {
	var in Input
	if g.Over() {
		return in
	}

	ps := g.PlayerState()
	px, py := ps.CenterX, ps.CenterY

	var fleeX, fleeY float64
	nearestEnemy := -1.0
	nearestBonus := -1.0
	var bonusX, bonusY float64

	for _, v := range g.Entities() {
		cx, cy := v.X+v.W/2, v.Y+v.H/2
		d := systems.Distance(px, py, cx, cy)

		switch v.Kind {
		case components.KindEnemy:
			if nearestEnemy < 0 || d < nearestEnemy {
				nearestEnemy = d
			}
			if d < a.cfg.FleeRange {
				fleeX += px - cx
				fleeY += py - cy
			}
		case components.KindBonus:
			if nearestBonus < 0 || d < nearestBonus {
				nearestBonus = d
				bonusX, bonusY = cx, cy
			}
		}
	}

	in.Attack = nearestEnemy >= 0 && nearestEnemy < a.cfg.AttackRange

	dx, dy := fleeX, fleeY
	if dx == 0 && dy == 0 && a.cfg.ChaseBonus && nearestBonus >= 0 {
		dx, dy = bonusX-px, bonusY-py
	}

	const deadZone = 4.0
	in.Left = dx < -deadZone
	in.Right = dx > deadZone
	in.Up = dy < -deadZone
	in.Down = dy > deadZone
	return in
}

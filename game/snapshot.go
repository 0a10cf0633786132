package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/slsyy/ects/components"
)

// PlayerState is a read-only copy of the player's state.
type PlayerState struct {
	X, Y             float64 // top-left corner
	CenterX, CenterY float64
	Health           float64
	MaxHealth        float64
	MinHealth        float64
	Gold             int
	Charge           float64
	MaxCharge        float64
	Cooldown         float64
	Invulnerable     bool
	Tier             components.Tier
	Alive            bool
}

// PlayerState returns a copy of the player's current state.
func (g *Game) PlayerState() PlayerState {
	pos := g.posMap.Get(g.player)
	body := g.bodyMap.Get(g.player)
	h := g.healthMap.Get(g.player)
	p := g.playerMap.Get(g.player)
	cx, cy := body.Center(*pos)

	return PlayerState{
		X:            pos.X,
		Y:            pos.Y,
		CenterX:      cx,
		CenterY:      cy,
		Health:       h.Value,
		MaxHealth:    h.Max,
		MinHealth:    h.Min,
		Gold:         p.Gold,
		Charge:       p.Charge,
		MaxCharge:    p.MaxCharge,
		Cooldown:     p.Cooldown,
		Invulnerable: p.Invulnerable,
		Tier:         p.Tier,
		Alive:        g.lifeMap.Get(g.player).Alive,
	}
}

// EntityView describes one entity for a renderer. Variant holds the enemy or
// bonus variant and is zero for other kinds. Waves report their center in X, Y.
type EntityView struct {
	Entity  ecs.Entity
	Kind    components.Kind
	Variant uint8
	X, Y    float64
	W, H    float64
	Radius  float64
}

// Entities returns a snapshot of every entity except labels.
func (g *Game) Entities() []EntityView {
	var views []EntityView

	query := g.lifeFilter.Query()
	for query.Next() {
		life := query.Get()
		e := query.Entity()
		pos := g.posMap.Get(e)
		body := g.bodyMap.Get(e)

		v := EntityView{
			Entity: e,
			Kind:   life.Kind,
			X:      pos.X,
			Y:      pos.Y,
			W:      body.W,
			H:      body.H,
			Radius: body.Radius,
		}
		switch life.Kind {
		case components.KindEnemy:
			v.Variant = uint8(g.enemyMap.Get(e).Variant)
		case components.KindBonus:
			v.Variant = uint8(g.bonusMap.Get(e).Variant)
		case components.KindAttackWave:
			v.Radius = g.waveMap.Get(e).Radius
		}
		views = append(views, v)
	}

	return views
}

// LabelView is a floating text marker.
type LabelView struct {
	Text      string
	X, Y      float64
	Remaining float64
}

// Labels returns the live floating labels.
func (g *Game) Labels() []LabelView {
	var views []LabelView
	query := g.labelFilter.Query()
	for query.Next() {
		pos, label := query.Get()
		views = append(views, LabelView{Text: label.Text, X: pos.X, Y: pos.Y, Remaining: label.Remaining})
	}
	return views
}

// Events returns the events raised by the last Step. The slice is reused by
// the next Step.
func (g *Game) Events() []Event {
	return g.events
}

// Over reports whether the player has died.
func (g *Game) Over() bool {
	return g.over
}

// GoalReached reports whether the player has collected the gold goal.
// Reaching it does not end the run.
func (g *Game) GoalReached() bool {
	return g.goalReached
}

// Result is the end-of-run score.
type Result struct {
	Gold    int
	Goal    int
	Percent int // gold as a whole percentage of the goal
}

// Result returns the current score.
func (g *Game) Result() Result {
	gold := g.playerMap.Get(g.player).Gold
	return Result{
		Gold:    gold,
		Goal:    GoldGoal,
		Percent: gold * 100 / GoldGoal,
	}
}

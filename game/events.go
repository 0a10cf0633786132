package game

import (
	"fmt"

	"github.com/slsyy/ects/components"
	"github.com/slsyy/ects/systems"
)

// EventKind identifies a gameplay event raised during a step.
type EventKind uint8

const (
	EventPlayerDamaged EventKind = iota
	EventEnemyDamaged
	EventPickup
	EventEnemyKilled
	EventBonusExpired
	EventPlayerDied
)

var eventKindNames = [...]string{
	EventPlayerDamaged: "player_damaged",
	EventEnemyDamaged:  "enemy_damaged",
	EventPickup:        "pickup",
	EventEnemyKilled:   "enemy_killed",
	EventBonusExpired:  "bonus_expired",
	EventPlayerDied:    "player_died",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is a notable thing that happened during a step. X and Y are the
// world position the event is anchored to.
type Event struct {
	Kind   EventKind
	Amount float64
	Text   string                  // floating label text, empty when the event has none
	Bonus  components.BonusVariant // set for EventPickup and EventBonusExpired
	Enemy  components.EnemyVariant // set for enemy events
	X, Y   float64
}

// emit appends an event for the current step.
func (g *Game) emit(ev Event) {
	ev.Text = labelText(ev)
	g.events = append(g.events, ev)
}

// labelText returns the floating text for an event, or "" when the event has none.
func labelText(ev Event) string {
	switch ev.Kind {
	case EventPlayerDamaged:
		return fmt.Sprintf("-%g HP", ev.Amount)
	case EventEnemyDamaged:
		return fmt.Sprintf("-%g dmg", systems.Round(ev.Amount, 2))
	case EventPickup:
		switch ev.Bonus {
		case components.BonusGold:
			return fmt.Sprintf("+%g Gold", ev.Amount)
		case components.BonusHealth:
			return fmt.Sprintf("+%g HP", ev.Amount)
		case components.BonusAttack:
			return "+attack full restore"
		}
	}
	return ""
}

// materializeLabels spawns a floating label for every event of this step that has one.
func (g *Game) materializeLabels() {
	for _, ev := range g.events {
		if ev.Text != "" {
			g.spawnLabel(ev.Text, ev.X, ev.Y)
		}
	}
}

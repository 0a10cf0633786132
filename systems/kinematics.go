// Package systems contains the physics, collision and spawning helpers that the
// simulation step runs over entity components.
package systems

import (
	"github.com/slsyy/ects/components"
)

// Axis selects a velocity component.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// ApplyImpulse accelerates vel along one axis in the direction of sign (+1 or -1).
//
// The speed cap only limits what the impulse itself can add: if the step would
// exceed MaxVelocity the component is snapped to the cap, but only when it is
// currently below it. A component already over the cap (after a bounce) is left
// as is, and the opposite direction is always free to slow it down.
func ApplyImpulse(vel *components.Velocity, m components.Motion, axis Axis, sign, dt float64) {
	v := &vel.X
	if axis == AxisY {
		v = &vel.Y
	}

	next := *v + sign*m.Acceleration*dt
	if sign*next > m.MaxVelocity {
		if sign**v < m.MaxVelocity {
			*v = sign * m.MaxVelocity
		}
		return
	}
	*v = next
}

// ApplyIntent applies the impulses for a pair of per-axis directions.
func ApplyIntent(vel *components.Velocity, m components.Motion, dx, dy components.Direction, dt float64) {
	if dx != components.DirNone {
		ApplyImpulse(vel, m, AxisX, float64(dx), dt)
	}
	if dy != components.DirNone {
		ApplyImpulse(vel, m, AxisY, float64(dy), dt)
	}
}

// ApplyFriction decays each velocity component toward zero by friction*dt
// without crossing zero.
func ApplyFriction(vel *components.Velocity, friction, dt float64) {
	vel.X = decayToward0(vel.X, friction*dt)
	vel.Y = decayToward0(vel.Y, friction*dt)
}

func decayToward0(v, step float64) float64 {
	switch {
	case v > 0:
		return max(v-step, 0)
	case v < 0:
		return min(v+step, 0)
	}
	return 0
}

// Integrate advances pos by vel over dt.
func Integrate(pos *components.Position, vel components.Velocity, dt float64) {
	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
}

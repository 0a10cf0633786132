package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/slsyy/ects/components"
)

// Arena is the playable rectangle. Entities are kept with their whole box inside.
type Arena struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the arena width.
func (a Arena) Width() float64 { return a.X1 - a.X0 }

// Height returns the arena height.
func (a Arena) Height() float64 { return a.Y1 - a.Y0 }

// fallbackDir is used when two points coincide and no direction can be derived.
var fallbackDir = r2.Vec{X: 1, Y: 0}

// RectsOverlap reports whether two boxes intersect. Touching edges do not count.
func RectsOverlap(a, b components.Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// CirclesOverlap reports whether two circles touch or intersect.
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	d := r2.Sub(r2.Vec{X: bx, Y: by}, r2.Vec{X: ax, Y: ay})
	rr := ar + br
	return r2.Norm2(d) <= rr*rr
}

// ReflectBounds clamps the body's box into the arena and negates the velocity
// component on every axis that was out of bounds. Returns true on any hit.
func ReflectBounds(pos *components.Position, vel *components.Velocity, body components.Body, arena Arena) bool {
	hit := false

	if pos.X < arena.X0 {
		pos.X = arena.X0
		vel.X = -vel.X
		hit = true
	} else if pos.X+body.W > arena.X1 {
		pos.X = arena.X1 - body.W
		vel.X = -vel.X
		hit = true
	}

	if pos.Y < arena.Y0 {
		pos.Y = arena.Y0
		vel.Y = -vel.Y
		hit = true
	} else if pos.Y+body.H > arena.Y1 {
		pos.Y = arena.Y1 - body.H
		vel.Y = -vel.Y
		hit = true
	}

	return hit
}

// direction returns the unit vector from a to b, or the +X axis when they coincide.
func direction(a, b components.Position) r2.Vec {
	d := r2.Sub(r2.Vec{X: b.X, Y: b.Y}, r2.Vec{X: a.X, Y: a.Y})
	if r2.Norm2(d) == 0 {
		return fallbackDir
	}
	return r2.Unit(d)
}

// MomentumBounce separates two colliding bodies. The magnitude of their combined
// momentum is split so that A moves away from B and B away from A along the line
// between their positions.
func MomentumBounce(posA components.Position, velA *components.Velocity, massA float64,
	posB components.Position, velB *components.Velocity, massB float64) {
	p := r2.Add(
		r2.Scale(massA, r2.Vec{X: velA.X, Y: velA.Y}),
		r2.Scale(massB, r2.Vec{X: velB.X, Y: velB.Y}),
	)
	mag := r2.Norm(p)
	dir := direction(posA, posB)

	a := r2.Scale(-mag/massA, dir)
	b := r2.Scale(mag/massB, dir)
	velA.X, velA.Y = a.X, a.Y
	velB.X, velB.Y = b.X, b.Y
}

// WavePush adds an impulse to vel pointing from origin to target. Its speed
// falls off linearly with the wave radius and is divided by the target's push mass.
func WavePush(origin, target components.Position, vel *components.Velocity,
	radius, maxRadius, strength, pushMass float64) {
	speed := (1 - radius/maxRadius) * strength / pushMass
	push := r2.Scale(speed, direction(origin, target))
	vel.X += push.X
	vel.Y += push.Y
}

package components

import "math"

// Position is the top-left corner of an entity's bounding box in world units.
type Position struct {
	X, Y float64
}

// Velocity represents an entity's velocity in world units per second.
type Velocity struct {
	X, Y float64
}

// Body describes an entity's collision shape.
// W and H size the axis-aligned box anchored at Position. Radius, when positive,
// overrides the circle radius used for radial tests; otherwise the box's half
// diagonal is used.
type Body struct {
	W, H   float64
	Radius float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Rect returns the body's box at the given position.
func (b Body) Rect(p Position) Rect {
	return Rect{X: p.X, Y: p.Y, W: b.W, H: b.H}
}

// Center returns the center of the body's box at the given position.
func (b Body) Center(p Position) (x, y float64) {
	return p.X + b.W/2, p.Y + b.H/2
}

// CircleRadius returns the radius used for circle collision.
func (b Body) CircleRadius() float64 {
	if b.Radius > 0 {
		return b.Radius
	}
	return 0.5 * math.Hypot(b.W, b.H)
}

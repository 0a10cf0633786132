package systems

import (
	"math"
	"testing"

	"github.com/slsyy/ects/components"
)

var testMotion = components.Motion{MaxVelocity: 300, Friction: 3000, Acceleration: 4000, Mass: 1}

func TestApplyImpulse(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		sign  float64
		dt    float64
		want  float64
	}{
		{"accelerate from rest", 0, 1, 0.01, 40},
		{"accelerate left", 0, -1, 0.01, -40},
		{"snap to cap", 290, 1, 0.01, 300},
		{"snap to negative cap", -290, -1, 0.01, -300},
		{"huge dt clamps", 0, 1, 1000, 300},
		{"huge dt clamps left", 0, -1, 1000, -300},
		{"over cap from bounce left untouched", 500, 1, 0.01, 500},
		{"opposite direction slows overspeed", 500, -1, 0.01, 460},
		{"at cap stays at cap", 300, 1, 0.01, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vel := components.Velocity{X: tt.start}
			ApplyImpulse(&vel, testMotion, AxisX, tt.sign, tt.dt)
			if math.Abs(vel.X-tt.want) > 1e-9 {
				t.Errorf("vel.X = %v, want %v", vel.X, tt.want)
			}
			if vel.Y != 0 {
				t.Errorf("vel.Y = %v, want untouched 0", vel.Y)
			}
		})
	}
}

func TestApplyImpulseNeverExceedsCapFromBelow(t *testing.T) {
	for _, dt := range []float64{1e-4, 1.0 / 70, 0.1, 1, 1e6} {
		vel := components.Velocity{}
		for i := 0; i < 1000; i++ {
			ApplyImpulse(&vel, testMotion, AxisY, 1, dt)
			if math.Abs(vel.Y) > testMotion.MaxVelocity+1e-9 {
				t.Fatalf("dt=%v step %d: |vel.Y| = %v exceeds cap", dt, i, vel.Y)
			}
		}
	}
}

func TestApplyFrictionMonotonic(t *testing.T) {
	starts := []components.Velocity{{X: 250, Y: -250}, {X: -1, Y: 0.5}, {X: 0, Y: 3000}}
	for _, start := range starts {
		vel := start
		for i := 0; i < 200; i++ {
			prevX, prevY := vel.X, vel.Y
			ApplyFriction(&vel, 3000, 1.0/70)

			if math.Abs(vel.X) > math.Abs(prevX) || math.Abs(vel.Y) > math.Abs(prevY) {
				t.Fatalf("speed grew: (%v,%v) -> (%v,%v)", prevX, prevY, vel.X, vel.Y)
			}
			if vel.X*prevX < 0 || vel.Y*prevY < 0 {
				t.Fatalf("friction crossed zero: (%v,%v) -> (%v,%v)", prevX, prevY, vel.X, vel.Y)
			}
		}
		if vel.X != 0 || vel.Y != 0 {
			t.Errorf("start %+v did not come to rest: %+v", start, vel)
		}
	}
}

func TestApplyFrictionHugeStep(t *testing.T) {
	vel := components.Velocity{X: 100, Y: -100}
	ApplyFriction(&vel, 3000, 10)
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("vel = %+v, want zero", vel)
	}
}

func TestIntegrate(t *testing.T) {
	pos := components.Position{X: 10, Y: 20}
	Integrate(&pos, components.Velocity{X: 100, Y: -50}, 0.5)
	if pos.X != 60 || pos.Y != -5 {
		t.Errorf("pos = %+v, want {60 -5}", pos)
	}
}

func TestApplyIntent(t *testing.T) {
	vel := components.Velocity{}
	ApplyIntent(&vel, testMotion, components.DirNegative, components.DirPositive, 0.01)
	if math.Abs(vel.X+40) > 1e-9 || math.Abs(vel.Y-40) > 1e-9 {
		t.Errorf("vel = %+v, want {-40 40}", vel)
	}
}

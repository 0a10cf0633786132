package components

// Motion holds the movement tuning of an entity.
// Mass must be positive; it is set from design constants at construction.
type Motion struct {
	MaxVelocity  float64
	Friction     float64
	Acceleration float64
	Mass         float64
}

// Health tracks damageable entities.
// Value is clamped to [0, Max]; dropping below Min kills the entity.
type Health struct {
	Value float64
	Max   float64
	Min   float64
}

// Hurt subtracts damage, clamping at zero.
func (h *Health) Hurt(amount float64) {
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
}

// Heal adds health, clamping at Max.
func (h *Health) Heal(amount float64) {
	h.Value += amount
	if h.Value > h.Max {
		h.Value = h.Max
	}
}

// BelowMin reports whether the entity has dropped under its survival threshold.
func (h *Health) BelowMin() bool {
	return h.Value < h.Min
}

package component

import "spoon-defense/internal/defs"

// Enemy links a live enemy to its definition.
type Enemy struct {
	DefID string
	Def   *defs.EnemyDefinition
}

// Health is shared by everything that can be damaged.
type Health struct {
	Value float64
	Max   float64
}

// Ratio returns current health as a fraction of maximum.
func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}

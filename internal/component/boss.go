package component

import "spoon-defense/internal/defs"

// Boss carries the ability timers of a boss enemy. Times are sim seconds.
type Boss struct {
	Config         *defs.BossAbilityConfig
	NextVortexAt   float64
	NextSlamAt     float64
	NextSplinterAt float64
}

// Vortex is a suppression field left by a boss.
type Vortex struct {
	Radius      float64 // cells
	CreatedAt   float64
	ExpiresAt   float64
	NextPulseAt float64
}

// RemainingRatio is the fraction of lifetime left, for fading the field out.
func (v *Vortex) RemainingRatio(now float64) float64 {
	life := v.ExpiresAt - v.CreatedAt
	if life <= 0 {
		return 0
	}
	r := (v.ExpiresAt - now) / life
	if r < 0 {
		return 0
	}
	return r
}

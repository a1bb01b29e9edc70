package component

import "spoon-defense/internal/types"

// Projectile is a homing shot. TargetID is a weak reference: the projectile
// never owns its target and dies quietly once the target is gone.
type Projectile struct {
	TargetID     types.EntityID
	SourceID     types.EntityID
	TowerDefID   string
	Speed        float64 // cells per second
	Damage       float64
	SplashRadius float64 // cells, inflation included; 0 for single target
	SlowPct      float64
	SlowDuration float64 // seconds
}

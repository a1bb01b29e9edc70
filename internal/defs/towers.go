package defs

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID              string  `json:"id" jsonschema:"pattern=^[a-zA-Z0-9_-]+$"`
	Name            string  `json:"name"`
	Cost            int     `json:"cost" jsonschema:"minimum=0"`
	Range           float64 `json:"range" jsonschema:"description=Distance units"`
	FireRate        float64 `json:"fire_rate" jsonschema:"description=Shots per second,exclusiveMinimum=0"`
	Damage          float64 `json:"damage" jsonschema:"minimum=0"`
	ProjectileSpeed float64 `json:"projectile_speed" jsonschema:"description=Distance units per second,exclusiveMinimum=0"`
	SplashRadius    float64 `json:"splash_radius" jsonschema:"description=0 means single target"`
	SlowPct         float64 `json:"slow_pct" jsonschema:"minimum=0,maximum=1"`
	SlowDurationMs  int     `json:"slow_duration_ms" jsonschema:"minimum=0"`
	Visuals         Visuals `json:"visuals"`
}

// Cooldown returns the time between shots in seconds.
func (d *TowerDefinition) Cooldown() float64 {
	return 1 / d.FireRate
}

func (d *TowerDefinition) SlowDuration() float64 {
	return msToSeconds(d.SlowDurationMs)
}

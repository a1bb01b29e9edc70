package component

// DamageFlash marks an enemy that was hit recently.
type DamageFlash struct {
	Timer    float64 // time left
	Duration float64
}

// Shard is an inert splinter fragment flying out of a boss.
type Shard struct {
	Angle    float64
	Speed    float64 // cells per second
	Timer    float64 // time left
	Duration float64
}

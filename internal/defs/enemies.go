package defs

// BossAbilityConfig holds the boss-only ability parameters. Its presence on
// an EnemyDefinition is what makes the enemy a boss.
type BossAbilityConfig struct {
	VortexCooldownMs   int     `json:"vortex_cooldown_ms" jsonschema:"minimum=1"`
	VortexDurationMs   int     `json:"vortex_duration_ms" jsonschema:"minimum=1"`
	VortexRange        float64 `json:"vortex_range" jsonschema:"description=Suppression field radius in distance units"`
	SlamCooldownMs     int     `json:"slam_cooldown_ms" jsonschema:"minimum=1"`
	SlamRange          float64 `json:"slam_range" jsonschema:"description=Slam search radius in distance units"`
	SplinterCooldownMs int     `json:"splinter_cooldown_ms" jsonschema:"minimum=1"`
	SplinterCount      int     `json:"splinter_count" jsonschema:"minimum=0"`
	ReinforcementID    string  `json:"reinforcement_id,omitempty" jsonschema:"description=Enemy spawned by the splinter burst (defaults to scout)"`
}

func (b *BossAbilityConfig) VortexCooldown() float64   { return msToSeconds(b.VortexCooldownMs) }
func (b *BossAbilityConfig) VortexDuration() float64   { return msToSeconds(b.VortexDurationMs) }
func (b *BossAbilityConfig) SlamCooldown() float64     { return msToSeconds(b.SlamCooldownMs) }
func (b *BossAbilityConfig) SplinterCooldown() float64 { return msToSeconds(b.SplinterCooldownMs) }

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID         string             `json:"id" jsonschema:"pattern=^[a-zA-Z0-9_-]+$"`
	Name       string             `json:"name"`
	MaxHealth  float64            `json:"max_health" jsonschema:"exclusiveMinimum=0"`
	Speed      float64            `json:"speed" jsonschema:"description=Distance units per second,exclusiveMinimum=0"`
	Reward     int                `json:"reward" jsonschema:"minimum=0"`
	BaseDamage int                `json:"base_damage" jsonschema:"minimum=0"`
	BodyRadius float64            `json:"body_radius"`
	Visuals    Visuals            `json:"visuals"`
	Boss       *BossAbilityConfig `json:"boss,omitempty"`
}

// IsBoss reports whether the definition carries boss abilities.
func (d *EnemyDefinition) IsBoss() bool {
	return d.Boss != nil
}

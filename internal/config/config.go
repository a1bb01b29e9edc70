package config

import "image/color"

// Board.
const (
	GridCols = 14
	GridRows = 9

	// UnitsPerCell converts authored distances (tower range, splash radius,
	// projectile speed, boss ranges) into grid cells.
	UnitsPerCell = 48.0
	// EnemySpeedUnitsPerCell converts authored enemy speed into cells/sec.
	EnemySpeedUnitsPerCell = 120.0
)

// Combat feel. These are tuned against the isometric projection and are kept
// as named constants instead of geometric derivations.
const (
	RangeTolerance     = 16.0 // added to tower range, in units
	SplashInflation    = 1.25 // multiplier on splash radius
	ProjectileHitSlack = 2.0  // in units
	BossDamageFactor   = 0.8
	SlowFloor          = 0.25
	TowerInitialDelay  = 0.14 // seconds of cooldown right after placement
	TurretTurnSpeed    = 10.0 // easing rate per second

	DamageFlashDuration = 0.12
)

// Boss abilities. Times are in seconds.
const (
	BossVortexFirstCast   = 2.6
	BossSlamFirstCast     = 4.3
	BossSplinterFirstCast = 6.2

	SuppressionFactor     = 0.38
	VortexFirstPulseDelay = 0.2
	VortexPulseInterval   = 0.22
	VortexPulsePenalty    = 0.28
	VortexDisruptChance   = 0.3

	SlamTelegraph       = 0.52
	SlamDisableDuration = 2.2
	SlamCooldownFloor   = 1.1

	SplinterMinReinforcements = 2
	SplinterMaxReinforcements = 4
	SplinterJitter            = 0.2 // cells
	DefaultReinforcementID    = "scout"

	ShardDuration = 0.42
	ShardReach    = 2.0 // cells a shard travels before fading
)

// Run.
const (
	BaseHealthCriticalThreshold = 5
	MaxTimeMultiplier           = 4.0
	MaxDeltaTime                = 0.06 // seconds, frame clamp used by presentation loops
)

// SpeedSteps are the multipliers cycled by the speed toggle.
var SpeedSteps = []float64{1, 2}

// Presentation.
const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	IsoTileWidth  = 96.0
	IsoTileHeight = 56.0
	IsoOriginX    = ScreenWidth / 2
	IsoOriginY    = 128.0

	ProjectileRadius = 5.0
	HUDHeight        = 84
	MessageDuration  = 1.2 // seconds
	HitSoundThrottle = 0.09
)

var (
	BackgroundColor  = color.RGBA{16, 32, 52, 255}
	GrassColor       = color.RGBA{201, 240, 199, 255}
	GrassAltColor    = color.RGBA{188, 231, 184, 255}
	RoadColor        = color.RGBA{247, 242, 230, 255}
	RoadTurnColor    = color.RGBA{232, 222, 200, 255}
	TileStrokeColor  = color.RGBA{60, 80, 70, 120}
	TextLightColor   = color.RGBA{238, 246, 255, 255}
	TextDarkColor    = color.RGBA{16, 33, 58, 255}
	HealthBackColor  = color.RGBA{26, 18, 35, 245}
	HealthFillColor  = color.RGBA{133, 242, 155, 255}
	BossBarColor     = color.RGBA{255, 226, 182, 255}
	SlowTintColor    = color.RGBA{144, 220, 255, 255}
	VortexColor      = color.RGBA{121, 187, 255, 60}
	VortexRingColor  = color.RGBA{156, 232, 255, 240}
	DisabledColor    = color.RGBA{110, 110, 120, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonOnColor    = color.RGBA{80, 180, 110, 230}
	ButtonOffColor   = color.RGBA{90, 90, 100, 200}
	PanelColor       = color.RGBA{20, 30, 50, 235}
	HoverValidColor  = color.RGBA{120, 255, 150, 110}
	HoverBlockColor  = color.RGBA{255, 110, 110, 110}
	SpeedStateColors = []color.Color{
		color.RGBA{70, 130, 180, 220},
		color.RGBA{220, 60, 60, 220},
	}
)

// Camera zoom limits and step.
const (
	MinZoom  = 0.72
	MaxZoom  = 1.7
	ZoomStep = 0.1
)

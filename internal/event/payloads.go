package event

import (
	"spoon-defense/internal/types"
	"spoon-defense/pkg/gridmap"
)

type WaveStartedData struct {
	WaveIndex int
	Total     int
	IsBoss    bool
	BossName  string
}

type WaveClearedData struct {
	WaveIndex int
	Last      bool
}

type EnemySpawnedData struct {
	ID            types.EntityID
	DefID         string
	Position      gridmap.Point
	WaypointIndex int
	Reinforcement bool
}

type EnemyLeakedData struct {
	ID         types.EntityID
	DefID      string
	Damage     int
	BaseHealth int
}

type EnemyKilledData struct {
	ID       types.EntityID
	DefID    string
	Reward   int
	Position gridmap.Point
}

type BossSpawnedData struct {
	ID   types.EntityID
	Name string
}

// Ability names a boss ability.
type Ability string

const (
	AbilityVortex   Ability = "vortex"
	AbilitySlam     Ability = "slam"
	AbilitySplinter Ability = "splinter"
)

// BossAbilityCastData describes a cast. Only the fields relevant to Ability
// are set. A slam with no tower in range is reported with Skipped.
type BossAbilityCastData struct {
	BossID   types.EntityID
	Ability  Ability
	Position gridmap.Point

	VortexID types.EntityID
	Radius   float64 // cells

	TargetTowerID types.EntityID
	LandsAt       float64
	Skipped       bool

	ShardAngles    []float64
	Reinforcements []types.EntityID
}

type VortexDisruptionData struct {
	VortexID types.EntityID
	TowerID  types.EntityID
	Tile     gridmap.Tile
}

type TowerDisabledData struct {
	TowerID types.EntityID
	BossID  types.EntityID
	Until   float64
}

type BossDefeatedData struct {
	ID     types.EntityID
	Name   string
	Reward int
}

type TowerPlacedData struct {
	ID    types.EntityID
	DefID string
	Tile  gridmap.Tile
	Cost  int
}

type TowerRejectedData struct {
	DefID  string
	Tile   gridmap.Tile
	Reason string
}

type ProjectileImpactData struct {
	ProjectileID types.EntityID
	TargetID     types.EntityID
	TowerDefID   string
	Position     gridmap.Point
	Splash       bool
	Hits         int
}

type BaseHealthCriticalData struct {
	BaseHealth int
}

type GameOverData struct {
	Won       bool
	WaveIndex int
}

package system

import (
	"math"

	"spoon-defense/internal/component"
	"spoon-defense/internal/config"
	"spoon-defense/internal/defs"
	"spoon-defense/internal/entity"
	"spoon-defense/internal/event"
	"spoon-defense/internal/logging"
	"spoon-defense/internal/types"
	"spoon-defense/pkg/gridmap"
)

// SpawnEnemy creates a live enemy of def at pos, heading for waypoint
// waypointIndex. Bosses get their ability timers staggered from now.
func SpawnEnemy(ecs *entity.ECS, d *event.Dispatcher, def *defs.EnemyDefinition, at gridmap.Point, waypointIndex int, reinforcement bool) types.EntityID {
	id := ecs.NewEntity()
	now := ecs.GameTime

	ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	ecs.Velocities[id] = &component.Velocity{Speed: def.Speed / config.EnemySpeedUnitsPerCell}
	ecs.Paths[id] = &component.PathFollower{WaypointIndex: waypointIndex}
	ecs.Healths[id] = &component.Health{Value: def.MaxHealth, Max: def.MaxHealth}
	ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(def.BodyRadius / config.UnitsPerCell),
	}
	ecs.Enemies[id] = &component.Enemy{DefID: def.ID, Def: def}

	emit(d, ecs, event.EnemySpawned, event.EnemySpawnedData{
		ID:            id,
		DefID:         def.ID,
		Position:      at,
		WaypointIndex: waypointIndex,
		Reinforcement: reinforcement,
	})

	if def.IsBoss() {
		ecs.Bosses[id] = &component.Boss{
			Config:         def.Boss,
			NextVortexAt:   now + config.BossVortexFirstCast,
			NextSlamAt:     now + config.BossSlamFirstCast,
			NextSplinterAt: now + config.BossSplinterFirstCast,
		}
		logging.Infof("Boss %s spawned at t=%.2f", def.Name, now)
		emit(d, ecs, event.BossSpawned, event.BossSpawnedData{ID: id, Name: def.Name})
	}
	return id
}

// CreateTower adds a tower entity on tile. Occupancy and payment are the
// caller's business.
func CreateTower(ecs *entity.ECS, def *defs.TowerDefinition, tile gridmap.Tile) types.EntityID {
	id := ecs.NewEntity()
	center := tile.Center()

	ecs.Positions[id] = &component.Position{X: center.X, Y: center.Y}
	ecs.Towers[id] = &component.Tower{DefID: def.ID, Def: def, Tile: tile}
	ecs.Combats[id] = &component.Combat{
		FireRate: def.FireRate,
		Cooldown: config.TowerInitialDelay,
		Range:    AcquisitionRange(def.Range),
	}
	ecs.Turrets[id] = &component.Turret{
		Angle:       -math.Pi / 2,
		TargetAngle: -math.Pi / 2,
		TurnSpeed:   config.TurretTurnSpeed,
	}
	ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(0.32 * def.Visuals.Scale),
	}
	return id
}

package system

import (
	"spoon-defense/internal/entity"
	"spoon-defense/internal/event"
	"spoon-defense/internal/logging"
	"spoon-defense/internal/types"
	"spoon-defense/pkg/gridmap"
)

// MovementSystem walks enemies along the waypoint path and resolves leaks.
type MovementSystem struct {
	ecs             *entity.ECS
	board           *gridmap.GridMap
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, board *gridmap.GridMap, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, board: board, eventDispatcher: eventDispatcher}
}

// Update moves every enemy by speed×slow×dt. Reaching a waypoint snaps the
// enemy onto it and carries the leftover distance toward the next one.
// Every leak is resolved as it happens, so a loss is detected at the exact
// leak that caused it.
func (s *MovementSystem) Update(deltaTime float64) {
	waypoints := s.board.Waypoints()
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		pos, hasPos := s.ecs.Positions[id]
		path, hasPath := s.ecs.Paths[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasPath || !hasVel {
			continue
		}

		speed := vel.Speed
		if slow, isSlowed := s.ecs.SlowEffects[id]; isSlowed {
			speed *= slow.SlowFactor
		}
		step := speed * deltaTime

		for step > 0 && path.WaypointIndex < len(waypoints) {
			target := waypoints[path.WaypointIndex]
			dist := pos.Point().Distance(target)
			if dist <= step {
				pos.Set(target)
				path.WaypointIndex++
				step -= dist
				continue
			}
			next, _ := pos.Point().MoveToward(target, step)
			pos.Set(next)
			step = 0
		}

		if path.WaypointIndex >= len(waypoints) {
			s.leak(id)
			if s.ecs.Run.Ended() {
				return
			}
		}
	}
}

func (s *MovementSystem) leak(id types.EntityID) {
	enemy := s.ecs.Enemies[id]
	damage := enemy.Def.BaseDamage
	s.ecs.Run.Damage(damage)
	s.ecs.RemoveEnemy(id)

	logging.Debugf("Enemy %d (%s) leaked for %d, base health %d", id, enemy.DefID, damage, s.ecs.Run.BaseHealth)
	emit(s.eventDispatcher, s.ecs, event.EnemyLeaked, event.EnemyLeakedData{
		ID:         id,
		DefID:      enemy.DefID,
		Damage:     damage,
		BaseHealth: s.ecs.Run.BaseHealth,
	})
}

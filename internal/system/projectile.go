package system

import (
	"spoon-defense/internal/component"
	"spoon-defense/internal/config"
	"spoon-defense/internal/entity"
	"spoon-defense/internal/event"
	"spoon-defense/internal/types"
	"spoon-defense/pkg/gridmap"
)

// ProjectileSystem moves homing projectiles and resolves impacts.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update homes every projectile on its target's current position. A
// projectile whose target is gone disappears without effect; it never picks
// a new target.
func (s *ProjectileSystem) Update(deltaTime float64) {
	slack := config.ProjectileHitSlack / config.UnitsPerCell
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveProjectile(id)
			continue
		}

		if !s.ecs.IsEnemyAlive(proj.TargetID) {
			s.ecs.RemoveProjectile(id)
			continue
		}
		targetPos, ok := s.ecs.Positions[proj.TargetID]
		if !ok {
			s.ecs.RemoveProjectile(id)
			continue
		}

		target := targetPos.Point()
		step := proj.Speed * deltaTime
		if pos.Point().Distance(target) <= step+slack {
			pos.Set(target)
			s.impact(id, proj, target)
			continue
		}
		next, _ := pos.Point().MoveToward(target, step)
		pos.Set(next)
	}
}

func (s *ProjectileSystem) impact(id types.EntityID, proj *component.Projectile, at gridmap.Point) {
	s.ecs.RemoveProjectile(id)

	victims := []types.EntityID{proj.TargetID}
	if proj.SplashRadius > 0 {
		victims = s.enemiesWithin(at, proj.SplashRadius)
	}

	emit(s.eventDispatcher, s.ecs, event.ProjectileImpact, event.ProjectileImpactData{
		ProjectileID: id,
		TargetID:     proj.TargetID,
		TowerDefID:   proj.TowerDefID,
		Position:     at,
		Splash:       proj.SplashRadius > 0,
		Hits:         len(victims),
	})

	for _, enemyID := range victims {
		ApplyHit(s.ecs, s.eventDispatcher, enemyID, proj.Damage, proj.SlowPct, proj.SlowDuration)
	}
}

func (s *ProjectileSystem) enemiesWithin(at gridmap.Point, radius float64) []types.EntityID {
	var out []types.EntityID
	r2 := radius * radius
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		pos, ok := s.ecs.Positions[id]
		if ok && pos.Point().DistanceSq(at) <= r2 {
			out = append(out, id)
		}
	}
	return out
}

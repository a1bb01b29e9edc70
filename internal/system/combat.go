package system

import (
	"math"

	"spoon-defense/internal/component"
	"spoon-defense/internal/config"
	"spoon-defense/internal/entity"
	"spoon-defense/internal/types"
	"spoon-defense/internal/utils"
	"spoon-defense/pkg/gridmap"
)

// CombatSystem runs tower cooldowns, target acquisition and firing.
type CombatSystem struct {
	ecs    *entity.ECS
	board  *gridmap.GridMap
	vortex *VortexSystem
}

func NewCombatSystem(ecs *entity.ECS, board *gridmap.GridMap, vortex *VortexSystem) *CombatSystem {
	return &CombatSystem{ecs: ecs, board: board, vortex: vortex}
}

// AcquisitionRange converts an authored tower range into cells, tolerance
// included.
func AcquisitionRange(towerRange float64) float64 {
	return (towerRange + config.RangeTolerance) / config.UnitsPerCell
}

func (s *CombatSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		tower := s.ecs.Towers[id]
		combat, hasCombat := s.ecs.Combats[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasCombat || !hasPos {
			continue
		}
		// Slammed towers make no cooldown progress at all.
		if tower.Disabled(now) {
			continue
		}

		combat.Cooldown -= deltaTime * s.vortex.SuppressionAt(pos.Point())
		if combat.Cooldown > 0 {
			continue
		}

		targetID := s.FindTarget(pos.Point(), combat.Range)
		if targetID == 0 {
			continue
		}
		s.fire(id, tower, pos.Point(), targetID)
		combat.Cooldown = tower.Def.Cooldown()
	}
	s.turnTurrets(deltaTime)
}

// turnTurrets eases every turret head toward its last target angle.
func (s *CombatSystem) turnTurrets(deltaTime float64) {
	for _, turret := range s.ecs.Turrets {
		t := math.Min(1, turret.TurnSpeed*deltaTime)
		turret.Angle = utils.LerpAngle(turret.Angle, turret.TargetAngle, t)
	}
}

// FindTarget picks the live enemy within radius cells of from that is
// closest to the exit along the path. Ties go to the lower entity id.
func (s *CombatSystem) FindTarget(from gridmap.Point, radius float64) types.EntityID {
	var best types.EntityID
	bestRemaining := math.Inf(1)
	r2 := radius * radius
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		pos, hasPos := s.ecs.Positions[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasPath {
			continue
		}
		if health, ok := s.ecs.Healths[id]; !ok || health.Value <= 0 {
			continue
		}
		p := pos.Point()
		if p.DistanceSq(from) > r2 {
			continue
		}
		remaining := s.board.RemainingDistance(p, path.WaypointIndex)
		if remaining < bestRemaining {
			best, bestRemaining = id, remaining
		}
	}
	return best
}

func (s *CombatSystem) fire(towerID types.EntityID, tower *component.Tower, from gridmap.Point, targetID types.EntityID) {
	def := tower.Def
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: from.X, Y: from.Y}
	s.ecs.Projectiles[id] = &component.Projectile{
		TargetID:     targetID,
		SourceID:     towerID,
		TowerDefID:   tower.DefID,
		Speed:        def.ProjectileSpeed / config.UnitsPerCell,
		Damage:       def.Damage,
		SplashRadius: def.SplashRadius * config.SplashInflation / config.UnitsPerCell,
		SlowPct:      def.SlowPct,
		SlowDuration: def.SlowDuration(),
	}

	if turret, ok := s.ecs.Turrets[towerID]; ok {
		if targetPos, ok := s.ecs.Positions[targetID]; ok {
			d := targetPos.Point().Sub(from)
			turret.TargetAngle = math.Atan2(d.Y, d.X)
		}
		turret.TargetID = targetID
	}
}

package system

import (
	"math"

	"spoon-defense/internal/component"
	"spoon-defense/internal/config"
	"spoon-defense/internal/defs"
	"spoon-defense/internal/entity"
	"spoon-defense/internal/event"
	"spoon-defense/internal/interfaces"
	"spoon-defense/internal/logging"
	"spoon-defense/internal/types"
	"spoon-defense/internal/utils"
	"spoon-defense/pkg/gridmap"
	pkgutils "spoon-defense/pkg/utils"
)

// BossSystem runs the three independently timed boss abilities. A boss that
// is no longer alive stops casting; its pending slams are dropped by the
// scheduler.
type BossSystem struct {
	ecs             *entity.ECS
	game            interfaces.GameContext
	scheduler       *Scheduler
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewBossSystem(ecs *entity.ECS, game interfaces.GameContext, scheduler *Scheduler, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *BossSystem {
	return &BossSystem{
		ecs:             ecs,
		game:            game,
		scheduler:       scheduler,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *BossSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	for _, id := range entity.SortedIDs(s.ecs.Bosses) {
		boss := s.ecs.Bosses[id]
		if !s.ecs.IsEnemyAlive(id) {
			delete(s.ecs.Bosses, id)
			continue
		}
		cfg := boss.Config

		if now >= boss.NextVortexAt {
			boss.NextVortexAt = now + cfg.VortexCooldown()
			s.castVortex(id, cfg)
		}
		if now >= boss.NextSlamAt {
			boss.NextSlamAt = now + cfg.SlamCooldown()
			s.castSlam(id, cfg)
		}
		if now >= boss.NextSplinterAt {
			boss.NextSplinterAt = now + cfg.SplinterCooldown()
			s.castSplinter(id, cfg)
		}
	}
}

func (s *BossSystem) bossPosition(id types.EntityID) gridmap.Point {
	if pos, ok := s.ecs.Positions[id]; ok {
		return pos.Point()
	}
	return gridmap.Point{}
}

func (s *BossSystem) castVortex(bossID types.EntityID, cfg *defs.BossAbilityConfig) {
	now := s.ecs.GameTime
	at := s.bossPosition(bossID)
	radius := cfg.VortexRange / config.UnitsPerCell

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	s.ecs.Vortexes[id] = &component.Vortex{
		Radius:      radius,
		CreatedAt:   now,
		ExpiresAt:   now + cfg.VortexDuration(),
		NextPulseAt: now + config.VortexFirstPulseDelay,
	}

	logging.Debugf("Boss %d cast vortex at (%.2f, %.2f)", bossID, at.X, at.Y)
	emit(s.eventDispatcher, s.ecs, event.BossAbilityCast, event.BossAbilityCastData{
		BossID:   bossID,
		Ability:  event.AbilityVortex,
		Position: at,
		VortexID: id,
		Radius:   radius,
	})
}

// castSlam targets the nearest tower in range. With no tower in range the
// cast is skipped; the cooldown has already been reset by the caller.
func (s *BossSystem) castSlam(bossID types.EntityID, cfg *defs.BossAbilityConfig) {
	at := s.bossPosition(bossID)
	towerID, found := s.nearestTower(at, cfg.SlamRange/config.UnitsPerCell)
	if !found {
		logging.Debugf("Boss %d slam skipped: no tower in range", bossID)
		emit(s.eventDispatcher, s.ecs, event.BossAbilityCast, event.BossAbilityCastData{
			BossID:   bossID,
			Ability:  event.AbilitySlam,
			Position: at,
			Skipped:  true,
		})
		return
	}

	// A telegraphed slam lands even if the boss dies or leaks meanwhile.
	landsAt := s.ecs.GameTime + config.SlamTelegraph
	s.scheduler.Schedule(landsAt, 0, func(now float64) {
		s.landSlam(bossID, towerID, now)
	})

	logging.Debugf("Boss %d slam on tower %d lands at t=%.2f", bossID, towerID, landsAt)
	emit(s.eventDispatcher, s.ecs, event.BossAbilityCast, event.BossAbilityCastData{
		BossID:        bossID,
		Ability:       event.AbilitySlam,
		Position:      at,
		TargetTowerID: towerID,
		LandsAt:       landsAt,
	})
}

func (s *BossSystem) landSlam(bossID, towerID types.EntityID, now float64) {
	tower, hasTower := s.ecs.Towers[towerID]
	combat, hasCombat := s.ecs.Combats[towerID]
	if !hasTower || !hasCombat {
		return
	}
	tower.DisabledUntil = now + config.SlamDisableDuration
	combat.Cooldown = math.Max(combat.Cooldown, config.SlamCooldownFloor)

	emit(s.eventDispatcher, s.ecs, event.TowerDisabled, event.TowerDisabledData{
		TowerID: towerID,
		BossID:  bossID,
		Until:   tower.DisabledUntil,
	})
}

func (s *BossSystem) nearestTower(at gridmap.Point, radius float64) (types.EntityID, bool) {
	var best types.EntityID
	bestDist := radius * radius
	found := false
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		d := pos.Point().DistanceSq(at)
		if d <= bestDist && (!found || d < bestDist) {
			best, bestDist, found = id, d, true
		}
	}
	return best, found
}

// castSplinter throws inert shards in evenly spaced directions and drops
// reinforcements near the boss. Reinforcements join the path at the boss's
// next waypoint, not at the entry.
func (s *BossSystem) castSplinter(bossID types.EntityID, cfg *defs.BossAbilityConfig) {
	at := s.bossPosition(bossID)

	angles := make([]float64, 0, cfg.SplinterCount)
	for i := 0; i < cfg.SplinterCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(cfg.SplinterCount)
		angles = append(angles, angle)

		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
		s.ecs.Shards[id] = &component.Shard{
			Angle:    angle,
			Speed:    shardSpeed(),
			Timer:    config.ShardDuration,
			Duration: config.ShardDuration,
		}
	}

	waypointIndex := 0
	if path, ok := s.ecs.Paths[bossID]; ok {
		waypointIndex = path.WaypointIndex
	}

	count := pkgutils.Clamp(cfg.SplinterCount/2, config.SplinterMinReinforcements, config.SplinterMaxReinforcements)
	spawned := make([]types.EntityID, 0, count)
	for i := 0; i < count; i++ {
		offset := gridmap.Point{
			X: s.rng.FloatBetween(-config.SplinterJitter, config.SplinterJitter),
			Y: s.rng.FloatBetween(-config.SplinterJitter, config.SplinterJitter),
		}
		if id, ok := s.game.SpawnEnemy(cfg.ReinforcementID, at.Add(offset), waypointIndex, true); ok {
			spawned = append(spawned, id)
		} else {
			logging.Warnf("Boss %d splinter: reinforcement %q not found", bossID, cfg.ReinforcementID)
		}
	}

	logging.Debugf("Boss %d splinter: %d shards, %d reinforcements", bossID, len(angles), len(spawned))
	emit(s.eventDispatcher, s.ecs, event.BossAbilityCast, event.BossAbilityCastData{
		BossID:         bossID,
		Ability:        event.AbilitySplinter,
		Position:       at,
		ShardAngles:    angles,
		Reinforcements: spawned,
	})
}

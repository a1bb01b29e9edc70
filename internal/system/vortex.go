package system

import (
	"spoon-defense/internal/config"
	"spoon-defense/internal/entity"
	"spoon-defense/internal/event"
	"spoon-defense/internal/types"
	"spoon-defense/internal/utils"
	"spoon-defense/pkg/gridmap"
)

// VortexSystem runs boss suppression fields: it answers the cooldown
// multiplier for a tower position and applies the periodic pulse penalty.
type VortexSystem struct {
	ecs             *entity.ECS
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewVortexSystem(ecs *entity.ECS, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *VortexSystem {
	return &VortexSystem{ecs: ecs, rng: rng, eventDispatcher: eventDispatcher}
}

// SuppressionAt returns the cooldown rate multiplier at p. Fields do not
// stack: being inside any field gives the suppressed rate.
func (s *VortexSystem) SuppressionAt(p gridmap.Point) float64 {
	for id, v := range s.ecs.Vortexes {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if pos.Point().DistanceSq(p) <= v.Radius*v.Radius {
			return config.SuppressionFactor
		}
	}
	return 1
}

// Update fires every pulse due before the field's expiry, then removes
// expired fields. Pulses run on their own interval, independent of the
// frame rate.
func (s *VortexSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	for _, id := range entity.SortedIDs(s.ecs.Vortexes) {
		v := s.ecs.Vortexes[id]
		for v.NextPulseAt <= now && v.NextPulseAt < v.ExpiresAt {
			s.pulse(id)
			v.NextPulseAt += config.VortexPulseInterval
		}
		if now >= v.ExpiresAt {
			s.ecs.RemoveVortex(id)
		}
	}
}

func (s *VortexSystem) pulse(vortexID types.EntityID) {
	v := s.ecs.Vortexes[vortexID]
	center, ok := s.ecs.Positions[vortexID]
	if !ok {
		return
	}
	r2 := v.Radius * v.Radius
	for _, towerID := range entity.SortedIDs(s.ecs.Towers) {
		pos, hasPos := s.ecs.Positions[towerID]
		combat, hasCombat := s.ecs.Combats[towerID]
		if !hasPos || !hasCombat || pos.Point().DistanceSq(center.Point()) > r2 {
			continue
		}
		combat.Cooldown += config.VortexPulsePenalty
		if s.rng.Chance(config.VortexDisruptChance) {
			emit(s.eventDispatcher, s.ecs, event.VortexDisruption, event.VortexDisruptionData{
				VortexID: vortexID,
				TowerID:  towerID,
				Tile:     s.ecs.Towers[towerID].Tile,
			})
		}
	}
}

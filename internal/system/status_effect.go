package system

import "spoon-defense/internal/entity"

// StatusEffectSystem expires slows and decays hit flashes.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update removes slows whose expiry has passed; an enemy without a slow
// moves at full speed.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	for id, effect := range s.ecs.SlowEffects {
		if effect.Until <= now {
			delete(s.ecs.SlowEffects, id)
		}
	}
}

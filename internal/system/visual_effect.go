package system

import (
	"math"

	"spoon-defense/internal/config"
	"spoon-defense/internal/entity"
)

// VisualEffectSystem advances effects that have no gameplay weight: hit
// flashes and splinter shards.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, shard := range s.ecs.Shards {
		shard.Timer -= deltaTime
		if shard.Timer <= 0 {
			s.ecs.RemoveShard(id)
			continue
		}
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.X += math.Cos(shard.Angle) * shard.Speed * deltaTime
			pos.Y += math.Sin(shard.Angle) * shard.Speed * deltaTime
		}
	}
}

func shardSpeed() float64 {
	return config.ShardReach / config.ShardDuration
}

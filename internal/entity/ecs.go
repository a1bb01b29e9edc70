package entity

import (
	"slices"

	"spoon-defense/internal/component"
	"spoon-defense/internal/types"
)

// ECS holds every live entity of one run. GameTime is the simulation clock
// in seconds; it only advances through the scaled tick delta.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.PathFollower
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Bosses        map[types.EntityID]*component.Boss
	SlowEffects   map[types.EntityID]*component.SlowEffect
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Towers        map[types.EntityID]*component.Tower
	Combats       map[types.EntityID]*component.Combat
	Turrets       map[types.EntityID]*component.Turret
	Projectiles   map[types.EntityID]*component.Projectile
	Vortexes      map[types.EntityID]*component.Vortex
	Shards        map[types.EntityID]*component.Shard

	Wave *component.Wave
	Run  *component.RunState
}

func NewECS(run *component.RunState) *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.PathFollower),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Bosses:        make(map[types.EntityID]*component.Boss),
		SlowEffects:   make(map[types.EntityID]*component.SlowEffect),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Towers:        make(map[types.EntityID]*component.Tower),
		Combats:       make(map[types.EntityID]*component.Combat),
		Turrets:       make(map[types.EntityID]*component.Turret),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Vortexes:      make(map[types.EntityID]*component.Vortex),
		Shards:        make(map[types.EntityID]*component.Shard),
		Run:           run,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// IsEnemyAlive is the liveness check behind every weak reference.
func (ecs *ECS) IsEnemyAlive(id types.EntityID) bool {
	_, ok := ecs.Enemies[id]
	return ok
}

// RemoveEnemy drops every component an enemy can carry.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Bosses, id)
	delete(ecs.SlowEffects, id)
	delete(ecs.DamageFlashes, id)
}

func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Projectiles, id)
}

func (ecs *ECS) RemoveVortex(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Vortexes, id)
}

func (ecs *ECS) RemoveShard(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Shards, id)
}

// SortedIDs returns the keys of m in ascending order. Map iteration order is
// random in Go; every system walks entities through this to stay
// deterministic for a given seed.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

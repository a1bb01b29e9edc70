package system

import (
	"spoon-defense/internal/component"
	"spoon-defense/internal/config"
	"spoon-defense/internal/entity"
	"spoon-defense/internal/event"
	"spoon-defense/internal/logging"
	"spoon-defense/internal/types"
)

func emit(d *event.Dispatcher, ecs *entity.ECS, t event.EventType, data interface{}) {
	d.Dispatch(event.Event{Type: t, Time: ecs.GameTime, Data: data})
}

// ApplyHit applies one projectile's damage and slow to an enemy. Bosses take
// a reduced share of damage. It reports whether the hit killed the enemy; an
// enemy that is already gone is a no-op, so a kill is credited exactly once.
func ApplyHit(ecs *entity.ECS, d *event.Dispatcher, enemyID types.EntityID, damage, slowPct, slowDuration float64) bool {
	health, hasHealth := ecs.Healths[enemyID]
	enemy, isEnemy := ecs.Enemies[enemyID]
	if !hasHealth || !isEnemy {
		return false
	}

	if enemy.Def.IsBoss() {
		damage *= config.BossDamageFactor
	}
	health.Value -= damage

	if slowPct > 0 {
		applySlow(ecs, enemyID, slowPct, slowDuration)
	}

	ecs.DamageFlashes[enemyID] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
	}

	if health.Value > 0 {
		return false
	}
	killEnemy(ecs, d, enemyID, enemy)
	return true
}

// applySlow keeps the strongest factor, floored, and the longest expiry.
func applySlow(ecs *entity.ECS, enemyID types.EntityID, slowPct, duration float64) {
	factor := 1 - slowPct
	if factor < config.SlowFloor {
		factor = config.SlowFloor
	}
	until := ecs.GameTime + duration

	slow, ok := ecs.SlowEffects[enemyID]
	if !ok {
		ecs.SlowEffects[enemyID] = &component.SlowEffect{SlowFactor: factor, Until: until}
		return
	}
	if factor < slow.SlowFactor {
		slow.SlowFactor = factor
	}
	if until > slow.Until {
		slow.Until = until
	}
}

func killEnemy(ecs *entity.ECS, d *event.Dispatcher, id types.EntityID, enemy *component.Enemy) {
	var pos component.Position
	if p, ok := ecs.Positions[id]; ok {
		pos = *p
	}
	ecs.Run.Credit(enemy.Def.Reward)
	ecs.RemoveEnemy(id)

	emit(d, ecs, event.EnemyKilled, event.EnemyKilledData{
		ID:       id,
		DefID:    enemy.DefID,
		Reward:   enemy.Def.Reward,
		Position: pos.Point(),
	})
	if enemy.Def.IsBoss() {
		logging.Infof("Boss %s defeated at t=%.2f", enemy.Def.Name, ecs.GameTime)
		emit(d, ecs, event.BossDefeated, event.BossDefeatedData{
			ID:     id,
			Name:   enemy.Def.Name,
			Reward: enemy.Def.Reward,
		})
	}
}

package system

import (
	"testing"

	"spoon-defense/internal/component"
	"spoon-defense/internal/config"
	"spoon-defense/internal/event"
	"spoon-defense/internal/types"
	"spoon-defense/pkg/gridmap"
)

func (w *testWorld) projectileAt(at gridmap.Point, target types.EntityID, damage, splashUnits float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	w.ecs.Projectiles[id] = &component.Projectile{
		TargetID:     target,
		Speed:        5,
		Damage:       damage,
		SplashRadius: splashUnits * config.SplashInflation / config.UnitsPerCell,
	}
	return id
}

func TestSplashHitsClusterButNotOutlier(t *testing.T) {
	w := newTestWorld(t)
	center := gridmap.Point{X: 5, Y: 5}
	units := func(u float64) float64 { return u / config.UnitsPerCell }

	a := w.spawn("brute", center, 3)
	b := w.spawn("brute", gridmap.Point{X: center.X + units(45), Y: center.Y}, 3)
	c := w.spawn("brute", gridmap.Point{X: center.X, Y: center.Y + units(30)}, 3)
	outlier := w.spawn("brute", gridmap.Point{X: center.X + units(51), Y: center.Y}, 3)

	w.projectileAt(center, a, 54, 40)
	w.proj.Update(1.0 / 60)

	for _, id := range []types.EntityID{a, b, c} {
		if got := w.ecs.Healths[id].Value; got != 295-54 {
			t.Fatalf("enemy %d health: got %v want %v", id, got, 295-54)
		}
	}
	if got := w.ecs.Healths[outlier].Value; got != 295 {
		t.Fatalf("enemy 51 units away was hit: health %v", got)
	}
	impact, _ := w.last(event.ProjectileImpact)
	if data := impact.Data.(event.ProjectileImpactData); !data.Splash || data.Hits != 3 {
		t.Fatalf("impact payload %+v", data)
	}
}

func TestProjectileWithDeadTargetVanishes(t *testing.T) {
	w := newTestWorld(t)
	target := w.spawn("scout", gridmap.Point{X: 5, Y: 5}, 3)
	bystander := w.spawn("scout", gridmap.Point{X: 3, Y: 5}, 3)
	proj := w.projectileAt(gridmap.Point{X: 3, Y: 5}, target, 100, 0)

	w.ecs.RemoveEnemy(target)
	w.proj.Update(0.1)

	if _, ok := w.ecs.Projectiles[proj]; ok {
		t.Fatal("projectile should be destroyed once its target is gone")
	}
	if w.count(event.ProjectileImpact) != 0 {
		t.Fatal("no impact expected")
	}
	if w.ecs.Healths[bystander].Value != 58 {
		t.Fatal("projectile must not retarget")
	}
}

func TestProjectileHomesOnMovingTarget(t *testing.T) {
	w := newTestWorld(t)
	target := w.spawn("scout", gridmap.Point{X: 5, Y: 5}, 3)
	proj := w.projectileAt(gridmap.Point{X: 1, Y: 5}, target, 1, 0)

	w.proj.Update(0.2)
	if x := w.ecs.Positions[proj].X; !approx(x, 2, 1e-9) {
		t.Fatalf("projectile x: got %v want 2", x)
	}
	w.ecs.Positions[target].Y = 6
	w.proj.Update(0.2)
	if y := w.ecs.Positions[proj].Y; y <= 5 {
		t.Fatalf("projectile did not turn toward the moved target, y=%v", y)
	}
}

func TestSimultaneousLethalHitsCreditOnce(t *testing.T) {
	w := newTestWorld(t)
	target := w.spawn("scout", gridmap.Point{X: 5, Y: 5}, 3)
	w.projectileAt(gridmap.Point{X: 5, Y: 5}, target, 100, 0)
	w.projectileAt(gridmap.Point{X: 5, Y: 5}, target, 100, 0)
	gold := w.ecs.Run.Gold

	w.proj.Update(1.0 / 60)

	if w.ecs.Run.Gold != gold+8 {
		t.Fatalf("gold: got %d want %d", w.ecs.Run.Gold, gold+8)
	}
	if w.count(event.EnemyKilled) != 1 || len(w.ecs.Projectiles) != 0 {
		t.Fatal("expected one kill and no projectiles left")
	}
	if ApplyHit(w.ecs, w.d, target, 100, 0, 0) {
		t.Fatal("hitting a dead enemy must be a no-op")
	}
}

func TestSlowStackingRules(t *testing.T) {
	w := newTestWorld(t)
	id := w.spawn("brute", gridmap.Point{X: 5, Y: 5}, 3)
	w.ecs.GameTime = 10

	ApplyHit(w.ecs, w.d, id, 0, 0.9, 2)
	slow := w.ecs.SlowEffects[id]
	if slow.SlowFactor != config.SlowFloor || slow.Until != 12 {
		t.Fatalf("after strong slow: %+v", slow)
	}

	ApplyHit(w.ecs, w.d, id, 0, 0.3, 5)
	if slow.SlowFactor != config.SlowFloor || slow.Until != 15 {
		t.Fatalf("weaker but longer slow: %+v", slow)
	}

	ApplyHit(w.ecs, w.d, id, 0, 0.95, 1)
	if slow.SlowFactor < config.SlowFloor || slow.Until != 15 {
		t.Fatalf("slow went below floor or shortened: %+v", slow)
	}
}

func TestBossTakesReducedDamage(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawn("spoonBoss", gridmap.Point{X: 5, Y: 5}, 3)
	ApplyHit(w.ecs, w.d, boss, 100, 0, 0)
	if got := w.ecs.Healths[boss].Value; !approx(got, 4200-80, 1e-9) {
		t.Fatalf("boss health: got %v want 4120", got)
	}
}

func TestBossKillRaisesDefeat(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawn("spoonBoss", gridmap.Point{X: 5, Y: 5}, 3)
	w.ecs.Healths[boss].Value = 1
	ApplyHit(w.ecs, w.d, boss, 10, 0, 0)

	if w.count(event.BossDefeated) != 1 || w.count(event.EnemyKilled) != 1 {
		t.Fatal("expected kill and boss defeat events")
	}
	if _, ok := w.ecs.Bosses[boss]; ok {
		t.Fatal("boss runtime should be removed with the enemy")
	}
}

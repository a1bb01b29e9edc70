package system

import (
	"math"
	"testing"

	"spoon-defense/internal/event"
	"spoon-defense/pkg/gridmap"
)

func TestDartKillsPassingScoutWithSingleCredit(t *testing.T) {
	w := newTestWorld(t, singleScoutWave())
	w.tower("dart", 1, 3)
	w.wave.StartWave(0)
	startGold := w.ecs.Run.Gold

	const dt = 1.0 / 60
	var fireTimes []float64
	for i := 0; i < 600 && w.count(event.EnemyKilled) == 0; i++ {
		before := len(w.ecs.Projectiles)
		w.tick(dt)
		if len(w.ecs.Projectiles) > before {
			fireTimes = append(fireTimes, w.ecs.GameTime)
		}
	}

	if w.count(event.EnemyKilled) != 1 {
		t.Fatal("scout should be killed exactly once")
	}
	// 58 health, 19 damage per shot.
	if got := w.count(event.ProjectileImpact); got != 4 {
		t.Fatalf("impacts: got %d want 4", got)
	}
	if w.ecs.Run.Gold != startGold+8 {
		t.Fatalf("gold: got %d want %d", w.ecs.Run.Gold, startGold+8)
	}
	for i := 1; i < len(fireTimes); i++ {
		if gap := fireTimes[i] - fireTimes[i-1]; gap < 1/1.55-dt {
			t.Fatalf("shots %d and %d only %.3fs apart", i-1, i, gap)
		}
	}
}

func TestTargetsEnemyClosestToExit(t *testing.T) {
	w := newTestWorld(t)
	w.tower("dart", 1, 3)
	behind := w.spawn("scout", gridmap.Point{X: 0.5, Y: 4.5}, 1)
	ahead := w.spawn("scout", gridmap.Point{X: 2.5, Y: 4.5}, 3)

	from := gridmap.Point{X: 1.5, Y: 3.5}
	if got := w.combat.FindTarget(from, AcquisitionRange(155)); got != ahead {
		t.Fatalf("target: got %d want %d (behind=%d)", got, ahead, behind)
	}
}

func TestTargetTieGoesToLowerID(t *testing.T) {
	w := newTestWorld(t)
	first := w.spawn("scout", gridmap.Point{X: 1.5, Y: 4.5}, 2)
	w.spawn("scout", gridmap.Point{X: 1.5, Y: 4.5}, 2)

	if got := w.combat.FindTarget(gridmap.Point{X: 1.5, Y: 3.5}, AcquisitionRange(155)); got != first {
		t.Fatalf("tie broken toward %d, want %d", got, first)
	}
}

func TestOutOfRangeEnemyIsIgnored(t *testing.T) {
	w := newTestWorld(t)
	w.spawn("scout", gridmap.Point{X: 12.5, Y: 6.5}, 20)
	if got := w.combat.FindTarget(gridmap.Point{X: 1.5, Y: 3.5}, AcquisitionRange(155)); got != 0 {
		t.Fatalf("expected no target, got %d", got)
	}
}

func TestDisabledTowerMakesNoCooldownProgress(t *testing.T) {
	w := newTestWorld(t)
	id := w.tower("dart", 1, 3)
	w.ecs.Towers[id].DisabledUntil = 5
	w.ecs.Combats[id].Cooldown = 1
	w.ecs.GameTime = 1

	w.combat.Update(0.5)
	if got := w.ecs.Combats[id].Cooldown; got != 1 {
		t.Fatalf("disabled tower cooldown moved to %v", got)
	}

	w.ecs.GameTime = 5
	w.combat.Update(0.5)
	if got := w.ecs.Combats[id].Cooldown; !approx(got, 0.5, 1e-12) {
		t.Fatalf("re-enabled tower cooldown: got %v want 0.5", got)
	}
}

func TestNewTowerWaitsInitialDelay(t *testing.T) {
	w := newTestWorld(t)
	w.tower("dart", 1, 3)
	w.spawn("scout", gridmap.Point{X: 1.5, Y: 4.5}, 2)

	w.combat.Update(0.1)
	if len(w.ecs.Projectiles) != 0 {
		t.Fatal("tower fired before its initial delay")
	}
	w.combat.Update(0.05)
	if len(w.ecs.Projectiles) != 1 {
		t.Fatal("tower should fire once the initial delay has passed")
	}
}

func TestTurretFacesTarget(t *testing.T) {
	w := newTestWorld(t)
	id := w.tower("dart", 1, 3)
	target := w.spawn("scout", gridmap.Point{X: 2.5, Y: 3.5}, 2)
	w.combat.Update(1)

	turret := w.ecs.Turrets[id]
	if turret.TargetID != target || !approx(turret.Angle, 0, 1e-9) {
		t.Fatalf("turret: %+v", turret)
	}
}

func TestTurretEasesTowardTarget(t *testing.T) {
	w := newTestWorld(t)
	id := w.tower("dart", 1, 3)
	w.spawn("scout", gridmap.Point{X: 2.5, Y: 3.5}, 2)
	w.ecs.Combats[id].Cooldown = 0

	// 10/s for 0.05 s covers half the remaining arc per tick.
	w.combat.Update(0.05)
	turret := w.ecs.Turrets[id]
	if len(w.ecs.Projectiles) != 1 || turret.TargetAngle != 0 {
		t.Fatalf("tower should have fired east: %+v", turret)
	}
	if !approx(turret.Angle, -math.Pi/4, 1e-9) {
		t.Fatalf("after one tick angle = %v want %v", turret.Angle, -math.Pi/4)
	}
	w.combat.Update(0.05)
	if !approx(turret.Angle, -math.Pi/8, 1e-9) {
		t.Fatalf("after two ticks angle = %v want %v", turret.Angle, -math.Pi/8)
	}
}

package system

import (
	"math"
	"testing"

	"spoon-defense/internal/component"
	"spoon-defense/internal/config"
	"spoon-defense/internal/event"
	"spoon-defense/pkg/gridmap"
)

func castsOf(w *testWorld, ability event.Ability) []event.BossAbilityCastData {
	var out []event.BossAbilityCastData
	for _, e := range w.events {
		if data, ok := e.Data.(event.BossAbilityCastData); ok && data.Ability == ability {
			out = append(out, data)
		}
	}
	return out
}

func TestBossAbilitiesAreStaggered(t *testing.T) {
	w := newTestWorld(t)
	w.spawn("spoonBoss", gridmap.Point{X: 5.5, Y: 1.5}, 6)
	if w.count(event.BossSpawned) != 1 {
		t.Fatal("expected BossSpawned")
	}

	steps := []struct {
		at                      float64
		vortex, slam, splinters int
	}{
		{2.5, 0, 0, 0},
		{2.6, 1, 0, 0},
		{4.3, 1, 1, 0},
		{6.2, 1, 1, 1},
		{10.7, 1, 1, 1},
		{10.9, 1, 2, 1},
		{11.7, 2, 2, 1},
	}
	for _, st := range steps {
		w.ecs.GameTime = st.at
		w.boss.Update(0)
		v, s, sp := len(castsOf(w, event.AbilityVortex)), len(castsOf(w, event.AbilitySlam)), len(castsOf(w, event.AbilitySplinter))
		if v != st.vortex || s != st.slam || sp != st.splinters {
			t.Fatalf("t=%v: casts vortex=%d slam=%d splinter=%d, want %d/%d/%d", st.at, v, s, sp, st.vortex, st.slam, st.splinters)
		}
	}
}

func TestSlamWithoutTowerIsSkippedAndNotRetried(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawn("spoonBoss", gridmap.Point{X: 5.5, Y: 1.5}, 6)
	w.ecs.GameTime = 4.3
	w.boss.Update(0)

	slams := castsOf(w, event.AbilitySlam)
	if len(slams) != 1 || !slams[0].Skipped {
		t.Fatalf("expected one skipped slam, got %+v", slams)
	}
	if got := w.ecs.Bosses[boss].NextSlamAt; !approx(got, 4.3+6.5, 1e-9) {
		t.Fatalf("slam timer: got %v want %v", got, 4.3+6.5)
	}
	if w.scheduler.Pending() != 0 {
		t.Fatal("skipped slam must not schedule anything")
	}
}

func TestSlamLandsAfterTelegraph(t *testing.T) {
	w := newTestWorld(t)
	w.spawn("spoonBoss", gridmap.Point{X: 5.5, Y: 2.5}, 6)
	near := w.tower("dart", 5, 3)
	w.tower("dart", 6, 4)
	w.ecs.Combats[near].Cooldown = 0.2

	w.ecs.GameTime = 4.3
	w.boss.Update(0)
	slams := castsOf(w, event.AbilitySlam)
	if len(slams) != 1 || slams[0].Skipped || slams[0].TargetTowerID != near {
		t.Fatalf("slam should target the nearest tower: %+v", slams)
	}

	w.scheduler.Update(4.5)
	if w.count(event.TowerDisabled) != 0 {
		t.Fatal("slam landed before its telegraph")
	}

	w.ecs.GameTime = 5
	w.scheduler.Update(5)
	if w.count(event.TowerDisabled) != 1 {
		t.Fatal("slam should have landed")
	}
	if got := w.ecs.Towers[near].DisabledUntil; !approx(got, 5+config.SlamDisableDuration, 1e-9) {
		t.Fatalf("disabled until %v", got)
	}
	if got := w.ecs.Combats[near].Cooldown; got != config.SlamCooldownFloor {
		t.Fatalf("cooldown should be raised to the floor, got %v", got)
	}
}

func TestSlamLandsAfterBossDies(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawn("spoonBoss", gridmap.Point{X: 5.5, Y: 2.5}, 6)
	tower := w.tower("dart", 5, 3)

	w.ecs.GameTime = 4.3
	w.boss.Update(0)
	ApplyHit(w.ecs, w.d, boss, 1e9, 0, 0)
	if _, alive := w.ecs.Enemies[boss]; alive {
		t.Fatal("boss should be dead")
	}

	w.ecs.GameTime = 5
	w.scheduler.Update(5)
	if w.count(event.TowerDisabled) != 1 {
		t.Fatal("a telegraphed slam should land after the boss dies")
	}
	if got := w.ecs.Towers[tower].DisabledUntil; !approx(got, 5+config.SlamDisableDuration, 1e-9) {
		t.Fatalf("disabled until %v", got)
	}
	if got := w.ecs.Combats[tower].Cooldown; got < config.SlamCooldownFloor {
		t.Fatalf("cooldown should be at least the floor, got %v", got)
	}
}

func TestSlamOnRemovedTowerDoesNothing(t *testing.T) {
	w := newTestWorld(t)
	w.spawn("spoonBoss", gridmap.Point{X: 5.5, Y: 2.5}, 6)
	tower := w.tower("dart", 5, 3)

	w.ecs.GameTime = 4.3
	w.boss.Update(0)
	delete(w.ecs.Towers, tower)
	delete(w.ecs.Combats, tower)
	w.scheduler.Update(10)

	if w.count(event.TowerDisabled) != 0 {
		t.Fatal("a slam on a missing tower must not land")
	}
}

func TestSplinterSpawnsReinforcementsOnBossPath(t *testing.T) {
	w := newTestWorld(t)
	at := gridmap.Point{X: 5.5, Y: 1.5}
	boss := w.spawn("spoonBoss", at, 6)

	w.ecs.GameTime = 6.2
	w.boss.Update(0)

	casts := castsOf(w, event.AbilitySplinter)
	if len(casts) != 1 {
		t.Fatalf("expected one splinter, got %d", len(casts))
	}
	cast := casts[0]
	if len(cast.ShardAngles) != 6 || !approx(cast.ShardAngles[1], math.Pi/3, 1e-12) {
		t.Fatalf("shard angles %v", cast.ShardAngles)
	}
	if len(w.ecs.Shards) != 6 {
		t.Fatalf("expected 6 shard entities, got %d", len(w.ecs.Shards))
	}
	// floor(6/2) = 3, inside [2,4].
	if len(cast.Reinforcements) != 3 {
		t.Fatalf("reinforcements: got %d want 3", len(cast.Reinforcements))
	}
	for _, id := range cast.Reinforcements {
		enemy := w.ecs.Enemies[id]
		if enemy == nil || enemy.DefID != "scout" {
			t.Fatalf("reinforcement %d is not a live scout", id)
		}
		if got := w.ecs.Paths[id].WaypointIndex; got != w.ecs.Paths[boss].WaypointIndex {
			t.Fatalf("reinforcement joins at waypoint %d, boss at %d", got, w.ecs.Paths[boss].WaypointIndex)
		}
		p := w.ecs.Positions[id].Point()
		if math.Abs(p.X-at.X) > config.SplinterJitter || math.Abs(p.Y-at.Y) > config.SplinterJitter {
			t.Fatalf("reinforcement spawned too far from boss: %v", p)
		}
	}
}

func TestSplinterReinforcementCountIsClamped(t *testing.T) {
	cases := []struct{ count, want int }{{0, 2}, {3, 2}, {6, 3}, {9, 4}, {20, 4}}
	for _, tc := range cases {
		w := newTestWorld(t)
		boss := w.spawn("spoonBoss", gridmap.Point{X: 5.5, Y: 1.5}, 6)
		cfg := *w.ecs.Bosses[boss].Config
		cfg.SplinterCount = tc.count
		w.boss.castSplinter(boss, &cfg)

		cast := castsOf(w, event.AbilitySplinter)[0]
		if len(cast.Reinforcements) != tc.want {
			t.Fatalf("count %d: got %d reinforcements want %d", tc.count, len(cast.Reinforcements), tc.want)
		}
	}
}

func TestDeadBossStopsCasting(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawn("spoonBoss", gridmap.Point{X: 5.5, Y: 1.5}, 6)
	delete(w.ecs.Enemies, boss)

	w.ecs.GameTime = 100
	w.boss.Update(0)
	if w.count(event.BossAbilityCast) != 0 {
		t.Fatal("dead boss cast an ability")
	}
	if _, ok := w.ecs.Bosses[boss]; ok {
		t.Fatal("stale boss runtime should be dropped")
	}
}

func TestVortexSuppressesTowerCooldown(t *testing.T) {
	w := newTestWorld(t)
	tower := w.tower("dart", 5, 3)
	towerPos := w.ecs.Positions[tower].Point()

	// Field of 128 units centered 100 units from the tower.
	vortexID := w.ecs.NewEntity()
	center := gridmap.Point{X: towerPos.X + 100/config.UnitsPerCell, Y: towerPos.Y}
	w.ecs.Positions[vortexID] = &component.Position{X: center.X, Y: center.Y}
	w.ecs.Vortexes[vortexID] = &component.Vortex{
		Radius:      128 / config.UnitsPerCell,
		CreatedAt:   0,
		ExpiresAt:   2.6,
		NextPulseAt: 2.6, // keep pulses out of this test
	}
	w.ecs.Combats[tower].Cooldown = 10

	w.combat.Update(0.1)
	if got := w.ecs.Combats[tower].Cooldown; !approx(got, 10-0.1*config.SuppressionFactor, 1e-12) {
		t.Fatalf("suppressed cooldown: got %v", got)
	}

	w.ecs.GameTime = 2.6
	w.vortex.Update(0)
	if len(w.ecs.Vortexes) != 0 {
		t.Fatal("vortex should expire")
	}
	before := w.ecs.Combats[tower].Cooldown
	w.combat.Update(0.1)
	if got := w.ecs.Combats[tower].Cooldown; !approx(got, before-0.1, 1e-12) {
		t.Fatalf("cooldown should resume at full rate, got %v", got)
	}
}

func TestVortexPulsesPenalizeTowersInside(t *testing.T) {
	w := newTestWorld(t)
	inside := w.tower("dart", 5, 3)
	outside := w.tower("dart", 12, 0)
	w.ecs.Combats[inside].Cooldown = 0
	w.ecs.Combats[outside].Cooldown = 0

	vortexID := w.ecs.NewEntity()
	w.ecs.Positions[vortexID] = &component.Position{X: 5.5, Y: 3.5}
	w.ecs.Vortexes[vortexID] = &component.Vortex{Radius: 1, ExpiresAt: 1, NextPulseAt: config.VortexFirstPulseDelay}

	// One long step covers the pulses at 0.2, 0.42, 0.64 and 0.86.
	w.ecs.GameTime = 1
	w.vortex.Update(1)

	if got := w.ecs.Combats[inside].Cooldown; !approx(got, 4*config.VortexPulsePenalty, 1e-9) {
		t.Fatalf("inside tower cooldown: got %v want %v", got, 4*config.VortexPulsePenalty)
	}
	if got := w.ecs.Combats[outside].Cooldown; got != 0 {
		t.Fatalf("outside tower was penalized: %v", got)
	}
	if len(w.ecs.Vortexes) != 0 {
		t.Fatal("expired vortex should be removed")
	}
}

func TestVortexCastCreatesField(t *testing.T) {
	w := newTestWorld(t)
	w.spawn("spoonBoss", gridmap.Point{X: 5.5, Y: 1.5}, 6)
	w.ecs.GameTime = 2.6
	w.boss.Update(0)

	if len(w.ecs.Vortexes) != 1 {
		t.Fatalf("expected one vortex, got %d", len(w.ecs.Vortexes))
	}
	for _, v := range w.ecs.Vortexes {
		if !approx(v.Radius, 128/config.UnitsPerCell, 1e-12) || !approx(v.ExpiresAt, 2.6+2.6, 1e-9) {
			t.Fatalf("vortex %+v", v)
		}
		if !approx(v.NextPulseAt, 2.6+config.VortexFirstPulseDelay, 1e-9) {
			t.Fatalf("first pulse at %v", v.NextPulseAt)
		}
	}
}

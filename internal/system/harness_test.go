package system

import (
	"math"
	"testing"

	"spoon-defense/internal/component"
	"spoon-defense/internal/defs"
	"spoon-defense/internal/entity"
	"spoon-defense/internal/event"
	"spoon-defense/internal/logging"
	"spoon-defense/internal/types"
	"spoon-defense/internal/utils"
	"spoon-defense/pkg/gridmap"
)

// testWorld wires the systems the way the game does, without the app layer.
type testWorld struct {
	t       *testing.T
	catalog *defs.Catalog
	board   *gridmap.GridMap
	ecs     *entity.ECS
	d       *event.Dispatcher
	rng     *utils.PRNGService
	events  []event.Event

	scheduler *Scheduler
	wave      *WaveSystem
	status    *StatusEffectSystem
	movement  *MovementSystem
	boss      *BossSystem
	vortex    *VortexSystem
	combat    *CombatSystem
	proj      *ProjectileSystem
	state     *StateSystem
}

func newTestWorld(t *testing.T, waves ...defs.WaveDefinition) *testWorld {
	t.Helper()
	logging.Discard()

	catalog := *defs.MustDefault()
	if len(waves) > 0 {
		catalog.Waves = waves
	}
	w := &testWorld{
		t:       t,
		catalog: &catalog,
		board:   gridmap.NewDefault(),
		d:       event.NewDispatcher(),
		rng:     utils.NewPRNGService(1),
	}
	w.ecs = entity.NewECS(component.NewRunState(catalog.Economy.StartingGold, catalog.Economy.BaseHealth, "dart"))
	w.d.SubscribeAll(event.ListenerFunc(func(e event.Event) { w.events = append(w.events, e) }))

	w.scheduler = NewScheduler(w.ecs.IsEnemyAlive)
	w.wave = NewWaveSystem(w.ecs, w.catalog, w.board, w, w.d)
	w.status = NewStatusEffectSystem(w.ecs)
	w.movement = NewMovementSystem(w.ecs, w.board, w.d)
	w.vortex = NewVortexSystem(w.ecs, w.rng, w.d)
	w.boss = NewBossSystem(w.ecs, w, w.scheduler, w.rng, w.d)
	w.combat = NewCombatSystem(w.ecs, w.board, w.vortex)
	w.proj = NewProjectileSystem(w.ecs, w.d)
	w.state = NewStateSystem(w.ecs, w.d)
	return w
}

func (w *testWorld) SpawnEnemy(defID string, at gridmap.Point, waypointIndex int, reinforcement bool) (types.EntityID, bool) {
	def, ok := w.catalog.Enemy(defID)
	if !ok {
		return 0, false
	}
	return SpawnEnemy(w.ecs, w.d, def, at, waypointIndex, reinforcement), true
}

// tick runs one full simulation step in game order.
func (w *testWorld) tick(dt float64) {
	w.ecs.GameTime += dt
	steps := []func(){
		func() { w.wave.Update(dt) },
		func() { w.status.Update(dt) },
		func() { w.movement.Update(dt) },
		func() { w.boss.Update(dt) },
		func() { w.vortex.Update(dt) },
		func() { w.scheduler.Update(w.ecs.GameTime) },
		func() { w.combat.Update(dt) },
		func() { w.proj.Update(dt) },
		func() { w.wave.CheckCleared() },
	}
	for _, step := range steps {
		if w.ecs.Run.Ended() {
			return
		}
		step()
	}
}

func (w *testWorld) spawn(defID string, at gridmap.Point, waypointIndex int) types.EntityID {
	w.t.Helper()
	id, ok := w.SpawnEnemy(defID, at, waypointIndex, false)
	if !ok {
		w.t.Fatalf("unknown enemy %q", defID)
	}
	return id
}

func (w *testWorld) tower(defID string, col, row int) types.EntityID {
	w.t.Helper()
	def, ok := w.catalog.Tower(defID)
	if !ok {
		w.t.Fatalf("unknown tower %q", defID)
	}
	if !w.board.Occupy(col, row) {
		w.t.Fatalf("tile %d,%d not buildable", col, row)
	}
	return CreateTower(w.ecs, def, gridmap.Tile{Col: col, Row: row})
}

func (w *testWorld) count(t event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (w *testWorld) last(t event.EventType) (event.Event, bool) {
	for i := len(w.events) - 1; i >= 0; i-- {
		if w.events[i].Type == t {
			return w.events[i], true
		}
	}
	return event.Event{}, false
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func singleScoutWave() defs.WaveDefinition {
	return defs.WaveDefinition{Groups: []defs.WaveGroup{{EnemyID: "scout", Count: 1, SpawnIntervalMs: 0}}}
}

package app

import (
	"math"

	"spoon-defense/internal/component"
	"spoon-defense/internal/defs"
	"spoon-defense/internal/entity"
	"spoon-defense/internal/event"
	"spoon-defense/internal/logging"
	"spoon-defense/internal/system"
	"spoon-defense/internal/types"
	"spoon-defense/internal/utils"
	"spoon-defense/pkg/gridmap"
)

// Game is the simulation aggregate: board, catalog, entities, systems and
// the run state. Presentations drive it through commands and Advance and
// read it through Snapshot and events.
type Game struct {
	board           *gridmap.GridMap
	catalog         *defs.Catalog
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	Scheduler          *system.Scheduler
	WaveSystem         *system.WaveSystem
	StatusEffectSystem *system.StatusEffectSystem
	MovementSystem     *system.MovementSystem
	BossSystem         *system.BossSystem
	VortexSystem       *system.VortexSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem

	isPaused   bool
	speedIndex int
}

// NewGame builds a run on board with the given catalog. seed drives every
// random decision; zero picks a time-based seed.
func NewGame(catalog *defs.Catalog, board *gridmap.GridMap, seed int64) *Game {
	if catalog == nil || board == nil {
		panic("catalog and board cannot be nil")
	}
	g := &Game{
		board:           board,
		catalog:         catalog,
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(seed),
	}
	g.initRun()
	logging.Infof("New run: %d waves, seed %d", len(catalog.Waves), g.Rng.Seed())
	return g
}

// initRun replaces every piece of per-run state. Subscribers of the
// dispatcher survive; everything else is rebuilt.
func (g *Game) initRun() {
	selected := ""
	if order := g.catalog.TowerOrder(); len(order) > 0 {
		selected = order[0]
	}
	run := component.NewRunState(g.catalog.Economy.StartingGold, g.catalog.Economy.BaseHealth, selected)
	ecs := entity.NewECS(run)

	g.ECS = ecs
	g.Scheduler = system.NewScheduler(ecs.IsEnemyAlive)
	g.WaveSystem = system.NewWaveSystem(ecs, g.catalog, g.board, g, g.EventDispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.MovementSystem = system.NewMovementSystem(ecs, g.board, g.EventDispatcher)
	g.VortexSystem = system.NewVortexSystem(ecs, g.Rng, g.EventDispatcher)
	g.BossSystem = system.NewBossSystem(ecs, g, g.Scheduler, g.Rng, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, g.board, g.VortexSystem)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.EventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.StateSystem = system.NewStateSystem(ecs, g.EventDispatcher)

	g.isPaused = false
	g.speedIndex = 0
}

// Advance runs one tick of deltaMs real milliseconds, scaled by the time
// multiplier. Invalid deltas are dropped; nothing happens once the run has
// ended.
func (g *Game) Advance(deltaMs float64) {
	if math.IsNaN(deltaMs) || math.IsInf(deltaMs, 0) || deltaMs < 0 {
		logging.Warnf("Ignoring invalid tick delta %v", deltaMs)
		return
	}
	run := g.ECS.Run
	if run.Ended() || g.isPaused {
		return
	}
	dt := deltaMs / 1000 * run.TimeMultiplier
	if dt == 0 {
		return
	}
	g.ECS.GameTime += dt

	steps := []func(){
		func() { g.WaveSystem.Update(dt) },
		func() { g.StatusEffectSystem.Update(dt) },
		func() { g.MovementSystem.Update(dt) },
		func() { g.BossSystem.Update(dt) },
		func() { g.VortexSystem.Update(dt) },
		func() { g.Scheduler.Update(g.ECS.GameTime) },
		func() { g.CombatSystem.Update(dt) },
		func() { g.ProjectileSystem.Update(dt) },
		func() { g.WaveSystem.CheckCleared() },
	}
	for _, step := range steps {
		if run.Ended() {
			break
		}
		step()
	}
	g.VisualEffectSystem.Update(dt)
}

// SpawnEnemy implements interfaces.GameContext.
func (g *Game) SpawnEnemy(defID string, at gridmap.Point, waypointIndex int, reinforcement bool) (types.EntityID, bool) {
	def, ok := g.catalog.Enemy(defID)
	if !ok {
		return 0, false
	}
	return system.SpawnEnemy(g.ECS, g.EventDispatcher, def, at, waypointIndex, reinforcement), true
}

// Now is the simulation clock in seconds.
func (g *Game) Now() float64 {
	return g.ECS.GameTime
}

func (g *Game) Run() *component.RunState {
	return g.ECS.Run
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

// Subscribe is a shorthand for presentations.
func (g *Game) Subscribe(eventType event.EventType, listener event.Listener) {
	g.EventDispatcher.Subscribe(eventType, listener)
}

func (g *Game) emit(t event.EventType, data interface{}) {
	g.EventDispatcher.Dispatch(event.Event{Type: t, Time: g.ECS.GameTime, Data: data})
}

func (g *Game) Board() *gridmap.GridMap {
	return g.board
}

func (g *Game) Catalog() *defs.Catalog {
	return g.catalog
}

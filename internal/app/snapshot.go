package app

import (
	"image/color"

	"spoon-defense/internal/component"
	"spoon-defense/internal/entity"
	"spoon-defense/internal/types"
	"spoon-defense/pkg/gridmap"
)

type EnemyView struct {
	ID          types.EntityID
	DefID       string
	Position    gridmap.Point
	HealthRatio float64
	Radius      float64
	Color       color.RGBA
	Slowed      bool
	Flash       float64 // 1 right after a hit, fading to 0
	IsBoss      bool
}

type TowerView struct {
	ID            types.EntityID
	DefID         string
	Tile          gridmap.Tile
	Position      gridmap.Point
	Angle         float64
	Range         float64 // cells
	CooldownRatio float64
	Disabled      bool
	Suppressed    bool
	Radius        float64
	Color         color.RGBA
}

type ProjectileView struct {
	ID         types.EntityID
	TowerDefID string
	Position   gridmap.Point
	Splash     bool
}

type VortexView struct {
	ID             types.EntityID
	Position       gridmap.Point
	Radius         float64
	RemainingRatio float64
}

type ShardView struct {
	Position gridmap.Point
	Alpha    float64
}

// TowerOption is one entry of the build menu.
type TowerOption struct {
	ID         string
	Name       string
	Cost       int
	Affordable bool
	Selected   bool
}

// BossBar is shown while a boss is alive.
type BossBar struct {
	ID          types.EntityID
	Name        string
	HealthRatio float64
}

type RunView struct {
	Gold           int
	BaseHealth     int
	MaxBaseHealth  int
	WaveIndex      int
	WaveNumber     int // for the "n/total" label
	WaveTotal      int
	BossWave       bool // the labelled wave has a boss
	WaveInProgress bool
	PendingSpawns  int
	CanStartWave   bool
	Outcome        component.Outcome
	SelectedTower  string
	TimeMultiplier float64
	Paused         bool
}

// Snapshot is a read-only copy of everything a presentation draws. Slices
// are ordered by entity id.
type Snapshot struct {
	Time         float64
	Enemies      []EnemyView
	Towers       []TowerView
	Projectiles  []ProjectileView
	Vortexes     []VortexView
	Shards       []ShardView
	TowerOptions []TowerOption
	Boss         *BossBar
	Run          RunView
}

func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	now := ecs.GameTime
	snap := Snapshot{Time: now, Run: g.runView()}

	for _, id := range entity.SortedIDs(ecs.Enemies) {
		enemy := ecs.Enemies[id]
		view := EnemyView{ID: id, DefID: enemy.DefID, IsBoss: enemy.Def.IsBoss()}
		if pos, ok := ecs.Positions[id]; ok {
			view.Position = pos.Point()
		}
		if h, ok := ecs.Healths[id]; ok {
			view.HealthRatio = h.Ratio()
			if view.IsBoss && snap.Boss == nil {
				snap.Boss = &BossBar{ID: id, Name: enemy.Def.Name, HealthRatio: h.Ratio()}
			}
		}
		if r, ok := ecs.Renderables[id]; ok {
			view.Radius = float64(r.Radius)
			view.Color = r.Color
		}
		if _, ok := ecs.SlowEffects[id]; ok {
			view.Slowed = true
		}
		if f, ok := ecs.DamageFlashes[id]; ok && f.Duration > 0 {
			view.Flash = f.Timer / f.Duration
		}
		snap.Enemies = append(snap.Enemies, view)
	}

	for _, id := range entity.SortedIDs(ecs.Towers) {
		tower := ecs.Towers[id]
		view := TowerView{ID: id, DefID: tower.DefID, Tile: tower.Tile, Disabled: tower.Disabled(now)}
		if pos, ok := ecs.Positions[id]; ok {
			view.Position = pos.Point()
			view.Suppressed = g.VortexSystem.SuppressionAt(view.Position) < 1
		}
		if c, ok := ecs.Combats[id]; ok {
			view.Range = c.Range
			view.CooldownRatio = c.CooldownRatio()
		}
		if t, ok := ecs.Turrets[id]; ok {
			view.Angle = t.Angle
		}
		if r, ok := ecs.Renderables[id]; ok {
			view.Radius = float64(r.Radius)
			view.Color = r.Color
		}
		snap.Towers = append(snap.Towers, view)
	}

	for _, id := range entity.SortedIDs(ecs.Projectiles) {
		proj := ecs.Projectiles[id]
		view := ProjectileView{ID: id, TowerDefID: proj.TowerDefID, Splash: proj.SplashRadius > 0}
		if pos, ok := ecs.Positions[id]; ok {
			view.Position = pos.Point()
		}
		snap.Projectiles = append(snap.Projectiles, view)
	}

	for _, id := range entity.SortedIDs(ecs.Vortexes) {
		v := ecs.Vortexes[id]
		view := VortexView{ID: id, Radius: v.Radius, RemainingRatio: v.RemainingRatio(now)}
		if pos, ok := ecs.Positions[id]; ok {
			view.Position = pos.Point()
		}
		snap.Vortexes = append(snap.Vortexes, view)
	}

	for _, id := range entity.SortedIDs(ecs.Shards) {
		s := ecs.Shards[id]
		view := ShardView{}
		if pos, ok := ecs.Positions[id]; ok {
			view.Position = pos.Point()
		}
		if s.Duration > 0 {
			view.Alpha = s.Timer / s.Duration
		}
		snap.Shards = append(snap.Shards, view)
	}

	for _, id := range g.catalog.TowerOrder() {
		def, ok := g.catalog.Tower(id)
		if !ok {
			continue
		}
		snap.TowerOptions = append(snap.TowerOptions, TowerOption{
			ID:         id,
			Name:       def.Name,
			Cost:       def.Cost,
			Affordable: ecs.Run.Gold >= def.Cost,
			Selected:   ecs.Run.SelectedTower == id,
		})
	}
	return snap
}

func (g *Game) runView() RunView {
	run := g.ECS.Run
	view := RunView{
		Gold:           run.Gold,
		BaseHealth:     run.BaseHealth,
		MaxBaseHealth:  run.MaxBaseHealth,
		WaveIndex:      run.WaveIndex,
		WaveNumber:     WaveLabelNumber(run, len(g.catalog.Waves)),
		WaveTotal:      len(g.catalog.Waves),
		WaveInProgress: run.WaveInProgress,
		CanStartWave:   g.CanStartWave(),
		Outcome:        run.Outcome,
		SelectedTower:  run.SelectedTower,
		TimeMultiplier: run.TimeMultiplier,
		Paused:         g.isPaused,
	}
	view.BossWave = g.catalog.IsBossWave(view.WaveNumber - 1)
	if g.ECS.Wave != nil {
		view.PendingSpawns = g.ECS.Wave.Pending()
	}
	return view
}

// WaveLabelNumber is the 1-based wave shown in the HUD: the current wave
// while one runs or after the run ended, otherwise the next one.
func WaveLabelNumber(run *component.RunState, total int) int {
	switch {
	case run.Ended():
		return max(1, run.WaveIndex+1)
	case run.WaveInProgress:
		return run.WaveIndex + 1
	default:
		return min(run.WaveIndex+2, total)
	}
}

package system

import (
	"spoon-defense/internal/component"
	"spoon-defense/internal/defs"
	"spoon-defense/internal/entity"
	"spoon-defense/internal/event"
	"spoon-defense/internal/interfaces"
	"spoon-defense/internal/logging"
	"spoon-defense/pkg/gridmap"
)

// WaveSystem drip-feeds the current wave's spawn queue and detects when the
// wave is cleared.
type WaveSystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	board           *gridmap.GridMap
	game            interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, catalog *defs.Catalog, board *gridmap.GridMap, game interfaces.GameContext, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		catalog:         catalog,
		board:           board,
		game:            game,
		eventDispatcher: eventDispatcher,
	}
}

// StartWave flattens wave index into the spawn queue. It returns false and
// changes nothing when a wave is running, the run is over or the index is
// out of range.
func (s *WaveSystem) StartWave(index int) bool {
	run := s.ecs.Run
	if run.Ended() || run.WaveInProgress || index < 0 || index >= len(s.catalog.Waves) {
		return false
	}

	waveDef := s.catalog.Waves[index]
	wave := &component.Wave{Index: index, Countdown: 0}
	var bossName string
	for _, g := range waveDef.Groups {
		def, ok := s.catalog.Enemy(g.EnemyID)
		if ok && def.IsBoss() {
			wave.IsBoss = true
			bossName = def.Name
		}
		for i := 0; i < g.Count; i++ {
			wave.Queue = append(wave.Queue, component.SpawnEntry{EnemyID: g.EnemyID, Delay: g.SpawnInterval()})
		}
	}

	s.ecs.Wave = wave
	run.WaveIndex = index
	run.WaveInProgress = true

	logging.Infof("Wave %d/%d started with %d enemies", index+1, len(s.catalog.Waves), len(wave.Queue))
	emit(s.eventDispatcher, s.ecs, event.WaveStarted, event.WaveStartedData{
		WaveIndex: index,
		Total:     len(s.catalog.Waves),
		IsBoss:    wave.IsBoss,
		BossName:  bossName,
	})
	return true
}

// Update releases every spawn whose countdown has run out. A long tick can
// release several.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil || len(wave.Queue) == 0 {
		return
	}
	wave.Countdown -= deltaTime
	for wave.Countdown <= 0 && len(wave.Queue) > 0 {
		entry := wave.Queue[0]
		wave.Queue = wave.Queue[1:]
		if _, ok := s.game.SpawnEnemy(entry.EnemyID, s.board.Entry(), 1, false); !ok {
			logging.Warnf("Wave %d: enemy definition %q not found", wave.Index+1, entry.EnemyID)
		}
		wave.Countdown += entry.Delay
	}
}

// CheckCleared ends the wave once nothing is pending and nothing is alive.
func (s *WaveSystem) CheckCleared() {
	wave := s.ecs.Wave
	if wave == nil || s.ecs.Run.Ended() {
		return
	}
	if len(wave.Queue) > 0 || len(s.ecs.Enemies) > 0 {
		return
	}
	s.ecs.Wave = nil
	s.ecs.Run.WaveInProgress = false

	last := wave.Index >= len(s.catalog.Waves)-1
	logging.Infof("Wave %d cleared", wave.Index+1)
	emit(s.eventDispatcher, s.ecs, event.WaveCleared, event.WaveClearedData{WaveIndex: wave.Index, Last: last})
}

package app

import (
	"fmt"
	"math"

	"spoon-defense/internal/config"
	"spoon-defense/internal/event"
	"spoon-defense/internal/logging"
)

// StartNextWave launches the wave after the last one started.
func (g *Game) StartNextWave() error {
	run := g.ECS.Run
	if run.Ended() {
		return ErrGameOver
	}
	if run.WaveInProgress {
		return ErrWaveInProgress
	}
	next := run.WaveIndex + 1
	if next >= len(g.catalog.Waves) {
		return ErrAllWavesComplete
	}
	if !g.WaveSystem.StartWave(next) {
		return fmt.Errorf("wave %d could not start", next+1)
	}
	return nil
}

// CanStartWave reports whether StartNextWave would succeed.
func (g *Game) CanStartWave() bool {
	run := g.ECS.Run
	return !run.Ended() && !run.WaveInProgress && run.WaveIndex+1 < len(g.catalog.Waves)
}

// SetSelectedTowerType picks the tower type PlaceTower uses by default.
func (g *Game) SetSelectedTowerType(towerID string) error {
	if g.ECS.Run.Ended() {
		return ErrGameOver
	}
	if _, ok := g.catalog.Tower(towerID); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTower, towerID)
	}
	g.ECS.Run.SelectedTower = towerID
	return nil
}

// SetTimeMultiplier scales simulated time per real time. Zero freezes the
// simulation without pausing it.
func (g *Game) SetTimeMultiplier(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 || x > config.MaxTimeMultiplier {
		return fmt.Errorf("%w: %v", ErrInvalidTimeMultiplier, x)
	}
	if g.ECS.Run.Ended() {
		return ErrGameOver
	}
	g.ECS.Run.TimeMultiplier = x
	for i, step := range config.SpeedSteps {
		if step == x {
			g.speedIndex = i
		}
	}
	return nil
}

// ToggleSpeed cycles through config.SpeedSteps and returns the new multiplier.
func (g *Game) ToggleSpeed() float64 {
	run := g.ECS.Run
	if run.Ended() {
		return run.TimeMultiplier
	}
	g.speedIndex = (g.speedIndex + 1) % len(config.SpeedSteps)
	run.TimeMultiplier = config.SpeedSteps[g.speedIndex]
	logging.Debugf("Time multiplier set to %v", run.TimeMultiplier)
	return run.TimeMultiplier
}

// TogglePause freezes or resumes the simulation and returns the new state.
func (g *Game) TogglePause() bool {
	if g.ECS.Run.Ended() {
		return g.isPaused
	}
	g.isPaused = !g.isPaused
	return g.isPaused
}

// Restart throws away the current run and starts over with the same seed.
// Subscribers stay attached.
func (g *Game) Restart() {
	g.StateSystem.Close()
	g.Scheduler.Clear()
	g.board.ClearOccupancy()
	g.Rng.Reset()
	g.initRun()

	logging.Infof("Run restarted")
	g.emit(event.RunRestarted, nil)
}

package app

import "errors"

// Command rejections. The run state is unchanged whenever one is returned.
var (
	ErrGameOver              = errors.New("run has ended")
	ErrUnknownTower          = errors.New("unknown tower type")
	ErrNotBuildable          = errors.New("tile is not buildable")
	ErrInsufficientGold      = errors.New("not enough gold")
	ErrWaveInProgress        = errors.New("a wave is already in progress")
	ErrAllWavesComplete      = errors.New("all waves complete")
	ErrInvalidTimeMultiplier = errors.New("time multiplier out of range")
)

package component

// SpawnEntry is one pending spawn. Delay is the wait after this spawn before
// the next one, in seconds.
type SpawnEntry struct {
	EnemyID string
	Delay   float64
}

// Wave is the drip-fed spawn queue of the wave in progress.
type Wave struct {
	Index     int
	Queue     []SpawnEntry
	Countdown float64
	IsBoss    bool
}

func (w *Wave) Pending() int { return len(w.Queue) }

package defs

// WaveGroup is a run of identical enemies released at a fixed interval.
type WaveGroup struct {
	EnemyID         string `json:"enemy_id"`
	Count           int    `json:"count" jsonschema:"minimum=1"`
	SpawnIntervalMs int    `json:"spawn_interval_ms" jsonschema:"minimum=0"`
}

func (g WaveGroup) SpawnInterval() float64 {
	return msToSeconds(g.SpawnIntervalMs)
}

// WaveDefinition is an ordered list of groups. Waves are played strictly in
// catalog order.
type WaveDefinition struct {
	Groups []WaveGroup `json:"groups" jsonschema:"minItems=1"`
}

// Size returns the total number of enemies the wave releases.
func (w WaveDefinition) Size() int {
	n := 0
	for _, g := range w.Groups {
		n += g.Count
	}
	return n
}

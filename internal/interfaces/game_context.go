package interfaces

import (
	"spoon-defense/internal/types"
	"spoon-defense/pkg/gridmap"
)

// GameContext is what systems need from the game aggregate without importing
// it. Spawning goes through the game because it owns the catalog lookup.
type GameContext interface {
	SpawnEnemy(defID string, at gridmap.Point, waypointIndex int, reinforcement bool) (types.EntityID, bool)
}

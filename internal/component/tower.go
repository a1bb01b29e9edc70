package component

import (
	"spoon-defense/internal/defs"
	"spoon-defense/pkg/gridmap"
)

type Tower struct {
	DefID         string
	Def           *defs.TowerDefinition
	Tile          gridmap.Tile // tile the tower stands on
	DisabledUntil float64      // sim time; slammed towers skip their fire cycle until then
}

func (t *Tower) Disabled(now float64) bool {
	return t.DisabledUntil > now
}

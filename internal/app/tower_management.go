package app

import (
	"errors"
	"fmt"

	"spoon-defense/internal/event"
	"spoon-defense/internal/logging"
	"spoon-defense/internal/system"
	"spoon-defense/internal/types"
	"spoon-defense/pkg/gridmap"
)

// PlaceTower buys a tower of type towerID on (col,row). An empty towerID
// uses the selected type. On rejection nothing changes and a TowerRejected
// event carries the reason.
func (g *Game) PlaceTower(towerID string, col, row int) (types.EntityID, error) {
	if towerID == "" {
		towerID = g.ECS.Run.SelectedTower
	}
	tile := gridmap.Tile{Col: col, Row: row}

	if err := g.canPlaceTower(towerID, tile); err != nil {
		logging.Debugf("Tower %q rejected at %d,%d: %v", towerID, col, row, err)
		g.emit(event.TowerRejected, event.TowerRejectedData{DefID: towerID, Tile: tile, Reason: err.Error()})
		return 0, err
	}

	def, _ := g.catalog.Tower(towerID)
	g.ECS.Run.Spend(def.Cost)
	g.board.Occupy(col, row)
	id := system.CreateTower(g.ECS, def, tile)

	g.emit(event.TowerPlaced, event.TowerPlacedData{ID: id, DefID: towerID, Tile: tile, Cost: def.Cost})
	return id, nil
}

func (g *Game) canPlaceTower(towerID string, tile gridmap.Tile) error {
	run := g.ECS.Run
	if run.Ended() {
		return ErrGameOver
	}
	def, ok := g.catalog.Tower(towerID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTower, towerID)
	}
	if !g.board.IsBuildable(tile.Col, tile.Row) {
		return ErrNotBuildable
	}
	if run.Gold < def.Cost {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientGold, def.Cost, run.Gold)
	}
	return nil
}

// CanPlaceTower reports whether the selected tower could go on (col,row) right
// now; presentations use it for hover feedback.
func (g *Game) CanPlaceTower(col, row int) bool {
	return g.canPlaceTower(g.ECS.Run.SelectedTower, gridmap.Tile{Col: col, Row: row}) == nil
}

// IsRejection reports whether err is one of the placement rejections.
func IsRejection(err error) bool {
	return errors.Is(err, ErrGameOver) || errors.Is(err, ErrUnknownTower) ||
		errors.Is(err, ErrNotBuildable) || errors.Is(err, ErrInsufficientGold)
}

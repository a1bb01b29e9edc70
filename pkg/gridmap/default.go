package gridmap

import "spoon-defense/internal/config"

// DefaultSegments is the authored path: a five-leg zigzag from the west edge
// to the east edge.
var DefaultSegments = []Segment{
	{From: Tile{0, 4}, To: Tile{3, 4}},
	{From: Tile{3, 4}, To: Tile{3, 1}},
	{From: Tile{3, 1}, To: Tile{8, 1}},
	{From: Tile{8, 1}, To: Tile{8, 6}},
	{From: Tile{8, 6}, To: Tile{13, 6}},
}

// NewDefault builds the authored board.
func NewDefault() *GridMap {
	return NewGridMap(config.GridCols, config.GridRows, DefaultSegments)
}

package gridmap

import "spoon-defense/pkg/utils"

// Tile addresses a grid cell.
type Tile struct {
	Col, Row int
}

// Center returns the tile center in grid cells.
func (t Tile) Center() Point {
	return Point{X: float64(t.Col) + 0.5, Y: float64(t.Row) + 0.5}
}

// Segment is an axis-aligned (or diagonal) run of path tiles, both ends
// inclusive.
type Segment struct {
	From, To Tile
}

// GridMap is the fixed board: bounds, the authored path and the tiles that
// already carry a tower.
type GridMap struct {
	Cols, Rows int

	pathTiles []Tile
	pathSet   map[Tile]struct{}
	occupied  map[Tile]struct{}
	waypoints []Point
	// suffix[i] is the path length from waypoint i to the exit.
	suffix []float64
}

// NewGridMap builds the board from ordered path segments. Consecutive
// duplicate tiles (segment joints) are suppressed.
func NewGridMap(cols, rows int, segments []Segment) *GridMap {
	gm := &GridMap{
		Cols:     cols,
		Rows:     rows,
		pathSet:  make(map[Tile]struct{}),
		occupied: make(map[Tile]struct{}),
	}
	for _, seg := range segments {
		gm.appendSegment(seg)
	}
	for _, t := range gm.pathTiles {
		gm.pathSet[t] = struct{}{}
		gm.waypoints = append(gm.waypoints, t.Center())
	}
	gm.suffix = make([]float64, len(gm.waypoints))
	for i := len(gm.waypoints) - 2; i >= 0; i-- {
		gm.suffix[i] = gm.suffix[i+1] + gm.waypoints[i].Distance(gm.waypoints[i+1])
	}
	return gm
}

func (gm *GridMap) appendSegment(seg Segment) {
	stepCol := utils.Sign(seg.To.Col - seg.From.Col)
	stepRow := utils.Sign(seg.To.Row - seg.From.Row)
	cur := seg.From
	if n := len(gm.pathTiles); n == 0 || gm.pathTiles[n-1] != cur {
		gm.pathTiles = append(gm.pathTiles, cur)
	}
	for cur != seg.To {
		if cur.Col != seg.To.Col {
			cur.Col += stepCol
		}
		if cur.Row != seg.To.Row {
			cur.Row += stepRow
		}
		gm.pathTiles = append(gm.pathTiles, cur)
	}
}

// Contains reports whether the tile is inside the grid.
func (gm *GridMap) Contains(col, row int) bool {
	return col >= 0 && col < gm.Cols && row >= 0 && row < gm.Rows
}

func (gm *GridMap) IsPath(col, row int) bool {
	_, ok := gm.pathSet[Tile{col, row}]
	return ok
}

func (gm *GridMap) IsOccupied(col, row int) bool {
	_, ok := gm.occupied[Tile{col, row}]
	return ok
}

// IsBuildable is true iff the tile is inside the grid, off the path and free.
func (gm *GridMap) IsBuildable(col, row int) bool {
	return gm.Contains(col, row) && !gm.IsPath(col, row) && !gm.IsOccupied(col, row)
}

// Occupy marks a tile as carrying a tower. It returns false if the tile was
// not buildable.
func (gm *GridMap) Occupy(col, row int) bool {
	if !gm.IsBuildable(col, row) {
		return false
	}
	gm.occupied[Tile{col, row}] = struct{}{}
	return true
}

// ClearOccupancy frees every tile; used on restart.
func (gm *GridMap) ClearOccupancy() {
	clear(gm.occupied)
}

// IsTurn reports whether a path tile has both horizontal and vertical path
// neighbors. Only presentation uses it.
func (gm *GridMap) IsTurn(col, row int) bool {
	if !gm.IsPath(col, row) {
		return false
	}
	horizontal := gm.IsPath(col-1, row) || gm.IsPath(col+1, row)
	vertical := gm.IsPath(col, row-1) || gm.IsPath(col, row+1)
	return horizontal && vertical
}

// PathTiles returns the path tiles from entry to exit.
func (gm *GridMap) PathTiles() []Tile {
	return gm.pathTiles
}

// Waypoints returns the tile centers enemies traverse, entry first.
func (gm *GridMap) Waypoints() []Point {
	return gm.waypoints
}

// Waypoint returns waypoint i, or false when i is past the exit.
func (gm *GridMap) Waypoint(i int) (Point, bool) {
	if i < 0 || i >= len(gm.waypoints) {
		return Point{}, false
	}
	return gm.waypoints[i], true
}

func (gm *GridMap) Entry() Point {
	return gm.waypoints[0]
}

// PathLength is the total polyline length in cells.
func (gm *GridMap) PathLength() float64 {
	if len(gm.suffix) == 0 {
		return 0
	}
	return gm.suffix[0]
}

// RemainingDistance is the path distance from pos to the exit for an
// enemy whose next waypoint is next.
func (gm *GridMap) RemainingDistance(pos Point, next int) float64 {
	wp, ok := gm.Waypoint(next)
	if !ok {
		return 0
	}
	return pos.Distance(wp) + gm.suffix[next]
}

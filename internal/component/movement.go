package component

import "spoon-defense/pkg/gridmap"

// Position is a continuous location in grid cells.
type Position struct {
	X, Y float64
}

func (p *Position) Point() gridmap.Point { return gridmap.Point{X: p.X, Y: p.Y} }

func (p *Position) Set(pt gridmap.Point) {
	p.X, p.Y = pt.X, pt.Y
}

// Velocity is the base speed in cells per second.
type Velocity struct {
	Speed float64
}

// PathFollower tracks the next waypoint an enemy is heading to. Reaching
// len(waypoints) means the enemy has leaked.
type PathFollower struct {
	WaypointIndex int
}

package gridmap

import "math"

// Point is a continuous position in grid cells. (0,0) is the top-left corner
// of tile (0,0); tile centers sit on half coordinates.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point        { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point        { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Scale(k float64) Point    { return Point{p.X * k, p.Y * k} }
func (p Point) Len() float64             { return math.Hypot(p.X, p.Y) }
func (p Point) Distance(o Point) float64 { return math.Hypot(o.X-p.X, o.Y-p.Y) }

// DistanceSq avoids the square root for radius checks.
func (p Point) DistanceSq(o Point) float64 {
	dx, dy := o.X-p.X, o.Y-p.Y
	return dx*dx + dy*dy
}

// MoveToward steps from p toward target by at most step. It reports whether
// target was reached; on arrival the result is exactly target.
func (p Point) MoveToward(target Point, step float64) (Point, bool) {
	d := target.Sub(p)
	dist := d.Len()
	if dist <= step {
		return target, true
	}
	if dist == 0 {
		return p, false
	}
	return p.Add(d.Scale(step / dist)), false
}

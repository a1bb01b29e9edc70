// Package isometric converts between grid coordinates and the 2:1 diamond
// projection used by the presentations.
package isometric

import (
	"math"

	"spoon-defense/pkg/gridmap"
	"spoon-defense/pkg/utils"
)

// Projection maps grid cells to screen pixels. The board is scaled by Zoom
// around (CenterX, CenterY).
type Projection struct {
	TileWidth, TileHeight float64
	OriginX, OriginY      float64
	CenterX, CenterY      float64
	Zoom                  float64
	MinZoom, MaxZoom      float64
}

func New(tileW, tileH, originX, originY, centerX, centerY float64) *Projection {
	return &Projection{
		TileWidth:  tileW,
		TileHeight: tileH,
		OriginX:    originX,
		OriginY:    originY,
		CenterX:    centerX,
		CenterY:    centerY,
		Zoom:       1,
		MinZoom:    1,
		MaxZoom:    1,
	}
}

// SetZoom clamps z to the allowed range and returns the applied value.
func (p *Projection) SetZoom(z float64) float64 {
	if math.IsNaN(z) {
		return p.Zoom
	}
	p.Zoom = utils.Clamp(z, p.MinZoom, p.MaxZoom)
	return p.Zoom
}

// ToScreen projects a grid point.
func (p *Projection) ToScreen(pt gridmap.Point) (float64, float64) {
	x := (pt.X-pt.Y)*(p.TileWidth/2) + p.OriginX
	y := (pt.X+pt.Y)*(p.TileHeight/2) + p.OriginY
	return p.CenterX + (x-p.CenterX)*p.Zoom, p.CenterY + (y-p.CenterY)*p.Zoom
}

// ToGrid is the inverse of ToScreen.
func (p *Projection) ToGrid(sx, sy float64) gridmap.Point {
	x := p.CenterX + (sx-p.CenterX)/p.Zoom
	y := p.CenterY + (sy-p.CenterY)/p.Zoom
	dx := (x - p.OriginX) / (p.TileWidth / 2)
	dy := (y - p.OriginY) / (p.TileHeight / 2)
	return gridmap.Point{X: (dy + dx) / 2, Y: (dy - dx) / 2}
}

// TileAt returns the tile under a screen pixel. The tile may lie outside the
// board; callers check bounds.
func (p *Projection) TileAt(sx, sy float64) gridmap.Tile {
	g := p.ToGrid(sx, sy)
	return gridmap.Tile{Col: int(math.Floor(g.X)), Row: int(math.Floor(g.Y))}
}

// Corners returns the screen diamond of a tile: top, right, bottom, left.
func (p *Projection) Corners(t gridmap.Tile) [4][2]float64 {
	c, r := float64(t.Col), float64(t.Row)
	pts := [4]gridmap.Point{{X: c, Y: r}, {X: c + 1, Y: r}, {X: c + 1, Y: r + 1}, {X: c, Y: r + 1}}
	var out [4][2]float64
	for i, pt := range pts {
		out[i][0], out[i][1] = p.ToScreen(pt)
	}
	return out
}

// Length scales a distance in cells along the x axis of the screen, for
// circles drawn around grid points.
func (p *Projection) Length(cells float64) float64 {
	return cells * p.TileWidth / 2 * p.Zoom
}

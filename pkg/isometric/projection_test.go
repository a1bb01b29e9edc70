package isometric

import (
	"math"
	"testing"

	"spoon-defense/pkg/gridmap"
)

func newTestProjection() *Projection {
	p := New(96, 56, 640, 128, 640, 360)
	p.MinZoom, p.MaxZoom = 0.72, 1.7
	return p
}

func TestToScreenMatchesDiamondLayout(t *testing.T) {
	p := newTestProjection()

	x, y := p.ToScreen(gridmap.Point{X: 0, Y: 0})
	if x != 640 || y != 128 {
		t.Fatalf("origin: got (%v,%v)", x, y)
	}
	x, y = p.ToScreen(gridmap.Point{X: 1, Y: 0})
	if x != 688 || y != 156 {
		t.Fatalf("one column east: got (%v,%v)", x, y)
	}
	x, y = p.ToScreen(gridmap.Point{X: 0, Y: 1})
	if x != 592 || y != 156 {
		t.Fatalf("one row south: got (%v,%v)", x, y)
	}
}

func TestToGridInvertsToScreen(t *testing.T) {
	p := newTestProjection()
	for _, zoom := range []float64{1, 0.72, 1.35} {
		p.SetZoom(zoom)
		for _, pt := range []gridmap.Point{{X: 0.5, Y: 4.5}, {X: 13.2, Y: 6.7}, {X: 3, Y: 0}} {
			sx, sy := p.ToScreen(pt)
			back := p.ToGrid(sx, sy)
			if math.Abs(back.X-pt.X) > 1e-9 || math.Abs(back.Y-pt.Y) > 1e-9 {
				t.Fatalf("zoom %v: %v -> (%v,%v) -> %v", zoom, pt, sx, sy, back)
			}
		}
	}
}

func TestTileAtUsesFloor(t *testing.T) {
	p := newTestProjection()
	center := gridmap.Tile{Col: 5, Row: 3}.Center()
	sx, sy := p.ToScreen(center)
	if got := p.TileAt(sx, sy); got != (gridmap.Tile{Col: 5, Row: 3}) {
		t.Fatalf("got %v", got)
	}
	sx, sy = p.ToScreen(gridmap.Point{X: -0.2, Y: 0.5})
	if got := p.TileAt(sx, sy); got.Col != -1 {
		t.Fatalf("expected column -1 west of the board, got %v", got)
	}
}

func TestSetZoomClamps(t *testing.T) {
	p := newTestProjection()
	cases := []struct{ in, want float64 }{
		{0.1, 0.72},
		{1.2, 1.2},
		{9, 1.7},
	}
	for _, tc := range cases {
		if got := p.SetZoom(tc.in); got != tc.want {
			t.Fatalf("SetZoom(%v) = %v want %v", tc.in, got, tc.want)
		}
	}
	if got := p.SetZoom(math.NaN()); got != 1.7 {
		t.Fatalf("NaN should keep the zoom, got %v", got)
	}
}

func TestCornersFormDiamond(t *testing.T) {
	p := newTestProjection()
	c := p.Corners(gridmap.Tile{Col: 0, Row: 0})
	top, right, bottom, left := c[0], c[1], c[2], c[3]
	if top[0] != bottom[0] || left[1] != right[1] {
		t.Fatalf("corners not symmetric: %v", c)
	}
	if right[0]-left[0] != 96 || bottom[1]-top[1] != 56 {
		t.Fatalf("diamond size: %v x %v", right[0]-left[0], bottom[1]-top[1])
	}
}

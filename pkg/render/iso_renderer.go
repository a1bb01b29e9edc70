package render

import (
	"image/color"
	"math"
	"sort"

	"spoon-defense/internal/app"
	"spoon-defense/internal/config"
	"spoon-defense/pkg/gridmap"
	"spoon-defense/pkg/isometric"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Hover describes the placement preview under the cursor.
type Hover struct {
	Visible bool
	Tile    gridmap.Tile
	Valid   bool
	Range   float64 // cells
}

// IsoRenderer draws the board and a snapshot in isometric projection.
type IsoRenderer struct {
	board    *gridmap.GridMap
	proj     *isometric.Projection
	colors   *MapColors
	fontFace font.Face
	mapImage *ebiten.Image // pre-rendered board
	mapZoom  float64
}

func NewIsoRenderer(board *gridmap.GridMap, proj *isometric.Projection, colors *MapColors, face font.Face, screenWidth, screenHeight int) *IsoRenderer {
	r := &IsoRenderer{
		board:    board,
		proj:     proj,
		colors:   colors,
		fontFace: face,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage redraws the static board into the cached image.
func (r *IsoRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)

	for row := 0; row < r.board.Rows; row++ {
		for col := 0; col < r.board.Cols; col++ {
			r.drawTile(r.mapImage, col, row)
		}
	}

	entry := r.board.Entry()
	wps := r.board.Waypoints()
	r.drawLabel(r.mapImage, "IN", entry)
	if len(wps) > 0 {
		r.drawLabel(r.mapImage, "OUT", wps[len(wps)-1])
	}
	r.mapZoom = r.proj.Zoom
}

func (r *IsoRenderer) drawTile(dst *ebiten.Image, col, row int) {
	tile := gridmap.Tile{Col: col, Row: row}
	corners := r.proj.Corners(tile)
	pts := corners[:]

	fill := r.colors.GrassColor
	switch {
	case r.board.IsTurn(col, row):
		fill = r.colors.RoadTurnColor
	case r.board.IsPath(col, row):
		fill = r.colors.RoadColor
	case (col+row)%2 != 0:
		fill = r.colors.GrassAltColor
	}
	FillPolygon(dst, pts, fill)
	StrokePolygon(dst, pts, r.colors.StrokeWidth, r.colors.StrokeColor)

	// Sparse trees on grass.
	if !r.board.IsPath(col, row) && (col+row)%11 == 0 && row > 1 {
		x, y := r.proj.ToScreen(tile.Center())
		size := float32(r.proj.Length(0.22))
		vector.DrawFilledCircle(dst, float32(x), float32(y)-size, size, WithAlpha(DarkenColor(fill), 0.45), true)
	}
}

func (r *IsoRenderer) drawLabel(dst *ebiten.Image, label string, at gridmap.Point) {
	x, y := r.proj.ToScreen(at)
	b := text.BoundString(r.fontFace, label)
	text.Draw(dst, label, r.fontFace, int(x)-b.Dx()/2, int(y)+b.Dy()/2, r.colors.TextDarkColor)
}

// Draw renders one frame of the snapshot on top of the board.
func (r *IsoRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot, hover Hover) {
	if r.mapZoom != r.proj.Zoom {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, nil)

	for _, v := range snap.Vortexes {
		r.drawVortex(screen, v)
	}
	if hover.Visible {
		r.drawHover(screen, hover)
	}

	// Painter's order: entities further down the screen are drawn last.
	type drawable struct {
		y    float64
		draw func()
	}
	var items []drawable
	for i := range snap.Towers {
		t := snap.Towers[i]
		_, y := r.proj.ToScreen(t.Position)
		items = append(items, drawable{y, func() { r.drawTower(screen, t) }})
	}
	for i := range snap.Enemies {
		e := snap.Enemies[i]
		_, y := r.proj.ToScreen(e.Position)
		items = append(items, drawable{y, func() { r.drawEnemy(screen, e) }})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].y < items[j].y })
	for _, it := range items {
		it.draw()
	}

	towerColors := make(map[string]color.RGBA, len(snap.Towers))
	for _, t := range snap.Towers {
		towerColors[t.DefID] = t.Color
	}
	for _, p := range snap.Projectiles {
		x, y := r.proj.ToScreen(p.Position)
		clr, ok := towerColors[p.TowerDefID]
		if !ok {
			clr = config.TextLightColor
		}
		rad := float32(config.ProjectileRadius * r.proj.Zoom)
		if p.Splash {
			rad *= 1.4
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y)-r.lift(), rad, clr, true)
		vector.StrokeCircle(screen, float32(x), float32(y)-r.lift(), rad, 1, config.TextLightColor, true)
	}
	for _, s := range snap.Shards {
		x, y := r.proj.ToScreen(s.Position)
		vector.DrawFilledCircle(screen, float32(x), float32(y)-r.lift(), float32(3*r.proj.Zoom), WithAlpha(config.BossBarColor, s.Alpha), true)
	}
}

// lift raises bodies above the tile plane.
func (r *IsoRenderer) lift() float32 {
	return float32(10 * r.proj.Zoom)
}

func (r *IsoRenderer) drawTower(dst *ebiten.Image, t app.TowerView) {
	corners := r.proj.Corners(t.Tile)
	cx, cy := r.proj.ToScreen(t.Position)
	// Inset base diamond.
	base := make([][2]float64, 4)
	for i, c := range corners {
		base[i] = [2]float64{cx + (c[0]-cx)*0.7, cy + (c[1]-cy)*0.7}
	}
	body := t.Color
	if t.Disabled {
		body = config.DisabledColor
	}
	FillPolygon(dst, base, DarkenColor(body))

	rad := float32(r.proj.Length(t.Radius))
	x, y := float32(cx), float32(cy)-r.lift()
	vector.DrawFilledCircle(dst, x, y, rad, body, true)
	ring := config.TextLightColor
	if t.Suppressed {
		ring = config.VortexRingColor
	}
	vector.StrokeCircle(dst, x, y, rad, 2, ring, true)

	tip := t.Position.Add(gridmap.Point{X: math.Cos(t.Angle) * 0.42, Y: math.Sin(t.Angle) * 0.42})
	tx, ty := r.proj.ToScreen(tip)
	vector.StrokeLine(dst, x, y, float32(tx), float32(ty)-r.lift(), float32(4*r.proj.Zoom), DarkenColor(body), true)

	if !t.Disabled && t.CooldownRatio > 0 {
		w := rad * 2
		vector.DrawFilledRect(dst, x-rad, y+rad+3, w, 3, config.HealthBackColor, false)
		vector.DrawFilledRect(dst, x-rad, y+rad+3, w*float32(1-t.CooldownRatio), 3, config.TextLightColor, false)
	}
}

func (r *IsoRenderer) drawEnemy(dst *ebiten.Image, e app.EnemyView) {
	cx, cy := r.proj.ToScreen(e.Position)
	rad := float32(r.proj.Length(e.Radius))
	x, y := float32(cx), float32(cy)-r.lift()

	body := e.Color
	if e.Slowed {
		body = MixColor(body, config.SlowTintColor, 0.45)
	}
	if e.Flash > 0 {
		body = MixColor(body, color.RGBA{255, 255, 255, 255}, e.Flash)
	}
	// Shadow.
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), rad*0.8, color.RGBA{0, 0, 0, 50}, true)
	vector.DrawFilledCircle(dst, x, y, rad, body, true)
	if e.IsBoss {
		vector.StrokeCircle(dst, x, y, rad+2, 2, config.BossBarColor, true)
	}

	if e.HealthRatio < 1 || e.IsBoss {
		w := rad * 2
		vector.DrawFilledRect(dst, x-rad, y-rad-7, w, 4, config.HealthBackColor, false)
		vector.DrawFilledRect(dst, x-rad, y-rad-7, w*float32(e.HealthRatio), 4, config.HealthFillColor, false)
	}
}

func (r *IsoRenderer) drawVortex(dst *ebiten.Image, v app.VortexView) {
	pts := r.gridCircle(v.Position, v.Radius)
	FillPolygon(dst, pts, WithAlpha(config.VortexColor, v.RemainingRatio))
	StrokePolygon(dst, pts, 2, WithAlpha(config.VortexRingColor, 0.3+0.7*v.RemainingRatio))
}

func (r *IsoRenderer) drawHover(dst *ebiten.Image, h Hover) {
	corners := r.proj.Corners(h.Tile)
	clr := config.HoverBlockColor
	if h.Valid {
		clr = config.HoverValidColor
	}
	FillPolygon(dst, corners[:], clr)
	if h.Range > 0 {
		StrokePolygon(dst, r.gridCircle(h.Tile.Center(), h.Range), 1.5, WithAlpha(clr, 1.8))
	}
}

// gridCircle projects a circle in grid space; it appears as an ellipse.
func (r *IsoRenderer) gridCircle(center gridmap.Point, radius float64) [][2]float64 {
	const segments = 40
	pts := make([][2]float64, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		x, y := r.proj.ToScreen(gridmap.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)})
		pts[i] = [2]float64{x, y}
	}
	return pts
}

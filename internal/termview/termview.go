// Package termview draws a snapshot onto a character grid. Each board tile
// is two cells wide so the board keeps a roughly square aspect.
package termview

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"spoon-defense/internal/app"
	"spoon-defense/internal/component"
	"spoon-defense/internal/config"
	"spoon-defense/pkg/gridmap"
)

// Canvas is the part of tcell.Screen the view writes to.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

const (
	// TileWidth is the number of terminal columns per board tile.
	TileWidth = 2
	// BoardTop is the first terminal row of the board.
	BoardTop  = 2
	BoardLeft = 1
)

var (
	grassStyle  = tcell.StyleDefault.Foreground(rgb(config.TextDarkColor)).Background(rgb(config.GrassColor))
	roadStyle   = tcell.StyleDefault.Foreground(rgb(config.TextDarkColor)).Background(rgb(config.RoadColor))
	vortexBg    = rgb(config.VortexRingColor)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bossStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// View keeps the cursor and the board it frames.
type View struct {
	board  *gridmap.GridMap
	Cursor gridmap.Tile
}

func New(board *gridmap.GridMap) *View {
	return &View{board: board}
}

// MoveCursor shifts the cursor, keeping it on the board.
func (v *View) MoveCursor(dc, dr int) {
	col, row := v.Cursor.Col+dc, v.Cursor.Row+dr
	if v.board.Contains(col, row) {
		v.Cursor = gridmap.Tile{Col: col, Row: row}
	}
}

// CellOf returns the terminal cell of the left half of a tile.
func CellOf(t gridmap.Tile) (int, int) {
	return BoardLeft + t.Col*TileWidth, BoardTop + t.Row
}

// TileAt maps a terminal cell back to a tile.
func (v *View) TileAt(x, y int) (gridmap.Tile, bool) {
	if x < BoardLeft || y < BoardTop {
		return gridmap.Tile{}, false
	}
	t := gridmap.Tile{Col: (x - BoardLeft) / TileWidth, Row: y - BoardTop}
	return t, v.board.Contains(t.Col, t.Row)
}

func tileOf(p gridmap.Point) gridmap.Tile {
	return gridmap.Tile{Col: int(math.Floor(p.X)), Row: int(math.Floor(p.Y))}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func put(c Canvas, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		c.SetContent(x+i, y, r, nil, style)
	}
}

// Draw renders the HUD, the board and the entities.
func (v *View) Draw(c Canvas, snap *app.Snapshot) {
	v.drawHUD(c, snap)

	bg := map[gridmap.Tile]tcell.Style{}
	for row := 0; row < v.board.Rows; row++ {
		for col := 0; col < v.board.Cols; col++ {
			style, glyph := grassStyle, ' '
			if v.board.IsPath(col, row) {
				style, glyph = roadStyle, '.'
			}
			t := gridmap.Tile{Col: col, Row: row}
			for _, vx := range snap.Vortexes {
				if t.Center().Distance(vx.Position) <= vx.Radius {
					style = style.Background(vortexBg)
				}
			}
			bg[t] = style
			x, y := CellOf(t)
			c.SetContent(x, y, glyph, nil, style)
			c.SetContent(x+1, y, glyph, nil, style)
		}
	}

	for _, t := range snap.Towers {
		style := bg[t.Tile].Foreground(rgb(t.Color)).Bold(true)
		if t.Disabled {
			style = style.Foreground(tcell.ColorGray)
		}
		x, y := CellOf(t.Tile)
		glyph := unicode.ToUpper([]rune(t.DefID + "?")[0])
		c.SetContent(x, y, glyph, nil, style)
		c.SetContent(x+1, y, ']', nil, style)
	}
	for _, e := range snap.Enemies {
		tile := tileOf(e.Position)
		if !v.board.Contains(tile.Col, tile.Row) {
			continue
		}
		glyph := 'o'
		if e.IsBoss {
			glyph = 'B'
		}
		style := bg[tile].Foreground(rgb(e.Color)).Bold(true)
		if e.Slowed {
			style = style.Foreground(tcell.ColorLightBlue)
		}
		x, y := CellOf(tile)
		// the half of the tile follows the fractional position
		if e.Position.X-math.Floor(e.Position.X) >= 0.5 {
			x++
		}
		c.SetContent(x, y, glyph, nil, style)
	}
	for _, p := range snap.Projectiles {
		tile := tileOf(p.Position)
		if !v.board.Contains(tile.Col, tile.Row) {
			continue
		}
		x, y := CellOf(tile)
		c.SetContent(x, y, '*', nil, bg[tile].Foreground(tcell.ColorYellow))
	}

	x, y := CellOf(v.Cursor)
	cursor := bg[v.Cursor].Reverse(true)
	if !v.board.IsBuildable(v.Cursor.Col, v.Cursor.Row) {
		cursor = cursor.Foreground(tcell.ColorRed)
	}
	c.SetContent(x, y, '[', nil, cursor)
	c.SetContent(x+1, y, ']', nil, cursor)

	v.drawFooter(c, snap)
}

func (v *View) drawHUD(c Canvas, snap *app.Snapshot) {
	run := snap.Run
	wave := fmt.Sprintf("%d/%d", run.WaveNumber, run.WaveTotal)
	if run.BossWave {
		wave += " BOSS"
	}
	line := fmt.Sprintf("Gold %-5d Base %d/%-3d Wave %-10s x%.0f", run.Gold, run.BaseHealth, run.MaxBaseHealth, wave, run.TimeMultiplier)
	if run.Paused {
		line += "  PAUSED"
	}
	put(c, BoardLeft, 0, line, hudStyle)
	if snap.Boss != nil {
		width := 20
		filled := int(math.Round(snap.Boss.HealthRatio * float64(width)))
		bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
		put(c, BoardLeft, 1, fmt.Sprintf("%s [%s]", snap.Boss.Name, bar), bossStyle)
	}
}

func (v *View) drawFooter(c Canvas, snap *app.Snapshot) {
	y := BoardTop + v.board.Rows + 1
	x := BoardLeft
	for i, opt := range snap.TowerOptions {
		label := fmt.Sprintf("%d:%s %d", i+1, opt.Name, opt.Cost)
		style := hudStyle
		if !opt.Affordable {
			style = helpStyle
		}
		if opt.Selected {
			style = style.Reverse(true)
		}
		put(c, x, y, label, style)
		x += len([]rune(label)) + 2
	}
	put(c, BoardLeft, y+1, "space wave  enter build  arrows move  f speed  p pause  r restart  q quit", helpStyle)

	switch snap.Run.Outcome {
	case component.Won:
		put(c, BoardLeft, y+2, "Victory! Press r to play again.", bannerStyle)
	case component.Lost:
		put(c, BoardLeft, y+2, "The base fell. Press r to try again.", bannerStyle)
	}
}

// Message is a one-line status shown under the footer.
func Message(c Canvas, board *gridmap.GridMap, text string) {
	put(c, BoardLeft, BoardTop+board.Rows+4, text, hudStyle)
}

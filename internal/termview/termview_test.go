package termview

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"spoon-defense/internal/app"
	"spoon-defense/internal/defs"
	"spoon-defense/internal/logging"
	"spoon-defense/pkg/gridmap"
)

type cell struct {
	r     rune
	style tcell.Style
}

type grid map[[2]int]cell

func (g grid) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	g[[2]int{x, y}] = cell{primary, style}
}

func (g grid) row(y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		if c, ok := g[[2]int{x, y}]; ok {
			b.WriteRune(c.r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func TestTileAtInvertsCellOf(t *testing.T) {
	v := New(gridmap.NewDefault())
	for _, tile := range []gridmap.Tile{{Col: 0, Row: 0}, {Col: 5, Row: 3}, {Col: 13, Row: 8}} {
		x, y := CellOf(tile)
		for dx := 0; dx < TileWidth; dx++ {
			got, ok := v.TileAt(x+dx, y)
			if !ok || got != tile {
				t.Fatalf("TileAt(%d,%d) = %v,%v want %v", x+dx, y, got, ok, tile)
			}
		}
	}
	if _, ok := v.TileAt(0, BoardTop); ok {
		t.Fatal("left margin is not a tile")
	}
	if _, ok := v.TileAt(BoardLeft, BoardTop+9); ok {
		t.Fatal("below the board is not a tile")
	}
}

func TestMoveCursorStaysOnBoard(t *testing.T) {
	v := New(gridmap.NewDefault())
	v.MoveCursor(-1, 0)
	v.MoveCursor(0, -1)
	if v.Cursor != (gridmap.Tile{}) {
		t.Fatalf("cursor left the board: %v", v.Cursor)
	}
	v.MoveCursor(3, 2)
	if v.Cursor != (gridmap.Tile{Col: 3, Row: 2}) {
		t.Fatalf("cursor: got %v", v.Cursor)
	}
}

func TestDrawShowsPathTowersAndHUD(t *testing.T) {
	logging.Discard()
	board := gridmap.NewDefault()
	game := app.NewGame(defs.MustDefault(), board, 5)
	if _, err := game.PlaceTower("cannon", 4, 2); err != nil {
		t.Fatalf("place: %v", err)
	}
	snap := game.Snapshot()

	v := New(board)
	v.Cursor = gridmap.Tile{Col: 0, Row: 0}
	g := grid{}
	v.Draw(g, &snap)

	if hud := g.row(0, 60); !strings.Contains(hud, "Gold 100") || !strings.Contains(hud, "Wave 1/") {
		t.Fatalf("hud: %q", hud)
	}
	x, y := CellOf(gridmap.Tile{Col: 4, Row: 2})
	if g[[2]int{x, y}].r != 'C' {
		t.Fatalf("tower glyph: got %q", g[[2]int{x, y}].r)
	}
	x, y = CellOf(gridmap.Tile{Col: 1, Row: 4})
	if g[[2]int{x, y}].r != '.' {
		t.Fatalf("path glyph: got %q", g[[2]int{x, y}].r)
	}
	x, y = CellOf(v.Cursor)
	if g[[2]int{x, y}].r != '[' {
		t.Fatalf("cursor glyph: got %q", g[[2]int{x, y}].r)
	}
	footer := g.row(BoardTop+board.Rows+1, 80)
	if !strings.Contains(footer, "1:") || !strings.Contains(footer, "2:") {
		t.Fatalf("footer: %q", footer)
	}
}

func TestDrawShowsOutcomeBanner(t *testing.T) {
	logging.Discard()
	board := gridmap.NewDefault()
	game := app.NewGame(defs.MustDefault(), board, 5)
	game.Run().Damage(1000)
	snap := game.Snapshot()

	g := grid{}
	New(board).Draw(g, &snap)
	if banner := g.row(BoardTop+board.Rows+3, 60); !strings.Contains(banner, "base fell") {
		t.Fatalf("banner: %q", banner)
	}
}

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the HUD font.
var Face font.Face = basicfont.Face7x13

func TextWidth(s string) int {
	return text.BoundString(Face, s).Dx()
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, Face, x, y+Face.Metrics().Ascent.Ceil(), clr)
}

// DrawCentered draws s centered on (x, y).
func DrawCentered(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	h := Face.Metrics().Height.Ceil()
	DrawText(dst, s, x-TextWidth(s)/2, y-h/2, clr)
}

// DrawOutlined draws centered text with a one pixel outline.
func DrawOutlined(dst *ebiten.Image, s string, x, y int, clr, outline color.Color) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				DrawCentered(dst, s, x+dx, y+dy, outline)
			}
		}
	}
	DrawCentered(dst, s, x, y, clr)
}

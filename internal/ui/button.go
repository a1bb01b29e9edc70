package ui

import (
	"image"
	"image/color"

	"spoon-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable rectangle with a label.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool
}

func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonOnColor,
	}
}

func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *Button) Draw(dst *ebiten.Image, mouseX, mouseY int) {
	bg := b.BgColor
	switch {
	case b.Disabled:
		bg = config.ButtonOffColor
	case b.Contains(mouseX, mouseY):
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(dst, x, y, w, h, bg, false)
	vector.StrokeRect(dst, x, y, w, h, 2, config.TileStrokeColor, false)
	c := b.Rect.Min.Add(b.Rect.Max).Div(2)
	DrawCentered(dst, b.Text, c.X, c.Y, b.TextColor)
}

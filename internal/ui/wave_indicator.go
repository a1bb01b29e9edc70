package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"spoon-defense/internal/config"
	"spoon-defense/internal/utils"
)

// WaveIndicator shows the wave number in roman numerals.
type WaveIndicator struct {
	X, Y         int
	Color        color.Color
	BossColor    color.Color
	OutlineColor color.Color
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.TextLightColor,
		BossColor:    color.RGBA{255, 90, 90, 255},
		OutlineColor: config.TextDarkColor,
	}
}

func (i *WaveIndicator) Draw(dst *ebiten.Image, number, total int, boss bool) {
	if number <= 0 {
		return
	}
	clr := i.Color
	if boss {
		clr = i.BossColor
	}
	label := fmt.Sprintf("WAVE %s / %s", utils.ToRoman(number), utils.ToRoman(total))
	DrawOutlined(dst, label, i.X, i.Y, clr, i.OutlineColor)
}

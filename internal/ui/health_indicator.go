package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spoon-defense/internal/config"
)

const (
	healthCols          = 10
	healthCircleRadius  = 5.0
	healthCircleSpacing = 3.0
)

var (
	healthHighColor = color.RGBA{90, 150, 255, 255}
	healthLowColor  = color.RGBA{230, 70, 70, 255}
	healthEmpty     = color.RGBA{10, 10, 16, 255}
)

// BaseHealthIndicator shows base health as a grid of pips.
type BaseHealthIndicator struct {
	X, Y float32
}

func NewBaseHealthIndicator(x, y float32) *BaseHealthIndicator {
	return &BaseHealthIndicator{X: x, Y: y}
}

// Draw fills health pips; below half health they all turn red.
func (i *BaseHealthIndicator) Draw(dst *ebiten.Image, health, maxHealth int) {
	DrawText(dst, fmt.Sprintf("BASE %d/%d", health, maxHealth), int(i.X), int(i.Y), config.TextLightColor)

	step := float32(healthCircleRadius*2 + healthCircleSpacing)
	for j := 0; j < maxHealth; j++ {
		row, col := j/healthCols, j%healthCols
		cx := i.X + float32(col)*step + healthCircleRadius
		cy := i.Y + 20 + float32(row)*step + healthCircleRadius

		clr := healthEmpty
		if j < health {
			clr = healthHighColor
			if health*2 <= maxHealth {
				clr = healthLowColor
			}
		}
		vector.DrawFilledCircle(dst, cx, cy, healthCircleRadius, clr, true)
		vector.StrokeCircle(dst, cx, cy, healthCircleRadius, 1, config.TextLightColor, true)
	}
}

package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spoon-defense/internal/config"
)

// StateIndicator is the round "next wave" button. Its color tells whether a
// wave can be started.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

func (i *StateIndicator) Draw(dst *ebiten.Image, stateColor color.Color, label string) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	r := i.Radius * float32(1.0+0.3*math.Exp(-elapsed*8))
	vector.DrawFilledCircle(dst, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(dst, i.X, i.Y, r, 2, config.TextLightColor, true)
	DrawCentered(dst, label, int(i.X), int(i.Y), config.TextLightColor)
}

func (i *StateIndicator) IsClicked(x, y int) bool {
	dx, dy := float32(x)-i.X, float32(y)-i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}

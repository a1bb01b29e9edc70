package ui

import (
	"math"
	"time"

	"spoon-defense/internal/config"
	"spoon-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton draws two bars while running and a play triangle while paused.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size}
}

func (b *PauseButton) Draw(dst *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	s := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	if b.IsPaused {
		x, y, fs := float64(b.X), float64(b.Y), float64(s)
		pts := [][2]float64{{x - fs, y - fs*1.2}, {x - fs, y + fs*1.2}, {x + fs, y}}
		render.FillPolygon(dst, pts, config.ButtonOnColor)
		render.StrokePolygon(dst, pts, 1, config.TextLightColor)
		return
	}
	width, height, spacing := s*0.6, s*2, s*0.4
	for _, left := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(dst, left, b.Y-height/2, width, height, config.ButtonColor, false)
		vector.StrokeRect(dst, left, b.Y-height/2, width, height, 1, config.TextLightColor, false)
	}
}

func (b *PauseButton) IsClicked(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

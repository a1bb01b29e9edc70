package ui

import (
	"image/color"
	"math"
	"time"

	"spoon-defense/internal/config"
	"spoon-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton shows the time multiplier as one or two play triangles and
// pulses when clicked.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size, StateColors: stateColors}
}

func (b *SpeedButton) Draw(dst *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := float64(b.Size) * scale
	clr := toRGBA(b.StateColors[b.CurrentState%len(b.StateColors)])

	height := size * 1.2
	x, y := float64(b.X), float64(b.Y)
	triangle := func(offset float64) [][2]float64 {
		return [][2]float64{{x - size + offset, y - height/2}, {x + offset, y}, {x - size + offset, y + height/2}}
	}
	count := b.CurrentState + 1
	for i := 0; i < count; i++ {
		off := float64(i)*size*0.8 - float64(count-1)*size*0.4 + size/2
		pts := triangle(off)
		render.FillPolygon(dst, pts, clr)
		render.StrokePolygon(dst, pts, 1, config.TextLightColor)
	}
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
}

// SetState syncs the button with a multiplier chosen elsewhere.
func (b *SpeedButton) SetState(state int) {
	b.CurrentState = state % len(b.StateColors)
}

func toRGBA(c color.Color) color.RGBA {
	r, g, bl, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)}
}

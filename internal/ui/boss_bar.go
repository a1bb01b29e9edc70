package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spoon-defense/internal/config"
)

// BossBar is the wide health bar shown while a boss is alive.
type BossBar struct {
	X, Y, Width, Height float32
}

func (b *BossBar) Draw(dst *ebiten.Image, name string, ratio float64) {
	vector.DrawFilledRect(dst, b.X, b.Y, b.Width, b.Height, config.HealthBackColor, false)
	vector.DrawFilledRect(dst, b.X, b.Y, b.Width*float32(ratio), b.Height, config.BossBarColor, false)
	vector.StrokeRect(dst, b.X, b.Y, b.Width, b.Height, 1, config.TextLightColor, false)
	DrawOutlined(dst, name, int(b.X+b.Width/2), int(b.Y+b.Height/2), config.TextDarkColor, config.BossBarColor)
}

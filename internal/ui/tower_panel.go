package ui

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spoon-defense/internal/app"
	"spoon-defense/internal/config"
)

const (
	panelHeight    = 64
	panelMargin    = 8
	buttonWidth    = 150
	animationSpeed = 6.0
)

// TowerPanel is the build menu along the bottom of the screen. It slides in
// while a run is playing and out once it ends.
type TowerPanel struct {
	buttons  []*Button
	ids      []string
	currentY float64
	targetY  float64
}

func NewTowerPanel() *TowerPanel {
	return &TowerPanel{
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight - panelHeight,
	}
}

func (p *TowerPanel) Show() { p.targetY = config.ScreenHeight - panelHeight }
func (p *TowerPanel) Hide() { p.targetY = config.ScreenHeight }

// Contains reports whether a screen point is over the panel.
func (p *TowerPanel) Contains(x, y int) bool {
	return float64(y) >= p.currentY
}

// Update animates the panel and rebuilds its buttons from options.
func (p *TowerPanel) Update(options []app.TowerOption) {
	if diff := p.targetY - p.currentY; diff != 0 {
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else {
			p.currentY += math.Copysign(animationSpeed, diff)
		}
	}

	p.buttons = p.buttons[:0]
	p.ids = p.ids[:0]
	top := int(p.currentY) + panelMargin
	for i, o := range options {
		x := panelMargin + i*(buttonWidth+panelMargin)
		b := NewButton(image.Rect(x, top, x+buttonWidth, top+panelHeight-2*panelMargin),
			fmt.Sprintf("%d %s  %dg", i+1, o.Name, o.Cost))
		b.Disabled = !o.Affordable
		if o.Selected {
			b.BgColor = config.ButtonOnColor
		}
		p.buttons = append(p.buttons, b)
		p.ids = append(p.ids, o.ID)
	}
}

// Click returns the tower id under the cursor, if any.
func (p *TowerPanel) Click(x, y int) (string, bool) {
	for i, b := range p.buttons {
		if b.Contains(x, y) {
			return p.ids[i], true
		}
	}
	return "", false
}

func (p *TowerPanel) Draw(dst *ebiten.Image, mouseX, mouseY int) {
	if p.currentY >= config.ScreenHeight {
		return
	}
	vector.DrawFilledRect(dst, 0, float32(p.currentY), config.ScreenWidth, panelHeight, config.PanelColor, false)
	for _, b := range p.buttons {
		b.Draw(dst, mouseX, mouseY)
	}
}

package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spoon-defense/internal/config"
	"spoon-defense/internal/ui"
)

// MenuState is the title screen. next builds the state to switch to.
type MenuState struct {
	sm          *StateMachine
	next        func() State
	startButton *ui.Button
}

func NewMenuState(sm *StateMachine, next func() State) *MenuState {
	w, h := 220, 48
	x, y := config.ScreenWidth/2-w/2, config.ScreenHeight/2
	return &MenuState{
		sm:          sm,
		next:        next,
		startButton: ui.NewButton(image.Rect(x, y, x+w, y+h), "START"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.startButton.Contains(x, y)
	}
	if start {
		m.sm.SetState(m.next())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawOutlined(screen, "SPOON DEFENSE", config.ScreenWidth/2, config.ScreenHeight/2-80, config.BossBarColor, config.TextDarkColor)
	ui.DrawCentered(screen, "space: next wave   1-3: tower   F: speed   P: pause   R: restart", config.ScreenWidth/2, config.ScreenHeight/2-40, config.TextLightColor)
	x, y := ebiten.CursorPosition()
	m.startButton.Draw(screen, x, y)
}

func (m *MenuState) Exit() {}

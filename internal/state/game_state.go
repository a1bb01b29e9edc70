package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spoon-defense/internal/app"
	"spoon-defense/internal/component"
	"spoon-defense/internal/config"
	"spoon-defense/internal/event"
	"spoon-defense/internal/logging"
	"spoon-defense/internal/system"
	"spoon-defense/internal/ui"
	"spoon-defense/pkg/isometric"
	"spoon-defense/pkg/render"
)

var (
	goodColor = color.RGBA{133, 242, 155, 255}
	warnColor = color.RGBA{255, 200, 90, 255}
	badColor  = color.RGBA{255, 110, 110, 255}
)

// GameState plays a run: it forwards input to the game, advances it and
// draws its snapshot.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	queue    *event.Queue
	proj     *isometric.Projection
	renderer *render.IsoRenderer

	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	indicator     *ui.StateIndicator
	health        *ui.BaseHealthIndicator
	waveIndicator *ui.WaveIndicator
	towerPanel    *ui.TowerPanel
	bossBar       *ui.BossBar
	messages      *ui.MessageLog

	snap  app.Snapshot
	hover render.Hover
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	proj := isometric.New(config.IsoTileWidth, config.IsoTileHeight, config.IsoOriginX, config.IsoOriginY,
		config.ScreenWidth/2, config.ScreenHeight/2)
	proj.MinZoom, proj.MaxZoom = config.MinZoom, config.MaxZoom

	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GrassColor:      config.GrassColor,
		GrassAltColor:   config.GrassAltColor,
		RoadColor:       config.RoadColor,
		RoadTurnColor:   config.RoadTurnColor,
		StrokeColor:     config.TileStrokeColor,
		TextDarkColor:   config.TextDarkColor,
		StrokeWidth:     1,
	}

	gs := &GameState{
		sm:            sm,
		game:          game,
		queue:         event.NewQueue(),
		proj:          proj,
		renderer:      render.NewIsoRenderer(game.Board(), proj, mapColors, ui.Face, config.ScreenWidth, config.ScreenHeight),
		speedButton:   ui.NewSpeedButton(config.ScreenWidth-120, 40, 14, config.SpeedStateColors),
		pauseButton:   ui.NewPauseButton(config.ScreenWidth-70, 40, 12),
		indicator:     ui.NewStateIndicator(config.ScreenWidth-180, 40, 24),
		health:        ui.NewBaseHealthIndicator(16, 12),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 20),
		towerPanel:    ui.NewTowerPanel(),
		bossBar:       &ui.BossBar{X: config.ScreenWidth/2 - 200, Y: 40, Width: 400, Height: 16},
		messages:      ui.NewMessageLog(config.ScreenWidth/2, 80),
	}
	game.EventDispatcher.SubscribeAll(gs.queue)
	gs.snap = game.Snapshot()
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) {
	if g.handleKeys() {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.handleUIClick(x, y) {
			if _, isPause := g.sm.Current().(*PauseState); isPause {
				return
			}
		} else {
			g.handleBoardClick(x, y)
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.proj.SetZoom(g.proj.Zoom + wy*config.ZoomStep)
	}

	g.game.Advance(deltaTime * 1000)
	g.drainEvents()
	g.messages.Update(deltaTime)

	g.snap = g.game.Snapshot()
	if g.snap.Run.Outcome == component.Playing {
		g.towerPanel.Show()
	} else {
		g.towerPanel.Hide()
	}
	g.towerPanel.Update(g.snap.TowerOptions)
	g.updateHover()
}

// handleKeys returns true when the state was left.
func (g *GameState) handleKeys() bool {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.pause()
		return true
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.startWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.toggleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.proj.SetZoom(g.proj.Zoom - config.ZoomStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.proj.SetZoom(g.proj.Zoom + config.ZoomStep)
	}

	digits := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}
	order := g.game.Catalog().TowerOrder()
	for i, key := range digits {
		if i < len(order) && inpututil.IsKeyJustPressed(key) {
			g.selectTower(order[i])
		}
	}
	return false
}

// handleUIClick reports whether the click landed on a widget.
func (g *GameState) handleUIClick(x, y int) bool {
	switch {
	case g.speedButton.IsClicked(x, y):
		g.toggleSpeed()
	case g.pauseButton.IsClicked(x, y):
		g.pause()
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
		g.startWave()
	case g.towerPanel.Contains(x, y):
		if id, ok := g.towerPanel.Click(x, y); ok {
			g.selectTower(id)
		}
	default:
		return false
	}
	return true
}

func (g *GameState) handleBoardClick(x, y int) {
	tile := g.proj.TileAt(float64(x), float64(y))
	if !g.game.Board().Contains(tile.Col, tile.Row) {
		return
	}
	if _, err := g.game.PlaceTower("", tile.Col, tile.Row); err != nil && !app.IsRejection(err) {
		logging.Warnf("Place tower: %v", err)
	}
}

func (g *GameState) updateHover() {
	x, y := ebiten.CursorPosition()
	tile := g.proj.TileAt(float64(x), float64(y))
	g.hover = render.Hover{}
	if g.towerPanel.Contains(x, y) || !g.game.Board().Contains(tile.Col, tile.Row) || g.snap.Run.Outcome != component.Playing {
		return
	}
	g.hover = render.Hover{Visible: true, Tile: tile, Valid: g.game.CanPlaceTower(tile.Col, tile.Row)}
	if def, ok := g.game.Catalog().Tower(g.snap.Run.SelectedTower); ok {
		g.hover.Range = system.AcquisitionRange(def.Range)
	}
}

func (g *GameState) startWave() {
	if err := g.game.StartNextWave(); err != nil {
		g.messages.Push(err.Error(), warnColor)
	}
}

func (g *GameState) selectTower(id string) {
	if err := g.game.SetSelectedTowerType(id); err != nil {
		logging.Debugf("Select tower %q: %v", id, err)
	}
}

func (g *GameState) toggleSpeed() {
	g.game.ToggleSpeed()
	g.speedButton.ToggleState()
}

func (g *GameState) pause() {
	if g.snap.Run.Outcome != component.Playing {
		return
	}
	g.togglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) togglePause() {
	g.game.TogglePause()
	g.pauseButton.TogglePause()
}

func (g *GameState) restart() {
	g.game.Restart()
	g.speedButton.SetState(0)
	g.pauseButton.SetPaused(false)
}

// drainEvents turns simulation events into HUD notices.
func (g *GameState) drainEvents() {
	for _, e := range g.queue.Drain() {
		switch data := e.Data.(type) {
		case event.WaveStartedData:
			if data.IsBoss {
				g.messages.Push(fmt.Sprintf("BOSS WAVE: %s", data.BossName), badColor)
			} else {
				g.messages.Push(fmt.Sprintf("Wave %d", data.WaveIndex+1), config.TextLightColor)
			}
		case event.WaveClearedData:
			g.messages.Push(fmt.Sprintf("Wave %d cleared", data.WaveIndex+1), goodColor)
		case event.TowerRejectedData:
			g.messages.Push(data.Reason, warnColor)
		case event.BossAbilityCastData:
			if !data.Skipped {
				g.messages.Push(string(data.Ability)+"!", config.BossBarColor)
			}
		case event.TowerDisabledData:
			g.messages.Push("Tower stunned", warnColor)
		case event.BossDefeatedData:
			g.messages.Push(fmt.Sprintf("%s defeated! +%d", data.Name, data.Reward), goodColor)
		case event.BaseHealthCriticalData:
			g.messages.Push("Base critical!", badColor)
		case event.GameOverData:
			if data.Won {
				g.messages.Push("All waves cleared", goodColor)
			} else {
				g.messages.Push("The base has fallen", badColor)
			}
		}
		if e.Type == event.RunRestarted {
			g.messages.Push("Restarted", config.TextLightColor)
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.snap, g.hover)

	run := g.snap.Run
	g.health.Draw(screen, run.BaseHealth, run.MaxBaseHealth)
	ui.DrawText(screen, fmt.Sprintf("GOLD %d", run.Gold), 16, 64, config.BossBarColor)
	g.waveIndicator.Draw(screen, run.WaveNumber, run.WaveTotal, run.BossWave)

	var indicatorColor color.Color = config.ButtonOffColor
	label := "-"
	switch {
	case run.CanStartWave:
		indicatorColor, label = config.ButtonOnColor, "GO"
	case run.WaveInProgress:
		indicatorColor, label = config.ButtonColor, fmt.Sprint(run.PendingSpawns+len(g.snap.Enemies))
	}
	g.indicator.Draw(screen, indicatorColor, label)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	if g.snap.Boss != nil {
		g.bossBar.Draw(screen, g.snap.Boss.Name, g.snap.Boss.HealthRatio)
	}
	x, y := ebiten.CursorPosition()
	g.towerPanel.Draw(screen, x, y)
	g.messages.Draw(screen)

	if run.Outcome != component.Playing {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 110}, false)
		title, clr := "VICTORY", goodColor
		if run.Outcome == component.Lost {
			title, clr = "DEFEAT", badColor
		}
		ui.DrawOutlined(screen, title, config.ScreenWidth/2, config.ScreenHeight/2-10, clr, config.TextDarkColor)
		ui.DrawCentered(screen, "press R to play again", config.ScreenWidth/2, config.ScreenHeight/2+14, config.TextLightColor)
	}
}

package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"spoon-defense/internal/app"
	"spoon-defense/internal/audio"
	"spoon-defense/internal/config"
	"spoon-defense/internal/defs"
	"spoon-defense/internal/logging"
	"spoon-defense/internal/state"
	"spoon-defense/pkg/gridmap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	catalogDir := flag.String("catalog", "", "directory with enemies/towers/waves/economy JSON (default: built-in)")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	mute := flag.Bool("mute", false, "disable sound")
	volume := flag.Float64("volume", 0.5, "sound volume in [0,1]")
	skipMenu := flag.Bool("skip-menu", false, "start directly in the game")
	flag.Parse()

	logging.Setup(os.Stderr, os.Getenv("LOG_LEVEL"))

	catalog, err := loadCatalog(*catalogDir)
	if err != nil {
		log.Fatal(err)
	}
	game := app.NewGame(catalog, gridmap.NewDefault(), *seed)

	if !*mute {
		player := audio.NewPlayer(*volume)
		if err := player.Init(); err != nil {
			logging.Warnf("Audio disabled: %v", err)
		} else {
			defer player.Close()
			game.EventDispatcher.SubscribeAll(player)
		}
	}

	sm := state.NewStateMachine()
	play := func() state.State { return state.NewGameState(sm, game) }
	if *skipMenu {
		sm.SetState(play())
	} else {
		sm.SetState(state.NewMenuState(sm, play))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Spoon Defense")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

func loadCatalog(dir string) (*defs.Catalog, error) {
	if dir == "" {
		return defs.Default()
	}
	return defs.LoadDir(dir)
}

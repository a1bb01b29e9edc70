// Command td-term plays the game in a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"spoon-defense/internal/app"
	"spoon-defense/internal/config"
	"spoon-defense/internal/defs"
	"spoon-defense/internal/event"
	"spoon-defense/internal/logging"
	"spoon-defense/internal/termview"
	"spoon-defense/pkg/gridmap"
)

const frameMs = 16

type session struct {
	screen tcell.Screen
	game   *app.Game
	view   *termview.View
	events *event.Queue

	message     string
	messageTime time.Time
}

func (s *session) say(format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
	s.messageTime = time.Now()
}

// handleKey returns false when the player quits.
func (s *session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.view.MoveCursor(0, -1)
	case tcell.KeyDown:
		s.view.MoveCursor(0, 1)
	case tcell.KeyLeft:
		s.view.MoveCursor(-1, 0)
	case tcell.KeyRight:
		s.view.MoveCursor(1, 0)
	case tcell.KeyEnter:
		s.build()
	case tcell.KeyRune:
		return s.handleRune(ev.Rune())
	}
	return true
}

func (s *session) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		if err := s.game.StartNextWave(); err != nil {
			s.say("%v", err)
		}
	case 'f':
		s.say("Speed x%.0f", s.game.ToggleSpeed())
	case 'p':
		if s.game.TogglePause() {
			s.say("Paused")
		} else {
			s.say("Resumed")
		}
	case 'r':
		s.game.Restart()
		s.say("New run")
	case 'b':
		s.build()
	case 'h':
		s.view.MoveCursor(-1, 0)
	case 'j':
		s.view.MoveCursor(0, 1)
	case 'k':
		s.view.MoveCursor(0, -1)
	case 'l':
		s.view.MoveCursor(1, 0)
	default:
		if r >= '1' && r <= '9' {
			order := s.game.Catalog().TowerOrder()
			if i := int(r - '1'); i < len(order) {
				if err := s.game.SetSelectedTowerType(order[i]); err != nil {
					s.say("%v", err)
				}
			}
		}
	}
	return true
}

func (s *session) build() {
	c := s.view.Cursor
	if _, err := s.game.PlaceTower("", c.Col, c.Row); err != nil && !errors.Is(err, app.ErrGameOver) {
		s.say("Cannot build: %v", err)
	}
}

func (s *session) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	if tile, ok := s.view.TileAt(x, y); ok {
		s.view.Cursor = tile
		s.build()
	}
}

func (s *session) drainEvents() {
	for _, e := range s.events.Drain() {
		switch e.Type {
		case event.WaveStarted:
			if d, ok := e.Data.(event.WaveStartedData); ok {
				s.say("Wave %d begins", d.WaveIndex+1)
			}
		case event.BossSpawned:
			s.say("A boss approaches")
		case event.TowerDisabled:
			s.say("A tower was knocked out")
		case event.BaseHealthCritical:
			s.say("The base is about to fall")
		}
	}
}

func (s *session) draw() {
	s.screen.Clear()
	snap := s.game.Snapshot()
	s.view.Draw(s.screen, &snap)
	if s.message != "" && time.Since(s.messageTime) < 3*time.Second {
		termview.Message(s.screen, s.game.Board(), s.message)
	}
	s.screen.Show()
}

func main() {
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	catalogDir := flag.String("catalog", "", "directory with enemies/towers/waves/economy JSON (default: built-in)")
	flag.Parse()

	// the terminal owns the output
	logging.Discard()

	var catalog *defs.Catalog
	var err error
	if *catalogDir == "" {
		catalog, err = defs.Default()
	} else {
		catalog, err = defs.LoadDir(*catalogDir)
	}
	if err != nil {
		log.Fatal(err)
	}
	board := gridmap.NewDefault()
	game := app.NewGame(catalog, board, *seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)

	s := &session{screen: screen, game: game, view: termview.New(board), events: event.NewQueue()}
	game.EventDispatcher.SubscribeAll(s.events)

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frameMs * time.Millisecond)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.handleKey(ev) {
					return
				}
			case *tcell.EventMouse:
				s.handleMouse(ev)
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			last = now
			game.Advance(dt * 1000)
			s.drainEvents()
			s.draw()
		}
	}
}

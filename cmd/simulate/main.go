// Command simulate plays a run headless with the autoplay build order and
// reports how it ended.
package main

import (
	"flag"
	"log"
	"os"

	"spoon-defense/internal/app"
	"spoon-defense/internal/autoplay"
	"spoon-defense/internal/defs"
	"spoon-defense/internal/event"
	"spoon-defense/internal/logging"
	"spoon-defense/pkg/gridmap"
)

type tally struct {
	kills, leaks, waves int
}

func (t *tally) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		t.kills++
	case event.EnemyLeaked:
		t.leaks++
	case event.WaveCleared:
		t.waves++
	}
}

func main() {
	catalogDir := flag.String("catalog", "", "directory with enemies/towers/waves/economy JSON (default: built-in)")
	seed := flag.Int64("seed", 1, "random seed, 0 for time based")
	stepMs := flag.Float64("step-ms", 1000.0/60, "simulated milliseconds per tick")
	maxSeconds := flag.Float64("max-seconds", 1800, "give up after this much simulated time")
	flag.Parse()

	logging.Setup(os.Stderr, os.Getenv("LOG_LEVEL"))

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
	if *stepMs <= 0 {
		log.Fatalf("step-ms must be positive, got %v", *stepMs)
	}

	game := app.NewGame(catalog, gridmap.NewDefault(), *seed)
	t := &tally{}
	game.EventDispatcher.SubscribeAll(t)

	player := autoplay.New(game, autoplay.DefaultPlan)
	for !game.Run().Ended() && game.Now() < *maxSeconds {
		player.Tick()
		game.Advance(*stepMs)
	}

	run := game.Run()
	logging.Logger.Info("Simulation finished",
		"outcome", run.Outcome.String(),
		"seed", game.Rng.Seed(),
		"time", game.Now(),
		"waves_cleared", t.waves,
		"kills", t.kills,
		"leaks", t.leaks,
		"towers", player.Placed(),
		"gold", run.Gold,
		"base_health", run.BaseHealth,
	)
	if !run.Ended() {
		os.Exit(2)
	}
}

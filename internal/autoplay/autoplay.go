// Package autoplay drives a game from a fixed build order: it buys the next
// planned tower as soon as it is affordable and starts waves back to back.
package autoplay

import (
	"spoon-defense/internal/app"
	"spoon-defense/internal/logging"
)

// Step is one planned purchase.
type Step struct {
	TowerID  string
	Col, Row int
}

// DefaultPlan covers the first bends of the default path.
var DefaultPlan = []Step{
	{"dart", 2, 3},
	{"dart", 4, 2},
	{"cannon", 4, 5},
	{"frost", 7, 2},
	{"dart", 9, 3},
	{"cannon", 7, 5},
	{"dart", 2, 5},
	{"frost", 9, 5},
	{"cannon", 5, 0},
	{"dart", 10, 7},
	{"cannon", 12, 5},
	{"dart", 6, 3},
}

type Player struct {
	game *app.Game
	plan []Step
	next int
}

func New(game *app.Game, plan []Step) *Player {
	return &Player{game: game, plan: plan}
}

// Reset starts the plan over, for use after a restart.
func (p *Player) Reset() {
	p.next = 0
}

// Placed is how many steps of the plan were bought.
func (p *Player) Placed() int {
	return p.next
}

// Tick buys what the plan allows and starts the next wave when idle. It
// never issues a command the game would reject.
func (p *Player) Tick() {
	run := p.game.Run()
	if run.Ended() {
		return
	}
	for p.next < len(p.plan) {
		step := p.plan[p.next]
		def, ok := p.game.Catalog().Tower(step.TowerID)
		if !ok || !p.game.Board().IsBuildable(step.Col, step.Row) {
			logging.Warnf("Skipping plan step %d: %s at %d,%d", p.next, step.TowerID, step.Col, step.Row)
			p.next++
			continue
		}
		if run.Gold < def.Cost {
			break
		}
		if _, err := p.game.PlaceTower(step.TowerID, step.Col, step.Row); err != nil {
			logging.Warnf("Plan step %d failed: %v", p.next, err)
		}
		p.next++
	}
	if p.game.CanStartWave() {
		if err := p.game.StartNextWave(); err != nil {
			logging.Warnf("Start wave: %v", err)
		}
	}
}

package system

import (
	"testing"

	"spoon-defense/internal/component"
	"spoon-defense/internal/event"
	"spoon-defense/pkg/gridmap"
)

func TestLossIsDetectedAtTheLeakAndIsPermanent(t *testing.T) {
	w := newTestWorld(t)
	w.ecs.Run.BaseHealth = 2
	exit := len(w.board.Waypoints()) - 1
	last, _ := w.board.Waypoint(exit)

	// Three brutes (2 damage each) all one step from the exit.
	for i := 0; i < 3; i++ {
		w.spawn("brute", gridmap.Point{X: last.X - 0.01, Y: last.Y}, exit)
	}
	w.movement.Update(0.5)

	if w.ecs.Run.Outcome != component.Lost {
		t.Fatalf("outcome: got %v want lost", w.ecs.Run.Outcome)
	}
	if w.ecs.Run.BaseHealth != 0 {
		t.Fatalf("base health must clamp at 0, got %d", w.ecs.Run.BaseHealth)
	}
	if w.count(event.EnemyLeaked) != 1 || w.count(event.GameOver) != 1 {
		t.Fatalf("expected one leak and one game over, got %d and %d", w.count(event.EnemyLeaked), w.count(event.GameOver))
	}
	if w.count(event.BaseHealthCritical) != 1 {
		t.Fatal("critical warning should fire once")
	}

	gold := w.ecs.Run.Gold
	w.ecs.Run.Credit(100)
	if w.ecs.Run.Gold != gold || w.ecs.Run.Damage(1) {
		t.Fatal("run state mutated after the run ended")
	}
}

func TestLeaksInOneTickAreAllApplied(t *testing.T) {
	w := newTestWorld(t)
	exit := len(w.board.Waypoints()) - 1
	last, _ := w.board.Waypoint(exit)
	for i := 0; i < 3; i++ {
		w.spawn("scout", gridmap.Point{X: last.X - 0.01, Y: last.Y}, exit)
	}
	w.movement.Update(0.5)
	if w.ecs.Run.BaseHealth != 17 || w.count(event.EnemyLeaked) != 3 {
		t.Fatalf("expected 3 leaks, base health %d", w.ecs.Run.BaseHealth)
	}
	if len(w.ecs.Enemies) != 0 {
		t.Fatal("leaked enemies must be destroyed")
	}
}

func TestSnapToWaypointCarriesLeftover(t *testing.T) {
	w := newTestWorld(t)
	id := w.spawn("scout", w.board.Entry(), 1)

	// One cell per second: 1.5s moves through waypoint 1 and halfway to 2.
	w.movement.Update(1.5)
	if got := w.ecs.Paths[id].WaypointIndex; got != 2 {
		t.Fatalf("waypoint index: got %d want 2", got)
	}
	pos := w.ecs.Positions[id].Point()
	if !approx(pos.X, 2.0, 1e-9) || !approx(pos.Y, 4.5, 1e-9) {
		t.Fatalf("unexpected position %v", pos)
	}
}

func TestSlowScalesSpeedUntilExpiry(t *testing.T) {
	w := newTestWorld(t)
	id := w.spawn("scout", w.board.Entry(), 1)
	w.ecs.SlowEffects[id] = &component.SlowEffect{SlowFactor: 0.5, Until: 1}

	w.ecs.GameTime = 0.5
	w.status.Update(0.5)
	w.movement.Update(0.5)
	if x := w.ecs.Positions[id].X; !approx(x, 0.75, 1e-9) {
		t.Fatalf("slowed move: x=%v want 0.75", x)
	}

	w.ecs.GameTime = 1
	w.status.Update(0.5)
	if _, still := w.ecs.SlowEffects[id]; still {
		t.Fatal("slow should expire at its until time")
	}
	w.movement.Update(0.25)
	if x := w.ecs.Positions[id].X; !approx(x, 1.0, 1e-9) {
		t.Fatalf("full-speed move: x=%v want 1.0", x)
	}
}

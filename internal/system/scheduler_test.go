package system

import (
	"testing"

	"spoon-defense/internal/types"
)

func TestSchedulerRunsInTimeThenInsertionOrder(t *testing.T) {
	s := NewScheduler(nil)
	var got []string
	s.Schedule(2, 0, func(float64) { got = append(got, "late") })
	s.Schedule(1, 0, func(float64) { got = append(got, "first") })
	s.Schedule(1, 0, func(float64) { got = append(got, "second") })

	s.Update(0.5)
	if len(got) != 0 {
		t.Fatalf("nothing is due yet, ran %v", got)
	}
	s.Update(1)
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected order %v", got)
	}
	s.Update(5)
	if len(got) != 3 || got[2] != "late" || s.Pending() != 0 {
		t.Fatalf("late effect not run: %v", got)
	}
}

func TestSchedulerDropsEffectsOfDeadSources(t *testing.T) {
	alive := map[types.EntityID]bool{1: true}
	s := NewScheduler(func(id types.EntityID) bool { return alive[id] })
	ran := 0
	s.Schedule(1, 1, func(float64) { ran++ })
	s.Schedule(1, 2, func(float64) { ran += 10 })

	s.Update(1)
	if ran != 1 {
		t.Fatalf("expected only the live source's effect, ran=%d", ran)
	}
}

func TestSchedulerClear(t *testing.T) {
	s := NewScheduler(nil)
	s.Schedule(1, 0, func(float64) { t.Fatal("cleared effect ran") })
	s.Clear()
	if s.Pending() != 0 || cap(s.queue) != 0 {
		t.Fatalf("clear kept %d entries, cap %d", s.Pending(), cap(s.queue))
	}
	s.Update(10)

	ran := false
	s.Schedule(11, 0, func(float64) { ran = true })
	s.Update(11)
	if !ran {
		t.Fatal("scheduler unusable after clear")
	}
}

func TestSchedulerPassesTickTime(t *testing.T) {
	s := NewScheduler(nil)
	var at float64
	s.Schedule(1, 0, func(now float64) { at = now })
	s.Update(1.3)
	if at != 1.3 {
		t.Fatalf("effect saw now=%v", at)
	}
}

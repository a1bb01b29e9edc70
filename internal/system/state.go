package system

import (
	"spoon-defense/internal/component"
	"spoon-defense/internal/config"
	"spoon-defense/internal/entity"
	"spoon-defense/internal/event"
	"spoon-defense/internal/logging"
)

// StateSystem owns the run-level transitions: the critical base-health
// warning and the win and loss outcomes. It reacts to leak and wave events
// synchronously, so a loss is raised at the leak that caused it.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	announced       bool
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyLeaked, ss)
	eventDispatcher.Subscribe(event.WaveCleared, ss)
	return ss
}

// Close detaches the system from the dispatcher; called before a restart
// replaces it.
func (s *StateSystem) Close() {
	s.eventDispatcher.Unsubscribe(event.EnemyLeaked, s)
	s.eventDispatcher.Unsubscribe(event.WaveCleared, s)
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyLeaked:
		s.checkBaseHealth()
	case event.WaveCleared:
		if data, ok := e.Data.(event.WaveClearedData); ok && data.Last {
			if s.ecs.Run.Finish(component.Won) {
				s.announce()
			}
		}
	}
}

func (s *StateSystem) checkBaseHealth() {
	run := s.ecs.Run
	if !run.CriticalRaised && run.BaseHealth <= config.BaseHealthCriticalThreshold {
		run.CriticalRaised = true
		emit(s.eventDispatcher, s.ecs, event.BaseHealthCritical, event.BaseHealthCriticalData{BaseHealth: run.BaseHealth})
	}
	if run.Outcome == component.Lost {
		s.announce()
	}
}

func (s *StateSystem) announce() {
	if s.announced {
		return
	}
	s.announced = true
	run := s.ecs.Run
	logging.Infof("Run over: %s at wave %d, t=%.2f", run.Outcome, run.WaveIndex+1, s.ecs.GameTime)
	emit(s.eventDispatcher, s.ecs, event.GameOver, event.GameOverData{
		Won:       run.Outcome == component.Won,
		WaveIndex: run.WaveIndex,
	})
}

// Package audio turns simulation events into short synthesized cues.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"spoon-defense/internal/config"
	"spoon-defense/internal/event"
	"spoon-defense/internal/logging"
)

const sampleRate = beep.SampleRate(44100)

type Cue int

const (
	CueNone Cue = iota
	CuePlace
	CueReject
	CueHit
	CueKill
	CueLeak
	CueWave
	CueBoss
	CueSlam
	CueWin
	CueLose
)

// CueFor maps an event to its cue.
func CueFor(e event.Event) Cue {
	switch e.Type {
	case event.TowerPlaced:
		return CuePlace
	case event.TowerRejected:
		return CueReject
	case event.ProjectileImpact:
		return CueHit
	case event.EnemyKilled:
		return CueKill
	case event.EnemyLeaked:
		return CueLeak
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveStartedData); ok && data.IsBoss {
			return CueNone
		}
		return CueWave
	case event.BossSpawned:
		return CueBoss
	case event.TowerDisabled:
		return CueSlam
	case event.GameOver:
		if data, ok := e.Data.(event.GameOverData); ok && data.Won {
			return CueWin
		}
		return CueLose
	}
	return CueNone
}

// Player is an event.Listener that plays cues through the speaker. Impact
// cues are throttled in simulation time.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	lastHit     float64

	// sink receives every cue that passes throttling; tests replace it.
	sink func(Cue)
}

func NewPlayer(volume float64) *Player {
	p := &Player{
		mixer:   &beep.Mixer{},
		volume:  volume,
		lastHit: math.Inf(-1),
	}
	p.sink = p.play
	return p
}

// Init opens the audio device. Without it cues are dropped silently.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

func (p *Player) OnEvent(e event.Event) {
	if e.Type == event.RunRestarted {
		p.mu.Lock()
		p.lastHit = math.Inf(-1)
		p.mu.Unlock()
		return
	}
	cue := CueFor(e)
	if cue == CueNone {
		return
	}
	if cue == CueHit {
		p.mu.Lock()
		if e.Time-p.lastHit < config.HitSoundThrottle {
			p.mu.Unlock()
			return
		}
		p.lastHit = e.Time
		p.mu.Unlock()
	}
	p.sink(cue)
}

func (p *Player) play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	s := build(c, sampleRate)
	if s == nil {
		logging.Warnf("No sound for cue %d", c)
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

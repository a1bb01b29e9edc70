package audio

import (
	"testing"
	"time"

	"spoon-defense/internal/event"
)

func TestHitCuesAreThrottled(t *testing.T) {
	p := NewPlayer(1)
	var got []Cue
	p.sink = func(c Cue) { got = append(got, c) }

	for _, at := range []float64{1.00, 1.05, 1.10, 1.12, 1.30} {
		p.OnEvent(event.Event{Type: event.ProjectileImpact, Time: at})
	}
	// 1.00 plays, 1.05 is inside the window, 1.10 plays, 1.12 is inside, 1.30 plays.
	if len(got) != 3 {
		t.Fatalf("expected 3 hit cues, got %d", len(got))
	}

	p.OnEvent(event.Event{Type: event.RunRestarted, Time: 0})
	p.OnEvent(event.Event{Type: event.ProjectileImpact, Time: 0.01})
	if len(got) != 4 {
		t.Fatal("restart should reset the throttle")
	}
}

func TestOtherCuesAreNotThrottled(t *testing.T) {
	p := NewPlayer(1)
	var got []Cue
	p.sink = func(c Cue) { got = append(got, c) }

	p.OnEvent(event.Event{Type: event.EnemyKilled, Time: 1})
	p.OnEvent(event.Event{Type: event.EnemyKilled, Time: 1})
	p.OnEvent(event.Event{Type: event.EnemySpawned, Time: 1})
	if len(got) != 2 || got[0] != CueKill {
		t.Fatalf("unexpected cues %v", got)
	}
}

func TestCueFor(t *testing.T) {
	cases := []struct {
		e    event.Event
		want Cue
	}{
		{event.Event{Type: event.TowerPlaced}, CuePlace},
		{event.Event{Type: event.TowerRejected}, CueReject},
		{event.Event{Type: event.WaveStarted, Data: event.WaveStartedData{}}, CueWave},
		{event.Event{Type: event.WaveStarted, Data: event.WaveStartedData{IsBoss: true}}, CueNone},
		{event.Event{Type: event.BossSpawned}, CueBoss},
		{event.Event{Type: event.GameOver, Data: event.GameOverData{Won: true}}, CueWin},
		{event.Event{Type: event.GameOver, Data: event.GameOverData{}}, CueLose},
		{event.Event{Type: event.VortexDisruption}, CueNone},
	}
	for _, tc := range cases {
		if got := CueFor(tc.e); got != tc.want {
			t.Fatalf("%s: got %d want %d", tc.e.Type, got, tc.want)
		}
	}
}

func TestEveryCueSynthesizesBoundedSamples(t *testing.T) {
	for c := CuePlace; c <= CueLose; c++ {
		s := build(c, sampleRate)
		if s == nil {
			t.Fatalf("cue %d has no sound", c)
		}
		buf := make([][2]float64, 512)
		total := 0
		for {
			n, ok := s.Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -2 || buf[i][0] > 2 {
					t.Fatalf("cue %d sample out of range: %v", c, buf[i][0])
				}
			}
			total += n
			if !ok || total > sampleRate.N(2*time.Second) {
				break
			}
		}
		if total == 0 || total > sampleRate.N(2*time.Second) {
			t.Fatalf("cue %d produced %d samples", c, total)
		}
	}
}

func TestToneStopsAfterDuration(t *testing.T) {
	s := NewTone(440, 0, 10*time.Millisecond, WaveSine, sampleRate)
	buf := make([][2]float64, sampleRate.N(time.Second))
	n, _ := s.Stream(buf)
	if n != sampleRate.N(10*time.Millisecond) {
		t.Fatalf("streamed %d samples, want %d", n, sampleRate.N(10*time.Millisecond))
	}
	if n2, ok := s.Stream(buf); n2 != 0 || ok {
		t.Fatalf("drained tone returned %d,%v", n2, ok)
	}
}

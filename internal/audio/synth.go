package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// tone is a fixed-length oscillator with an optional linear pitch slide.
type tone struct {
	freq, slide float64 // Hz, Hz per second
	phase       float64
	wave        Wave
	rate        beep.SampleRate
	length, pos int
}

// NewTone streams duration of a wave starting at freq and sliding by slide
// Hz per second.
func NewTone(freq, slide float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, slide: slide, wave: wave, rate: rate, length: rate.N(duration)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		case WaveTriangle:
			v = 1 - 4*math.Abs(t.phase-0.5)
		}
		samples[i][0], samples[i][1] = v, v

		f := t.freq + t.slide*float64(t.pos)/float64(t.rate)
		if f < 0 {
			f = 0
		}
		t.phase += f / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s                      beep.Streamer
	attack, release, total int
	pos                    int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{s: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(duration)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales linear volume through effects.Volume; zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func shaped(freq, slide float64, d time.Duration, w Wave, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewTone(freq, slide, d, w, rate), d, 4*time.Millisecond, d/2, rate)
}

// build synthesizes the streamer for a cue.
func build(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CuePlace:
		return beep.Seq(
			shaped(520, 0, 60*time.Millisecond, WaveTriangle, rate),
			shaped(780, 0, 90*time.Millisecond, WaveTriangle, rate),
		)
	case CueReject:
		return shaped(140, -40, 140*time.Millisecond, WaveSaw, rate)
	case CueHit:
		return withVolume(shaped(900, -2400, 45*time.Millisecond, WaveSquare, rate), 0.35)
	case CueKill:
		return withVolume(shaped(660, 900, 80*time.Millisecond, WaveSine, rate), 0.6)
	case CueLeak:
		return shaped(220, -300, 200*time.Millisecond, WaveSquare, rate)
	case CueWave:
		return beep.Seq(
			shaped(392, 0, 90*time.Millisecond, WaveSine, rate),
			shaped(523, 0, 140*time.Millisecond, WaveSine, rate),
		)
	case CueBoss:
		return beep.Mix(
			shaped(82, 20, 700*time.Millisecond, WaveSaw, rate),
			withVolume(shaped(123, 30, 700*time.Millisecond, WaveSquare, rate), 0.4),
		)
	case CueSlam:
		return shaped(110, -160, 260*time.Millisecond, WaveSquare, rate)
	case CueWin:
		return beep.Seq(
			shaped(523, 0, 120*time.Millisecond, WaveSine, rate),
			shaped(659, 0, 120*time.Millisecond, WaveSine, rate),
			shaped(784, 0, 320*time.Millisecond, WaveSine, rate),
		)
	case CueLose:
		return beep.Seq(
			shaped(330, 0, 160*time.Millisecond, WaveTriangle, rate),
			shaped(262, 0, 160*time.Millisecond, WaveTriangle, rate),
			shaped(196, -60, 420*time.Millisecond, WaveTriangle, rate),
		)
	}
	return nil
}

// Package audio turns game cues into short synthesized sound effects.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a single enveloped oscillator voice. A non-zero slide sweeps the
// frequency linearly to freq+slide over the tone's duration.
type tone struct {
	freq    float64
	slide   float64
	dur     time.Duration
	attack  time.Duration
	release time.Duration
	wave    Wave
	gain    float64
}

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	slide    float64 // Hz added per sample
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return newSweep(freq, 0, duration, wave, rate)
}

func newSweep(freq, slide float64, duration time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	n := rate.N(duration)
	o := &oscillator{
		freq:     freq,
		duration: n,
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(n))),
	}
	if n > 0 {
		o.slide = slide / float64(n)
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.freq += o.slide
		if o.freq < 0 {
			o.freq = 0
		}
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release shape to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with an attack/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att, rel = total/2, total-total/2
	}
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear gain. Zero or less is silent.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	osc := newSweep(t.freq, t.slide, t.dur, t.wave, rate)
	return newVolume(NewEnvelope(osc, t.dur, t.attack, t.release, rate), t.gain)
}

// Cue voicings. Sequential notes play one after another.
var cueTones = map[core.Cue][]tone{
	core.CueJump: {
		{freq: 330, slide: 330, dur: 90 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, wave: WaveSquare, gain: 0.5},
	},
	core.CueDamage: {
		{freq: 140, slide: -60, dur: 180 * time.Millisecond, attack: 5 * time.Millisecond, release: 80 * time.Millisecond, wave: WaveSaw, gain: 0.7},
	},
	core.CueShoot: {
		{freq: 1200, slide: -700, dur: 60 * time.Millisecond, attack: 2 * time.Millisecond, release: 30 * time.Millisecond, wave: WaveSquare, gain: 0.35},
	},
	core.CueEnemyHit: {
		{dur: 110 * time.Millisecond, attack: 2 * time.Millisecond, release: 90 * time.Millisecond, wave: WaveNoise, gain: 0.5},
	},
	core.CueCoin: {
		{freq: 987.77, dur: 60 * time.Millisecond, attack: 3 * time.Millisecond, release: 20 * time.Millisecond, wave: WaveSquare, gain: 0.4},
		{freq: 1318.51, dur: 140 * time.Millisecond, attack: 3 * time.Millisecond, release: 100 * time.Millisecond, wave: WaveSquare, gain: 0.4},
	},
	core.CuePickup: {
		{freq: 523.25, dur: 70 * time.Millisecond, attack: 3 * time.Millisecond, release: 20 * time.Millisecond, wave: WaveSine, gain: 0.6},
		{freq: 659.25, dur: 70 * time.Millisecond, attack: 3 * time.Millisecond, release: 20 * time.Millisecond, wave: WaveSine, gain: 0.6},
		{freq: 783.99, dur: 150 * time.Millisecond, attack: 3 * time.Millisecond, release: 100 * time.Millisecond, wave: WaveSine, gain: 0.6},
	},
	core.CueGameOver: {
		{freq: 392, dur: 200 * time.Millisecond, attack: 5 * time.Millisecond, release: 60 * time.Millisecond, wave: WaveSaw, gain: 0.5},
		{freq: 311.13, dur: 200 * time.Millisecond, attack: 5 * time.Millisecond, release: 60 * time.Millisecond, wave: WaveSaw, gain: 0.5},
		{freq: 261.63, slide: -80, dur: 450 * time.Millisecond, attack: 5 * time.Millisecond, release: 300 * time.Millisecond, wave: WaveSaw, gain: 0.5},
	},
}

// Sound builds the effect for a cue at the given rate and master volume.
// Unknown cues return nil.
func Sound(c core.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	tones, ok := cueTones[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, t.streamer(rate))
	}
	return newVolume(beep.Seq(parts...), volume)
}

// Duration returns how long a cue's effect plays.
func Duration(c core.Cue) time.Duration {
	var d time.Duration
	for _, t := range cueTones[c] {
		d += t.dur
	}
	return d
}

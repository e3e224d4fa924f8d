package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const testRate = beep.SampleRate(44100)

// drain streams s to exhaustion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, w, testRate)
		samples := drain(t, osc)
		assert.Len(t, samples, testRate.N(50*time.Millisecond), "wave %d", w)
		assert.NoError(t, osc.Err())
		for _, s := range samples {
			assert.InDelta(t, 0, s[0], 1.0)
			assert.Equal(t, s[0], s[1], "channels must match")
		}
	}
}

func TestSquareWaveLevels(t *testing.T) {
	samples := drain(t, NewOscillator(220, 20*time.Millisecond, WaveSquare, testRate))
	for _, s := range samples {
		assert.True(t, s[0] == 1 || s[0] == -1, "square sample %f", s[0])
	}
}

func TestEnvelopeShape(t *testing.T) {
	dur := 100 * time.Millisecond
	osc := NewOscillator(0, dur, WaveSquare, testRate) // phase never moves: constant 1
	env := NewEnvelope(osc, dur, 10*time.Millisecond, 10*time.Millisecond, testRate)
	samples := drain(t, env)
	require.Len(t, samples, testRate.N(dur))

	assert.Equal(t, 0.0, samples[0][0], "attack starts silent")
	assert.Equal(t, 1.0, samples[len(samples)/2][0], "sustain is full level")
	assert.Less(t, samples[len(samples)-1][0], 0.01, "release ends near silent")
}

func TestEnvelopeLongerThanDuration(t *testing.T) {
	dur := 10 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, dur, WaveSquare, testRate), dur, time.Second, time.Second, testRate)
	samples := drain(t, env)
	assert.Len(t, samples, testRate.N(dur))
}

func TestSweepMovesFrequency(t *testing.T) {
	o := newSweep(100, 100, 10*time.Millisecond, WaveSine, testRate)
	drain(t, o)
	assert.InDelta(t, 200, o.freq, 0.5)

	o = newSweep(50, -500, 10*time.Millisecond, WaveSine, testRate)
	drain(t, o)
	assert.Equal(t, 0.0, o.freq, "frequency floors at zero")
}

func TestSoundEveryCue(t *testing.T) {
	for i := 0; i < core.CueCount; i++ {
		c := core.Cue(i)
		s := Sound(c, testRate, 0.4)
		require.NotNil(t, s, c.String())
		samples := drain(t, s)
		assert.Len(t, samples, testRate.N(Duration(c)), c.String())
		for _, v := range samples {
			assert.LessOrEqual(t, v[0], 1.0)
			assert.GreaterOrEqual(t, v[0], -1.0)
		}
	}
}

func TestSoundUnknownCue(t *testing.T) {
	assert.Nil(t, Sound(core.Cue(99), testRate, 1))
	assert.Zero(t, Duration(core.Cue(99)))
}

func TestZeroVolumeIsSilent(t *testing.T) {
	samples := drain(t, Sound(core.CueCoin, testRate, 0))
	for _, v := range samples {
		assert.Equal(t, 0.0, v[0])
	}
}

func TestRenderCues(t *testing.T) {
	sounds := renderCues(testRate, 0.4)
	assert.Len(t, sounds, core.CueCount)
	for c, buf := range sounds {
		assert.Equal(t, testRate.N(Duration(c)), buf.Len(), c.String())
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p := NewPlayer(config.AudioConfig{Enabled: false, SampleRate: 44100, Volume: 0.4})
	require.NoError(t, p.Init())
	assert.False(t, p.Enabled())

	// Play and Close are safe on a player that never started.
	p.Play(core.CueJump, core.CueCoin)
	p.Close()
}

func TestNewPlayerDefaultRate(t *testing.T) {
	p := NewPlayer(config.AudioConfig{Enabled: true})
	assert.Equal(t, beep.SampleRate(44100), p.rate)
}

package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// maxVoices bounds how many cue effects may overlap in the mixer.
const maxVoices = 8

// Player plays cue effects through the system speaker. A Player that is
// disabled, or whose speaker failed to open, accepts every call and stays
// silent.
type Player struct {
	mu      sync.Mutex
	cfg     config.AudioConfig
	rate    beep.SampleRate
	mixer   *beep.Mixer
	enabled bool
	started bool
	sounds  map[core.Cue]*beep.Buffer
}

// NewPlayer creates a player. Nothing is opened until Init.
func NewPlayer(cfg config.AudioConfig) *Player {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		cfg:     cfg,
		rate:    beep.SampleRate(rate),
		mixer:   &beep.Mixer{},
		enabled: cfg.Enabled,
	}
}

// Init opens the speaker and starts the mixer. Failure leaves the player
// silent; the returned error is informational.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.started {
		return nil
	}

	p.sounds = renderCues(p.rate, p.cfg.Volume)

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		log.Warn("audio disabled", "err", err)
		p.enabled = false
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	log.Debug("audio started", "rate", int(p.rate), "volume", p.cfg.Volume)
	return nil
}

// Enabled reports whether cues are audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && p.started
}

// SetMuted silences or restores playback without closing the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !muted && p.cfg.Enabled
}

// Play queues the effect for every cue. Calls never block on playback.
func (p *Player) Play(cues ...core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.started {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, c := range cues {
		buf, ok := p.sounds[c]
		if !ok {
			continue
		}
		if p.mixer.Len() >= maxVoices {
			return
		}
		p.mixer.Add(buf.Streamer(0, buf.Len()))
	}
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.started = false
}

// renderCues pre-renders every cue into a buffer so Play only copies.
func renderCues(rate beep.SampleRate, volume float64) map[core.Cue]*beep.Buffer {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	out := make(map[core.Cue]*beep.Buffer, core.CueCount)
	for i := 0; i < core.CueCount; i++ {
		c := core.Cue(i)
		s := Sound(c, rate, volume)
		if s == nil {
			continue
		}
		buf := beep.NewBuffer(format)
		buf.Append(s)
		out[c] = buf
	}
	return out
}

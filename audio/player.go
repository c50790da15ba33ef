package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gaia-snake/parameter"
)

// Player mixes cue sounds into the system speaker
// A player whose speaker failed to initialize stays silent and counts what it would have played
type Player struct {
	mu      sync.Mutex
	config  Config
	mixer   *beep.Mixer
	started bool

	muted  atomic.Bool
	played atomic.Int64
	silent atomic.Int64
}

// NewPlayer creates a stopped player
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	p := &Player{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the speaker and attaches the mixer
// On error the player remains usable in silent mode
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || !p.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Play queues a cue, returning false when nothing reached the speaker
func (p *Player) Play(cue Cue) bool {
	if p.muted.Load() {
		p.silent.Add(1)
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		p.silent.Add(1)
		return false
	}
	s := Sound(cue, p.config)
	if s == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()

	p.played.Add(1)
	return true
}

// SetMuted toggles output without closing the speaker
func (p *Player) SetMuted(muted bool) { p.muted.Store(muted) }

// Muted reports whether output is suppressed
func (p *Player) Muted() bool { return p.muted.Load() }

// Started reports whether the speaker is open
func (p *Player) Started() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}

// Played returns the number of cues sent to the speaker
func (p *Player) Played() int64 { return p.played.Load() }

// Silenced returns the number of cues dropped while muted or stopped
func (p *Player) Silenced() int64 { return p.silent.Load() }

// Close clears pending sounds and releases the speaker
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

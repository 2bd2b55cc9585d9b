package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// DefaultVolume is the starting master volume.
const DefaultVolume = 0.5

// Player mixes the synthesized tracks through the speaker.
type Player struct {
	mu      sync.Mutex
	logger  *log.Logger
	enabled bool // Speaker initialized

	mixer   *beep.Mixer
	volume  *effects.Volume
	ctrl    *beep.Ctrl
	current Track
	level   float64
}

// NewPlayer initializes the speaker. On failure it logs a warning and
// returns a player that tracks requests but stays silent.
func NewPlayer(logger *log.Logger) *Player {
	p := newPlayer(logger)
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio disabled", "error", err)
		return p
	}
	p.enabled = true
	speaker.Play(p.volume)
	return p
}

func newPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mixer := &beep.Mixer{}
	p := &Player{logger: logger, mixer: mixer, level: DefaultVolume}
	p.volume = &effects.Volume{Streamer: mixer, Base: 2}
	p.applyVolume()
	return p
}

// lock guards streamer mutation against the speaker goroutine.
func (p *Player) lock() func() {
	p.mu.Lock()
	if !p.enabled {
		return p.mu.Unlock
	}
	speaker.Lock()
	return func() {
		speaker.Unlock()
		p.mu.Unlock()
	}
}

// Play switches to track t.
func (p *Player) Play(t Track) {
	defer p.lock()()

	if t == p.current {
		return
	}
	p.stopLocked()
	p.current = t
	if t == TrackNone {
		return
	}
	p.ctrl = &beep.Ctrl{Streamer: newMelody(sampleRate, tunes[t])}
	p.mixer.Add(p.ctrl)
}

// SetVolume sets the master volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	defer p.lock()()
	p.level = math.Max(0, math.Min(1, v))
	p.applyVolume()
}

func (p *Player) applyVolume() {
	if p.level <= 0 {
		p.volume.Silent = true
		return
	}
	p.volume.Silent = false
	p.volume.Volume = math.Log2(p.level)
}

// Stop silences playback.
func (p *Player) Stop() {
	defer p.lock()()
	p.stopLocked()
	p.current = TrackNone
}

func (p *Player) stopLocked() {
	if p.ctrl != nil {
		p.ctrl.Paused = true
		p.ctrl = nil
	}
	p.mixer.Clear()
}

// Current returns the track playing.
func (p *Player) Current() Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Enabled reports whether sound actually reaches the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

package sound

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

// Player plays cues through the system speaker. A Player whose Init failed
// (or was never called) stays silent.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	initialized bool
	logger      *log.Logger
}

func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{rate: DefaultSampleRate, volume: volume, logger: logger}
}

// Init opens the audio device. Callers treat the error as non-fatal.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = v
	p.mu.Unlock()
}

// Play starts cue without waiting for it to finish.
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || cue == CueNone {
		return
	}
	s := Streamer(cue, p.rate)
	if s == nil {
		return
	}
	speaker.Play(newVolume(s, p.volume))
	p.logger.Debug("cue", "name", cue)
}

// HandleEvent plays the cue an engine event maps to. It fits Hooks.OnEvent.
func (p *Player) HandleEvent(ev engine.Event) {
	p.Play(CueFor(ev))
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

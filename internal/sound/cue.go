// Package sound synthesises the short feedback cues played on game events.
package sound

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

// DefaultSampleRate is used by both the speaker player and PCM rendering.
const DefaultSampleRate = beep.SampleRate(44100)

type Cue int

const (
	CueNone Cue = iota
	CueClick
	CueExtinguish
	CueFireGrow
	CueSuppress
	CueGameOver
	CueWin
)

var cueNames = [...]string{"none", "click", "extinguish", "fire_grow", "suppress", "game_over", "win"}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// CueFor maps an engine event to the cue it should trigger. Ticket events
// are silent.
func CueFor(ev engine.Event) Cue {
	switch ev.Kind {
	case engine.EventFireSpawned:
		return CueFireGrow
	case engine.EventFireHit:
		return CueClick
	case engine.EventFireExtinguished:
		return CueExtinguish
	case engine.EventFireSuppressed:
		return CueSuppress
	case engine.EventWon:
		return CueWin
	case engine.EventLost:
		return CueGameOver
	}
	return CueNone
}

var (
	gameOverNotes = []float64{400, 340, 280, 180}
	winNotes      = []float64{523, 659, 784, 1047}
)

// Streamer builds a fresh one-shot stream for cue. It returns nil for CueNone.
func Streamer(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueClick:
		d := 80 * time.Millisecond
		return NewDecay(NewSweep(880, 440, d, WaveSine, rate), 0.25, d, rate)

	case CueExtinguish:
		tone := 250 * time.Millisecond
		hiss := 300 * time.Millisecond
		noise := newFilter(NewTone(0, hiss, WaveNoise, rate), highPass, 3000, 3000, hiss, rate)
		return beep.Mix(
			NewDecay(NewSweep(400, 1400, tone, WaveSine, rate), 0.35, tone, rate),
			NewDecay(newVolume(noise, 0.15), 0.3, hiss, rate),
		)

	case CueFireGrow:
		d := 400 * time.Millisecond
		return NewDecay(NewSweep(80, 160, d, WaveSaw, rate), 0.1, d, rate)

	case CueSuppress:
		d := 450 * time.Millisecond
		noise := newFilter(NewTone(0, d, WaveNoise, rate), lowPass, 1200, 300, d, rate)
		return NewDecay(noise, 0.45, d, rate)

	case CueGameOver:
		step := 220 * time.Millisecond
		notes := make([]beep.Streamer, 0, len(gameOverNotes))
		for _, f := range gameOverNotes {
			notes = append(notes, NewDecay(NewTone(f, step, WaveSquare, rate), 0.18, step, rate))
		}
		return beep.Seq(notes...)

	case CueWin:
		step := 130 * time.Millisecond
		tail := 350 * time.Millisecond
		notes := make([]beep.Streamer, 0, len(winNotes))
		for i, f := range winNotes {
			note := NewDecay(NewTone(f, tail, WaveSine, rate), 0.3, tail, rate)
			notes = append(notes, delayed(note, time.Duration(i)*step, rate))
		}
		return beep.Mix(notes...)
	}
	return nil
}

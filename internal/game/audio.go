package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Garsondee/Fire-Sense/internal/sound"
)

// audioOut plays pre-rendered cues through ebiten's audio context.
type audioOut struct {
	ctx  *audio.Context
	bank *sound.Bank
}

// newAudioOut returns nil when audio is disabled; a nil audioOut is silent.
func newAudioOut(enabled bool, volume float64, logger *log.Logger) *audioOut {
	if !enabled {
		return nil
	}
	rate := sound.DefaultSampleRate
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(rate))
	} else if ctx.SampleRate() != int(rate) {
		logger.Warn("audio context sample rate mismatch, running silent", "rate", ctx.SampleRate())
		return nil
	}
	return &audioOut{ctx: ctx, bank: sound.NewBank(rate, volume)}
}

func (a *audioOut) play(cue sound.Cue) {
	if a == nil || cue == sound.CueNone {
		return
	}
	pcm := a.bank.PCM(cue)
	if len(pcm) == 0 {
		return
	}
	a.ctx.NewPlayerFromBytes(pcm).Play()
}

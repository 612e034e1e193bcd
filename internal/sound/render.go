package sound

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// Render drains the cue into 16-bit little-endian interleaved stereo PCM,
// the format ebiten's audio players consume. Volume is linear in [0,1].
func Render(cue Cue, rate beep.SampleRate, volume float64) []byte {
	s := Streamer(cue, rate)
	if s == nil {
		return nil
	}
	s = newVolume(s, volume)

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][ch])))
			}
		}
		if !ok {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// Bank caches rendered cues for one sample rate and volume.
type Bank struct {
	rate   beep.SampleRate
	volume float64
	pcm    map[Cue][]byte
}

func NewBank(rate beep.SampleRate, volume float64) *Bank {
	b := &Bank{rate: rate, volume: volume, pcm: make(map[Cue][]byte)}
	for c := CueClick; c <= CueWin; c++ {
		b.pcm[c] = Render(c, rate, volume)
	}
	return b
}

// PCM returns the cached bytes for cue, or nil for CueNone.
func (b *Bank) PCM(cue Cue) []byte {
	return b.pcm[cue]
}

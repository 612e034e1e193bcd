package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// floorGain is the level exponential ramps decay to, matching -60 dB.
const floorGain = 0.001

// sweep is an oscillator whose frequency moves exponentially from
// startFreq to endFreq over its duration.
type sweep struct {
	startFreq float64
	ratio     float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewSweep creates an oscillator gliding from startFreq to endFreq.
// Equal frequencies give a steady tone.
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	ratio := 1.0
	if startFreq > 0 && endFreq > 0 {
		ratio = endFreq / startFreq
	}
	return &sweep{
		startFreq: startFreq,
		ratio:     ratio,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

// NewTone is a steady-pitch oscillator.
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

func (o *sweep) freqAt(pos int) float64 {
	if o.duration == 0 {
		return o.startFreq
	}
	return o.startFreq * math.Pow(o.ratio, float64(pos)/float64(o.duration))
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
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
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freqAt(o.position) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// decay multiplies a stream by a gain falling exponentially from peak to
// floorGain over duration, then ends the stream.
type decay struct {
	streamer beep.Streamer
	peak     float64
	position int
	total    int
}

// NewDecay shapes s with an exponential fade starting at peak.
func NewDecay(s beep.Streamer, peak float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, peak: peak, total: rate.N(duration)}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		g := e.peak * math.Pow(floorGain/e.peak, float64(e.position)/float64(e.total))
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

type filterMode int

const (
	lowPass filterMode = iota
	highPass
)

// onePole is a first-order filter whose cutoff may sweep exponentially.
type onePole struct {
	streamer   beep.Streamer
	mode       filterMode
	fromCutoff float64
	toCutoff   float64
	total      int
	position   int
	rate       beep.SampleRate
	state      [2]float64
}

func newFilter(s beep.Streamer, mode filterMode, from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &onePole{streamer: s, mode: mode, fromCutoff: from, toCutoff: to, total: rate.N(duration), rate: rate}
}

func (f *onePole) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		cutoff := f.fromCutoff
		if f.total > 0 && f.toCutoff != f.fromCutoff {
			cutoff = f.fromCutoff * math.Pow(f.toCutoff/f.fromCutoff, math.Min(1, float64(f.position)/float64(f.total)))
		}
		a := 1 - math.Exp(-2*math.Pi*cutoff/float64(f.rate))
		for ch := 0; ch < 2; ch++ {
			x := samples[i][ch]
			f.state[ch] += a * (x - f.state[ch])
			if f.mode == highPass {
				samples[i][ch] = x - f.state[ch]
			} else {
				samples[i][ch] = f.state[ch]
			}
		}
		f.position++
	}
	return n, ok
}

func (f *onePole) Err() error { return f.streamer.Err() }

// delayed prepends silence so overlapping notes can be mixed.
func delayed(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	if d <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(rate.N(d)), s)
}

// newVolume scales linearly; math.Log2(0) is -Inf so zero means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

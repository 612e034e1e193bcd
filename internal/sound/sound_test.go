package sound

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never drained")
	return nil
}

func TestSweep_LengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		got := drain(t, NewSweep(200, 800, 50*time.Millisecond, wave, rate))
		if len(got) != rate.N(50*time.Millisecond) {
			t.Fatalf("wave %d: expected %d samples, got %d", wave, rate.N(50*time.Millisecond), len(got))
		}
		for i, s := range got {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d: sample %d out of range or unbalanced: %v", wave, i, s)
			}
		}
	}
}

func TestSweep_FrequencyIsExponential(t *testing.T) {
	o := NewSweep(100, 400, time.Second, WaveSine, 1000).(*sweep)
	if f := o.freqAt(500); math.Abs(f-200) > 1e-9 {
		t.Fatalf("midpoint of 100->400 should be 200 Hz, got %f", f)
	}
}

func TestDecay_FallsToFloor(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 100 * time.Millisecond
	got := drain(t, NewDecay(NewTone(0, d, WaveSquare, rate), 0.5, d, rate))
	if math.Abs(got[0][0]) != 0.5 {
		t.Fatalf("first sample should sit at peak 0.5, got %f", got[0][0])
	}
	last := math.Abs(got[len(got)-1][0])
	if last > 0.002 {
		t.Fatalf("last sample should be near the floor, got %f", last)
	}
}

func TestRender_ClickLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	pcm := Render(CueClick, rate, 1)
	want := rate.N(80*time.Millisecond) * 4
	if len(pcm) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(pcm))
	}
}

func TestRender_AllCues(t *testing.T) {
	rate := beep.SampleRate(22050)
	ms := func(n int) int { return rate.N(time.Duration(n) * time.Millisecond) }
	wantFrames := map[Cue]int{
		CueClick:      ms(80),
		CueExtinguish: ms(300),
		CueFireGrow:   ms(400),
		CueSuppress:   ms(450),
		CueGameOver:   4 * ms(220),
		CueWin:        ms(390) + ms(350),
	}
	for cue, want := range wantFrames {
		pcm := Render(cue, rate, 0.8)
		if len(pcm)%4 != 0 {
			t.Fatalf("%s: frame misaligned, %d bytes", cue, len(pcm))
		}
		if got := len(pcm) / 4; got != want {
			t.Fatalf("%s: expected %d frames, got %d", cue, want, got)
		}
		var peak int16
		for i := 0; i+1 < len(pcm); i += 2 {
			v := int16(binary.LittleEndian.Uint16(pcm[i:]))
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		if peak == 0 {
			t.Fatalf("%s rendered silence", cue)
		}
	}
	if Render(CueNone, rate, 1) != nil {
		t.Fatal("CueNone should render nothing")
	}
}

func TestRender_ZeroVolumeIsSilent(t *testing.T) {
	for _, b := range Render(CueWin, 8000, 0) {
		if b != 0 {
			t.Fatal("expected all-zero PCM at volume 0")
		}
	}
}

func TestCueFor(t *testing.T) {
	cases := map[engine.EventKind]Cue{
		engine.EventFireSpawned:      CueFireGrow,
		engine.EventFireHit:          CueClick,
		engine.EventFireExtinguished: CueExtinguish,
		engine.EventFireSuppressed:   CueSuppress,
		engine.EventWon:              CueWin,
		engine.EventLost:             CueGameOver,
		engine.EventTicketArmed:      CueNone,
		engine.EventTicketExpired:    CueNone,
	}
	for kind, want := range cases {
		if got := CueFor(engine.Event{Kind: kind}); got != want {
			t.Errorf("CueFor(%s) = %s, want %s", kind, got, want)
		}
	}
}

func TestPlayer_SilentWithoutInit(t *testing.T) {
	p := NewPlayer(1, nil)
	if p.Enabled() {
		t.Fatal("player should start disabled")
	}
	p.Play(CueWin)
	p.HandleEvent(engine.Event{Kind: engine.EventWon})
	p.Close()
}

func TestBank(t *testing.T) {
	b := NewBank(8000, 0.5)
	if len(b.PCM(CueClick)) == 0 || b.PCM(CueNone) != nil {
		t.Fatal("bank should hold every playable cue and nothing for CueNone")
	}
}

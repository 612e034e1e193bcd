package engine

import (
	"errors"
	"testing"
	"time"
)

func TestEngine_StartUnknownLevel(t *testing.T) {
	e := New(WithSeed(1))
	err := e.Start(Level(7))
	if !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
	if e.Running() {
		t.Fatal("engine must stay idle after a failed start")
	}
}

func TestEngine_IdleCommandsAreNoOps(t *testing.T) {
	e := New(WithSeed(1))
	if _, err := e.Session(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	e.Frame(time.Now())
	e.Step(1)
	if res := e.OnFireClicked(1); res.Outcome != ClickIgnored {
		t.Fatalf("expected ignored click, got %s", res.Outcome)
	}
	if res := e.OnSuppressTriggered(1); res.Suppressed {
		t.Fatal("expected ignored suppress")
	}
	if e.Log() != nil {
		t.Fatal("expected nil log when idle")
	}
	if sn := e.Snapshot(); sn.SessionID != "" || sn.Fires != nil {
		t.Fatalf("expected zero snapshot, got %+v", sn)
	}
}

func TestEngine_FrameUsesClockDeltas(t *testing.T) {
	e := New(WithSeed(1))
	if err := e.Start(LevelManual); err != nil {
		t.Fatal(err)
	}
	s, _ := e.Session()
	t0 := time.Unix(1000, 0)

	e.Frame(t0)
	if s.Elapsed() != 0 {
		t.Fatalf("first frame must not advance, elapsed=%f", s.Elapsed())
	}
	e.Frame(t0.Add(500 * time.Millisecond))
	if s.Elapsed() != 0.5 {
		t.Fatalf("expected 0.5s elapsed, got %f", s.Elapsed())
	}
	e.Frame(t0.Add(100 * time.Millisecond))
	if s.Elapsed() != 0.5 {
		t.Fatalf("backwards timestamp must not advance, elapsed=%f", s.Elapsed())
	}
	e.Frame(t0.Add(1200 * time.Millisecond))
	if len(s.Fires()) != 1 {
		t.Fatalf("expected first spawn after 1.1s of frames, got %d fires", len(s.Fires()))
	}
}

func TestEngine_StopDiscardsSession(t *testing.T) {
	var events int
	e := New(WithSeed(1), WithHooks(Hooks{OnEvent: func(Event) { events++ }}))
	if err := e.Start(LevelManual); err != nil {
		t.Fatal(err)
	}
	e.Step(2)
	if events == 0 {
		t.Fatal("expected a spawn event before stop")
	}
	e.Stop()
	before := events
	e.Step(10)
	e.OnFireClicked(1)
	if e.Running() || events != before {
		t.Fatalf("engine must be inert after Stop: running=%v events %d → %d", e.Running(), before, events)
	}
}

func TestEngine_RestartGivesFreshSession(t *testing.T) {
	e := New(WithSeed(1))
	_ = e.Start(LevelManual)
	first, _ := e.Session()
	e.Step(3)
	_ = e.Start(LevelSuppression)
	second, _ := e.Session()
	if first.ID == second.ID {
		t.Fatal("expected a new session id on restart")
	}
	if second.Level() != LevelSuppression || second.Elapsed() != 0 || len(second.Fires()) != 0 {
		t.Fatalf("expected clean level-2 session, got level=%s elapsed=%f fires=%d",
			second.Level(), second.Elapsed(), len(second.Fires()))
	}
}

// A hook that stops the engine mid-dispatch must not break the frame.
func TestEngine_HookMayStopEngine(t *testing.T) {
	var e *Engine
	wins := 0
	e = New(WithSeed(1), WithHooks(Hooks{OnWin: func(int) {
		wins++
		e.Stop()
	}}))
	_ = e.Start(LevelManual)
	s, _ := e.Session()
	s.spawner.Disable()
	for i := 0; i < WinTarget; i++ {
		s.placeFire(50, 30, 10, 1)
	}
	for id := 1; id <= WinTarget; id++ {
		e.OnFireClicked(id)
	}
	if wins != 1 || e.Running() {
		t.Fatalf("expected one win and a stopped engine, wins=%d running=%v", wins, e.Running())
	}
}

func TestEngine_InjectedRandSource(t *testing.T) {
	e := New(WithRand(fixedRand{f: 0.5, n: 2}))
	_ = e.Start(LevelManual)
	e.Step(1)
	s, _ := e.Session()
	if len(s.Fires()) != 1 {
		t.Fatalf("expected one fire, got %d", len(s.Fires()))
	}
	f := s.Fires()[0]
	if f.X != 50 || f.Y != 32 || f.ClicksRequired != 10 {
		t.Fatalf("expected fire at (50,32) with 10 clicks, got (%f,%f) %d", f.X, f.Y, f.ClicksRequired)
	}
}

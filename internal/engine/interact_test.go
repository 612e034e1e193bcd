package engine

import (
	"reflect"
	"testing"
)

func TestClick_FinalClickScoresIntensityTimesTen(t *testing.T) {
	sim := NewSim(WithoutSpawns(), WithFire(50, 30, 40.5, 1))

	res := sim.Engine.OnFireClicked(1)
	if res.Outcome != ClickExtinguished {
		t.Fatalf("expected extinguished, got %s", res.Outcome)
	}
	if res.Points != 405 {
		t.Fatalf("expected floor(40.5*10)=405 points, got %d", res.Points)
	}
	s := sim.Session()
	if s.Score() != 405 || s.Extinguished() != 1 {
		t.Fatalf("expected score=405 extinguished=1, got score=%d extinguished=%d", s.Score(), s.Extinguished())
	}
	if len(s.Fires()) != 0 {
		t.Fatalf("expected fire removed, %d remain", len(s.Fires()))
	}
}

func TestClick_EightClicksOnEightClickFire(t *testing.T) {
	sim := NewSim(WithoutSpawns(), WithFire(50, 30, 8, 8))

	for i := 1; i <= 7; i++ {
		res := sim.Engine.OnFireClicked(1)
		if res.Outcome != ClickHit {
			t.Fatalf("click %d: expected hit, got %s", i, res.Outcome)
		}
		if res.ClicksRemaining != 8-i {
			t.Fatalf("click %d: expected %d remaining, got %d", i, 8-i, res.ClicksRemaining)
		}
	}
	f, ok := sim.Session().Fire(1)
	if !ok {
		t.Fatal("fire removed before the eighth click")
	}
	if f.Intensity != 1 {
		t.Fatalf("expected intensity floored at 1 after repeated clicks, got %f", f.Intensity)
	}

	res := sim.Engine.OnFireClicked(1)
	if res.Outcome != ClickExtinguished {
		t.Fatalf("eighth click: expected extinguished, got %s", res.Outcome)
	}
	if res.Points != 10 {
		t.Fatalf("expected floor(1*10)=10 points, got %d", res.Points)
	}
	if sim.CountEvents(EventFireHit) != 7 || sim.CountEvents(EventFireExtinguished) != 1 {
		t.Fatalf("expected 7 hit + 1 extinguished events, got %d + %d",
			sim.CountEvents(EventFireHit), sim.CountEvents(EventFireExtinguished))
	}
}

func TestClick_ReducesIntensityByThree(t *testing.T) {
	sim := NewSim(WithoutSpawns(), WithFire(50, 30, 20, 5))
	sim.Engine.OnFireClicked(1)
	f, _ := sim.Session().Fire(1)
	if f.Intensity != 17 {
		t.Fatalf("expected intensity 17 after one click, got %f", f.Intensity)
	}
	if f.ClicksRequired != 5 {
		t.Fatalf("clicks required must not change, got %d", f.ClicksRequired)
	}
}

func TestSuppress_RemovesRegardlessOfClicks(t *testing.T) {
	sim := NewSim(WithoutSpawns(), WithFire(50, 30, 30.9, 12))

	res := sim.Engine.OnSuppressTriggered(1)
	if !res.Suppressed {
		t.Fatal("expected fire suppressed")
	}
	if res.Points != 154 {
		t.Fatalf("expected floor(30.9*5)=154 points, got %d", res.Points)
	}
	s := sim.Session()
	if len(s.Fires()) != 0 || s.Extinguished() != 1 || s.Score() != 154 {
		t.Fatalf("unexpected session after suppress: fires=%d extinguished=%d score=%d",
			len(s.Fires()), s.Extinguished(), s.Score())
	}
	if !sim.Log().HasEntry("suppress", "manual", "") {
		t.Fatalf("expected manual suppress log entry:\n%s", sim.Log().Format())
	}
}

func TestUnknownIDs_LeaveStateUnchanged(t *testing.T) {
	sim := NewSim(WithSimLevel(LevelSuppression), WithoutSpawns(),
		WithFire(50, 30, 20, 8), WithTicket(1))
	before := sim.Engine.Snapshot()

	if res := sim.Engine.OnFireClicked(99); res.Outcome != ClickIgnored {
		t.Fatalf("expected ignored click, got %s", res.Outcome)
	}
	if res := sim.Engine.OnSuppressTriggered(99); res.Suppressed {
		t.Fatal("expected ignored suppress")
	}

	after := sim.Engine.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("snapshot changed on unknown ids:\nbefore=%+v\nafter=%+v", before, after)
	}
	if len(sim.Events) != 0 {
		t.Fatalf("expected no events, got %v", sim.Events)
	}
}

func TestClick_ExtinguishClearsMatchingTicket(t *testing.T) {
	sim := NewSim(WithSimLevel(LevelSuppression), WithoutSpawns(),
		WithFire(20, 20, 10, 1), WithFire(60, 40, 10, 1), WithTicket(2))

	sim.Engine.OnFireClicked(1)
	if tk := sim.Session().Ticket(); tk == nil || tk.FireID != 2 {
		t.Fatalf("extinguishing an unrelated fire must keep the ticket, got %+v", tk)
	}
	sim.Engine.OnFireClicked(2)
	if tk := sim.Session().Ticket(); tk != nil {
		t.Fatalf("expected ticket cleared with its fire, got %+v", tk)
	}
}

func TestSuppressActive_WithoutTicketIsNoOp(t *testing.T) {
	sim := NewSim(WithoutSpawns(), WithFire(50, 30, 20, 8))
	if res := sim.Engine.SuppressActive(); res.Suppressed {
		t.Fatal("expected no suppression without an armed ticket")
	}
	if len(sim.Session().Fires()) != 1 {
		t.Fatal("fire must survive")
	}
}

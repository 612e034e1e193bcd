package engine

import "testing"

func TestScenario_TicketAutoSuppressesAfterCountdown(t *testing.T) {
	sim := NewSim(WithSimLevel(LevelSuppression), WithoutSpawns(),
		WithFire(50, 30, 10, 8), WithTicket(1))
	s := sim.Session()

	sim.RunSeconds(29.5)
	if _, ok := s.Fire(1); !ok {
		t.Fatal("fire suppressed before the countdown ran out")
	}
	if tk := s.Ticket(); tk == nil || tk.Remaining != 1 {
		t.Fatalf("expected 1s left on the ticket at 29.5s, got %+v", tk)
	}

	sim.RunSeconds(1)
	if _, ok := s.Fire(1); ok {
		t.Fatalf("expected fire auto-suppressed after 30s:\n%s", sim.Log().Format())
	}
	if s.Ticket() != nil {
		t.Fatal("expected ticket cleared after expiry")
	}
	if s.Extinguished() != 1 {
		t.Fatalf("expected extinguished=1, got %d", s.Extinguished())
	}
	if sim.CountEvents(EventTicketExpired) != 1 {
		t.Fatalf("expected one expiry event, got %d", sim.CountEvents(EventTicketExpired))
	}
	var sup *Event
	for i := range sim.Events {
		if sim.Events[i].Kind == EventFireSuppressed {
			sup = &sim.Events[i]
		}
	}
	if sup == nil || sup.Trigger != TriggerAuto {
		t.Fatalf("expected auto-triggered suppression event, got %+v", sup)
	}
	if !sim.Log().HasEntry("suppress", "auto", "") {
		t.Fatalf("expected auto suppress log entry:\n%s", sim.Log().Format())
	}
}

func TestScenario_TicketReplacementDiscardsCountdown(t *testing.T) {
	sim := NewSim(WithSimLevel(LevelSuppression), WithoutSpawns(),
		WithFire(20, 20, 1, 8), WithTicket(1))
	s := sim.Session()

	sim.RunSeconds(10)
	// A later fire takes over the ticket, as a spawn would.
	f2 := s.placeFire(70, 40, 1, 8)
	s.armTicket(f2.ID)

	// F1's first countdown would have run out at 30s.
	sim.RunSeconds(21.5)
	if _, ok := s.Fire(1); !ok {
		t.Fatalf("replaced ticket still suppressed its fire:\n%s", sim.Log().Format())
	}
	tk := s.Ticket()
	if tk == nil || tk.FireID != f2.ID {
		t.Fatalf("expected ticket on F%d, got %+v", f2.ID, tk)
	}
	if tk.Remaining != 9 {
		t.Fatalf("expected fresh countdown at 9s left, got %d", tk.Remaining)
	}
	if sim.CountEvents(EventTicketReplaced) != 1 {
		t.Fatalf("expected one replacement event, got %d", sim.CountEvents(EventTicketReplaced))
	}
	if s.Extinguished() != 0 {
		t.Fatalf("replacement must not resolve the old ticket, extinguished=%d", s.Extinguished())
	}
}

func TestScenario_SpawnArmsTicketInLevel2(t *testing.T) {
	sim := NewSim(WithSimLevel(LevelSuppression), WithSimSeed(4))
	s := sim.Session()

	sim.RunSeconds(1.5)
	tk := s.Ticket()
	if tk == nil || tk.FireID != 1 || tk.Remaining != 30 {
		t.Fatalf("expected 30s ticket on F1, got %+v", tk)
	}

	sim.RunSeconds(6)
	tk = s.Ticket()
	if tk == nil || tk.FireID != 2 {
		t.Fatalf("expected F2 to take the ticket at 7s, got %+v", tk)
	}
	if !sim.Log().HasEntry("ticket", "replaced", "by F2") {
		t.Fatalf("expected replacement log entry:\n%s", sim.Log().Format())
	}
}

func TestSuppressActive_UsesTicketFire(t *testing.T) {
	sim := NewSim(WithSimLevel(LevelSuppression), WithoutSpawns(),
		WithFire(20, 20, 10, 8), WithFire(70, 40, 10, 8), WithTicket(2))

	res := sim.Engine.SuppressActive()
	if !res.Suppressed || res.FireID != 2 || res.Trigger != TriggerManual {
		t.Fatalf("expected manual suppression of F2, got %+v", res)
	}
	if _, ok := sim.Session().Fire(1); !ok {
		t.Fatal("F1 must be untouched")
	}
	if sim.Session().Ticket() != nil {
		t.Fatal("expected ticket cleared")
	}
}

package engine

import (
	"encoding/json"
	"testing"
)

func TestHealthAndCondition(t *testing.T) {
	cases := []struct {
		damage float64
		health int
		cond   Condition
	}{
		{0, 100, ConditionIntact},
		{24.9, 76, ConditionIntact},
		{25, 75, ConditionScorched},
		{49.99, 51, ConditionScorched},
		{50, 50, ConditionBurning},
		{74.5, 26, ConditionBurning},
		{75, 25, ConditionCritical},
		{99.9, 1, ConditionCritical},
		{100, 0, ConditionCritical},
	}
	for _, c := range cases {
		if h := HealthFor(c.damage); h != c.health {
			t.Errorf("HealthFor(%v) = %d, want %d", c.damage, h, c.health)
		}
		if cond := ConditionFor(c.damage); cond != c.cond {
			t.Errorf("ConditionFor(%v) = %s, want %s", c.damage, cond, c.cond)
		}
	}
}

func TestSnapshot_Fields(t *testing.T) {
	sim := NewSim(WithSimLevel(LevelSuppression), WithoutSpawns(),
		WithFire(20, 10, 30, 9), WithFire(70, 50, 60, 11), WithTicket(2), WithDamage(45))
	sim.Engine.OnFireClicked(1)

	sn := sim.Engine.Snapshot()
	if sn.SessionID != sim.Session().ID.String() {
		t.Fatalf("session id mismatch: %s", sn.SessionID)
	}
	if sn.Level != LevelSuppression || sn.State != StatePlaying {
		t.Fatalf("unexpected level/state: %s/%s", sn.Level, sn.State)
	}
	if sn.Health != 55 || sn.Condition != ConditionScorched {
		t.Fatalf("expected health 55 scorched, got %d %s", sn.Health, sn.Condition)
	}
	if !sn.Smoking() || sn.Danger() {
		t.Fatalf("45 damage: expected smoking without danger, got smoking=%v danger=%v", sn.Smoking(), sn.Danger())
	}
	if len(sn.Fires) != 2 || sn.Fires[0].ID != 1 || sn.Fires[1].ID != 2 {
		t.Fatalf("expected fires [1 2] in spawn order, got %+v", sn.Fires)
	}
	if sn.Fires[0].ClicksRemaining != 8 || sn.Fires[0].ClicksRequired != 9 || sn.Fires[0].Intensity != 27 {
		t.Fatalf("unexpected fire view %+v", sn.Fires[0])
	}
	if sn.Ticket == nil || sn.Ticket.FireID != 2 || sn.Ticket.Remaining != 30 {
		t.Fatalf("unexpected ticket view %+v", sn.Ticket)
	}
	if sn.WinTarget != WinTarget {
		t.Fatalf("expected win target %d, got %d", WinTarget, sn.WinTarget)
	}
}

func TestSnapshot_JSON(t *testing.T) {
	sim := NewSim(WithoutSpawns(), WithFire(20, 10, 30, 9))
	b, err := json.Marshal(sim.Engine.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["state"] != "playing" || raw["condition"] != "intact" {
		t.Fatalf("expected textual state and condition, got %v / %v", raw["state"], raw["condition"])
	}
	if raw["ticket"] != nil {
		t.Fatalf("expected null ticket, got %v", raw["ticket"])
	}

	var back Snapshot
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Fires) != 1 || back.Fires[0].ClicksRequired != 9 {
		t.Fatalf("fires did not survive decoding: %+v", back.Fires)
	}
}

package engine

import "testing"

func TestDetermineOutcome(t *testing.T) {
	cases := []struct {
		name string
		sn   Snapshot
		want SessionOutcome
		desc string
	}{
		{"clean win", Snapshot{State: StateWon, Damage: 10, Condition: ConditionIntact, Extinguished: 8, WinTarget: 8}, OutcomeWon, "won_clean"},
		{"narrow win", Snapshot{State: StateWon, Damage: 90, Condition: ConditionCritical, Extinguished: 8, WinTarget: 8}, OutcomeWon, "won_narrowly"},
		{"one short", Snapshot{State: StateLost, Damage: 100, Extinguished: 7, WinTarget: 8}, OutcomeLost, "lost_one_short"},
		{"overwhelmed", Snapshot{State: StateLost, Damage: 100, Extinguished: 3, WinTarget: 8, Fires: make([]FireView, 6)}, OutcomeLost, "lost_overwhelmed"},
		{"no response", Snapshot{State: StateLost, Damage: 100, WinTarget: 8, Fires: make([]FireView, 3)}, OutcomeLost, "lost_no_response"},
		{"burned down", Snapshot{State: StateLost, Damage: 100, Extinguished: 4, WinTarget: 8, Fires: make([]FireView, 2)}, OutcomeLost, "lost_burned_down"},
		{"in progress", Snapshot{State: StatePlaying, Damage: 30, Condition: ConditionScorched}, OutcomeInProgress, "in_progress_scorched"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := DetermineOutcome(c.sn)
			if r.Outcome != c.want || r.Description != c.desc {
				t.Fatalf("expected %s/%s, got %s/%s", c.want, c.desc, r.Outcome, r.Description)
			}
		})
	}
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

func TestParseLevels(t *testing.T) {
	all, err := parseLevels("all")
	if err != nil || len(all) != 2 {
		t.Fatalf("all: %v %v", all, err)
	}
	one, err := parseLevels("suppression")
	if err != nil || len(one) != 1 || one[0] != engine.LevelSuppression {
		t.Fatalf("suppression: %v %v", one, err)
	}
	if _, err := parseLevels("7"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestAggregateRuns(t *testing.T) {
	runs := []runStats{
		{ended: true, peakDamage: 30, autoSupp: 2, replaced: 1,
			outcome: engine.SessionOutcomeReason{Outcome: engine.OutcomeWon, Score: 500, Elapsed: 40, Description: "won_clean"}},
		{ended: true, peakDamage: 100, autoSupp: 4, replaced: 3,
			outcome: engine.SessionOutcomeReason{Outcome: engine.OutcomeLost, Score: 100, Elapsed: 60, Description: "lost_overwhelmed"}},
		{ended: false, peakDamage: 55,
			outcome: engine.SessionOutcomeReason{Outcome: engine.OutcomeInProgress, Score: 0, Elapsed: 300, Description: "in_progress"}},
	}
	ag := aggregateRuns(runs)
	if ag.wins != 1 || ag.losses != 1 || ag.unfinished != 1 {
		t.Fatalf("counts: %+v", ag)
	}
	if ag.meanElapsed != 50 {
		t.Fatalf("mean elapsed should skip unfinished runs, got %.1f", ag.meanElapsed)
	}
	if ag.meanScore != 200 || ag.peakDamage != 100 {
		t.Fatalf("score/peak: %+v", ag)
	}
	if ag.autoSupp != 6 || ag.replaced != 4 {
		t.Fatalf("ticket totals: %+v", ag)
	}
	if r := ag.winRate(); r < 33.3 || r > 33.4 {
		t.Fatalf("win rate %.2f", r)
	}
}

func TestAggregateRuns_Empty(t *testing.T) {
	ag := aggregateRuns(nil)
	if ag.winRate() != 0 || ag.meanScore != 0 || ag.meanElapsed != 0 {
		t.Fatalf("empty aggregate should be zero: %+v", ag)
	}
}

func TestRunSession_FastClickerWins(t *testing.T) {
	rs := runSession(1, runConfig{
		level: engine.LevelManual, seed: 42, policy: "clicker",
		clickRate: 20, fps: 60, maxSeconds: 120,
	})
	if !rs.ended || rs.outcome.Outcome != engine.OutcomeWon {
		t.Fatalf("expected a win, got %+v", rs.outcome)
	}
	if rs.manualExt != engine.WinTarget || rs.spawned < engine.WinTarget {
		t.Fatalf("extinguished=%d spawned=%d", rs.manualExt, rs.spawned)
	}
	if rs.peakDamage < rs.outcome.Damage {
		t.Fatalf("peak %.1f below final %.1f", rs.peakDamage, rs.outcome.Damage)
	}

	var buf bytes.Buffer
	printRun(&buf, rs)
	printAggregate(&buf, engine.LevelManual, []runStats{rs})
	out := buf.String()
	for _, want := range []string{"outcome=won", "win_rate=100%", "level=manual"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRunSession_IdlePlayerOnSuppressionLevelOnlyReplacesTickets(t *testing.T) {
	rs := runSession(1, runConfig{
		level: engine.LevelSuppression, seed: 8, policy: "idle", fps: 30, maxSeconds: 600,
	})
	if !rs.ended || rs.outcome.Outcome != engine.OutcomeLost {
		t.Fatalf("idle player should lose, got %+v", rs.outcome)
	}
	// Spawns arrive faster than the countdown, so every ticket is replaced
	// before it can fire.
	if rs.replaced == 0 || rs.autoSupp != 0 || rs.expired != 0 {
		t.Fatalf("replaced=%d auto=%d expired=%d", rs.replaced, rs.autoSupp, rs.expired)
	}
	if rs.manualExt != 0 || rs.manualSupp != 0 {
		t.Fatalf("idle player made inputs: ext=%d supp=%d", rs.manualExt, rs.manualSupp)
	}
}

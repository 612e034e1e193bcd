package game

import (
	"strings"
	"testing"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

func TestSessionReport(t *testing.T) {
	sim := engine.NewSim(engine.WithSimLevel(engine.LevelSuppression), engine.WithSimSeed(2))
	sim.RunSeconds(2)

	report := sessionReport(sim.Engine.Snapshot(), sim.Log())
	for _, want := range []string{
		"FireSense session report",
		"level=suppression",
		"state=playing",
		"active fires:",
		"ticket: fire #1",
		"spawn",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestSessionReport_NoLog(t *testing.T) {
	report := sessionReport(engine.Snapshot{}, nil)
	if strings.Contains(report, "log entries") {
		t.Fatal("report without a log should omit the log section")
	}
}

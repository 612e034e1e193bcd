package game

import (
	"strings"
	"testing"

	"github.com/Garsondee/Fire-Sense/internal/engine"
)

func TestEventFeed_RingBuffer(t *testing.T) {
	ef := NewEventFeed()
	for i := 1; i <= feedMaxEntries+5; i++ {
		ef.Add(engine.Event{Kind: engine.EventFireSpawned, FireID: i, Elapsed: float64(i)})
	}
	if ef.Len() != feedMaxEntries {
		t.Fatalf("expected %d entries, got %d", feedMaxEntries, ef.Len())
	}
	recent := ef.Recent()
	if recent[0].Elapsed != 6 || recent[len(recent)-1].Elapsed != float64(feedMaxEntries+5) {
		t.Fatalf("expected oldest 6 and newest %d, got %v..%v", feedMaxEntries+5, recent[0].Elapsed, recent[len(recent)-1].Elapsed)
	}
	ef.Reset()
	if ef.Len() != 0 || len(ef.Recent()) != 0 {
		t.Fatal("reset should empty the feed")
	}
}

func TestDescribeEvent(t *testing.T) {
	cases := map[string]engine.Event{
		"fire #3":        {Kind: engine.EventFireSpawned, FireID: 3},
		"2 left":         {Kind: engine.EventFireHit, FireID: 1, Remaining: 2},
		"+405":           {Kind: engine.EventFireExtinguished, Points: 405},
		"(auto)":         {Kind: engine.EventFireSuppressed, Trigger: engine.TriggerAuto},
		"WON with 900":   {Kind: engine.EventWon, Score: 900},
		"vehicle lost":   {Kind: engine.EventLost},
		"auto-suppress":  {Kind: engine.EventTicketExpired},
		"system dropped": {Kind: engine.EventTicketReplaced},
	}
	for want, ev := range cases {
		if got := describeEvent(ev); !strings.Contains(got, want) {
			t.Errorf("describeEvent(%s) = %q, want it to contain %q", ev.Kind, got, want)
		}
	}
}

package engine

import (
	"testing"
	"time"
)

func TestClock_Delta(t *testing.T) {
	var c Clock
	t0 := time.Unix(500, 0)

	if d := c.Delta(t0); d != 0 {
		t.Fatalf("first delta: expected 0, got %f", d)
	}
	if d := c.Delta(t0.Add(250 * time.Millisecond)); d != 0.25 {
		t.Fatalf("expected 0.25, got %f", d)
	}
	if d := c.Delta(t0); d != 0 {
		t.Fatalf("backwards: expected 0, got %f", d)
	}
	if d := c.Delta(t0.Add(time.Second)); d != 1 {
		t.Fatalf("expected 1 after backwards step, got %f", d)
	}

	c.Reset()
	if d := c.Delta(t0.Add(10 * time.Second)); d != 0 {
		t.Fatalf("after reset: expected 0, got %f", d)
	}
}

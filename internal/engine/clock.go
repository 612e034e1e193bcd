package engine

import "time"

// Clock converts frame timestamps into deltas in seconds.
type Clock struct {
	last    time.Time
	started bool
}

// Delta returns seconds since the previous call. The first call after a
// reset, and any timestamp earlier than the previous one, yield 0.
func (c *Clock) Delta(now time.Time) float64 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d <= 0 {
		return 0
	}
	return d.Seconds()
}

// Reset forgets the previous timestamp.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}

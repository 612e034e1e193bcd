package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownPolicy is returned by ParsePolicy for an unrecognised name.
var ErrUnknownPolicy = errors.New("unknown policy")

// Policy is a scripted player used by the headless runner. Act is called once
// per frame before the engine advances.
type Policy interface {
	Name() string
	Act(e *Engine, dt float64)
}

// IdlePolicy never acts.
type IdlePolicy struct{}

func (IdlePolicy) Name() string { return "idle" }
func (IdlePolicy) Act(_ *Engine, _ float64) {}

// ClickerPolicy clicks at a fixed rate, staying on one fire until it is out
// and then moving to the hottest remaining fire.
type ClickerPolicy struct {
	Rate float64 // clicks per second

	budget float64
	target int
}

func (p *ClickerPolicy) Name() string { return fmt.Sprintf("clicker(%.1f/s)", p.Rate) }

func (p *ClickerPolicy) Act(e *Engine, dt float64) {
	if !e.Playing() || p.Rate <= 0 {
		return
	}
	p.budget += p.Rate * dt
	for p.budget >= 1 && e.Playing() {
		s := e.session
		if _, ok := s.Fire(p.target); !ok {
			p.target = hottest(s.fires)
		}
		if p.target == 0 {
			// Nothing to click; do not bank clicks for later.
			p.budget = 0
			return
		}
		p.budget--
		e.OnFireClicked(p.target)
	}
}

func hottest(fires []*Fire) int {
	best := 0
	bestI := -1.0
	for _, f := range fires {
		if f.Intensity > bestI {
			best, bestI = f.ID, f.Intensity
		}
	}
	return best
}

// SuppressorPolicy presses the suppress control Delay seconds after each
// ticket is armed, optionally clicking in between.
type SuppressorPolicy struct {
	Delay   float64
	Clicker *ClickerPolicy

	watching int
	waited   float64
}

func (p *SuppressorPolicy) Name() string {
	if p.Clicker != nil {
		return fmt.Sprintf("suppressor(%.1fs)+%s", p.Delay, p.Clicker.Name())
	}
	return fmt.Sprintf("suppressor(%.1fs)", p.Delay)
}

func (p *SuppressorPolicy) Act(e *Engine, dt float64) {
	if !e.Playing() {
		return
	}
	if t := e.session.ticket; t != nil {
		if t.FireID != p.watching {
			p.watching = t.FireID
			p.waited = 0
		}
		p.waited += dt
		if p.waited >= p.Delay {
			e.SuppressActive()
		}
	}
	if p.Clicker != nil {
		p.Clicker.Act(e, dt)
	}
}

// ParsePolicy builds a policy by name: idle, clicker or suppressor.
func ParsePolicy(name string, clickRate, delay float64) (Policy, error) {
	switch name {
	case "idle":
		return IdlePolicy{}, nil
	case "clicker":
		return &ClickerPolicy{Rate: clickRate}, nil
	case "suppressor":
		p := &SuppressorPolicy{Delay: delay}
		if clickRate > 0 {
			p.Clicker = &ClickerPolicy{Rate: clickRate}
		}
		return p, nil
	default:
		return nil, fmt.Errorf("policy %q: %w", name, ErrUnknownPolicy)
	}
}

package engine

import (
	"fmt"
	"math"
)

// ClickOutcome describes what a click did.
type ClickOutcome int

const (
	ClickIgnored      ClickOutcome = iota // unknown id or session not playing
	ClickHit                              // fire weakened, still burning
	ClickExtinguished                     // final click put the fire out
)

func (o ClickOutcome) String() string {
	switch o {
	case ClickHit:
		return "hit"
	case ClickExtinguished:
		return "extinguished"
	default:
		return "ignored"
	}
}

// ClickResult reports the effect of one click.
type ClickResult struct {
	Outcome         ClickOutcome
	FireID          int
	ClicksRemaining int
	Points          int
}

// SuppressResult reports the effect of one suppression.
type SuppressResult struct {
	Suppressed bool
	FireID     int
	Trigger    Trigger
	Points     int
}

// Click lands one manual click on a fire. The final click removes the fire
// and scores its intensity as it stood before that click.
func (s *Session) Click(fireID int) ClickResult {
	res := ClickResult{FireID: fireID}
	if s.state != StatePlaying {
		s.logger.Debug("click ignored", "fire_id", fireID, "state", s.state)
		return res
	}
	i := s.indexOf(fireID)
	if i < 0 {
		s.logger.Debug("click ignored", "fire_id", fireID, "reason", "unknown fire")
		s.log.Add(s.tick, fireID, "input", "stale_click", "no such fire", 0)
		return res
	}

	f := s.fires[i]
	before := f.Intensity
	f.ClicksRemaining--
	if f.ClicksRemaining > 0 {
		f.Intensity = math.Max(s.cfg.MinIntensity, f.Intensity-s.cfg.ManualReduction)
		res.Outcome = ClickHit
		res.ClicksRemaining = f.ClicksRemaining
		s.log.Add(s.tick, f.ID, "click", "hit", fmt.Sprintf("%d left", f.ClicksRemaining), f.Intensity)
		s.emit(Event{Kind: EventFireHit, FireID: f.ID, X: f.X, Y: f.Y, Intensity: f.Intensity, Remaining: f.ClicksRemaining})
		return res
	}

	points := int(math.Floor(before * s.cfg.ManualScoreMultiplier))
	s.remove(i)
	s.extinguished++
	s.score += points
	s.clearTicketFor(f.ID, "extinguished")
	res.Outcome = ClickExtinguished
	res.Points = points
	s.log.Add(s.tick, f.ID, "click", "final", fmt.Sprintf("+%d", points), before)
	s.log.Add(s.tick, f.ID, "extinguish", "manual", fmt.Sprintf("intensity %.1f +%d", before, points), float64(points))
	s.emit(Event{Kind: EventFireExtinguished, FireID: f.ID, X: f.X, Y: f.Y, Intensity: before, Points: points})
	s.evaluate()
	return res
}

// Suppress removes a fire regardless of its remaining clicks and scores half
// the manual rate.
func (s *Session) Suppress(fireID int, trigger Trigger) SuppressResult {
	res := SuppressResult{FireID: fireID, Trigger: trigger}
	if s.state != StatePlaying {
		s.logger.Debug("suppress ignored", "fire_id", fireID, "trigger", trigger, "state", s.state)
		return res
	}
	i := s.indexOf(fireID)
	if i < 0 {
		s.logger.Debug("suppress ignored", "fire_id", fireID, "trigger", trigger, "reason", "unknown fire")
		s.log.Add(s.tick, fireID, "input", "stale_suppress", trigger.String(), 0)
		return res
	}

	f := s.remove(i)
	points := int(math.Floor(f.Intensity * s.cfg.SuppressionScoreMultiplier))
	s.extinguished++
	s.score += points
	s.clearTicketFor(f.ID, "suppressed")
	res.Suppressed = true
	res.Points = points
	s.log.Add(s.tick, f.ID, "suppress", trigger.String(), fmt.Sprintf("intensity %.1f +%d", f.Intensity, points), float64(points))
	s.emit(Event{Kind: EventFireSuppressed, FireID: f.ID, X: f.X, Y: f.Y, Intensity: f.Intensity, Points: points, Trigger: trigger})
	s.evaluate()
	return res
}

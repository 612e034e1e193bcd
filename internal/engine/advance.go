package engine

import (
	"fmt"
	"math"
)

// grow applies one step of the growth model:
//
//	i' = min(max, i + rate*dt*(1 + i*feedback))
func grow(intensity, dt float64, cfg LevelConfig) float64 {
	next := intensity + cfg.GrowthRate*dt*(1+intensity*cfg.IntensityFeedback)
	return clampIntensity(next, cfg)
}

// accumulateDamage adds the damage produced by total intensity over dt.
// The result never decreases and never exceeds MaxDamage.
func accumulateDamage(damage, total, dt float64, cfg LevelConfig) float64 {
	if cfg.MaxIntensity <= 0 || total <= 0 || dt <= 0 {
		return damage
	}
	next := damage + (total/cfg.MaxIntensity)*dt*cfg.DamageRate
	if next > MaxDamage {
		next = MaxDamage
	}
	if next < damage {
		return damage
	}
	return next
}

func clampIntensity(v float64, cfg LevelConfig) float64 {
	if math.IsNaN(v) {
		return cfg.MinIntensity
	}
	if v > cfg.MaxIntensity {
		return cfg.MaxIntensity
	}
	if v < cfg.MinIntensity {
		return cfg.MinIntensity
	}
	return v
}

// sanitizeDelta maps negative, NaN and infinite deltas to zero.
func sanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}

// Advance runs the continuous part of a tick: every fire grows, then damage
// accumulates from the post-growth total, then terminal conditions are
// checked. It does not spawn fires or run the suppression countdown.
func (s *Session) Advance(dt float64) {
	dt = sanitizeDelta(dt)
	if s.state != StatePlaying || dt == 0 {
		return
	}
	s.tick++
	s.elapsed += dt

	total := 0.0
	for _, f := range s.fires {
		f.Intensity = grow(f.Intensity, dt, s.cfg)
		total += f.Intensity
		s.log.AddVerbose(s.tick, f.ID, "tick", "intensity", fmt.Sprintf("%.2f", f.Intensity), f.Intensity)
	}
	s.damage = accumulateDamage(s.damage, total, dt, s.cfg)
	s.log.AddVerbose(s.tick, 0, "tick", "damage", fmt.Sprintf("%.2f (total %.1f)", s.damage, total), s.damage)

	s.evaluate()
}

// Update runs one full frame: Advance, then the suppression countdown, then
// any spawns that fell due. Each stage is skipped once the session has left
// Playing.
func (s *Session) Update(dt float64) {
	dt = sanitizeDelta(dt)
	if s.state != StatePlaying {
		return
	}
	s.Advance(dt)
	if s.state != StatePlaying {
		return
	}
	s.tickSuppression(dt)
	for n := s.spawner.Due(dt); n > 0; n-- {
		if s.state != StatePlaying {
			return
		}
		s.spawn()
	}
}

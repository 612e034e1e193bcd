package engine

import (
	"fmt"
	"math"
)

// RandSource is the randomness used for spawn placement and click counts.
// *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// SpawnScheduler decides when fires appear. It accumulates frame time and
// reports how many spawns fell due, so a long frame delivers every spawn it
// covered.
type SpawnScheduler struct {
	cfg       LevelConfig
	rng       RandSource
	untilNext float64
	fired     int
	disabled  bool
}

// NewSpawnScheduler arms the first spawn after the level's start delay.
func NewSpawnScheduler(cfg LevelConfig, rng RandSource) *SpawnScheduler {
	return &SpawnScheduler{
		cfg:       cfg,
		rng:       rng,
		untilNext: cfg.FirstSpawnDelay,
	}
}

// Due advances the scheduler by dt and returns the number of spawns due.
func (sc *SpawnScheduler) Due(dt float64) int {
	if sc.disabled || dt <= 0 {
		return 0
	}
	sc.untilNext -= dt
	if sc.untilNext > 0 {
		return 0
	}
	if sc.cfg.SpawnInterval <= 0 {
		sc.untilNext = math.Inf(1)
		sc.fired++
		return 1
	}
	n := 0
	for sc.untilNext <= 0 {
		n++
		sc.untilNext += sc.cfg.SpawnInterval
	}
	sc.fired += n
	return n
}

// UntilNext returns seconds until the next spawn.
func (sc *SpawnScheduler) UntilNext() float64 {
	return sc.untilNext
}

// Fired returns the number of spawns reported so far.
func (sc *SpawnScheduler) Fired() int {
	return sc.fired
}

// Disable stops all further spawns.
func (sc *SpawnScheduler) Disable() {
	sc.disabled = true
}

// Roll draws the position and click count of the next fire.
func (sc *SpawnScheduler) Roll() (x, y float64, clicks int) {
	x = sc.cfg.MinX + sc.rng.Float64()*(sc.cfg.MaxX-sc.cfg.MinX)
	y = sc.cfg.MinY + sc.rng.Float64()*(sc.cfg.MaxY-sc.cfg.MinY)
	clicks = sc.cfg.ClicksBase
	if sc.cfg.ClicksSpread > 0 {
		clicks += sc.rng.Intn(sc.cfg.ClicksSpread)
	}
	return x, y, clicks
}

// spawn places one rolled fire and, in suppression levels, arms a ticket on it.
func (s *Session) spawn() *Fire {
	x, y, clicks := s.spawner.Roll()
	f := s.placeFire(x, y, s.cfg.InitialIntensity, clicks)
	s.log.Add(s.tick, f.ID, "spawn", "fire",
		fmt.Sprintf("at (%.0f%%,%.0f%%) clicks=%d", f.X, f.Y, clicks), f.Intensity)
	s.emit(Event{Kind: EventFireSpawned, FireID: f.ID, X: f.X, Y: f.Y, Intensity: f.Intensity, Remaining: clicks})
	if s.cfg.SuppressionEnabled {
		s.armTicket(f.ID)
	}
	return f
}

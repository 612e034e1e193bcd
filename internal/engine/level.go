package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxDamage is the structural damage at which a session is lost.
const MaxDamage = 100.0

// WinTarget is the number of fires that must be put out to win a level.
const WinTarget = 8

// ErrUnknownLevel is returned for a level number with no configuration.
var ErrUnknownLevel = errors.New("unknown level")

// Level selects a level configuration.
type Level int

const (
	LevelManual      Level = 1 // click-only extinguishing
	LevelSuppression Level = 2 // adds the delayed suppression ticket
)

func (l Level) String() string {
	switch l {
	case LevelManual:
		return "manual"
	case LevelSuppression:
		return "suppression"
	default:
		return "unknown"
	}
}

// ParseLevel accepts a level number ("1", "2") or name ("manual", "suppression").
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range Levels() {
		if s == l.String() {
			return l, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse level %q: %w", s, ErrUnknownLevel)
	}
	l := Level(n)
	if _, err := ConfigFor(l); err != nil {
		return 0, err
	}
	return l, nil
}

// LevelConfig holds the tuning constants of one level. All durations are in
// seconds and all positions in percent of the scene.
type LevelConfig struct {
	Level Level  `json:"level"`
	Name  string `json:"name"`

	FirstSpawnDelay float64 `json:"first_spawn_delay"`
	SpawnInterval   float64 `json:"spawn_interval"`
	MinX            float64 `json:"min_x"`
	MaxX            float64 `json:"max_x"`
	MinY            float64 `json:"min_y"`
	MaxY            float64 `json:"max_y"`

	InitialIntensity  float64 `json:"initial_intensity"`
	MinIntensity      float64 `json:"min_intensity"`
	MaxIntensity      float64 `json:"max_intensity"`
	GrowthRate        float64 `json:"growth_rate"`
	IntensityFeedback float64 `json:"intensity_feedback"`
	DamageRate        float64 `json:"damage_rate"`

	ClicksBase   int `json:"clicks_base"`
	ClicksSpread int `json:"clicks_spread"` // clicks required = base + [0, spread)

	ManualReduction            float64 `json:"manual_reduction"`
	ManualScoreMultiplier      float64 `json:"manual_score_multiplier"`
	SuppressionScoreMultiplier float64 `json:"suppression_score_multiplier"`

	SuppressionEnabled   bool `json:"suppression_enabled"`
	SuppressionCountdown int  `json:"suppression_countdown"`

	WinTarget int `json:"win_target"`
}

func baseConfig() LevelConfig {
	return LevelConfig{
		FirstSpawnDelay:            1,
		SpawnInterval:              4.5,
		MinX:                       10,
		MaxX:                       90,
		MinY:                       8,
		MaxY:                       56,
		InitialIntensity:           8,
		MinIntensity:               1,
		MaxIntensity:               100,
		GrowthRate:                 3,
		IntensityFeedback:          0.005,
		DamageRate:                 3,
		ClicksBase:                 8,
		ClicksSpread:               5,
		ManualReduction:            3,
		ManualScoreMultiplier:      10,
		SuppressionScoreMultiplier: 5,
		SuppressionCountdown:       30,
		WinTarget:                  WinTarget,
	}
}

// ConfigFor returns the configuration of a level.
func ConfigFor(l Level) (LevelConfig, error) {
	cfg := baseConfig()
	cfg.Level = l
	cfg.Name = l.String()
	switch l {
	case LevelManual:
	case LevelSuppression:
		cfg.SpawnInterval = 6
		cfg.SuppressionEnabled = true
	default:
		return LevelConfig{}, fmt.Errorf("level %d: %w", int(l), ErrUnknownLevel)
	}
	return cfg, nil
}

// Levels lists the playable levels in order.
func Levels() []Level {
	return []Level{LevelManual, LevelSuppression}
}

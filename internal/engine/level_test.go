package engine

import (
	"errors"
	"testing"
)

func TestConfigFor_Levels(t *testing.T) {
	l1 := mustConfig(t, LevelManual)
	l2 := mustConfig(t, LevelSuppression)

	if l1.SpawnInterval != 4.5 || l2.SpawnInterval != 6 {
		t.Fatalf("unexpected spawn intervals: %v / %v", l1.SpawnInterval, l2.SpawnInterval)
	}
	if l1.SuppressionEnabled || !l2.SuppressionEnabled {
		t.Fatal("only level 2 enables suppression")
	}
	for _, cfg := range []LevelConfig{l1, l2} {
		if cfg.FirstSpawnDelay != 1 || cfg.InitialIntensity != 8 || cfg.MaxIntensity != 100 {
			t.Fatalf("%s: unexpected spawn constants %+v", cfg.Name, cfg)
		}
		if cfg.WinTarget != 8 || cfg.SuppressionCountdown != 30 {
			t.Fatalf("%s: unexpected targets %+v", cfg.Name, cfg)
		}
	}
}

func TestConfigFor_Unknown(t *testing.T) {
	for _, l := range []Level{0, 3, -1} {
		if _, err := ConfigFor(l); !errors.Is(err, ErrUnknownLevel) {
			t.Fatalf("level %d: expected ErrUnknownLevel, got %v", l, err)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"1":           LevelManual,
		"2":           LevelSuppression,
		"manual":      LevelManual,
		" Suppression": LevelSuppression,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"3", "hard", ""} {
		if _, err := ParseLevel(in); !errors.Is(err, ErrUnknownLevel) {
			t.Fatalf("ParseLevel(%q): expected ErrUnknownLevel, got %v", in, err)
		}
	}
}

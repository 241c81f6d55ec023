package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseSnake(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseSnake(embedded) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded YAML and DefaultSnakeConfig() differ:\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("grid:\n  width: 30\nspeed:\n  base_interval: 0.2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Grid.Width != 30 {
		t.Errorf("Grid.Width = %d, expected 30", cfg.Grid.Width)
	}
	if cfg.Speed.BaseInterval != 0.2 {
		t.Errorf("Speed.BaseInterval = %f, expected 0.2", cfg.Speed.BaseInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Grid.Height != 20 {
		t.Errorf("Grid.Height = %d, expected default 20", cfg.Grid.Height)
	}
	if !cfg.Speed.Enabled {
		t.Error("Speed.Enabled should keep its default")
	}
	if cfg.Palette.Head != (RGB{0.0, 0.95, 0.3}) {
		t.Errorf("Palette.Head = %v, expected default", cfg.Palette.Head)
	}
}

func TestLoadSnakeMissingFile(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadSnake() should fail for a missing custom path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadSnakeInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 3\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := LoadSnake(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		ok     bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"narrow grid", func(c *SnakeConfig) { c.Grid.Width = 6 }, false},
		{"flat grid", func(c *SnakeConfig) { c.Grid.Height = 2 }, false},
		{"zero interval", func(c *SnakeConfig) { c.Speed.BaseInterval = 0 }, false},
		{"floor above base", func(c *SnakeConfig) { c.Speed.MinInterval = 0.5 }, false},
		{"negative step", func(c *SnakeConfig) { c.Speed.Step = -0.01 }, false},
		{"zero every_score", func(c *SnakeConfig) { c.Speed.EveryScore = 0 }, false},
		{"zero per_fruit", func(c *SnakeConfig) { c.Scoring.PerFruit = 0 }, false},
		{"negative attempts", func(c *SnakeConfig) { c.Spawn.MaxAttempts = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		interval float64
		enabled  bool
	}{
		{"", 0.15, true},
		{DifficultyEasy, 0.20, true},
		{DifficultyNormal, 0.15, true},
		{DifficultyHard, 0.10, true},
		{DifficultyFixed, 0.15, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)
			if cfg.Speed.BaseInterval != tc.interval {
				t.Errorf("BaseInterval = %f, expected %f", cfg.Speed.BaseInterval, tc.interval)
			}
			if cfg.Speed.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Speed.Enabled, tc.enabled)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(\"nightmare\") should fail")
	}
}

func TestSpeedScheduleNext(t *testing.T) {
	s := NewSpeedSchedule(DefaultSnakeConfig().Speed)

	if got := s.Next(40, 0.15); got != 0.15 {
		t.Errorf("Next(40) = %f, expected unchanged 0.15", got)
	}
	if got := s.Next(50, 0.15); math.Abs(got-0.14) > 1e-9 {
		t.Errorf("Next(50) = %f, expected 0.14", got)
	}
	if got := s.Next(100, 0.05); got != 0.05 {
		t.Errorf("Next at floor = %f, expected 0.05", got)
	}
	if got := s.Next(100, 0.055); got != 0.05 {
		t.Errorf("Next just above floor = %f, expected clamp to 0.05", got)
	}
}

func TestSpeedScheduleMonotonic(t *testing.T) {
	s := NewSpeedSchedule(DefaultSnakeConfig().Speed)
	interval := s.Base()

	for score := 10; score <= 1000; score += 10 {
		next := s.Next(score, interval)
		if next > interval {
			t.Fatalf("interval increased at score %d: %f -> %f", score, interval, next)
		}
		if next < s.Floor() {
			t.Fatalf("interval %f dropped below floor at score %d", next, score)
		}
		interval = next
	}
	if interval != s.Floor() {
		t.Errorf("interval after 100 fruits = %f, expected floor %f", interval, s.Floor())
	}
}

func TestSpeedScheduleDisabled(t *testing.T) {
	cfg := DefaultSnakeConfig().Speed
	cfg.Enabled = false
	s := NewSpeedSchedule(cfg)

	if got := s.Next(50, 0.15); got != 0.15 {
		t.Errorf("disabled schedule changed interval to %f", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := DefaultSnakeConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := ParseSnake(data)
	if err != nil {
		t.Fatalf("ParseSnake(marshalled) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Error("marshalled config did not decode back to the defaults")
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/chad-snake/internal/core"
)

// ErrInvalid is returned (wrapped) by Validate.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Palette PaletteConfig `yaml:"palette"`
	Text    TextConfig    `yaml:"text"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the step interval and its progression.
type SpeedConfig struct {
	Enabled      bool    `yaml:"enabled"`       // false keeps the base interval all game
	BaseInterval float64 `yaml:"base_interval"` // Seconds between steps at start
	MinInterval  float64 `yaml:"min_interval"`  // Floor for the interval
	Step         float64 `yaml:"step"`          // Reduction per speed-up
	EveryScore   int     `yaml:"every_score"`   // Speed up when score is a multiple of this
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	PerFruit int `yaml:"per_fruit"`
}

// SpawnConfig bounds fruit placement.
type SpawnConfig struct {
	// MaxAttempts caps random draws before falling back to scanning free cells.
	// 0 means four times the cell count.
	MaxAttempts int `yaml:"max_attempts"`
}

// RGB is a color as three channels in [0,1].
type RGB [3]float64

// Color converts to core.Color.
func (c RGB) Color() core.Color {
	return core.RGB(c[0], c[1], c[2])
}

// PaletteConfig holds every color the scene uses.
type PaletteConfig struct {
	Background RGB `yaml:"background"`
	Border     RGB `yaml:"border"`
	Checker    RGB `yaml:"checker"`
	Head       RGB `yaml:"head"`
	Body       RGB `yaml:"body"`
	BodyFade   RGB `yaml:"body_fade"`
	Fruit      RGB `yaml:"fruit"`
	Overlay    RGB `yaml:"overlay"`
	Title      RGB `yaml:"title"`
	Text       RGB `yaml:"text"`
	Prompt     RGB `yaml:"prompt"`
	Hint       RGB `yaml:"hint"`
	Alert      RGB `yaml:"alert"`
	Score      RGB `yaml:"score"`
}

// TextConfig holds font pixel sizes in NDC units.
type TextConfig struct {
	TitleScale  float64 `yaml:"title_scale"`
	BannerScale float64 `yaml:"banner_scale"`
	ScoreScale  float64 `yaml:"score_scale"`
	BodyScale   float64 `yaml:"body_scale"`
	PromptScale float64 `yaml:"prompt_scale"`
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Width < MinGridWidth:
		return fmt.Errorf("%w: grid width %d is below %d", ErrInvalid, c.Grid.Width, MinGridWidth)
	case c.Grid.Height < MinGridHeight:
		return fmt.Errorf("%w: grid height %d is below %d", ErrInvalid, c.Grid.Height, MinGridHeight)
	case c.Speed.BaseInterval <= 0:
		return fmt.Errorf("%w: base interval must be positive", ErrInvalid)
	case c.Speed.MinInterval <= 0 || c.Speed.MinInterval > c.Speed.BaseInterval:
		return fmt.Errorf("%w: min interval must be in (0, base interval]", ErrInvalid)
	case c.Speed.Step < 0:
		return fmt.Errorf("%w: speed step must not be negative", ErrInvalid)
	case c.Speed.EveryScore <= 0:
		return fmt.Errorf("%w: every_score must be positive", ErrInvalid)
	case c.Scoring.PerFruit <= 0:
		return fmt.Errorf("%w: per_fruit must be positive", ErrInvalid)
	case c.Spawn.MaxAttempts < 0:
		return fmt.Errorf("%w: max_attempts must not be negative", ErrInvalid)
	}
	return nil
}

// The starting snake occupies (5,h/2)..(3,h/2) and needs a free cell ahead.
const (
	MinGridWidth  = 7
	MinGridHeight = 3
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// BaseIntervalForPreset returns the starting step interval for a preset,
// or 0 when the preset keeps the configured value.
func BaseIntervalForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.20
	case DifficultyNormal:
		return 0.15
	case DifficultyHard:
		return 0.10
	default:
		return 0
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Speed.Enabled = false
		return
	}
	cfg.Speed.Enabled = true
	cfg.Speed.BaseInterval = BaseIntervalForPreset(preset)
	if cfg.Speed.MinInterval > cfg.Speed.BaseInterval {
		cfg.Speed.MinInterval = cfg.Speed.BaseInterval
	}
}

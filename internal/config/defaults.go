package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		Speed: SpeedConfig{
			Enabled:      true,
			BaseInterval: 0.15,
			MinInterval:  0.05,
			Step:         0.01,
			EveryScore:   50, // Every 5th fruit at 10 points each
		},
		Scoring: ScoringConfig{
			PerFruit: 10,
		},
		Spawn: SpawnConfig{
			MaxAttempts: 0,
		},
		Palette: PaletteConfig{
			Background: RGB{0.08, 0.10, 0.12},
			Border:     RGB{0.3, 0.3, 0.5},
			Checker:    RGB{0.15, 0.17, 0.2},
			Head:       RGB{0.0, 0.95, 0.3},
			Body:       RGB{0.0, 0.7, 0.1},
			BodyFade:   RGB{0.1, 0.8, 0.0},
			Fruit:      RGB{1.0, 0.3, 0.3},
			Overlay:    RGB{0.2, 0.1, 0.1},
			Title:      RGB{0.2, 0.8, 0.3},
			Text:       RGB{0.9, 0.9, 0.9},
			Prompt:     RGB{0.8, 0.8, 0.2},
			Hint:       RGB{0.8, 0.8, 0.8},
			Alert:      RGB{1.0, 0.3, 0.3},
			Score:      RGB{1.0, 1.0, 1.0},
		},
		Text: TextConfig{
			TitleScale:  0.025,
			BannerScale: 0.03,
			ScoreScale:  0.02,
			BodyScale:   0.012,
			PromptScale: 0.015,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

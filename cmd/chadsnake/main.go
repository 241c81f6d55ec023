// chadsnake is a Snake game drawn entirely with unit quads and a 5×5 bitmap
// font, hosted in a terminal or an OpenGL window.
//
// Usage:
//
//	chadsnake                  - Play in the default host
//	chadsnake play [--host id] - Play in a specific host
//	chadsnake hosts            - List compiled-in hosts
//	chadsnake config           - Print the effective configuration
//	chadsnake font <text>      - Print text in the bitmap font
//
// Global flags:
//
//	--fps <rate>          - Frame rate for the terminal host (default: 60)
//	--seed <value>        - RNG seed for reproducible fruit placement
//	--config <path>       - Custom snake.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Write logs to a file
//	--debug               - Verbose logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chad-snake/internal/config"

	// Import hosts to register them
	_ "github.com/vovakirdan/chad-snake/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLog        string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chadsnake",
	Short: "Chad Snake - a quad-rendered Snake game",
	Long: `Chad Snake is a classic Snake game on a 20x20 grid. Everything on screen,
text included, is drawn as flat-colored quads.

Available commands:
  play     - Play (the default when no command is given)
  hosts    - Show the hosts this binary can run on
  config   - Print the effective configuration as YAML
  font     - Print text in the bitmap font

Examples:
  chadsnake
  chadsnake play --host gl
  chadsnake --difficulty hard --seed 42
  chadsnake config > ~/.chadsnake/configs/snake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate for the terminal host")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&flagHost, "host", defaultHost, "Host to play in (see 'chadsnake hosts')")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(hostsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(fontCmd)
}

// newLogger builds the process logger. Terminal hosts own stdout, so without
// --log their logs are dropped; other hosts log to stderr.
func newLogger(hostID string) (*log.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	switch {
	case flagLog != "":
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	case hostID == "tui":
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "chadsnake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig loads snake.yaml and applies --difficulty.
func loadConfig() (config.SnakeConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	config.ApplySnakePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

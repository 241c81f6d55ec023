package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chad-snake/internal/core"
	"github.com/vovakirdan/chad-snake/internal/engine"
	"github.com/vovakirdan/chad-snake/internal/registry"
)

const defaultHost = "tui"

var flagHost string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Start a game in the chosen host.

Controls:
  Arrow keys - Steer (any key starts the game)
  R          - Restart (after game over)
  Q/Esc      - Quit

Difficulty options:
  easy   - Slower start, speeds up every 5 fruits
  normal - The default pace
  hard   - Faster start
  fixed  - Never speeds up

Examples:
  chadsnake play
  chadsnake play --host gl
  chadsnake play --difficulty fixed
  chadsnake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagHost, "host", defaultHost, "Host to play in (see 'chadsnake hosts')")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagHost) {
		return fmt.Errorf("unknown host %q (run 'chadsnake hosts' to see available hosts)", flagHost)
	}
	host, err := registry.Create(flagHost)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(host.ID())
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Nothing useful to do on exit

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting", "host", host.ID(), "grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height), "difficulty", flagDifficulty)
	loop := engine.New(cfg, rc, logger)

	if err := host.Run(ctx, loop, rc, logger); err != nil {
		return fmt.Errorf("%s host: %w", host.ID(), err)
	}

	g := loop.Game()
	logger.Info("finished", "score", g.Score(), "phase", g.Phase())
	return nil
}

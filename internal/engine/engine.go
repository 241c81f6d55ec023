// Package engine drives a snake game frame by frame against a host that
// supplies time, key events and a quad surface.
package engine

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chad-snake/internal/config"
	"github.com/vovakirdan/chad-snake/internal/core"
	"github.com/vovakirdan/chad-snake/internal/games/snake"
)

// Surface is something quads can be drawn onto.
type Surface interface {
	core.Drawer
	Clear(c core.Color)
}

// Host is a window or terminal that owns the frame cadence.
type Host interface {
	Surface
	core.Clock
	PollEvents() []core.KeyEvent
	Present()
	ShouldClose() bool
}

// Loop runs one game and its scene.
type Loop struct {
	game   *snake.Game
	scene  *snake.Scene
	logger *log.Logger
	phase  snake.Phase
}

// NewLoop wires a game to the scene that draws it.
func NewLoop(game *snake.Game, scene *snake.Scene, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		game:   game,
		scene:  scene,
		logger: logger,
		phase:  game.Phase(),
	}
}

// New builds a game and scene from configuration. A zero seed picks one
// from the clock.
func New(cfg config.SnakeConfig, rc core.RuntimeConfig, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("new loop", "seed", seed, "grid", cfg.Grid, "interval", cfg.Speed.BaseInterval)

	game := snake.New(cfg, snake.WithSeed(seed), snake.WithLogger(logger))
	return NewLoop(game, snake.NewScene(cfg), logger)
}

// Game returns the simulated game.
func (l *Loop) Game() *snake.Game {
	return l.game
}

// Scene returns the scene renderer.
func (l *Loop) Scene() *snake.Scene {
	return l.scene
}

// Frame runs one frame: apply input, advance dt seconds, clear and redraw.
// Reports whether a simulation step ran.
func (l *Loop) Frame(dt float64, events []core.KeyEvent, s Surface) bool {
	l.game.HandleKeys(events)
	stepped := l.game.Update(dt)

	if p := l.game.Phase(); p != l.phase {
		l.logger.Debug("phase", "from", l.phase, "to", p, "score", l.game.Score())
		l.phase = p
	}

	s.Clear(l.scene.Background())
	l.scene.Render(s, l.game)
	return stepped
}

// Run drives frames until the host asks to close or ctx is cancelled.
// Cancellation is checked between frames.
func (l *Loop) Run(ctx context.Context, h Host) error {
	for !h.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		l.Frame(h.Elapsed(), h.PollEvents(), h)
		h.Present()
	}
	l.logger.Debug("host closed", "score", l.game.Score())
	return nil
}

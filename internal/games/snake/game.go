// Package snake implements the Snake game: a fixed-timestep grid simulation
// with a start screen, play, and a game-over screen.
package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chad-snake/internal/config"
	"github.com/vovakirdan/chad-snake/internal/core"
)

// Phase is the game's coarse mode.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game owns the whole simulation state. It is not safe for concurrent use;
// the host drives it from a single loop.
type Game struct {
	cfg     config.SnakeConfig
	speed   config.SpeedSchedule
	spawner *Spawner
	logger  *log.Logger

	// Snake state
	snake     []core.Point   // Head at index 0
	direction core.Direction // Heading used by the last step (or set on start)
	nextDir   core.Direction // Buffered direction for next step

	fruit     core.Point
	score     int
	interval  float64 // Seconds between steps
	acc       float64 // Seconds since the last step
	phase     Phase
	boardFull bool // Game ended because no free cell was left
	steps     uint64
}

// Option configures a Game.
type Option func(*Game)

// WithRand injects the random source used for fruit placement.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.spawner.rng = rng
	}
}

// WithSeed seeds fruit placement deterministically.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger sets the logger for phase changes and gameplay events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game in PhaseNotStarted with a fruit already placed.
func New(cfg config.SnakeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		speed:   config.NewSpeedSchedule(cfg.Speed),
		spawner: NewSpawner(cfg.Grid.Width, cfg.Grid.Height, rand.New(rand.NewSource(0)), cfg.Spawn.MaxAttempts),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// Reset starts a new game on the start screen.
func (g *Game) Reset() {
	g.resetState()
	g.spawnFruit()
	g.logger.Debug("new game", "fruit", g.fruit)
}

// Restart starts a new game and goes straight to PhasePlaying, skipping the
// start screen. The snake waits for a direction before it moves.
func (g *Game) Restart() {
	g.resetState()
	g.spawnFruit()
	g.phase = PhasePlaying
	g.logger.Info("restart", "fruit", g.fruit)
}

// resetState re-initializes everything except the fruit.
func (g *Game) resetState() {
	y := g.cfg.Grid.Height / 2
	g.snake = []core.Point{
		{X: 5, Y: y}, // Head
		{X: 4, Y: y},
		{X: 3, Y: y},
	}
	g.direction = core.DirNone
	g.nextDir = core.DirNone
	g.score = 0
	g.interval = g.speed.Base()
	g.acc = 0
	g.phase = PhaseNotStarted
	g.boardFull = false
	g.steps = 0
}

// Start leaves the start screen heading right.
func (g *Game) Start() {
	if g.phase != PhaseNotStarted {
		return
	}
	g.phase = PhasePlaying
	g.direction = core.DirRight
	g.nextDir = core.DirRight
	g.logger.Info("start")
}

// Turn requests a new heading for the next step. The request is refused when
// it reverses the current heading or when the game is not being played.
func (g *Game) Turn(d core.Direction) bool {
	if g.phase != PhasePlaying || d == core.DirNone {
		return false
	}
	if d == g.heading().Opposite() {
		return false
	}
	g.nextDir = d
	return true
}

// heading is the direction the reversal guard protects. Before the first
// move after a restart it is the one the body points in.
func (g *Game) heading() core.Direction {
	if g.direction != core.DirNone || len(g.snake) < 2 {
		return g.direction
	}
	delta := core.Pt(g.snake[0].X-g.snake[1].X, g.snake[0].Y-g.snake[1].Y)
	for _, d := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		if d.Delta() == delta {
			return d
		}
	}
	return core.DirNone
}

// Update advances the accumulator by dt seconds and performs at most one
// step once it reaches the interval. Time beyond the threshold is dropped.
// Reports whether a step ran.
func (g *Game) Update(dt float64) bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.acc += dt
	if g.acc < g.interval {
		return false
	}
	g.acc = 0
	g.Step()
	return true
}

// Step performs one discrete move.
func (g *Game) Step() {
	if g.phase != PhasePlaying {
		return
	}

	// Apply buffered direction
	g.direction = g.nextDir
	if g.direction == core.DirNone {
		return
	}
	g.steps++

	newHead := g.snake[0].Add(g.direction.Delta())

	// Wall collision
	if !newHead.In(g.cfg.Grid.Width, g.cfg.Grid.Height) {
		g.gameOver("wall", newHead)
		return
	}

	// Self collision against every segment, tail included
	if g.isSnakeAt(newHead) {
		g.gameOver("self", newHead)
		return
	}

	g.snake = append(g.snake, core.Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = newHead

	if newHead != g.fruit {
		g.snake = g.snake[:len(g.snake)-1]
		return
	}

	g.score += g.cfg.Scoring.PerFruit
	g.logger.Debug("fruit eaten", "score", g.score, "length", len(g.snake))

	if !g.spawnFruit() {
		return
	}

	if next := g.speed.Next(g.score, g.interval); next != g.interval {
		g.logger.Debug("speed up", "interval", next, "score", g.score)
		g.interval = next
	}
}

// spawnFruit places a new fruit. When the board is full the game ends.
func (g *Game) spawnFruit() bool {
	p, err := g.spawner.Spawn(g.snake)
	if err != nil {
		g.boardFull = errors.Is(err, ErrBoardFull)
		g.phase = PhaseGameOver
		g.logger.Info("no fruit placed", "err", err, "score", g.score, "length", len(g.snake))
		return false
	}
	g.fruit = p
	return true
}

func (g *Game) gameOver(reason string, at core.Point) {
	g.phase = PhaseGameOver
	g.logger.Info("game over", "reason", reason, "at", at, "score", g.score, "length", len(g.snake))
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Snake returns the body, head first. Callers must not modify it.
func (g *Game) Snake() []core.Point { return g.snake }

// Fruit returns the fruit position.
func (g *Game) Fruit() core.Point { return g.fruit }

// Direction returns the heading used by the last step.
func (g *Game) Direction() core.Direction { return g.direction }

// Interval returns the current seconds between steps.
func (g *Game) Interval() float64 { return g.interval }

// BoardFull reports whether the game ended by filling the grid.
func (g *Game) BoardFull() bool { return g.boardFull }

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Steps: %d, Score: %d, Phase: %s\n", g.steps, g.score, g.phase))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s, Interval: %.3f\n", len(g.snake), g.direction, g.interval))
	if len(g.snake) > 0 {
		b.WriteString(fmt.Sprintf("Head: (%d, %d), Fruit: (%d, %d)\n", g.snake[0].X, g.snake[0].Y, g.fruit.X, g.fruit.Y))
	}
	return b.String()
}

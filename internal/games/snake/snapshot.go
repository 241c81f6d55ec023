package snake

import "github.com/vovakirdan/chad-snake/internal/core"

// Snapshot captures the game state for determinism testing and debug logs.
type Snapshot struct {
	Steps     uint64
	Phase     Phase
	Score     int
	SnakeLen  int
	Head      core.Point
	Dir       core.Direction
	Fruit     core.Point
	Interval  float64
	BoardFull bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var head core.Point
	if len(g.snake) > 0 {
		head = g.snake[0]
	}

	return Snapshot{
		Steps:     g.steps,
		Phase:     g.phase,
		Score:     g.score,
		SnakeLen:  len(g.snake),
		Head:      head,
		Dir:       g.direction,
		Fruit:     g.fruit,
		Interval:  g.interval,
		BoardFull: g.boardFull,
	}
}

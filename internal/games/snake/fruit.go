package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/chad-snake/internal/core"
)

// ErrBoardFull is returned when no free cell is left for a fruit.
var ErrBoardFull = errors.New("snake: no free cell for fruit")

// Spawner picks a uniformly random free cell.
type Spawner struct {
	width, height int
	rng           *rand.Rand
	maxAttempts   int
}

// NewSpawner creates a spawner for a width×height grid. maxAttempts bounds
// rejection sampling; 0 means four times the cell count.
func NewSpawner(width, height int, rng *rand.Rand, maxAttempts int) *Spawner {
	if maxAttempts <= 0 {
		maxAttempts = 4 * width * height
	}
	return &Spawner{
		width:       width,
		height:      height,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// Spawn returns a cell not covered by occupied.
//
// It draws x and y independently and retries on occupied cells. After
// maxAttempts misses it scans for free cells and picks one of them, so the
// result stays uniform over free cells and the call always terminates.
func (s *Spawner) Spawn(occupied []core.Point) (core.Point, error) {
	taken := make(map[core.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	for range s.maxAttempts {
		p := core.Pt(s.rng.Intn(s.width), s.rng.Intn(s.height))
		if _, ok := taken[p]; !ok {
			return p, nil
		}
	}

	// Collect all empty cells
	var free []core.Point
	for y := range s.height {
		for x := range s.width {
			p := core.Pt(x, y)
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Point{}, ErrBoardFull
	}
	return free[s.rng.Intn(len(free))], nil
}

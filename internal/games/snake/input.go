package snake

import "github.com/vovakirdan/chad-snake/internal/core"

// HandleKey applies one key event. Releases are ignored.
//
//   - NotStarted: any key but Restart starts the game heading right; the key
//     itself is not used as a direction.
//   - GameOver: Restart begins a new game in PhasePlaying.
//   - Playing: arrow keys steer, subject to the reversal guard.
func (g *Game) HandleKey(ev core.KeyEvent) {
	if ev.Action != core.Press {
		return
	}

	switch g.phase {
	case PhaseNotStarted:
		if ev.Key != core.KeyRestart {
			g.Start()
		}
	case PhaseGameOver:
		if ev.Key == core.KeyRestart {
			g.Restart()
		}
	case PhasePlaying:
		if d := ev.Key.Direction(); d != core.DirNone {
			if !g.Turn(d) {
				g.logger.Debug("turn refused", "want", d, "heading", g.direction)
			}
		}
	}
}

// HandleKeys applies events in order.
func (g *Game) HandleKeys(events []core.KeyEvent) {
	for _, ev := range events {
		g.HandleKey(ev)
	}
}

package snake

import (
	"testing"

	"github.com/vovakirdan/chad-snake/internal/config"
	"github.com/vovakirdan/chad-snake/internal/core"
	"github.com/vovakirdan/chad-snake/internal/render"
	"github.com/vovakirdan/chad-snake/internal/render/rendertest"
)

func textQuads(text string, scale float64) int {
	var rec rendertest.Recorder
	render.DrawText(&rec, text, 0, 0, scale, core.Color{})
	return rec.Len()
}

func TestSceneBoard(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	g := New(cfg, WithSeed(1))
	s := NewScene(cfg)
	pal := s.Palette()

	for _, phase := range []Phase{PhaseNotStarted, PhasePlaying, PhaseGameOver} {
		t.Run(phase.String(), func(t *testing.T) {
			g.phase = phase
			var rec rendertest.Recorder
			s.Render(&rec, g)

			if got := rec.CountColor(pal.Border); got != 84 {
				t.Errorf("Expected 84 border quads, got %d", got)
			}
			if got := rec.CountColor(pal.Checker); got != 200 {
				t.Errorf("Expected 200 checker quads, got %d", got)
			}
		})
	}
}

func TestScenePlaying(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	g := New(cfg, WithSeed(1))
	s := NewScene(cfg)
	pal := s.Palette()
	playing(g, []core.Point{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}, core.DirRight)
	g.fruit = core.Pt(12, 3)
	g.score = 30

	var rec rendertest.Recorder
	s.Render(&rec, g)

	heads := rec.WithColor(pal.Head)
	if len(heads) != 1 {
		t.Fatalf("Expected one head quad, got %d", len(heads))
	}
	ox, _ := render.CellToScreen(5, 0.1)
	oy, _ := render.CellToScreen(10, 0.1)
	if !near(heads[0].X, ox) || !near(heads[0].Y, oy) {
		t.Errorf("Head drawn at (%v,%v), expected (%v,%v)", heads[0].X, heads[0].Y, ox, oy)
	}

	fruits := rec.WithColor(pal.Fruit)
	if len(fruits) != 1 {
		t.Fatalf("Expected one fruit quad, got %d", len(fruits))
	}
	fx, _ := render.CellToScreen(12, 0.1)
	fy, _ := render.CellToScreen(3, 0.1)
	if !near(fruits[0].X, fx) || !near(fruits[0].Y, fy) {
		t.Errorf("Fruit drawn at (%v,%v), expected (%v,%v)", fruits[0].X, fruits[0].Y, fx, fy)
	}

	// Segments further from the head are blended further toward the fade color
	for i, factor := range []float64{1.0 / 3, 2.0 / 3} {
		c := pal.Body.Lerp(pal.BodyFade, factor)
		if got := rec.CountColor(c); got != 1 {
			t.Errorf("segment %d: expected one quad in %v, got %d", i+1, c, got)
		}
	}

	want := textQuads("SCORE: 30", cfg.Text.ScoreScale)
	if got := rec.CountColor(pal.Text); got != want {
		t.Errorf("Expected %d score quads, got %d", want, got)
	}

	// Board, two body segments, head, fruit, score
	total := 84 + 200 + 2 + 1 + 1 + want
	if rec.Len() != total {
		t.Errorf("Expected %d quads, got %d", total, rec.Len())
	}
}

func TestSceneHeadOverBody(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	g := New(cfg, WithSeed(1))
	s := NewScene(cfg)
	pal := s.Palette()
	playing(g, []core.Point{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}, core.DirRight)

	var rec rendertest.Recorder
	s.Render(&rec, g)

	headAt, bodyAt := -1, -1
	bodyColor := pal.Body.Lerp(pal.BodyFade, 1.0/3)
	for i, q := range rec.Quads {
		switch q.Color {
		case pal.Head:
			headAt = i
		case bodyColor:
			bodyAt = i
		}
	}
	if headAt < bodyAt {
		t.Errorf("Head drawn at %d before body at %d", headAt, bodyAt)
	}
}

func TestSceneStartScreen(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	g := New(cfg, WithSeed(1))
	s := NewScene(cfg)
	pal := s.Palette()

	var rec rendertest.Recorder
	s.Render(&rec, g)

	if got := rec.CountColor(pal.Head); got != 1 {
		t.Errorf("Start screen should show the snake head, got %d", got)
	}
	if got := rec.CountColor(pal.Fruit); got != 1 {
		t.Errorf("Start screen should show the fruit, got %d", got)
	}
	if got, want := rec.CountColor(pal.Title), textQuads("CHAD SNAKE", cfg.Text.TitleScale); got != want {
		t.Errorf("Expected %d title quads, got %d", want, got)
	}
	if got, want := rec.CountColor(pal.Prompt), textQuads("PRESS ANY KEY TO START", cfg.Text.BodyScale); got != want {
		t.Errorf("Expected %d prompt quads, got %d", want, got)
	}
}

func TestSceneGameOver(t *testing.T) {
	tests := []struct {
		name      string
		boardFull bool
		banner    string
	}{
		{"lost", false, "GAME OVER"},
		{"won", true, "YOU WIN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultSnakeConfig()
			g := New(cfg, WithSeed(1))
			s := NewScene(cfg)
			pal := s.Palette()
			g.phase = PhaseGameOver
			g.boardFull = tc.boardFull
			g.score = 120

			var rec rendertest.Recorder
			s.Render(&rec, g)

			if got := rec.CountColor(pal.Overlay); got != 400 {
				t.Errorf("Expected 400 overlay quads, got %d", got)
			}
			if got := rec.CountColor(pal.Head); got != 0 {
				t.Errorf("Game over should hide the snake, got %d head quads", got)
			}
			if got, want := rec.CountColor(pal.Alert), textQuads(tc.banner, cfg.Text.BannerScale); got != want {
				t.Errorf("Expected %d banner quads, got %d", want, got)
			}
			if got, want := rec.CountColor(pal.Score), textQuads("SCORE: 120", cfg.Text.ScoreScale); got != want {
				t.Errorf("Expected %d score quads, got %d", want, got)
			}
			if got, want := rec.CountColor(pal.Hint), textQuads("PRESS R TO RESTART", cfg.Text.PromptScale); got != want {
				t.Errorf("Expected %d hint quads, got %d", want, got)
			}
		})
	}
}

func TestSceneBackground(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	s := NewScene(cfg)
	if s.Background() != cfg.Palette.Background.Color() {
		t.Errorf("Background = %v, expected %v", s.Background(), cfg.Palette.Background.Color())
	}
}

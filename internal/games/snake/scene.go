package snake

import (
	"strconv"

	"github.com/vovakirdan/chad-snake/internal/config"
	"github.com/vovakirdan/chad-snake/internal/core"
	"github.com/vovakirdan/chad-snake/internal/render"
)

// Palette holds the scene colors.
type Palette struct {
	Background core.Color
	Border     core.Color
	Checker    core.Color
	Head       core.Color
	Body       core.Color
	BodyFade   core.Color
	Fruit      core.Color
	Overlay    core.Color
	Title      core.Color
	Text       core.Color
	Prompt     core.Color
	Hint       core.Color
	Alert      core.Color
	Score      core.Color
}

// NewPalette converts configured colors.
func NewPalette(p config.PaletteConfig) Palette {
	return Palette{
		Background: p.Background.Color(),
		Border:     p.Border.Color(),
		Checker:    p.Checker.Color(),
		Head:       p.Head.Color(),
		Body:       p.Body.Color(),
		BodyFade:   p.BodyFade.Color(),
		Fruit:      p.Fruit.Color(),
		Overlay:    p.Overlay.Color(),
		Title:      p.Title.Color(),
		Text:       p.Text.Color(),
		Prompt:     p.Prompt.Color(),
		Hint:       p.Hint.Color(),
		Alert:      p.Alert.Color(),
		Score:      p.Score.Color(),
	}
}

// Scene draws a Game through a core.Drawer. It keeps no per-frame state:
// every call re-issues every visible quad.
type Scene struct {
	grid render.Grid
	pal  Palette
	text config.TextConfig
}

// NewScene creates a scene for the configured grid, palette and text sizes.
func NewScene(cfg config.SnakeConfig) *Scene {
	return &Scene{
		grid: render.NewGrid(cfg.Grid.Width, cfg.Grid.Height),
		pal:  NewPalette(cfg.Palette),
		text: cfg.Text,
	}
}

// Background returns the clear color hosts should fill with before Render.
func (s *Scene) Background() core.Color {
	return s.pal.Background
}

// Palette returns the scene colors.
func (s *Scene) Palette() Palette {
	return s.pal
}

// Render draws the board and the phase-specific layer.
func (s *Scene) Render(d core.Drawer, g *Game) {
	s.renderBoard(d)

	switch g.Phase() {
	case PhaseNotStarted:
		s.renderStartScreen(d, g)
	case PhaseGameOver:
		s.renderGameOver(d, g)
	default:
		s.renderSnake(d, g)
		s.renderScore(d, g)
	}
}

// renderBoard draws the border ring and the checker pattern.
func (s *Scene) renderBoard(d core.Drawer) {
	for _, p := range s.grid.Ring() {
		s.grid.DrawCell(d, p, s.pal.Border)
	}

	for x := range s.grid.Width {
		for y := range s.grid.Height {
			if (x+y)%2 == 0 {
				s.grid.DrawCell(d, core.Pt(x, y), s.pal.Checker)
			}
		}
	}
}

// renderSnake draws body, head and fruit. Body segments fade toward
// BodyFade the further they are from the head, so the tail is shifted most.
func (s *Scene) renderSnake(d core.Drawer, g *Game) {
	body := g.Snake()
	for i := 1; i < len(body); i++ {
		factor := float64(i) / float64(len(body))
		s.grid.DrawCell(d, body[i], s.pal.Body.Lerp(s.pal.BodyFade, factor))
	}
	if len(body) > 0 {
		s.grid.DrawCell(d, body[0], s.pal.Head)
	}

	s.grid.DrawCell(d, g.Fruit(), s.pal.Fruit)
}

func (s *Scene) renderScore(d core.Drawer, g *Game) {
	render.DrawText(d, scoreText(g.Score()), 0, 0.9, s.text.ScoreScale, s.pal.Text)
}

func (s *Scene) renderStartScreen(d core.Drawer, g *Game) {
	s.renderSnake(d, g)

	render.DrawText(d, "CHAD SNAKE", 0, 0.3, s.text.TitleScale, s.pal.Title)

	render.DrawText(d, "USE ARROW KEYS TO MOVE", 0, 0, s.text.BodyScale, s.pal.Text)
	render.DrawText(d, "EAT THE RED FRUIT TO GROW", 0, -0.1, s.text.BodyScale, s.pal.Text)
	render.DrawText(d, "AVOID WALLS AND YOURSELF", 0, -0.2, s.text.BodyScale, s.pal.Text)
	render.DrawText(d, "PRESS ANY KEY TO START", 0, -0.4, s.text.BodyScale, s.pal.Prompt)
}

func (s *Scene) renderGameOver(d core.Drawer, g *Game) {
	for x := range s.grid.Width {
		for y := range s.grid.Height {
			s.grid.DrawCell(d, core.Pt(x, y), s.pal.Overlay)
		}
	}

	banner := "GAME OVER"
	if g.BoardFull() {
		banner = "YOU WIN"
	}
	render.DrawText(d, banner, 0, 0.1, s.text.BannerScale, s.pal.Alert)
	render.DrawText(d, scoreText(g.Score()), 0, -0.05, s.text.ScoreScale, s.pal.Score)
	render.DrawText(d, "PRESS R TO RESTART", 0, -0.2, s.text.PromptScale, s.pal.Hint)
}

func scoreText(score int) string {
	return "SCORE: " + strconv.Itoa(score)
}

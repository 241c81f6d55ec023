package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/chad-snake/internal/core"
	"github.com/vovakirdan/chad-snake/internal/engine"
	"github.com/vovakirdan/chad-snake/internal/games/snake"
	"github.com/vovakirdan/chad-snake/internal/registry"
)

// Default terminal size when the real one cannot be read.
const (
	defaultCols = 80
	defaultRows = 24
)

func init() {
	registry.Register("tui", func() registry.Host { return Host{} })
}

// Host runs the game in the current terminal.
type Host struct{}

// ID implements registry.Host.
func (Host) ID() string { return "tui" }

// Title implements registry.Host.
func (Host) Title() string { return "Terminal (half-block pixels)" }

// Run implements registry.Host.
func (Host) Run(ctx context.Context, loop *engine.Loop, cfg core.RuntimeConfig, logger *log.Logger) error {
	cols, rows := defaultCols, defaultRows
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	} else {
		logger.Debug("terminal size unavailable", "err", err)
	}

	cfg.ScreenW, cfg.ScreenH = cols, rows
	model := NewModel(loop, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	loop     *engine.Loop
	canvas   *Canvas
	queue    *core.EventQueue
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	last     time.Time // Time of the previous tick
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model around loop.
func NewModel(loop *engine.Loop, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	m := Model{
		loop:   loop,
		canvas: NewCanvas(2, 2),
		queue:  core.NewEventQueue(),
		keys:   DefaultKeyMap(),
		help:   h,
		config: cfg,
		logger: logger,
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues game keys; quit and help are handled here.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Debug("quit", "score", m.loop.Game().Score(), "phase", m.loop.Game().Phase())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	}

	// Terminals only report presses
	m.queue.Push(core.Pressed(m.keys.MapKey(msg)))
	return m, nil
}

// handleTick runs one frame with the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.last.IsZero() {
		dt = max(now.Sub(m.last).Seconds(), 0)
	}
	m.last = now

	m.loop.Frame(dt, m.queue.Drain(), m.canvas)
	return m, tickCmd(m.config.TickRate)
}

// resize fits a square canvas into the terminal above the footer.
func (m *Model) resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		cols, rows = defaultCols, defaultRows
	}
	m.width, m.height = cols, rows
	m.config.ScreenW, m.config.ScreenH = cols, rows
	m.help.Width = cols

	side := min(cols, 2*max(rows-m.footerLines(), 1))
	m.canvas.Resize(side, side)
	m.logger.Debug("resize", "cols", cols, "rows", rows, "canvas", side)
}

// footerLines is the height of the status line plus the help view.
func (m Model) footerLines() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// View renders the canvas and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, RenderCanvas(m.canvas)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.status()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, helpStyle.Render(m.help.View(m.keys))))

	return b.String()
}

// status is a plain-text readout of the score and phase.
func (m Model) status() string {
	g := m.loop.Game()
	pal := m.loop.Scene().Palette()

	label := "press any key to start"
	switch g.Phase() {
	case snake.PhasePlaying:
		label = "playing"
	case snake.PhaseGameOver:
		label = "game over, press r"
		if g.BoardFull() {
			label = "you win, press r"
		}
	}

	scoreStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(pal.Score.Hex()))
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Prompt.Hex()))

	return scoreStyle.Render(fmt.Sprintf("SCORE %d", g.Score())) + "  " + labelStyle.Render(label)
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chad-snake/internal/core"
)

// halfBlock draws the top pixel in the foreground and the bottom pixel in the
// background of one terminal cell.
const halfBlock = '▀'

type cellColors struct {
	top, bottom core.Color
}

func (cc cellColors) style() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(cc.top.Hex())).
		Background(lipgloss.Color(cc.bottom.Hex()))
}

// RenderCanvas converts a Canvas to a styled string, one terminal row per two
// pixel rows. Adjacent cells with the same colors share one style run to keep
// escape sequences down.
func RenderCanvas(c *Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Width()*c.Height()/2 + c.Height())

	for y := 0; y < c.Height(); y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			start := cellColors{c.At(x, y), c.At(x, y+1)}

			var run strings.Builder
			for x < c.Width() && (cellColors{c.At(x, y), c.At(x, y+1)}) == start {
				run.WriteRune(halfBlock)
				x++
			}
			sb.WriteString(start.style().Render(run.String()))
		}
	}
	return sb.String()
}

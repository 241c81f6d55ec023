// Package render turns grid cells and strings into unit-quad draws.
package render

import "github.com/vovakirdan/chad-snake/internal/core"

// CellShrink leaves a visible gap between neighbouring cells.
const CellShrink = 0.9

// CellToScreen maps a cell index to its NDC center and drawn size along one
// axis. Indices outside the grid are allowed (the border ring sits at -1 and
// at the grid dimension).
func CellToScreen(pos int, cellSize float64) (offset, scale float64) {
	offset = -1 + float64(pos)*cellSize + cellSize/2
	scale = cellSize * CellShrink
	return offset, scale
}

// Grid maps a Width×Height cell grid onto the full [-1,1]² viewport.
type Grid struct {
	Width, Height int
	CellW, CellH  float64
}

// NewGrid creates a grid whose cells tile the viewport exactly.
func NewGrid(width, height int) Grid {
	return Grid{
		Width:  width,
		Height: height,
		CellW:  2.0 / float64(width),
		CellH:  2.0 / float64(height),
	}
}

// DrawCell issues one quad for the cell at p.
func (g Grid) DrawCell(d core.Drawer, p core.Point, c core.Color) {
	ox, sx := CellToScreen(p.X, g.CellW)
	oy, sy := CellToScreen(p.Y, g.CellH)
	d.DrawQuad(ox, oy, sx, sy, c)
}

// Ring returns the one-cell-thick ring just outside the grid, corners
// included, each cell exactly once.
func (g Grid) Ring() []core.Point {
	out := make([]core.Point, 0, 2*(g.Width+2)+2*g.Height)
	for x := -1; x <= g.Width; x++ {
		out = append(out, core.Pt(x, -1), core.Pt(x, g.Height))
	}
	for y := 0; y < g.Height; y++ {
		out = append(out, core.Pt(-1, y), core.Pt(g.Width, y))
	}
	return out
}

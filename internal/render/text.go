package render

import (
	"unicode/utf8"

	"github.com/vovakirdan/chad-snake/internal/core"
	"github.com/vovakirdan/chad-snake/internal/font"
)

// TextWidth returns the NDC width of text drawn at the given pixel scale.
func TextWidth(text string, scale float64) float64 {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	charW := font.Width * scale
	spacing := font.Spacing * scale
	return float64(n)*(charW+spacing) - spacing
}

// DrawText draws text horizontally centered on centerX, each glyph
// vertically centered on centerY.
func DrawText(d core.Drawer, text string, centerX, centerY, scale float64, c core.Color) {
	advance := (font.Width + font.Spacing) * scale
	x := centerX - TextWidth(text, scale)/2
	for _, r := range text {
		DrawChar(d, r, x, centerY, scale, c)
		x += advance
	}
}

// DrawChar draws one quad per lit pixel of r's glyph around (x, y).
func DrawChar(d core.Drawer, r rune, x, y, scale float64, c core.Color) {
	g := font.Lookup(r)
	halfW := font.Width * scale / 2
	halfH := font.Height * scale / 2
	for row := range font.Height {
		for col := range font.Width {
			if !g.On(row, col) {
				continue
			}
			d.DrawQuad(x+float64(col)*scale-halfW, y-float64(row)*scale+halfH, scale, scale, c)
		}
	}
}

// Package font is a fixed 5×5 bitmap font covering uppercase letters, digits,
// space, colon, hyphen and period.
package font

import (
	"sort"
	"strings"
	"unicode"
)

const (
	Width   = 5 // Glyph width in pixels
	Height  = 5 // Glyph height in pixels
	Spacing = 1 // Blank pixels between adjacent glyphs
)

// Glyph is a row-major pixel mask: index row*Width+col, 1 = lit.
type Glyph [Width * Height]uint8

// On reports whether the pixel at (row, col) is lit. Row 0 is the top.
func (g Glyph) On(row, col int) bool {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return false
	}
	return g[row*Width+col] != 0
}

// Count returns the number of lit pixels.
func (g Glyph) Count() int {
	n := 0
	for _, v := range g {
		if v != 0 {
			n++
		}
	}
	return n
}

// glyphs is built once from rows and never written afterwards.
var glyphs = build(rows)

func build(src map[rune][Height]string) map[rune]Glyph {
	out := make(map[rune]Glyph, len(src))
	for r, lines := range src {
		var g Glyph
		for row, line := range lines {
			for col := 0; col < Width && col < len(line); col++ {
				if line[col] == '#' {
					g[row*Width+col] = 1
				}
			}
		}
		out[r] = g
	}
	return out
}

// Lookup returns the glyph for r. Lowercase letters map to uppercase;
// anything else without a glyph renders as a space.
func Lookup(r rune) Glyph {
	if g, ok := glyphs[unicode.ToUpper(r)]; ok {
		return g
	}
	return glyphs[' ']
}

// Has reports whether r (after upper-casing) has its own glyph.
func Has(r rune) bool {
	_, ok := glyphs[unicode.ToUpper(r)]
	return ok
}

// Runes returns every rune with a glyph, sorted.
func Runes() []rune {
	out := make([]rune, 0, len(glyphs))
	for r := range glyphs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Banner lays text out as Height lines of on/off runes, glyphs separated by
// Spacing off columns.
func Banner(text string, on, off rune) []string {
	lines := make([]string, Height)
	for row := range Height {
		var b strings.Builder
		for i, r := range []rune(text) {
			if i > 0 {
				b.WriteString(strings.Repeat(string(off), Spacing))
			}
			g := Lookup(r)
			for col := range Width {
				if g.On(row, col) {
					b.WriteRune(on)
				} else {
					b.WriteRune(off)
				}
			}
		}
		lines[row] = b.String()
	}
	return lines
}

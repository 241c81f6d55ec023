package core

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is a flat RGB color with channels in [0,1].
type Color struct {
	R, G, B float64
}

// RGB builds a Color from its channels.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Lerp blends linearly in RGB space from c toward to by t (0 = c, 1 = to).
func (c Color) Lerp(to Color, t float64) Color {
	return fromColorful(c.colorful().BlendRgb(to.colorful(), t))
}

// Hex returns the color as "#rrggbb", clamping out-of-range channels.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(cc colorful.Color) Color {
	return Color{R: cc.R, G: cc.G, B: cc.B}
}

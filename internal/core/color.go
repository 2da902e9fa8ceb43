package core

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB colour. It satisfies image/color.Color.
type Color = colorful.Color

// Palette colours shared by renderers.
var (
	ColorWhite    = RGB(255, 255, 255)
	ColorBlack    = RGB(0, 0, 0)
	ColorRed      = RGB(255, 64, 64)
	ColorGreen    = RGB(64, 220, 96)
	ColorGold     = Hex("#ffd700")
	ColorPlatform = Hex("#b26500")
	ColorBall     = Hex("#00bcd4")
	ColorGray     = RGB(128, 128, 128)
)

// RGB builds a colour from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Hex parses a #rrggbb colour, returning white for malformed input.
func Hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorWhite
	}
	return c
}

// HSL builds a colour from hue in degrees and saturation/lightness in [0,1].
func HSL(h, s, l float64) Color {
	return colorful.Hsl(h, s, l).Clamped()
}

// Darken scales the lightness of c down by percent of itself, keeping hue
// and saturation.
func Darken(c Color, percent float64) Color {
	h, s, l := c.Hsl()
	l = ClampF(l-l*percent/100, 0, 1)
	return colorful.Hsl(h, s, l).Clamped()
}

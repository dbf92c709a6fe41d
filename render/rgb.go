package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Hex builds an RGB from 0xRRGGBB
func Hex(v uint32) RGB {
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// clamp converts float to uint8 with rounding
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Blend performs alpha blending: result = src*alpha + c*(1-alpha)
// Alpha of 1.0 or 0.0 returns early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha

	return RGB{
		R: clamp(float64(src.R)*alpha + float64(c.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(c.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Darken blends c toward black, alpha is the black overlay opacity
func Darken(c RGB, alpha float64) RGB {
	return Blend(c, RGBBlack, alpha)
}

// Mix averages two colors, used to fold a half-block pixel pair into one cell background
func Mix(a, b RGB) RGB {
	return RGB{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
	}
}

// FromColorful converts a colorful.Color, clamping out-of-gamut values
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Colorful converts to colorful.Color for interpolation
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

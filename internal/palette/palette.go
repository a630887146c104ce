// Package palette holds the screen colors. Every value is a premultiplied
// color.RGBA, which is what ebiten blends.
package palette

import (
	"image/color"
	"math"
)

var (
	Green  = Opaque(0x39, 0x77, 0x54)
	Lime   = Opaque(0x70, 0xbe, 0x51)
	Purple = Opaque(0x9b, 0x45, 0xb2)
	Orange = Opaque(0xeb, 0x6b, 0x40)
	Pink   = Opaque(0xf0, 0xa3, 0xbc)
	Gold   = Opaque(0xfc, 0xd3, 0x4d)
	Amber  = Opaque(0xfb, 0xbf, 0x24)
	Cream  = Opaque(0xfe, 0xf9, 0xc3)
	Rose   = Opaque(0xfe, 0xca, 0xca)
	Slate  = Opaque(100, 116, 139)
	White  = Opaque(0xff, 0xff, 0xff)

	Dim      = NRGBA(0xff, 0xff, 0xff, 0x66)
	Panel    = NRGBA(0xff, 0xff, 0xff, 0x1a)
	Border   = NRGBA(0xff, 0xff, 0xff, 0x40)
	Disabled = NRGBA(30, 41, 59, 200)
	Tile     = NRGBA(15, 23, 42, 200)

	// missing media placeholder
	Missing       = NRGBA(0x7f, 0x1d, 0x1d, 0xa0)
	MissingBorder = NRGBA(0xef, 0x44, 0x44, 0x80)
)

// Opaque returns a fully opaque color.
func Opaque(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// NRGBA premultiplies a straight-alpha color.
func NRGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: b, A: a}).(color.RGBA)
}

// Fade multiplies the opacity of c by a, clamped to [0, 1].
func Fade(c color.RGBA, a float64) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// Lerp mixes a into b by t in [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t)) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// HSV returns the opaque color for hue in degrees and saturation and value in
// [0, 1].
func HSV(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Opaque(uint8((r+m)*255), uint8((g+m)*255), uint8((b+m)*255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

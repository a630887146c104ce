package layout

import "math"

// Crop is the part of a source image to draw, and the scale to draw it at.
type Crop struct {
	X, Y, W, H float64
	Scale      float64
}

// Cover fills a dw×dh frame with an sw×sh image, cropping the overflow
// evenly from both sides.
func Cover(sw, sh, dw, dh float64) Crop {
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return Crop{}
	}
	scale := math.Max(dw/sw, dh/sh)
	cw, ch := dw/scale, dh/scale
	return Crop{
		X:     (sw - cw) / 2,
		Y:     (sh - ch) / 2,
		W:     cw,
		H:     ch,
		Scale: scale,
	}
}

// Contain fits an sw×sh image inside a dw×dh frame and returns the scale and
// the offset that centers it.
func Contain(sw, sh, dw, dh float64) (scale, ox, oy float64) {
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return 0, 0, 0
	}
	scale = math.Min(dw/sw, dh/sh)
	return scale, (dw - sw*scale) / 2, (dh - sh*scale) / 2
}

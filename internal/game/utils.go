package game

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// twoDigits pads a countdown unit, e.g. 7 -> "07". Values of 100 or more are
// printed in full.
func twoDigits(n int) string {
	if n < 10 && n >= 0 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// shorten trims s to at most n runes, marking the cut with "...".
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n <= 3 {
		return s
	}
	return string(r[:n-3]) + "..."
}

var whiteImage *ebiten.Image

// whitePixel is the source image for solid-color triangles.
func whitePixel() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image)
}

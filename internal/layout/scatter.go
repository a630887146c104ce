// Package layout places gallery items around the centerpiece and computes the
// decorative motion of the celebration screen.
package layout

import (
	"math"
	"math/rand/v2"
)

const (
	// Variants is the number of floating animations assigned round-robin.
	Variants = 3

	jitterFraction = 0.2
	maxPhaseOffset = 5.0 // seconds
)

// Band is the annulus, in percent of the viewport, that items are placed in.
type Band struct {
	Min float64
	Max float64
}

// DefaultBand keeps items clear of the centerpiece text.
var DefaultBand = Band{Min: 30, Max: 42}

// Position is the placement of one gallery item.
type Position struct {
	Angle  float64 // radians
	Radius float64 // percent of viewport
	X      float64 // percent, 0..100
	Y      float64 // percent, 0..100

	Variant     int     // floating animation, 0..Variants-1
	PhaseOffset float64 // seconds, negative so animations start mid-flight
}

// Scatter spreads n items around the viewport center. Angles are evenly spaced
// with jitter of up to ±20% of the spacing, radii are drawn uniformly from the
// band.
func Scatter(n int, rng *rand.Rand, band Band) []Position {
	if n <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	out := make([]Position, n)
	for i := range out {
		jitter := (rng.Float64()*2 - 1) * jitterFraction * step
		angle := float64(i)*step + jitter
		radius := band.Min + rng.Float64()*(band.Max-band.Min)

		out[i] = Position{
			Angle:       angle,
			Radius:      radius,
			X:           50 + radius*math.Cos(angle),
			Y:           50 + radius*math.Sin(angle),
			Variant:     i % Variants,
			PhaseOffset: -rng.Float64() * maxPhaseOffset,
		}
	}
	return out
}

// Memo caches a Scatter result for one version of the media set.
type Memo struct {
	rng  *rand.Rand
	band Band

	valid     bool
	version   uint64
	positions []Position
}

// NewMemo returns a Memo drawing randomness from rng.
func NewMemo(rng *rand.Rand, band Band) *Memo {
	return &Memo{rng: rng, band: band}
}

// Positions returns the layout for the given media-set version, computing it
// only when the version differs from the cached one.
func (m *Memo) Positions(version uint64, n int) []Position {
	if m.valid && m.version == version && len(m.positions) == n {
		return m.positions
	}
	m.positions = Scatter(n, m.rng, m.band)
	m.version = version
	m.valid = true
	return m.positions
}

// Float returns the bobbing offset, in pixels, of an animation variant at t
// seconds.
func Float(variant int, t float64) (dx, dy float64) {
	switch variant % Variants {
	case 0:
		return 0, 12 * math.Sin(t*2*math.Pi/6)
	case 1:
		return 8 * math.Sin(t*2*math.Pi/7), 10 * math.Cos(t*2*math.Pi/5)
	default:
		return 10 * math.Cos(t*2*math.Pi/8), 6 * math.Sin(t*2*math.Pi/4)
	}
}

// HoverScale enlarges the tile under the cursor.
const HoverScale = 1.1

// Rect is a square tile on screen, in pixels.
type Rect struct {
	X, Y float64 // top-left corner
	Size float64
}

// Contains reports whether (x, y) falls on the tile, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Size && y >= r.Y && y <= r.Y+r.Size
}

// Tiles returns where each tile is drawn t seconds into the animation: its
// resting position in a width×height viewport plus its floating offset. The
// hovered tile is scaled by HoverScale around its center; pass -1 for none.
func Tiles(positions []Position, width, height, tile, t float64, hovered int) []Rect {
	out := make([]Rect, len(positions))
	for i, p := range positions {
		dx, dy := Float(p.Variant, t+p.PhaseOffset)
		size := tile
		if i == hovered {
			size *= HoverScale
		}
		out[i] = Rect{
			X:    p.X/100*width + dx - size/2,
			Y:    p.Y/100*height + dy - size/2,
			Size: size,
		}
	}
	return out
}

// HitTest returns the index of the top-most tile under (x, y), or -1. Later
// tiles are drawn on top of earlier ones.
func HitTest(tiles []Rect, x, y float64) int {
	for i := len(tiles) - 1; i >= 0; i-- {
		if tiles[i].Contains(x, y) {
			return i
		}
	}
	return -1
}

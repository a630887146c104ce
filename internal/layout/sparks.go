package layout

import (
	"math"
	"math/rand/v2"
)

// DefaultSparks is the number of golden sparks drifting across the celebration.
const DefaultSparks = 30

// Spark is one golden particle crossing the screen left to right.
type Spark struct {
	Row      float64 // vertical position, percent
	Delay    float64 // seconds before the first crossing
	Duration float64 // seconds per crossing
	Scale    float64
	Opacity  float64
}

// Sparks draws n sparks. The values are generated once and reused for every
// frame of a celebration.
func Sparks(n int, rng *rand.Rand) []Spark {
	out := make([]Spark, n)
	for i := range out {
		out[i] = Spark{
			Row:      rng.Float64() * 100,
			Delay:    rng.Float64() * 5,
			Duration: 3 + rng.Float64()*4,
			Scale:    0.5 + rng.Float64(),
			Opacity:  0.4 + rng.Float64()*0.6,
		}
	}
	return out
}

// At returns the horizontal pixel position and alpha of the spark t seconds
// into the celebration. Before its delay elapses a spark is invisible.
func (s Spark) At(t, width float64) (x, alpha float64) {
	if t < s.Delay || s.Duration <= 0 {
		return 0, 0
	}
	progress := math.Mod(t-s.Delay, s.Duration) / s.Duration
	x = progress * width
	// fade in and out at the edges of the crossing
	alpha = s.Opacity * math.Min(1, math.Min(progress, 1-progress)*10)
	return x, alpha
}

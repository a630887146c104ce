package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap passes a stream through unchanged and keeps its most recent samples so
// the renderer can pulse the celebration with the music.
//
// Stream runs on the speaker goroutine; Snapshot and Level run on the game
// loop.
type Tap struct {
	Source beep.Streamer

	mu    sync.Mutex
	ring  [][2]float64
	head  int // next write
	count int // valid samples, at most len(ring)
}

// NewTap returns a Tap remembering ringSize samples.
func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{Source: src, ring: make([][2]float64, ringSize)}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	t.record(samples[:n])
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

func (t *Tap) record(samples [][2]float64) {
	size := len(t.ring)
	if size == 0 || len(samples) == 0 {
		return
	}
	if len(samples) > size {
		samples = samples[len(samples)-size:]
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for len(samples) > 0 {
		c := copy(t.ring[t.head:], samples)
		samples = samples[c:]
		t.head = (t.head + c) % size
		t.count = min(t.count+c, size)
	}
}

// each visits the newest n recorded samples, oldest first, and returns how
// many it visited.
func (t *Tap) each(n int, fn func(s [2]float64)) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n = min(n, t.count)
	if n <= 0 {
		return 0
	}
	size := len(t.ring)
	start := (t.head - n + size) % size
	for i := 0; i < n; i++ {
		fn(t.ring[(start+i)%size])
	}
	return n
}

// Snapshot returns up to the last n samples, most recent last.
func (t *Tap) Snapshot(n int) [][2]float64 {
	out := make([][2]float64, 0, max(0, min(n, len(t.ring))))
	t.each(n, func(s [2]float64) { out = append(out, s) })
	return out
}

// Level returns the loudness of the last n samples in [0, 1]: the mono RMS
// compressed with pow 0.3 so quiet passages still move the visuals.
func (t *Tap) Level(n int) float64 {
	var sum float64
	got := t.each(n, func(s [2]float64) {
		mono := (s[0] + s[1]) * 0.5
		sum += mono * mono
	})
	if got == 0 {
		return 0
	}
	return math.Min(1, math.Pow(math.Sqrt(sum/float64(got)), 0.3))
}

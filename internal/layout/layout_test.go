package layout

import (
	"math"
	"math/rand/v2"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestScatter_WithinBandAndBounds(t *testing.T) {
	bands := []Band{DefaultBand, {Min: 25, Max: 45}, {Min: 40, Max: 40}}
	for _, band := range bands {
		for n := 1; n <= 30; n++ {
			positions := Scatter(n, testRand(), band)
			if len(positions) != n {
				t.Fatalf("n=%d: got %d positions", n, len(positions))
			}
			for i, p := range positions {
				if p.Radius < band.Min || p.Radius > band.Max {
					t.Errorf("n=%d item %d: radius %.2f outside %+v", n, i, p.Radius, band)
				}
				if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
					t.Errorf("n=%d item %d: (%.2f, %.2f) outside [0,100]", n, i, p.X, p.Y)
				}
				dist := math.Hypot(p.X-50, p.Y-50)
				if math.Abs(dist-p.Radius) > 1e-9 {
					t.Errorf("n=%d item %d: distance %.4f != radius %.4f", n, i, dist, p.Radius)
				}
			}
		}
	}
}

func TestScatter_AnglesJitterAroundEvenSpacing(t *testing.T) {
	n := 8
	step := 2 * math.Pi / float64(n)
	for i, p := range Scatter(n, testRand(), DefaultBand) {
		base := float64(i) * step
		if math.Abs(p.Angle-base) > jitterFraction*step+1e-12 {
			t.Errorf("item %d: angle %.3f too far from %.3f", i, p.Angle, base)
		}
	}
}

func TestScatter_VariantsAndPhase(t *testing.T) {
	for i, p := range Scatter(9, testRand(), DefaultBand) {
		if p.Variant != i%Variants {
			t.Errorf("item %d: variant %d, want %d", i, p.Variant, i%Variants)
		}
		if p.PhaseOffset > 0 || p.PhaseOffset < -maxPhaseOffset {
			t.Errorf("item %d: phase offset %.2f outside [-%v, 0]", i, p.PhaseOffset, maxPhaseOffset)
		}
	}
}

func TestScatter_Empty(t *testing.T) {
	if got := Scatter(0, testRand(), DefaultBand); got != nil {
		t.Errorf("Scatter(0) = %v, want nil", got)
	}
}

func TestMemo_StableForSameVersion(t *testing.T) {
	m := NewMemo(testRand(), DefaultBand)
	first := m.Positions(1, 5)
	again := m.Positions(1, 5)
	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("item %d moved between renders: %+v -> %+v", i, first[i], again[i])
		}
	}

	snapshot := append([]Position(nil), first...)
	replaced := m.Positions(2, 5)
	same := true
	for i := range snapshot {
		if snapshot[i] != replaced[i] {
			same = false
		}
	}
	if same {
		t.Error("new media set version should re-randomize positions")
	}
}

func TestHitTest(t *testing.T) {
	tiles := []Rect{
		{X: 470, Y: 220, Size: 60},
		{X: 490, Y: 220, Size: 60}, // overlaps the first, drawn on top
		{X: 70, Y: 420, Size: 60},
	}
	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"top-most wins", 500, 250, 1},
		{"only first", 475, 250, 0},
		{"corner item", 100, 450, 2},
		{"edge counts", 550, 280, 1},
		{"miss", 900, 20, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitTest(tiles, tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTiles_FollowFloat(t *testing.T) {
	positions := []Position{{X: 50, Y: 50, Variant: 0}}
	const ts = 1.5 // variant 0 is at the bottom of its bob
	_, dy := Float(0, ts)
	if dy < 11.9 {
		t.Fatalf("dy = %.2f, want the full 12px drop", dy)
	}

	tiles := Tiles(positions, 1280, 720, 120, ts, -1)
	want := Rect{X: 580, Y: 300 + dy, Size: 120}
	if math.Abs(tiles[0].X-want.X) > 1e-9 || math.Abs(tiles[0].Y-want.Y) > 1e-9 || tiles[0].Size != want.Size {
		t.Fatalf("tile = %+v, want %+v", tiles[0], want)
	}

	// 5px inside the drawn bottom edge, below the resting tile.
	if got := HitTest(tiles, 640, 427); got != 0 {
		t.Errorf("click on floated edge hit %d, want 0", got)
	}
	// The vacated strip at the top of the resting tile is no longer the tile.
	if got := HitTest(tiles, 640, 305); got != -1 {
		t.Errorf("click above floated tile hit %d, want -1", got)
	}
}

func TestTiles_HoverScale(t *testing.T) {
	positions := []Position{{X: 50, Y: 50, Variant: 0}, {X: 10, Y: 10, Variant: 0}}
	tiles := Tiles(positions, 1000, 1000, 100, 0, 1)
	if tiles[0].Size != 100 {
		t.Errorf("plain tile size %v, want 100", tiles[0].Size)
	}
	if math.Abs(tiles[1].Size-110) > 1e-9 {
		t.Errorf("hovered tile size %v, want 110", tiles[1].Size)
	}
	// scaled around the same center
	if cx := tiles[1].X + tiles[1].Size/2; math.Abs(cx-100) > 1e-9 {
		t.Errorf("hovered tile center x %v, want 100", cx)
	}
	// just outside the plain size, inside the enlarged one
	if got := HitTest(tiles, 100+53, 100); got != 1 {
		t.Errorf("HitTest on enlarged margin = %d, want 1", got)
	}
}

func TestFloat_Bounded(t *testing.T) {
	for v := 0; v < Variants; v++ {
		for ts := -5.0; ts < 20; ts += 0.37 {
			dx, dy := Float(v, ts)
			if math.Abs(dx) > 12 || math.Abs(dy) > 12 {
				t.Fatalf("variant %d at %.2f: offset (%.2f, %.2f) too large", v, ts, dx, dy)
			}
		}
	}
}

func TestSparks(t *testing.T) {
	sparks := Sparks(DefaultSparks, testRand())
	if len(sparks) != DefaultSparks {
		t.Fatalf("got %d sparks", len(sparks))
	}
	for i, s := range sparks {
		if s.Row < 0 || s.Row > 100 || s.Delay < 0 || s.Delay > 5 ||
			s.Duration < 3 || s.Duration > 7 || s.Scale < 0.5 || s.Scale > 1.5 ||
			s.Opacity < 0.4 || s.Opacity > 1 {
			t.Errorf("spark %d out of range: %+v", i, s)
		}
	}
}

func TestSpark_At(t *testing.T) {
	s := Spark{Delay: 1, Duration: 4, Opacity: 1}
	if _, alpha := s.At(0.5, 800); alpha != 0 {
		t.Errorf("spark visible before its delay: alpha %.2f", alpha)
	}
	x, alpha := s.At(3, 800)
	if x != 400 {
		t.Errorf("x = %.1f, want 400 halfway through", x)
	}
	if alpha != 1 {
		t.Errorf("alpha = %.2f, want 1 mid-crossing", alpha)
	}
	if x, _ := s.At(5, 800); x != 0 {
		t.Errorf("x = %.1f, want wrap to 0", x)
	}
}

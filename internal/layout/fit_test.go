package layout

import "testing"

func TestCover(t *testing.T) {
	tests := []struct {
		name           string
		sw, sh, dw, dh float64
		want           Crop
	}{
		{"wide source", 400, 200, 100, 100, Crop{X: 100, Y: 0, W: 200, H: 200, Scale: 0.5}},
		{"tall source", 100, 300, 200, 200, Crop{X: 0, Y: 100, W: 100, H: 100, Scale: 2}},
		{"same aspect", 50, 50, 100, 100, Crop{W: 50, H: 50, Scale: 2}},
		{"empty", 0, 10, 10, 10, Crop{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cover(tt.sw, tt.sh, tt.dw, tt.dh); got != tt.want {
				t.Errorf("Cover() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContain(t *testing.T) {
	scale, ox, oy := Contain(400, 200, 100, 100)
	if scale != 0.25 || ox != 0 || oy != 25 {
		t.Errorf("Contain() = %v, %v, %v; want 0.25, 0, 25", scale, ox, oy)
	}
	scale, ox, oy = Contain(100, 200, 300, 200)
	if scale != 1 || ox != 100 || oy != 0 {
		t.Errorf("Contain() = %v, %v, %v; want 1, 100, 0", scale, ox, oy)
	}
}

package palette

import (
	"image/color"
	"testing"
)

func premultiplied(c color.RGBA) bool {
	return c.R <= c.A && c.G <= c.A && c.B <= c.A
}

func TestColorsPremultiplied(t *testing.T) {
	named := map[string]color.RGBA{
		"Green": Green, "Lime": Lime, "Purple": Purple, "Orange": Orange,
		"Pink": Pink, "Gold": Gold, "Amber": Amber, "Cream": Cream,
		"Rose": Rose, "Slate": Slate, "White": White,
		"Dim": Dim, "Panel": Panel, "Border": Border, "Disabled": Disabled,
		"Tile": Tile, "Missing": Missing, "MissingBorder": MissingBorder,
	}
	for name, c := range named {
		if !premultiplied(c) {
			t.Errorf("%s = %+v is not premultiplied", name, c)
		}
	}
}

func TestNRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		want color.RGBA
	}{
		{"translucent white", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x66}, color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0x66}},
		{"opaque", color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}},
		{"transparent", color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0x00}, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NRGBA(tt.in.R, tt.in.G, tt.in.B, tt.in.A); got != tt.want {
				t.Errorf("NRGBA() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFade(t *testing.T) {
	for _, a := range []float64{-1, 0, 0.3, 0.5, 1, 2} {
		for _, c := range []color.RGBA{White, Dim, Missing, Gold} {
			got := Fade(c, a)
			if !premultiplied(got) {
				t.Errorf("Fade(%+v, %v) = %+v is not premultiplied", c, a, got)
			}
		}
	}
	if got := Fade(White, 2); got != White {
		t.Errorf("Fade over 1 = %+v, want unchanged", got)
	}
	if got := Fade(White, -1); got != (color.RGBA{}) {
		t.Errorf("Fade below 0 = %+v, want transparent", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(Green, Purple, 0); got != Green {
		t.Errorf("Lerp at 0 = %+v", got)
	}
	if got := Lerp(Green, Purple, 1); got != Purple {
		t.Errorf("Lerp at 1 = %+v", got)
	}
	if got := Lerp(Panel, White, 0.5); !premultiplied(got) {
		t.Errorf("Lerp of translucent colors = %+v is not premultiplied", got)
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		h    float64
		want color.RGBA
	}{
		{0, Opaque(0xff, 0, 0)},
		{120, Opaque(0, 0xff, 0)},
		{240, Opaque(0, 0, 0xff)},
		{360, Opaque(0xff, 0, 0)},
		{-120, Opaque(0, 0, 0xff)},
	}
	for _, tt := range tests {
		if got := HSV(tt.h, 1, 1); got != tt.want {
			t.Errorf("HSV(%v) = %+v, want %+v", tt.h, got, tt.want)
		}
	}
}

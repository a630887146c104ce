package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/celebration-countdown/internal/palette"
)

type fonts struct {
	bold    *text.GoTextFaceSource
	regular *text.GoTextFaceSource
	faces   map[fontKey]*text.GoTextFace
}

type fontKey struct {
	bold bool
	size float64
}

func newFonts() (*fonts, error) {
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	return &fonts{bold: bold, regular: regular, faces: map[fontKey]*text.GoTextFace{}}, nil
}

func (f *fonts) face(size float64, bold bool) *text.GoTextFace {
	k := fontKey{bold: bold, size: size}
	if face, ok := f.faces[k]; ok {
		return face
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	face := &text.GoTextFace{Source: src, Size: size}
	f.faces[k] = face
	return face
}

// drawText draws s centered on (x, y), scaled around that point.
func (g *Game) drawText(dst *ebiten.Image, s string, size float64, bold bool, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = size * 1.15
	text.Draw(dst, s, g.fonts.face(size, bold), op)
}

// drawTextLeft draws s starting at x, vertically centered on y.
func (g *Game) drawTextLeft(dst *ebiten.Image, s string, size float64, bold bool, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, g.fonts.face(size, bold), op)
}

// button is a clickable rectangle with hover and press feedback.
type button struct {
	label   func() string
	x, y    int
	w, h    int
	visible func() bool
	enabled func() bool
	onClick func()

	hovered bool
	pressed bool
}

func (b *button) isVisible() bool { return b.visible == nil || b.visible() }
func (b *button) isEnabled() bool { return b.enabled == nil || b.enabled() }

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// updateButtons handles hover and click for the given buttons and reports
// whether a click was consumed.
func (g *Game) updateButtons(buttons []*button) bool {
	mouseX, mouseY := ebiten.CursorPosition()
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	consumed := false
	for _, b := range buttons {
		if !b.isVisible() {
			b.hovered, b.pressed = false, false
			continue
		}
		b.hovered = b.contains(mouseX, mouseY)
		if b.hovered && justPressed && b.isEnabled() {
			b.pressed = true
		}
		if justReleased {
			if b.pressed && b.hovered {
				// Button was clicked
				b.onClick()
				consumed = true
			}
			b.pressed = false
		}
	}
	return consumed
}

func (g *Game) drawButton(screen *ebiten.Image, b *button, accent color.RGBA) {
	if !b.isVisible() {
		return
	}

	// Button background
	var bgColor color.Color
	switch {
	case !b.isEnabled():
		bgColor = palette.Disabled // Disabled
	case b.pressed:
		bgColor = palette.Fade(accent, 0.6) // Pressed
	case b.hovered:
		bgColor = palette.Fade(accent, 0.85) // Hovered
	default:
		bgColor = palette.Fade(accent, 0.45) // Normal
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, true)

	// Button border
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, palette.Border, true)

	// Button text
	textColor := palette.White
	if !b.isEnabled() {
		textColor = palette.Slate
	}
	g.drawText(screen, b.label(), 16, true, float64(b.x)+float64(b.w)/2, float64(b.y)+float64(b.h)/2, 1, textColor)
}

package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/celebration-countdown/internal/config"
	"github.com/iburimskiy/celebration-countdown/internal/layout"
	"github.com/iburimskiy/celebration-countdown/internal/media"
	"github.com/iburimskiy/celebration-countdown/internal/palette"
)

const slideInDuration = 0.45 // seconds

func (g *Game) newControls() []*button {
	const w, h, top = 150, 36, 16
	right := config.WindowWidth - 16
	return []*button{
		{
			label: func() string {
				if g.session.Preview() {
					return "Exit Preview"
				}
				return "Preview"
			},
			x: right - 2*w - 12, y: top, w: w, h: h,
			onClick: g.togglePreview,
		},
		{
			label: func() string {
				if g.player.Playing() {
					return "Music: On"
				}
				return "Music: Off"
			},
			x: right - w, y: top, w: w, h: h,
			visible: g.player.Loaded,
			onClick: g.music.Toggle,
		},
		{
			label:   func() string { return "Setup" },
			x:       16, y: top, w: 110, h: h,
			visible: g.timerRunningIdle,
			onClick: g.session.ReopenSetup,
		},
	}
}

func (g *Game) timerRunningIdle() bool {
	return !g.session.Preview() && !g.timer.Complete()
}

func (g *Game) drawControls(screen *ebiten.Image) {
	for _, b := range g.controls {
		g.drawButton(screen, b, palette.Purple)
	}
}

func (g *Game) drawFooter(screen *ebiten.Image) {
	msg := "TIME IS TICKING"
	if g.session.Active(g.timer.Complete()) {
		msg = "WELCOME TO THE FUTURE"
	}
	g.drawText(screen, msg, 12, false, config.WindowWidth/2, config.WindowHeight-18, 1, palette.Dim)
}

// drawBackground paints the three-color gradient once and then adds two
// slowly breathing glows on top, brighter with the music.
func (g *Game) drawBackground(screen *ebiten.Image) {
	if g.background == nil {
		g.background = ebiten.NewImageFromImage(gradient(config.WindowWidth, config.WindowHeight))
	}
	screen.DrawImage(g.background, nil)

	pulse := 0.5 + 0.5*math.Sin(g.time*1.2)
	a := 0.18 + 0.12*pulse + 0.3*g.glow
	vector.DrawFilledCircle(screen, 0, 0, config.WindowWidth*0.35, palette.Fade(palette.Pink, a), true)
	pulse = 0.5 + 0.5*math.Sin(g.time*1.2+1)
	a = 0.18 + 0.12*pulse + 0.3*g.glow
	vector.DrawFilledCircle(screen, config.WindowWidth, config.WindowHeight, config.WindowWidth*0.35, palette.Fade(palette.Lime, a), true)
}

// gradient builds a diagonal green -> purple -> orange gradient.
func gradient(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := (float64(x)/float64(w) + float64(y)/float64(h)) / 2
			var c color.RGBA
			if t < 0.5 {
				c = palette.Lerp(palette.Green, palette.Purple, t*2)
			} else {
				c = palette.Lerp(palette.Purple, palette.Orange, (t-0.5)*2)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

}

func (g *Game) drawCountdown(screen *ebiten.Image) {
	cx := float64(config.WindowWidth) / 2
	g.drawText(screen, "C O U N T I N G   D O W N   T O", 26, false, cx, 150, 1, palette.Pink)
	g.drawText(screen, fmt.Sprint(g.timer.Target().Year()), 110, true, cx, 260, 1, palette.White)

	r := g.timer.Remaining()
	boxes := []struct {
		value int
		label string
	}{
		{r.Days, "DAYS"},
		{r.Hours, "HOURS"},
		{r.Minutes, "MINUTES"},
		{r.Seconds, "SECONDS"},
	}
	total := len(boxes)*config.TimeBoxWidth + (len(boxes)-1)*config.TimeBoxGap
	x0 := (config.WindowWidth - total) / 2
	y0 := 380
	for i, b := range boxes {
		x := x0 + i*(config.TimeBoxWidth+config.TimeBoxGap)
		vector.DrawFilledRect(screen, float32(x), float32(y0), config.TimeBoxWidth, config.TimeBoxHeight, palette.Panel, true)
		vector.StrokeRect(screen, float32(x), float32(y0), config.TimeBoxWidth, config.TimeBoxHeight, 1, palette.Border, true)
		bx := float64(x) + config.TimeBoxWidth/2
		g.drawText(screen, twoDigits(b.value), 56, true, bx, float64(y0)+55, 1, palette.White)
		g.drawText(screen, b.label, 14, true, bx, float64(y0)+105, 1, palette.Pink)
	}
}

func (g *Game) drawMessage(screen *ebiten.Image) {
	// Zoom in over the first 0.7s, then breathe.
	in := clamp01(g.celebrationTime / 0.7)
	scale := 0.8 + 0.3*in + 0.03*math.Sin(g.celebrationTime*4)
	cx, cy := float64(config.WindowWidth)/2, float64(config.WindowHeight)/2

	glowColor := palette.Fade(palette.HSV(g.colorPhase*360, 0.6, 1), (0.35+0.4*g.glow)*in)
	g.drawText(screen, g.session.Message(), 84, true, cx+3, cy+3, scale, glowColor)
	g.drawText(screen, g.session.Message(), 84, true, cx, cy, scale, palette.Fade(palette.White, in))
}

func (g *Game) drawSlideshow(screen *ebiten.Image) {
	items := g.session.Media()
	idx := g.seq.Slide()
	if idx >= len(items) {
		return
	}
	x := float64(config.WindowWidth-config.SlideWidth) / 2
	y := float64(config.WindowHeight-config.SlideHeight) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), config.SlideWidth, config.SlideHeight, palette.Panel, true)
	vector.StrokeRect(screen, float32(x), float32(y), config.SlideWidth, config.SlideHeight, 1, palette.Border, true)

	// Slide in from the right.
	t := clamp01((g.celebrationTime - g.slideChangedAt) / slideInDuration)
	ease := 1 - math.Pow(1-t, 3)
	offset := (1 - ease) * config.SlideWidth * 0.25

	frame := screen.SubImage(image.Rect(int(x), int(y), int(x)+config.SlideWidth, int(y)+config.SlideHeight)).(*ebiten.Image)
	g.drawItemContained(frame, items[idx], x+offset, y, config.SlideWidth, config.SlideHeight, ease)

	pill := fmt.Sprintf("%d/%d", idx+1, len(items))
	px, py := x+config.SlideWidth-60, y+config.SlideHeight-28
	vector.DrawFilledRect(screen, float32(px-36), float32(py-14), 72, 28, color.RGBA{A: 0x80}, true)
	g.drawText(screen, pill, 14, false, px, py, 1, palette.Dim)
}

func (g *Game) drawGallery(screen *ebiten.Image) {
	cx, cy := float64(config.WindowWidth)/2, float64(config.WindowHeight)/2

	// Centerpiece
	pulse := 0.85 + 0.15*math.Sin(g.time*2) + 0.2*g.glow
	g.drawText(screen, fmt.Sprint(g.timer.Target().Year()), 140, true, cx, cy-30, 1, palette.Fade(palette.Gold, pulse))
	g.drawText(screen, "H A P P Y   N E W   Y E A R", 30, false, cx, cy+70, 1, palette.Fade(palette.Cream, pulse))

	items := g.session.Media()
	if len(g.tiles) != len(items) {
		return
	}
	for i, r := range g.tiles {
		g.drawTile(screen, items[i], r.X, r.Y, r.Size)
	}
}

func (g *Game) drawTile(screen *ebiten.Image, it media.Item, x, y, size float64) {
	switch {
	case it.Missing():
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), palette.Missing, true)
		vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 2, palette.MissingBorder, true)
		g.drawText(screen, "Missing:\n"+shorten(it.Label, 16), 11, false, x+size/2, y+size/2, 1, palette.Rose)
	case len(it.Frames) == 0:
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), palette.Tile, true)
		vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 2, palette.Border, true)
		drawPlayGlyph(screen, x+size/2, y+size/2-10, size/6)
		g.drawText(screen, shorten(it.Label, 16), 11, false, x+size/2, y+size-18, 1, palette.Dim)
	default:
		g.drawItemCovered(screen, it, x, y, size, size, 0.85)
		vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 2, palette.Border, true)
		if it.Kind == media.Video {
			drawPlayGlyph(screen, x+size/2, y+size/2, size/8)
		}
	}
}

func (g *Game) drawLightbox(screen *ebiten.Image) {
	it, open := g.session.Selected()
	if !open {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, config.WindowHeight, color.RGBA{A: 0xcc}, true)

	size := float64(config.LightboxSize)
	x := (config.WindowWidth - size) / 2
	y := (config.WindowHeight - size) / 2
	g.drawTile(screen, it, x, y, size)
	if it.Kind == media.Video {
		g.drawText(screen, it.Label+" (video preview)", 14, false, x+size/2, y+size+20, 1, palette.Dim)
	}

	// close glyph
	cx, cy := float32(x+size-24), float32(y+24)
	vector.DrawFilledCircle(screen, cx, cy, 16, color.RGBA{A: 0x66}, true)
	vector.StrokeLine(screen, cx-6, cy-6, cx+6, cy+6, 2, palette.White, true)
	vector.StrokeLine(screen, cx-6, cy+6, cx+6, cy-6, 2, palette.White, true)
}

func (g *Game) drawSparks(screen *ebiten.Image) {
	for _, s := range g.sparks {
		x, alpha := s.At(g.celebrationTime, config.WindowWidth)
		if alpha <= 0 {
			continue
		}
		y := float32(s.Row / 100 * config.WindowHeight)
		r := float32(4 * s.Scale)
		trail := palette.Fade(palette.Amber, alpha*0.5)
		vector.StrokeLine(screen, float32(x)-48*float32(s.Scale), y, float32(x), y, 2, trail, true)
		vector.DrawFilledCircle(screen, float32(x), y, r*2.5, palette.Fade(palette.Gold, alpha*0.25), true)
		vector.DrawFilledCircle(screen, float32(x), y, r, palette.Fade(palette.Gold, alpha), true)
	}
}

// drawItemCovered fills the rectangle with the item, cropping the overflow.
func (g *Game) drawItemCovered(dst *ebiten.Image, it media.Item, x, y, w, h, alpha float64) {
	img := g.images.get(it.FrameAt(g.sessionElapsed()))
	if img == nil {
		return
	}
	b := img.Bounds()
	crop := layout.Cover(float64(b.Dx()), float64(b.Dy()), w, h)
	if crop.Scale == 0 {
		return
	}
	src := img.SubImage(image.Rect(
		b.Min.X+int(crop.X), b.Min.Y+int(crop.Y),
		b.Min.X+int(crop.X+crop.W), b.Min.Y+int(crop.Y+crop.H),
	)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(crop.Scale, crop.Scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

// drawItemContained fits the whole item inside the rectangle.
func (g *Game) drawItemContained(dst *ebiten.Image, it media.Item, x, y, w, h, alpha float64) {
	img := g.images.get(it.FrameAt(g.sessionElapsed()))
	if img == nil {
		placeholder := "Missing:\n" + it.Label
		if !it.Missing() {
			placeholder = it.Label + "\n(video)"
		}
		g.drawText(dst, placeholder, 22, false, x+w/2, y+h/2, 1, palette.Fade(palette.White, alpha))
		return
	}
	b := img.Bounds()
	scale, ox, oy := layout.Contain(float64(b.Dx()), float64(b.Dy()), w, h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+ox, y+oy)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func drawPlayGlyph(screen *ebiten.Image, cx, cy, r float64) {
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r*1.6), color.RGBA{A: 0x80}, true)
	var path vector.Path
	path.MoveTo(float32(cx-r*0.5), float32(cy-r*0.8))
	path.LineTo(float32(cx+r*0.9), float32(cy))
	path.LineTo(float32(cx-r*0.5), float32(cy+r*0.8))
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = 1, 1, 1, 0.9
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

package game

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/celebration-countdown/internal/audio"
	"github.com/iburimskiy/celebration-countdown/internal/config"
	"github.com/iburimskiy/celebration-countdown/internal/media"
	"github.com/iburimskiy/celebration-countdown/internal/palette"
)

const (
	panelWidth  = 560
	panelHeight = 560
	panelX      = (config.WindowWidth - panelWidth) / 2
	panelY      = (config.WindowHeight - panelHeight) / 2
	rowHeight   = 96
	rowsTop     = panelY + 110
)

func (g *Game) newSetupButtons() []*button {
	bx := panelX + panelWidth - config.ButtonWidth - 24
	row := func(i int) int { return rowsTop + i*rowHeight + (rowHeight-config.ButtonHeight)/2 }

	return []*button{
		{
			label: func() string {
				if len(g.session.Media()) > 0 {
					return "Change Media"
				}
				return "Upload Photos/Videos"
			},
			x: bx, y: row(0), w: config.ButtonWidth, h: config.ButtonHeight,
			onClick: g.selectMedia,
		},
		{
			label: func() string {
				if g.session.MusicPath() != "" {
					return "Change Song"
				}
				return "Upload Song"
			},
			x: bx, y: row(1), w: config.ButtonWidth, h: config.ButtonHeight,
			onClick: g.selectSong,
		},
		{
			label: func() string { return "Edit Message" },
			x:     bx, y: row(2), w: config.ButtonWidth, h: config.ButtonHeight,
			onClick: g.editMessage,
		},
		{
			label: func() string { return "Preview" },
			x:     panelX + 24, y: panelY + panelHeight - config.ButtonHeight - 24,
			w: 160, h: config.ButtonHeight,
			onClick: g.togglePreview,
		},
		{
			label: func() string { return "Start Countdown" },
			x:     panelX + panelWidth - 300 - 24, y: panelY + panelHeight - config.ButtonHeight - 24,
			w: 300, h: config.ButtonHeight,
			enabled: func() bool { return len(g.session.Media()) > 0 },
			onClick: g.start,
		},
	}
}

func (g *Game) selectMedia() {
	filters := zenity.FileFilters{{
		Name:     "Photos and videos",
		Patterns: append(append([]string{}, media.ImagePatterns...), media.VideoPatterns...),
	}}
	paths, err := zenity.SelectFileMultiple(zenity.Title("Choose up to 30 photos or videos"), filters)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err
		}
		return
	}
	if len(paths) == 0 {
		return
	}

	items := media.LoadAll(paths, g.cfg.MaxMedia)
	g.session.SetMedia(items)
	g.lastErr = nil
	log.Info().Int("selected", len(paths)).Int("kept", len(items)).Msg("media selected")
}

func (g *Game) selectSong() {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Patterns,
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err
		}
		return
	}

	if err := g.player.Load(filename); err != nil {
		log.Error().Err(err).Str("path", filename).Msg("song rejected")
		g.lastErr = err
		if nerr := zenity.Error(
			fmt.Sprintf("Could not load the song.\n\n%v", err),
			zenity.Title("Background Music"),
		); nerr != nil {
			log.Debug().Err(nerr).Msg("notice dialog unavailable")
		}
		return
	}
	g.session.SetMusic(filename)
	g.lastErr = nil
}

func (g *Game) editMessage() {
	current := strings.ReplaceAll(g.session.Message(), "\n", `\n`)
	msg, err := zenity.Entry(
		`Message shown when the clock hits zero (type \n for a new line)`,
		zenity.Title("Celebration Message"),
		zenity.EntryText(current),
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err
		}
		return
	}
	g.session.SetMessage(msg)
}

func (g *Game) start() {
	if err := g.session.Start(); err != nil {
		g.lastErr = err
		return
	}
	g.lastErr = nil
	log.Info().
		Int("media", len(g.session.Media())).
		Str("music", g.session.MusicName()).
		Time("target", g.timer.Target()).
		Msg("countdown started")
}

func (g *Game) drawSetup(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, panelX, panelY, panelWidth, panelHeight, palette.Panel, true)
	vector.StrokeRect(screen, panelX, panelY, panelWidth, panelHeight, 1, palette.Border, true)

	cx := float64(panelX + panelWidth/2)
	g.drawText(screen, fmt.Sprintf("New Year %d Setup", g.timer.Target().Year()), 34, true, cx, panelY+44, 1, palette.Pink)
	g.drawText(screen, "Customize your countdown experience", 15, false, cx, panelY+82, 1, palette.Dim)

	rows := []struct {
		title, detail string
		done          bool
		accent        color.RGBA
	}{
		{"1. Select Media", g.mediaSummary(), len(g.session.Media()) > 0, palette.Green},
		{"2. Background Music", g.musicSummary(), g.session.MusicPath() != "", palette.Purple},
		{"3. Celebration Message", firstLine(g.session.Message()), true, palette.Orange},
	}
	for i, r := range rows {
		y := float32(rowsTop + i*rowHeight)
		bg := palette.Panel
		if r.done {
			bg = palette.Fade(r.accent, 0.3)
		}
		vector.DrawFilledRect(screen, panelX+16, y+6, panelWidth-32, rowHeight-12, bg, true)
		g.drawTextLeft(screen, r.title, 20, true, panelX+36, float64(y)+36, palette.White)
		g.drawTextLeft(screen, r.detail, 14, false, panelX+36, float64(y)+64, palette.Dim)
	}

	accents := []color.RGBA{palette.Green, palette.Purple, palette.Orange, palette.Pink, palette.Orange}
	for i, b := range g.setupButtons {
		g.drawButton(screen, b, accents[i%len(accents)])
	}

	if g.lastErr != nil {
		g.drawText(screen, "Error: "+g.lastErr.Error(), 14, false, cx, panelY+panelHeight+24, 1, palette.Pink)
	}
}

func (g *Game) mediaSummary() string {
	items := g.session.Media()
	if len(items) == 0 {
		return fmt.Sprintf("Choose up to %d photos or videos", g.cfg.MaxMedia)
	}
	missing := 0
	for _, it := range items {
		if it.Missing() {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Sprintf("%d selected, %d could not be loaded", len(items), missing)
	}
	return fmt.Sprintf("%d selected", len(items))
}

func (g *Game) musicSummary() string {
	if name := g.session.MusicName(); name != "" {
		return "Ready: " + name
	}
	return "Select a song (loops)"
}

func firstLine(s string) string {
	line, rest, _ := strings.Cut(s, "\n")
	if rest != "" {
		return line + " ..."
	}
	return line
}

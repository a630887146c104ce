// Package game renders the setup, countdown and celebration screens with
// ebiten and routes input to the session, countdown and sequencer.
package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/celebration-countdown/internal/config"
	"github.com/iburimskiy/celebration-countdown/internal/countdown"
	"github.com/iburimskiy/celebration-countdown/internal/layout"
	"github.com/iburimskiy/celebration-countdown/internal/media"
	"github.com/iburimskiy/celebration-countdown/internal/playback"
	"github.com/iburimskiy/celebration-countdown/internal/sequencer"
	"github.com/iburimskiy/celebration-countdown/internal/session"
)

// Game implements ebiten.Game. All state is owned by the ebiten update
// goroutine.
type Game struct {
	cfg     *config.Config
	clock   clockwork.Clock
	session *session.Session
	timer   *countdown.Timer
	seq     *sequencer.Sequencer
	scatter *layout.Memo
	rng     *rand.Rand
	player  *playback.Player
	music   *playback.Music
	images  *imageCache
	fonts   *fonts

	imagesVersion uint64

	// setup screen and top-right controls
	setupButtons []*button
	controls     []*button

	// celebration
	sparks          []layout.Spark
	celebrationTime float64
	slideChangedAt  float64
	lastSlide       int
	tiles           []layout.Rect
	hovered         int

	// visuals
	time       float64
	glow       float64
	colorPhase float64
	background *ebiten.Image

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// New wires the game. The countdown starts immediately; the celebration waits
// for setup.
func New(cfg *config.Config, clock clockwork.Clock, player *playback.Player) (*Game, error) {
	now := clock.Now()
	target, _, err := cfg.TargetTime(now)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	f, err := newFonts()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		clock:   clock,
		session: session.New(cfg.Message),
		timer:   countdown.NewTimer(clock, target),
		seq: sequencer.New(clock, sequencer.Durations{
			Message: cfg.MessageDuration,
			Slide:   cfg.SlideInterval,
		}),
		scatter: layout.NewMemo(rng, layout.Band{Min: cfg.RadiusMin, Max: cfg.RadiusMax}),
		rng:     rng,
		player:  player,
		music:   playback.NewMusic(player),
		images:  newImageCache(),
		fonts:   f,
		hovered: -1,
		prevKey: map[ebiten.Key]bool{},
	}
	g.seq.OnTransition(g.onPhase)
	g.setupButtons = g.newSetupButtons()
	g.controls = g.newControls()

	g.preload()
	return g, nil
}

// preload applies media and music named by the configuration.
func (g *Game) preload() {
	if len(g.cfg.Media) > 0 {
		g.session.SetMedia(media.LoadAll(g.cfg.Media, g.cfg.MaxMedia))
	}
	if g.cfg.Music != "" {
		if err := g.player.Load(g.cfg.Music); err != nil {
			log.Warn().Err(err).Str("path", g.cfg.Music).Msg("could not load configured song")
			g.lastErr = err
		} else {
			g.session.SetMusic(g.cfg.Music)
		}
	}
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.time += 1.0 / float64(ebiten.TPS())
	g.colorPhase += config.ColorShiftSpeed

	if v := g.session.MediaVersion(); v != g.imagesVersion {
		g.images.clear()
		g.imagesVersion = v
	}

	// Input first, so a preview toggle or a return to setup resets the
	// celebration in this same tick.
	clicked := false
	if !g.session.SetupComplete() {
		if justPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		clicked = g.updateButtons(g.setupButtons)
	} else {
		if justPressed(ebiten.KeyP) {
			g.togglePreview()
		}
		if justPressed(ebiten.KeyM) {
			g.music.Toggle()
		}
		if justPressed(ebiten.KeyEscape) {
			if _, open := g.session.Selected(); open {
				g.session.ClearSelection()
			} else {
				return ebiten.Termination
			}
		}
		if justPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		clicked = g.updateButtons(g.controls)
	}

	g.timer.Poll()
	g.seq.Sync(g.session.Active(g.timer.Complete()), len(g.session.Media()))
	g.seq.Poll()

	if g.seq.Phase() != sequencer.Idle {
		g.celebrationTime += 1.0 / float64(ebiten.TPS())
	}
	if s := g.seq.Slide(); s != g.lastSlide {
		g.lastSlide = s
		g.slideChangedAt = g.celebrationTime
	}

	g.updateGallery(clicked)

	// Smooth the music level so the glow breathes instead of flickering.
	g.glow = config.GlowSmoothing*g.glow + (1-config.GlowSmoothing)*g.player.Level()

	return nil
}

// updateGallery places the tiles for this frame and handles hover and clicks
// against the same rectangles that Draw uses.
func (g *Game) updateGallery(clicked bool) {
	if g.seq.Phase() != sequencer.ShowingGallery {
		g.tiles = nil
		g.hovered = -1
		return
	}
	positions := g.positions()
	place := func() {
		g.tiles = layout.Tiles(positions, config.WindowWidth, config.WindowHeight, config.TileSize, g.time, g.hovered)
	}
	place()

	released := !clicked && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	if _, open := g.session.Selected(); open {
		if g.hovered != -1 {
			g.hovered = -1
			place()
		}
		if released {
			g.session.ClearSelection()
		}
		return
	}

	mx, my := ebiten.CursorPosition()
	if h := layout.HitTest(g.tiles, float64(mx), float64(my)); h != g.hovered {
		g.hovered = h
		place()
	}
	if released && g.hovered >= 0 {
		g.session.Select(g.hovered)
		log.Debug().Int("item", g.hovered).Msg("lightbox opened")
	}
}

// onPhase reacts to celebration phase changes.
func (g *Game) onPhase(from, to sequencer.Phase) {
	switch {
	case from == sequencer.Idle:
		g.celebrationTime = 0
		g.slideChangedAt = 0
		g.lastSlide = 0
		g.sparks = layout.Sparks(layout.DefaultSparks, g.rng)
		g.music.Start()
	case to == sequencer.Idle:
		g.session.ClearSelection()
		g.music.Stop()
	}
	if to == sequencer.RunningSlideshow {
		g.slideChangedAt = g.celebrationTime
	}
}

func (g *Game) togglePreview() {
	on := g.session.TogglePreview()
	log.Info().Bool("preview", on).Msg("preview toggled")
	g.music.Retry()
}

func (g *Game) positions() []layout.Position {
	return g.scatter.Positions(g.session.MediaVersion(), len(g.session.Media()))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	if !g.session.SetupComplete() {
		g.drawSetup(screen)
		return
	}

	switch g.seq.Phase() {
	case sequencer.Idle:
		g.drawCountdown(screen)
	case sequencer.ShowingMessage:
		g.drawSparks(screen)
		g.drawMessage(screen)
	case sequencer.RunningSlideshow:
		g.drawSparks(screen)
		g.drawSlideshow(screen)
	case sequencer.ShowingGallery:
		g.drawSparks(screen)
		g.drawGallery(screen)
		g.drawLightbox(screen)
	}

	g.drawControls(screen)
	g.drawFooter(screen)

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  phase %s  slide %d", ebiten.ActualTPS(), g.seq.Phase(), g.seq.Slide()), 8, config.WindowHeight-20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close releases audio and cached images.
func (g *Game) Close() {
	g.timer.Stop()
	g.seq.Reset()
	g.player.Close()
	g.images.clear()
}

// sessionElapsed is used for GIF playback.
func (g *Game) sessionElapsed() time.Duration {
	return time.Duration(g.time * float64(time.Second))
}

package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/celebration-countdown/internal/config"
	"github.com/iburimskiy/celebration-countdown/internal/game"
	"github.com/iburimskiy/celebration-countdown/internal/playback"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	player := playback.New()
	g, err := game.New(cfg, clockwork.NewRealClock(), player)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize")
	}
	defer g.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("New Year Countdown - P: Preview, M: Music, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game loop exited")
		g.Close()
		os.Exit(1)
	}
}

package main

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wdevries/neondeck/assets/icon"
	"github.com/wdevries/neondeck/internal/anim"
	"github.com/wdevries/neondeck/internal/app"
	"github.com/wdevries/neondeck/internal/config"
	"github.com/wdevries/neondeck/internal/ui"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatal().Err(err).Msg("failed to init fonts")
	}

	game := app.NewGame(cfg, log)

	// Create and wire the persistent header bar
	header := ui.NewHeaderBar(
		anim.HexColor(cfg.Theme.Header.From),
		anim.HexColor(cfg.Theme.Header.To),
		time.Duration(cfg.Animation.HeaderCycleMs)*time.Millisecond,
		!cfg.Animation.ReduceMotion,
	)
	sf := &screenFactory{game: game, cfg: cfg, log: log}
	header.OnNavigate = func(action string) {
		switch action {
		case "home":
			game.Screens.ClearStack()
			sf.pushHome()
		case "settings":
			game.Screens.ClearStack()
			sf.pushHome()
			sf.pushSettings()
		}
	}
	game.Screens.Header = header
	defer header.Stop()

	sf.pushHome()

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("NeonDeck")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	log.Info().Int("shortcuts", len(cfg.Shortcuts)).
		Int("segments", cfg.Animation.SegmentCount).
		Msg("starting NeonDeck")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}

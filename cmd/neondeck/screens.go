package main

import (
	"github.com/rs/zerolog"

	"github.com/wdevries/neondeck/internal/app"
	"github.com/wdevries/neondeck/internal/config"
	"github.com/wdevries/neondeck/internal/ui"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	game *app.Game
	cfg  *config.Config
	log  zerolog.Logger
}

func (sf *screenFactory) pushHome() {
	home, err := ui.NewHomeScreen(sf.cfg)
	if err != nil {
		// Config was validated at load time; reaching this means a settings
		// edit produced a count the engine rejects.
		sf.log.Fatal().Err(err).Msg("invalid border configuration")
	}
	home.OnLaunch = sf.game.Launch
	sf.game.Screens.Replace(home)
}

func (sf *screenFactory) pushSettings() {
	settings := ui.NewSettingsScreen(sf.cfg, func() {
		if err := sf.cfg.Save(); err != nil {
			sf.log.Error().Err(err).Msg("failed to save config")
			return
		}
		sf.log.Info().Msg("config saved")
	})
	sf.game.Screens.Push(settings)
}

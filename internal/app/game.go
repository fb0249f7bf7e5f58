// Package app hosts the ebiten game loop: the single thread that owns the
// visual surface and drives every animation tick.
package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/wdevries/neondeck/internal/config"
	"github.com/wdevries/neondeck/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Screens *ui.ScreenManager

	log zerolog.Logger
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, log zerolog.Logger) *Game {
	return &Game{
		Config:  cfg,
		Screens: ui.NewScreenManager(),
		log:     log,
	}
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles the animation debug overlay
	ui.ToggleDebugOverlay()

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)

	var lines []string
	if hb := g.Screens.Header; hb != nil {
		lines = append(lines, ui.HeaderDebugLine(hb))
	}
	if reporter, ok := g.Screens.Current().(ui.DebugReporter); ok {
		lines = append(lines, reporter.DebugLines()...)
	}
	ui.DrawDebugOverlay(screen, lines)
}

// Layout renders at a fixed internal resolution; ebiten scales it to the
// window, so ui layout math never depends on the configured window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ui.ScreenWidth, ui.ScreenHeight
}

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wdevries/neondeck/internal/anim"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12. Call once per Update.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DebugReporter is implemented by screens that expose live animation state.
type DebugReporter interface {
	DebugLines() []string
}

// HeaderDebugLine reports the header bar's tint driver for the overlay.
func HeaderDebugLine(hb *HeaderBar) string {
	return debugPhaseLine("header tint (ping-pong)", hb.tint, hb.phase)
}

// debugPhaseLine formats one driver's state for the overlay.
func debugPhaseLine(name string, d *anim.Driver, phase float64) string {
	if d == nil {
		return fmt.Sprintf("%-24s (not running)", name)
	}
	return fmt.Sprintf("%-24s phase=%.3f", name, phase)
}

// DrawDebugOverlay draws the animation debug panel if visible. extra holds
// the active screen's driver readouts.
func DrawDebugOverlay(screen *ebiten.Image, extra []string) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	lines := []string{
		"Debug: Animation (F12 to close)",
		fmt.Sprintf("fps=%.1f tps=%.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}
	lines = append(lines, extra...)

	panelH := float64(len(lines))*lineH + padY*2
	panelW := 380.0
	px := float64(ScreenWidth) - panelW - marginR
	py := marginT + HeaderHeight

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY
	for i, line := range lines {
		clr := ColorText
		if i == 0 {
			clr = ColorPrimary
		}
		DrawText(screen, line, x, y, FontSizeSmall, clr)
		y += lineH
	}
}

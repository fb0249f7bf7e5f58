package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wdevries/neondeck/internal/anim"
)

// HeaderAction represents the result of a header Update cycle.
type HeaderAction int

const (
	HeaderActionNone    HeaderAction = iota
	HeaderActionDefocus              // return focus to the screen below
)

// HeaderBar is the persistent chrome at the top of every screen: the app
// title with its breathing tint, a clock, and the settings button. The bar
// owns one PingPong driver for the title tint; it lives for the whole app
// run, so the driver is started at construction and stopped via Stop when
// the host tears the bar down.
type HeaderBar struct {
	Active           bool
	ActiveScreenName string

	focusSection int // 0=home title, 1=settings button

	tintA, tintB anim.HexColor
	tint         *anim.Driver
	phase        float64
	unsub        func()

	OnNavigate func(action string) // "home", "settings"
}

// NewHeaderBar creates the bar and starts its tint driver. With animate
// false (reduce motion) no driver is created and the tint stays at phase 0.
func NewHeaderBar(tintFrom, tintTo anim.HexColor, cycle time.Duration, animate bool) *HeaderBar {
	hb := &HeaderBar{
		tintA:        tintFrom,
		tintB:        tintTo,
		focusSection: 1,
		unsub:        func() {},
	}
	if animate {
		hb.tint = anim.StartDriver(cycle, anim.PingPong)
		hb.unsub = hb.tint.Subscribe(func(p float64) { hb.phase = p })
	}
	return hb
}

// Stop releases the tint driver. Idempotent.
func (hb *HeaderBar) Stop() {
	hb.unsub()
	if hb.tint != nil {
		hb.tint.Stop()
	}
}

// FocusFromBelow activates keyboard focus on the bar (called when a screen hands focus up).
func (hb *HeaderBar) FocusFromBelow() {
	hb.Active = true
	hb.focusSection = 1
}

// Update processes keyboard input while the bar is active.
func (hb *HeaderBar) Update() HeaderAction {
	if !hb.Active {
		return HeaderActionNone
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		hb.Active = false
		return HeaderActionDefocus
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && hb.focusSection > 0 {
		hb.focusSection--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && hb.focusSection < 1 {
		hb.focusSection++
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if hb.OnNavigate != nil {
			if hb.focusSection == 0 {
				hb.OnNavigate("home")
			} else {
				hb.OnNavigate("settings")
			}
		}
		hb.Active = false
		return HeaderActionDefocus
	}

	return HeaderActionNone
}

// HandleClick checks if (mx, my) hits a header element. Returns true if consumed.
func (hb *HeaderBar) HandleClick(mx, my int) bool {
	if float64(my) >= HeaderHeight {
		return false
	}

	// Title → home
	if PointInRect(mx, my, HeaderPadding, 14, 200, 38) {
		if hb.OnNavigate != nil {
			hb.OnNavigate("home")
		}
		return true
	}

	// Settings button
	settingsX := float64(ScreenWidth) - HeaderPadding - 110
	if PointInRect(mx, my, settingsX, 13, 110, 38) {
		if hb.OnNavigate != nil {
			hb.OnNavigate("settings")
		}
		return true
	}

	return false
}

// Draw renders the bar. Ticks the tint driver: the bar is repainted every
// frame, so the driver advances here.
func (hb *HeaderBar) Draw(dst *ebiten.Image) {
	if hb.tint != nil {
		hb.tint.Tick()
	}
	tinted := anim.Interpolate(hb.tintA, hb.tintB, hb.phase).RGBA()

	// Solid background bar with a tinted separator line
	vector.DrawFilledRect(dst, 0, 0, float32(ScreenWidth), float32(HeaderHeight), ColorBackground, false)
	vector.DrawFilledRect(dst, 0, float32(HeaderHeight-2), float32(ScreenWidth), 2, tinted, false)

	// Title (clickable home); the tint is the animated element
	titleColor := tinted
	if hb.Active && hb.focusSection == 0 {
		vector.StrokeRect(dst, HeaderPadding-8, 12, 190, 40, 2, ColorPrimary, false)
	}
	DrawText(dst, "NeonDeck", HeaderPadding, 16, FontSizeTitle, titleColor)

	// Clock, centered
	DrawTextCentered(dst, time.Now().Format("15:04"),
		float64(ScreenWidth)/2, HeaderHeight/2, FontSizeHeading, ColorTextSecondary)

	// Settings button
	settingsX := float32(ScreenWidth - HeaderPadding - 110)
	focused := hb.Active && hb.focusSection == 1
	active := hb.ActiveScreenName == "Settings"
	switch {
	case focused:
		vector.DrawFilledRect(dst, settingsX, 13, 110, 38, ColorPrimary, false)
		DrawTextCentered(dst, "Settings", float64(settingsX)+63, 32, FontSizeBody, ColorBackground)
		drawGearIcon(dst, settingsX+18, 32, 7, ColorBackground)
	case active:
		vector.DrawFilledRect(dst, settingsX, 13, 110, 38, ColorSurfaceHover, false)
		vector.StrokeRect(dst, settingsX, 13, 110, 38, 2, ColorPrimary, false)
		DrawTextCentered(dst, "Settings", float64(settingsX)+63, 32, FontSizeBody, ColorText)
		drawGearIcon(dst, settingsX+18, 32, 7, ColorPrimary)
	default:
		vector.DrawFilledRect(dst, settingsX, 13, 110, 38, ColorSurfaceHover, false)
		vector.StrokeRect(dst, settingsX, 13, 110, 38, 1, ColorTextSecondary, false)
		DrawTextCentered(dst, "Settings", float64(settingsX)+63, 32, FontSizeBody, ColorText)
		drawGearIcon(dst, settingsX+18, 32, 7, ColorTextSecondary)
	}
}

// Phase exposes the current tint phase for the debug overlay.
func (hb *HeaderBar) Phase() float64 {
	return hb.phase
}

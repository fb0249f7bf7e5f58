package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wdevries/neondeck/internal/anim"
	"github.com/wdevries/neondeck/internal/config"
)

// segmentCountOptions are the counts the border engine accepts (multiples of 4).
var segmentCountOptions = []int{16, 24, 32, 48, 64}

var borderCycleOptions = []int{2000, 3000, 5000, 8000}

// SettingsScreen edits the launcher options. The focused row's accent tint
// animates from the screen's own PingPong driver (the toggle-button tint),
// started in OnEnter and stopped in OnExit like every other element-owned
// driver.
type SettingsScreen struct {
	cfg *config.Config

	items    []settingsItem
	focused  int
	rowRects []Rect

	tintDriver *anim.Driver
	unsubTint  func()
	tintPhase  float64

	OnSave func()
}

type settingsItem struct {
	Label  string
	Value  func() string
	Toggle func()        // Enter flips a boolean row
	Cycle  func(dir int) // Left/Right steps an option row
}

func NewSettingsScreen(cfg *config.Config, onSave func()) *SettingsScreen {
	ss := &SettingsScreen{cfg: cfg, OnSave: onSave}
	ss.items = []settingsItem{
		{
			Label:  "Fullscreen",
			Value:  func() string { return onOff(cfg.UI.Fullscreen) },
			Toggle: func() { cfg.UI.Fullscreen = !cfg.UI.Fullscreen; ebiten.SetFullscreen(cfg.UI.Fullscreen) },
		},
		{
			Label:  "Reduce motion",
			Value:  func() string { return onOff(cfg.Animation.ReduceMotion) },
			Toggle: func() { cfg.Animation.ReduceMotion = !cfg.Animation.ReduceMotion },
		},
		{
			Label: "Border rotation cycle",
			Value: func() string { return fmt.Sprintf("%d ms", cfg.Animation.BorderCycleMs) },
			Cycle: func(dir int) {
				cfg.Animation.BorderCycleMs = cycleOption(borderCycleOptions, cfg.Animation.BorderCycleMs, dir)
			},
		},
		{
			Label: "Border segments",
			Value: func() string { return fmt.Sprintf("%d", cfg.Animation.SegmentCount) },
			Cycle: func(dir int) {
				cfg.Animation.SegmentCount = cycleOption(segmentCountOptions, cfg.Animation.SegmentCount, dir)
			},
		},
	}
	return ss
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// cycleOption steps to the next/previous entry of opts, snapping unknown
// current values to the first entry.
func cycleOption(opts []int, current, dir int) int {
	idx := 0
	for i, v := range opts {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(opts)) % len(opts)
	return opts[idx]
}

func (ss *SettingsScreen) Name() string { return "Settings" }

func (ss *SettingsScreen) OnEnter() {
	if ss.cfg.Animation.ReduceMotion {
		return
	}
	ss.tintDriver = anim.StartDriver(
		time.Duration(ss.cfg.Animation.ToggleCycleMs)*time.Millisecond, anim.PingPong)
	ss.unsubTint = ss.tintDriver.Subscribe(func(p float64) { ss.tintPhase = p })
}

func (ss *SettingsScreen) OnExit() {
	if ss.tintDriver != nil {
		ss.unsubTint()
		ss.tintDriver.Stop()
		ss.tintDriver = nil
	}
	if ss.OnSave != nil {
		ss.OnSave()
	}
}

func (ss *SettingsScreen) Update() (*ScreenTransition, error) {
	dir, enter, back := InputState()

	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	switch dir {
	case DirUp:
		if ss.focused > 0 {
			ss.focused--
		} else {
			return &ScreenTransition{Type: TransitionFocusHeader}, nil
		}
	case DirDown:
		if ss.focused < len(ss.items)-1 {
			ss.focused++
		}
	case DirLeft:
		ss.adjust(-1)
	case DirRight:
		ss.adjust(1)
	}

	if enter {
		ss.adjust(1)
	}

	if mx, my, clicked := MouseJustClicked(); clicked {
		for i, r := range ss.rowRects {
			if PointInRect(mx, my, r.X, r.Y, r.W, r.H) {
				if i == ss.focused {
					ss.adjust(1)
				} else {
					ss.focused = i
				}
				break
			}
		}
	}

	return nil, nil
}

func (ss *SettingsScreen) adjust(dir int) {
	item := ss.items[ss.focused]
	switch {
	case item.Toggle != nil:
		item.Toggle()
	case item.Cycle != nil:
		item.Cycle(dir)
	}
}

func (ss *SettingsScreen) Draw(dst *ebiten.Image) {
	if ss.tintDriver != nil {
		ss.tintDriver.Tick()
	}
	tint := anim.Interpolate(
		anim.HexColor(ss.cfg.Theme.Toggle.From),
		anim.HexColor(ss.cfg.Theme.Toggle.To),
		ss.tintPhase,
	).RGBA()

	DrawText(dst, "Settings", SectionPadding, HeaderHeight+24, FontSizeHeading, ColorText)
	DrawText(dst, "Enter or ←/→ to change, Esc to go back",
		SectionPadding, HeaderHeight+58, FontSizeSmall, ColorTextMuted)

	rowW := float64(ScreenWidth) - SectionPadding*2
	rowH := 56.0
	y := float64(HeaderHeight) + 100

	ss.rowRects = ss.rowRects[:0]
	for i, item := range ss.items {
		r := Rect{X: SectionPadding, Y: y, W: rowW, H: rowH}
		ss.rowRects = append(ss.rowRects, r)

		focused := i == ss.focused
		if focused {
			vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColorSurfaceHover, false)
			vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, tint, false)
		} else {
			vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColorSurface, false)
		}

		DrawText(dst, item.Label, r.X+20, r.Y+16, FontSizeBody, ColorText)

		valueColor := ColorTextSecondary
		if focused {
			valueColor = tint
		}
		if item.Toggle != nil {
			drawTogglePill(dst, r.X+r.W-90, r.Y+rowH/2, item.Value() == "On", focused, tint)
		} else {
			DrawTextRight(dst, item.Value(), r.X+r.W-24, r.Y+16, FontSizeBody, valueColor)
		}

		y += rowH + 12
	}
}

// drawTogglePill paints an on/off switch: a track with a knob, tinted by the
// animated accent while its row is focused.
func drawTogglePill(dst *ebiten.Image, x, cy float64, on, focused bool, tint color.RGBA) {
	trackW, trackH := 56.0, 26.0
	trackColor := ColorTextMuted
	if on {
		trackColor = ColorPrimary
	}
	if focused {
		trackColor = tint
	}

	ty := cy - trackH/2
	vector.DrawFilledRect(dst, float32(x+trackH/2), float32(ty), float32(trackW-trackH), float32(trackH), trackColor, false)
	vector.DrawFilledCircle(dst, float32(x+trackH/2), float32(cy), float32(trackH/2), trackColor, false)
	vector.DrawFilledCircle(dst, float32(x+trackW-trackH/2), float32(cy), float32(trackH/2), trackColor, false)

	knobX := x + trackH/2
	if on {
		knobX = x + trackW - trackH/2
	}
	vector.DrawFilledCircle(dst, float32(knobX), float32(cy), float32(trackH/2-4), ColorBackground, false)
}

// DebugLines reports the tint driver phase for the F12 overlay.
func (ss *SettingsScreen) DebugLines() []string {
	return []string{debugPhaseLine("toggle tint (ping-pong)", ss.tintDriver, ss.tintPhase)}
}

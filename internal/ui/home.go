package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wdevries/neondeck/internal/anim"
	"github.com/wdevries/neondeck/internal/config"
)

// HomeScreen shows the shortcut grid. It owns the two home animations:
// the border rotation (Wrap, so the gradient band circles the focused tile
// without reflecting) and the icon glow (PingPong). Both are acquired in
// OnEnter and released in OnExit.
type HomeScreen struct {
	cfg  *config.Config
	grid *TileGrid

	border *anim.BorderSpec

	borderDriver *anim.Driver
	glowDriver   *anim.Driver
	unsubBorder  func()
	unsubGlow    func()

	borderPhase float64
	glowPhase   float64

	toast Toast

	OnLaunch func(sc config.ShortcutConfig) error
}

// NewHomeScreen builds the grid from the configured shortcuts. The border
// layout is validated here, the fail-fast point for bad segment counts.
func NewHomeScreen(cfg *config.Config) (*HomeScreen, error) {
	border, err := anim.NewBorderSpec(
		cfg.Animation.SegmentCount,
		anim.HexColor(cfg.Theme.Border.From),
		anim.HexColor(cfg.Theme.Border.To),
	)
	if err != nil {
		return nil, err
	}

	tiles := make([]Tile, len(cfg.Shortcuts))
	for i, sc := range cfg.Shortcuts {
		tiles[i] = Tile{Name: sc.Name, Glyph: sc.Icon}
	}

	return &HomeScreen{
		cfg:    cfg,
		grid:   NewTileGrid(cfg.UI.Columns, tiles),
		border: border,
	}, nil
}

func (hs *HomeScreen) Name() string { return "Home" }

func (hs *HomeScreen) OnEnter() {
	// Settings may have changed the segment count while this screen was
	// covered; rebuild the layout from config on every activation. Settings
	// only offers counts the engine accepts, so a rejected count means the
	// config predates validation and the previous layout stays.
	if border, err := anim.NewBorderSpec(
		hs.cfg.Animation.SegmentCount,
		anim.HexColor(hs.cfg.Theme.Border.From),
		anim.HexColor(hs.cfg.Theme.Border.To),
	); err == nil {
		hs.border = border
	}

	if hs.cfg.Animation.ReduceMotion {
		// Static chrome: no drivers, phases stay at 0.
		return
	}
	hs.borderDriver = anim.StartDriver(
		time.Duration(hs.cfg.Animation.BorderCycleMs)*time.Millisecond, anim.Wrap)
	hs.unsubBorder = hs.borderDriver.Subscribe(func(p float64) { hs.borderPhase = p })

	hs.glowDriver = anim.StartDriver(
		time.Duration(hs.cfg.Animation.GlowCycleMs)*time.Millisecond, anim.PingPong)
	hs.unsubGlow = hs.glowDriver.Subscribe(func(p float64) { hs.glowPhase = p })
}

func (hs *HomeScreen) OnExit() {
	if hs.borderDriver != nil {
		hs.unsubBorder()
		hs.borderDriver.Stop()
		hs.borderDriver = nil
	}
	if hs.glowDriver != nil {
		hs.unsubGlow()
		hs.glowDriver.Stop()
		hs.glowDriver = nil
	}
}

func (hs *HomeScreen) Update() (*ScreenTransition, error) {
	dir, enter, _ := InputState()

	switch dir {
	case DirNone:
	default:
		if !hs.grid.Update(dir) {
			return &ScreenTransition{Type: TransitionFocusHeader}, nil
		}
		hs.grid.EnsureVisible(hs.gridBaseY(), float64(ScreenHeight)-SectionPadding)
	}

	if _, wy := MouseWheelDelta(); wy != 0 {
		hs.grid.ScrollBy(-wy*wheelScrollStep, hs.gridBaseY(), float64(ScreenHeight)-SectionPadding)
	}

	if mx, my, clicked := MouseJustClicked(); clicked {
		if i := hs.grid.HitTest(mx, my, SectionPadding, hs.gridBaseY()); i >= 0 {
			if i == hs.grid.Focused {
				enter = true
			} else {
				hs.grid.Focused = i
			}
		}
	}

	if enter {
		hs.launchFocused()
	}

	return nil, nil
}

func (hs *HomeScreen) launchFocused() {
	i := hs.grid.Focused
	if i >= len(hs.cfg.Shortcuts) || hs.OnLaunch == nil {
		return
	}
	sc := hs.cfg.Shortcuts[i]
	if err := hs.OnLaunch(sc); err != nil {
		hs.toast.Show("Failed to launch " + sc.Name + ": " + err.Error())
	}
}

func (hs *HomeScreen) gridBaseY() float64 {
	return HeaderHeight + SectionPadding
}

func (hs *HomeScreen) Draw(dst *ebiten.Image) {
	if hs.borderDriver != nil {
		hs.borderDriver.Tick()
	}
	if hs.glowDriver != nil {
		hs.glowDriver.Tick()
	}

	segs := hs.border.Segments(hs.borderPhase)
	glow, err := anim.AverageColor(segs)
	if err != nil {
		// Unreachable with a validated BorderSpec; keep the chrome sane anyway.
		glow = anim.HexColor(hs.cfg.Theme.Border.From)
	}
	iconTint := anim.Interpolate(
		anim.HexColor(hs.cfg.Theme.Glow.From),
		anim.HexColor(hs.cfg.Theme.Glow.To),
		hs.glowPhase,
	)

	if len(hs.grid.Tiles) == 0 {
		DrawTextCentered(dst, "No shortcuts configured",
			float64(ScreenWidth)/2, float64(ScreenHeight)/2, FontSizeHeading, ColorTextSecondary)
		return
	}

	hs.grid.Draw(dst, SectionPadding, hs.gridBaseY(), segs, glow, iconTint)
	hs.toast.Draw(dst)
}

// DebugLines reports the live driver phases for the F12 overlay.
func (hs *HomeScreen) DebugLines() []string {
	return []string{
		debugPhaseLine("border (wrap)", hs.borderDriver, hs.borderPhase),
		debugPhaseLine("icon glow (ping-pong)", hs.glowDriver, hs.glowPhase),
	}
}

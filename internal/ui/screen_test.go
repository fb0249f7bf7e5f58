package ui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdevries/neondeck/internal/config"
)

// stubScreen records lifecycle calls.
type stubScreen struct {
	name   string
	enters int
	exits  int
}

func (s *stubScreen) Update() (*ScreenTransition, error) { return nil, nil }
func (s *stubScreen) Draw(dst *ebiten.Image)             {}
func (s *stubScreen) OnEnter()                           { s.enters++ }
func (s *stubScreen) OnExit()                            { s.exits++ }
func (s *stubScreen) Name() string                       { return s.name }

func TestScreenManagerPushPopLifecycle(t *testing.T) {
	sm := NewScreenManager()
	home := &stubScreen{name: "Home"}
	settings := &stubScreen{name: "Settings"}

	sm.Replace(home)
	assert.Equal(t, 1, home.enters)

	sm.Push(settings)
	assert.Equal(t, 1, home.exits, "covered screen must release its drivers")
	assert.Equal(t, 1, settings.enters)

	sm.Pop()
	assert.Equal(t, 1, settings.exits)
	assert.Equal(t, 2, home.enters, "uncovered screen re-acquires")
	assert.Same(t, home, sm.Current())
}

func TestScreenManagerClearStackExitsEverything(t *testing.T) {
	sm := NewScreenManager()
	a := &stubScreen{name: "A"}
	b := &stubScreen{name: "B"}
	sm.Replace(a)
	sm.Push(b)

	sm.ClearStack()
	assert.Equal(t, 0, sm.StackSize())
	// Every entry is balanced by an exit, covered screens included.
	assert.Equal(t, a.enters, a.exits)
	assert.Equal(t, b.enters, b.exits)
}

func TestScreenManagerReplaceExitsOld(t *testing.T) {
	sm := NewScreenManager()
	a := &stubScreen{name: "A"}
	b := &stubScreen{name: "B"}
	sm.Replace(a)
	sm.Replace(b)

	assert.Equal(t, 1, a.exits)
	assert.Equal(t, 1, b.enters)
	assert.Equal(t, 1, sm.StackSize())
}

func TestHomeScreenDriverLifecycle(t *testing.T) {
	cfg := config.DefaultConfig()
	hs, err := NewHomeScreen(cfg)
	require.NoError(t, err)

	hs.OnEnter()
	require.NotNil(t, hs.borderDriver)
	require.NotNil(t, hs.glowDriver)
	border, glow := hs.borderDriver, hs.glowDriver

	hs.OnExit()
	assert.True(t, border.Stopped())
	assert.True(t, glow.Stopped())
	assert.Nil(t, hs.borderDriver, "released exactly once; a second OnExit is a no-op")
	assert.NotPanics(t, hs.OnExit)
}

func TestHomeScreenReentryPicksUpNewSegmentCount(t *testing.T) {
	cfg := config.DefaultConfig()
	hs, err := NewHomeScreen(cfg)
	require.NoError(t, err)

	hs.OnEnter()
	assert.Equal(t, 32, hs.border.Count())
	hs.OnExit()

	// Settings edits the count while home is covered, then pops back.
	cfg.Animation.SegmentCount = 16
	hs.OnEnter()
	defer hs.OnExit()
	assert.Equal(t, 16, hs.border.Count(), "re-entering must rebuild the border layout from config")
}

func TestHomeScreenReduceMotionSkipsDrivers(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Animation.ReduceMotion = true
	hs, err := NewHomeScreen(cfg)
	require.NoError(t, err)

	hs.OnEnter()
	assert.Nil(t, hs.borderDriver)
	assert.Nil(t, hs.glowDriver)
	assert.NotPanics(t, hs.OnExit)
}

func TestNewHomeScreenRejectsBadSegmentCount(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Animation.SegmentCount = 30
	_, err := NewHomeScreen(cfg)
	assert.Error(t, err)
}

func TestSettingsCycleOption(t *testing.T) {
	opts := []int{2000, 3000, 5000}
	assert.Equal(t, 3000, cycleOption(opts, 2000, 1))
	assert.Equal(t, 2000, cycleOption(opts, 5000, 1), "wraps forward")
	assert.Equal(t, 5000, cycleOption(opts, 2000, -1), "wraps backward")
	assert.Equal(t, 3000, cycleOption(opts, 9999, 1), "unknown value snaps to the option list")
}

package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/wdevries/neondeck/internal/config"
)

func TestLaunchRequiresExecCommand(t *testing.T) {
	g := NewGame(config.DefaultConfig(), zerolog.Nop())
	err := g.Launch(config.ShortcutConfig{Name: "broken"})
	assert.Error(t, err)
}

func TestLaunchSpawnsAndReturns(t *testing.T) {
	g := NewGame(config.DefaultConfig(), zerolog.Nop())
	err := g.Launch(config.ShortcutConfig{Name: "noop", Exec: "true"})
	assert.NoError(t, err)
}

func TestLaunchReportsMissingBinary(t *testing.T) {
	g := NewGame(config.DefaultConfig(), zerolog.Nop())
	err := g.Launch(config.ShortcutConfig{Name: "ghost", Exec: "/nonexistent/neondeck-test-binary"})
	assert.Error(t, err)
}

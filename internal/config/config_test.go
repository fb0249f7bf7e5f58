package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 32, cfg.Animation.SegmentCount)
	assert.Equal(t, "#00bfff", cfg.Theme.Border.From)
	assert.Equal(t, "#9d4edd", cfg.Theme.Border.To)
	assert.NotEmpty(t, cfg.Shortcuts)
}

func TestValidateRejectsBadSegmentCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animation.SegmentCount = 30
	assert.Error(t, cfg.Validate())

	cfg.Animation.SegmentCount = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveCycles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animation.GlowCycleMs = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateCanonicalizesThemeColors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.Border = HexPair{From: "#00BFFF", To: "#9D4EDD"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "#00bfff", cfg.Theme.Border.From)
	assert.Equal(t, "#9d4edd", cfg.Theme.Border.To)
}

func TestValidateRejectsMalformedThemeColors(t *testing.T) {
	for _, bad := range []string{"00bfff", "#00bff", "#00bfgg", "blue", ""} {
		cfg := DefaultConfig()
		cfg.Theme.Glow.To = bad
		assert.Error(t, cfg.Validate(), "value %q", bad)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Animation, cfg.Animation)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "neondeck", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`
[animation]
border_cycle_ms = 3000

[theme.border]
from = "#ff0000"
to = "#0000ff"

[[shortcut]]
name = "Editor"
exec = "gedit"
icon = "E"
`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Animation.BorderCycleMs)
	assert.Equal(t, 2000, cfg.Animation.GlowCycleMs, "unset keys keep defaults")
	assert.Equal(t, "#ff0000", cfg.Theme.Border.From)
	require.Len(t, cfg.Shortcuts, 1, "shortcut table in the file replaces the default set")
	assert.Equal(t, "Editor", cfg.Shortcuts[0].Name)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "neondeck", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`
[animation]
segment_count = 30
`), 0o644))

	_, err := Load()
	assert.Error(t, err, "segment counts the engine would reject fail at load time")
}

func TestSaveRoundTrips(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Animation.ReduceMotion = true
	cfg.UI.Columns = 4
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.True(t, loaded.Animation.ReduceMotion)
	assert.Equal(t, 4, loaded.UI.Columns)
}

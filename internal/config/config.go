package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/wdevries/neondeck/internal/anim"
)

type Config struct {
	UI        UIConfig         `toml:"ui"`
	Theme     ThemeConfig      `toml:"theme"`
	Animation AnimationConfig  `toml:"animation"`
	Shortcuts []ShortcutConfig `toml:"shortcut"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Columns    int  `toml:"columns"`
}

// ThemeConfig holds the gradient endpoint pairs for each animated element,
// as "#rrggbb" strings. Each element owns its own pair; drivers and
// gradients are never shared between elements.
type ThemeConfig struct {
	Border HexPair `toml:"border"`
	Glow   HexPair `toml:"icon_glow"`
	Header HexPair `toml:"header"`
	Toggle HexPair `toml:"toggle"`
}

type HexPair struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validate checks both endpoints are well-formed "#rrggbb" strings and
// rewrites them in the engine's canonical lowercase encoding. The engine
// itself never validates hex input; this is the boundary that does.
func (p *HexPair) validate(element string) error {
	for _, s := range []string{p.From, p.To} {
		if !hexPattern.MatchString(s) {
			return fmt.Errorf("config: theme.%s color %q must be #rrggbb", element, s)
		}
	}
	p.From = string(anim.HexColor(p.From).Canonical())
	p.To = string(anim.HexColor(p.To).Canonical())
	return nil
}

type AnimationConfig struct {
	BorderCycleMs int  `toml:"border_cycle_ms"`
	GlowCycleMs   int  `toml:"glow_cycle_ms"`
	HeaderCycleMs int  `toml:"header_cycle_ms"`
	ToggleCycleMs int  `toml:"toggle_cycle_ms"`
	SegmentCount  int  `toml:"segment_count"`
	ReduceMotion  bool `toml:"reduce_motion"`
}

// ShortcutConfig is one launcher tile: a display name, the command it
// spawns, and a single-rune glyph drawn as the tile icon.
type ShortcutConfig struct {
	Name string   `toml:"name"`
	Exec string   `toml:"exec"`
	Args []string `toml:"args"`
	Icon string   `toml:"icon"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1920,
			Height:     1080,
			Columns:    5,
		},
		Theme: ThemeConfig{
			Border: HexPair{From: "#00bfff", To: "#9d4edd"},
			Glow:   HexPair{From: "#00a4dc", To: "#aa5cc3"},
			Header: HexPair{From: "#00a4dc", To: "#e0e0e0"},
			Toggle: HexPair{From: "#1c1c24", To: "#00a4dc"},
		},
		Animation: AnimationConfig{
			BorderCycleMs: 5000,
			GlowCycleMs:   2000,
			HeaderCycleMs: 2000,
			ToggleCycleMs: 2000,
			SegmentCount:  32,
		},
		Shortcuts: []ShortcutConfig{
			{Name: "Terminal", Exec: "x-terminal-emulator", Icon: ">"},
			{Name: "Browser", Exec: "xdg-open", Args: []string{"https://duckduckgo.com"}, Icon: "@"},
			{Name: "Files", Exec: "xdg-open", Args: []string{"."}, Icon: "▤"},
			{Name: "Music", Exec: "rhythmbox", Icon: "♪"},
			{Name: "Video", Exec: "mpv", Icon: "▶"},
		},
	}
}

// Validate rejects configurations the animation engine would refuse at
// construction time, so a bad file fails at startup instead of mid-frame.
func (c *Config) Validate() error {
	if n := c.Animation.SegmentCount; n < 4 || n%4 != 0 {
		return fmt.Errorf("config: segment_count %d must be a positive multiple of 4", n)
	}
	for _, ms := range []int{
		c.Animation.BorderCycleMs, c.Animation.GlowCycleMs,
		c.Animation.HeaderCycleMs, c.Animation.ToggleCycleMs,
	} {
		if ms <= 0 {
			return fmt.Errorf("config: animation cycle durations must be positive, got %dms", ms)
		}
	}
	if c.UI.Columns < 1 {
		return fmt.Errorf("config: ui.columns must be at least 1, got %d", c.UI.Columns)
	}
	for _, tp := range []struct {
		name string
		pair *HexPair
	}{
		{"border", &c.Theme.Border},
		{"icon_glow", &c.Theme.Glow},
		{"header", &c.Theme.Header},
		{"toggle", &c.Theme.Toggle},
	} {
		if err := tp.pair.validate(tp.name); err != nil {
			return err
		}
	}
	return nil
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "neondeck"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

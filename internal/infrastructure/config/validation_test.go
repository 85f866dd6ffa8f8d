package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "negative band", mutate: func(c *Config) { c.Layout.HeaderHeight = -1 }, wantKey: "layout.header_height"},
		{name: "zero min width", mutate: func(c *Config) { c.Layout.MinWidth = 0 }, wantKey: "layout.min_width"},
		{name: "default below min", mutate: func(c *Config) { c.Layout.DefaultWidth = 100 }, wantKey: "layout.default_width"},
		{name: "header taller than min", mutate: func(c *Config) { c.Layout.PanelHeaderHeight = 500 }, wantKey: "layout.panel_header_height"},
		{name: "rank order", mutate: func(c *Config) { c.Stacking.ChromeRank = 50 }, wantKey: "stacking ranks"},
		{name: "swipe threshold", mutate: func(c *Config) { c.Mobile.SwipeThreshold = 0 }, wantKey: "mobile.swipe_threshold"},
		{name: "bad binding", mutate: func(c *Config) { c.Keyboard.Cycle = []string{"hyper+x"} }, wantKey: "keyboard.cycle"},
		{name: "empty binding list", mutate: func(c *Config) { c.Keyboard.NudgeUp = nil }, wantKey: "keyboard.nudge_up"},
		{name: "binding clash", mutate: func(c *Config) { c.Keyboard.MinimizeToggle = []string{"alt+tab"} }, wantKey: "already bound by keyboard.cycle"},
		{name: "bad quick select prefix", mutate: func(c *Config) { c.Keyboard.QuickSelectPrefix = "meta+" }, wantKey: "keyboard.quick_select_prefix"},
		{name: "fast slower than normal", mutate: func(c *Config) { c.Keyboard.FastNudgeStep = 5 }, wantKey: "keyboard.fast_nudge_step"},
		{name: "slot with slash", mutate: func(c *Config) { c.Persistence.Slot = "a/b" }, wantKey: "persistence.slot"},
		{name: "max panels", mutate: func(c *Config) { c.Persistence.MaxPanels = 0 }, wantKey: "persistence.max_panels"},
		{name: "log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "palette", mutate: func(c *Config) { c.Appearance.DarkPalette.Accent = "red" }, wantKey: "appearance.dark_palette.accent"},
		{name: "cell size", mutate: func(c *Config) { c.Appearance.CellHeight = 0 }, wantKey: "appearance.cell_width"},
		{name: "script timeout", mutate: func(c *Config) { c.Content.ScriptTimeoutMs = 0 }, wantKey: "content.script_timeout_ms"},
		{name: "close fade", mutate: func(c *Config) { c.Animation.CloseFadeMs = -5 }, wantKey: "animation.close_fade_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.ColorScheme = "Solarized"
	cfg.Persistence.Slot = "   "
	cfg.Persistence.MaxPanels = 0
	cfg.Keyboard.Cycle = []string{" Alt + Tab "}
	cfg.Logging.Level = " DEBUG"

	normalizeConfig(cfg)

	assert.Equal(t, ColorSchemeAuto, cfg.Appearance.ColorScheme)
	assert.Equal(t, "default", cfg.Persistence.Slot)
	assert.Equal(t, defaultMaxPanels, cfg.Persistence.MaxPanels)
	assert.Equal(t, []string{"alt+tab"}, cfg.Keyboard.Cycle)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

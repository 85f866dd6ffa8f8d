package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatdesk/internal/desk"
)

func TestDeskOptions_DefaultsMatchEngine(t *testing.T) {
	assert.Equal(t, desk.DefaultOptions(), DefaultConfig().DeskOptions())
}

func TestDeskOptions_MapsOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.SideMargin = 0
	cfg.Layout.MinWidth = 120
	cfg.Mobile.Breakpoint = 0
	cfg.Animation.CloseFadeMs = 0
	cfg.Keyboard.QuickSelectPrefix = "ctrl+"

	opts := cfg.DeskOptions()

	assert.Equal(t, 0, opts.Bands.SideMargin)
	assert.Equal(t, 120, opts.MinSize.Width)
	assert.Equal(t, 0, opts.MobileBreakpoint)
	assert.Equal(t, time.Duration(0), opts.CloseFade)
	assert.Equal(t, "ctrl+", opts.Keymap.QuickSelectPrefix)
}

func TestAppearancePalette(t *testing.T) {
	a := DefaultConfig().Appearance
	assert.Equal(t, a.DarkPalette, a.Palette(false))
	assert.Equal(t, a.LightPalette, a.Palette(true))

	a.ColorScheme = ColorSchemeDark
	assert.Equal(t, a.DarkPalette, a.Palette(true))
	a.ColorScheme = ColorSchemeLight
	assert.Equal(t, a.LightPalette, a.Palette(false))
}

func TestSchemaProvider_CoversEveryDefaultKey(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()
	byKey := make(map[string]string, len(keys))
	for _, k := range keys {
		require.NotEmpty(t, k.Section, k.Key)
		require.NotEmpty(t, k.Description, k.Key)
		byKey[k.Key] = k.Default
	}

	assert.Equal(t, "768", byKey["mobile.breakpoint"])
	assert.Equal(t, "alt+tab, alt+n", byKey["keyboard.cycle"])
	assert.Equal(t, "default", byKey["persistence.slot"])
	assert.Equal(t, "true", byKey["persistence.enabled"])
	assert.Contains(t, byKey, "database.path")
	assert.Contains(t, byKey, "content.script_dir")
}

func TestJSONSchema(t *testing.T) {
	data, err := JSONSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "floatdesk configuration", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "expanded root has properties")
	assert.Contains(t, props, "layout")
	assert.Contains(t, props, "keyboard")
}

func TestGenerateSchemaFile(t *testing.T) {
	isolateXDG(t)
	path, err := GenerateSchemaFile()
	require.NoError(t, err)
	assert.FileExists(t, path)
}

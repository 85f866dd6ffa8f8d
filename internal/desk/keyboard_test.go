package desk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

func TestKeymap_Resolve(t *testing.T) {
	km := DefaultKeymap()
	tests := []struct {
		key  string
		want KeyAction
	}{
		{"alt+tab", KeyAction{Action: ActionCycleNext}},
		{"alt+shift+tab", KeyAction{Action: ActionCyclePrev}},
		{"alt+m", KeyAction{Action: ActionMinimizeToggle}},
		{"alt+up", KeyAction{Action: ActionNudge, DY: -10}},
		{"alt+left", KeyAction{Action: ActionNudge, DX: -10}},
		{"alt+shift+right", KeyAction{Action: ActionNudge, DX: 50}},
		{"alt+shift+down", KeyAction{Action: ActionNudge, DY: 50}},
		{"alt+1", KeyAction{Action: ActionQuickSelect, Index: 0}},
		{"alt+9", KeyAction{Action: ActionQuickSelect, Index: 8}},
		{"alt+0", KeyAction{}},
		{"alt+10", KeyAction{}},
		{"ctrl+x", KeyAction{}},
		{"ALT+M", KeyAction{Action: ActionMinimizeToggle}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, km.Resolve(tt.key, 10, 50))
		})
	}
}

func TestHandleKey_Shortcuts(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	panels := createPanels(t, m, "A", "B", "C")

	require.True(t, m.HandleKey("alt+tab"))
	assert.Equal(t, panels[0], m.Active())
	require.True(t, m.HandleKey("alt+shift+tab"))
	assert.Equal(t, panels[2], m.Active())

	start := panels[2].Rect().Point
	require.True(t, m.HandleKey("alt+right"))
	require.True(t, m.HandleKey("alt+shift+down"))
	assert.Equal(t, entity.Point{X: start.X + 10, Y: start.Y + 50}, panels[2].Rect().Point)

	require.True(t, m.HandleKey("alt+2"))
	assert.Equal(t, panels[1], m.Active())
	assertFocusOnTop(t, m)

	require.True(t, m.HandleKey("alt+m"))
	assert.Equal(t, entity.PanelMinimized, panels[1].State())
	assert.NotEqual(t, panels[1], m.Active())

	require.True(t, m.HandleKey("alt+2"), "quick select restores a minimized panel")
	assert.Equal(t, entity.PanelNormal, panels[1].State())
	assert.Equal(t, panels[1], m.Active())

	assert.False(t, m.HandleKey("ctrl+x"))
	assert.True(t, m.HandleKey("alt+7"), "bound key with no panel is consumed")
}

func TestHandleKey_MinimizeToggleRestoresWhenNothingFocused(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	p := createPanels(t, m, "Only")[0]

	require.True(t, m.HandleKey("alt+m"))
	require.Nil(t, m.Active())

	require.True(t, m.HandleKey("alt+m"))
	assert.Equal(t, entity.PanelNormal, p.State())
	assert.Equal(t, p, m.Active())
}

func TestHandleKey_NudgeClamped(t *testing.T) {
	m, _ := newTestManager(t, testOptions())
	p := createPanels(t, m, "Corner")[0]

	for i := 0; i < 5; i++ {
		m.HandleKey("alt+shift+up")
		m.HandleKey("alt+shift+left")
	}
	assert.Equal(t, entity.Point{X: 10, Y: 60}, p.Rect().Point)
}

func TestHandleKey_CustomKeymap(t *testing.T) {
	opts := testOptions()
	opts.Keymap = Keymap{Cycle: []string{"ctrl+n"}, QuickSelectPrefix: "ctrl+"}
	m, _ := newTestManager(t, opts)
	panels := createPanels(t, m, "A", "B")

	assert.False(t, m.HandleKey("alt+tab"))
	assert.True(t, m.HandleKey("ctrl+n"))
	assert.Equal(t, panels[0], m.Active())
	assert.True(t, m.HandleKey("ctrl+2"))
	assert.Equal(t, panels[1], m.Active())
}

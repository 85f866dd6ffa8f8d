package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelState_Transitions(t *testing.T) {
	tests := []struct {
		from, to PanelState
		ok       bool
	}{
		{PanelNormal, PanelMinimized, true},
		{PanelNormal, PanelMaximized, true},
		{PanelNormal, PanelNormal, false},
		{PanelMaximized, PanelNormal, true},
		{PanelMaximized, PanelMinimized, true},
		{PanelMaximized, PanelMaximized, false},
		{PanelMinimized, PanelNormal, true},
		{PanelMinimized, PanelMaximized, true},
		{PanelMinimized, PanelMinimized, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			got, err := tt.from.Transition(tt.to)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, got)
				return
			}
			require.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tt.from, got)
		})
	}
}

func TestPanelState_Text(t *testing.T) {
	for _, s := range []PanelState{PanelNormal, PanelMinimized, PanelMaximized} {
		parsed, err := ParsePanelState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	got, err := ParsePanelState("  Maximized ")
	require.NoError(t, err)
	assert.Equal(t, PanelMaximized, got)

	got, err = ParsePanelState("")
	require.NoError(t, err)
	assert.Equal(t, PanelNormal, got)

	_, err = ParsePanelState("docked")
	assert.ErrorIs(t, err, ErrUnknownPanelState)
}

func TestPanelRecord_JSONUsesStateNames(t *testing.T) {
	rec := PanelRecord{
		ID:    "a",
		Title: "Dice",
		State: PanelMinimized,
		PreMinimize: &PreMinimizeState{
			Position:      Point{X: 10, Y: 60},
			Size:          Size{Width: 400, Height: 300},
			PreviousState: PanelMaximized,
		},
	}
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"state":"minimized"`)
	assert.Contains(t, string(data), `"previousState":"maximized"`)
	assert.Contains(t, string(data), `"preMinimizeState"`)
}

func TestLayout_Counts(t *testing.T) {
	var nilLayout *Layout
	assert.Equal(t, 0, nilLayout.PanelCount())

	l := NewLayout([]PanelRecord{
		{ID: "a", State: PanelNormal},
		{ID: "b", State: PanelMinimized},
		{ID: "c", State: PanelMinimized},
	})
	assert.Equal(t, LayoutVersion, l.Version)
	assert.Equal(t, 3, l.PanelCount())
	assert.Equal(t, 2, l.CountByState(PanelMinimized))
	assert.NotNil(t, NewLayout(nil).Panels)
}

func TestContent_Body(t *testing.T) {
	inline := Content{Markup: "hello"}
	assert.False(t, inline.IsTabbed())
	assert.Equal(t, "hello", inline.Body(3))

	tabbed := Content{Tabs: []ContentTab{{Title: "A", Content: "a"}, {Title: "B", Content: "b"}}}
	assert.Equal(t, 2, tabbed.TabCount())
	assert.Equal(t, "b", tabbed.Body(1))
	assert.Equal(t, "a", tabbed.Body(7), "out of range falls back to the first tab")
}

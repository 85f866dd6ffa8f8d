package config

import (
	"time"

	"github.com/bnema/floatdesk/internal/desk"
	"github.com/bnema/floatdesk/internal/domain/entity"
)

// DeskOptions maps the configuration onto the panel engine's options.
func (c *Config) DeskOptions() desk.Options {
	l := c.Layout
	return desk.Options{
		Bands: entity.Bands{
			HeaderHeight: l.HeaderHeight,
			FooterHeight: l.FooterHeight,
			SideMargin:   l.SideMargin,
		},
		MinSize:           entity.Size{Width: l.MinWidth, Height: l.MinHeight},
		DefaultSize:       entity.Size{Width: l.DefaultWidth, Height: l.DefaultHeight},
		CascadeStep:       l.CascadeStep,
		FitMaxSize:        entity.Size{Width: l.FitMaxWidth, Height: l.FitMaxHeight},
		FitGap:            l.FitGap,
		PanelHeaderHeight: l.PanelHeaderHeight,
		ControlWidth:      l.ControlWidth,
		ResizeGrip:        l.ResizeGrip,
		BaseRank:          c.Stacking.BaseRank,
		MaximizedRank:     c.Stacking.MaximizedRank,
		ChromeRank:        c.Stacking.ChromeRank,
		MobileBreakpoint:  c.Mobile.Breakpoint,
		SwipeThreshold:    c.Mobile.SwipeThreshold,
		NudgeStep:         c.Keyboard.NudgeStep,
		FastNudgeStep:     c.Keyboard.FastNudgeStep,
		Keymap:            c.Keyboard.Keymap(),
		CloseFade:         time.Duration(c.Animation.CloseFadeMs) * time.Millisecond,
	}
}

// Keymap returns the bindings in the engine's form.
func (k KeyboardConfig) Keymap() desk.Keymap {
	return desk.Keymap{
		Cycle:             k.Cycle,
		CyclePrev:         k.CyclePrev,
		MinimizeToggle:    k.MinimizeToggle,
		NudgeUp:           k.NudgeUp,
		NudgeDown:         k.NudgeDown,
		NudgeLeft:         k.NudgeLeft,
		NudgeRight:        k.NudgeRight,
		FastNudgeUp:       k.FastNudgeUp,
		FastNudgeDown:     k.FastNudgeDown,
		FastNudgeLeft:     k.FastNudgeLeft,
		FastNudgeRight:    k.FastNudgeRight,
		QuickSelectPrefix: k.QuickSelectPrefix,
	}
}

// Palette returns the palette for the configured scheme. Auto resolves
// to dark unless the caller detected a light terminal.
func (a AppearanceConfig) Palette(terminalIsLight bool) Palette {
	switch a.ColorScheme {
	case ColorSchemeLight:
		return a.LightPalette
	case ColorSchemeDark:
		return a.DarkPalette
	default:
		if terminalIsLight {
			return a.LightPalette
		}
		return a.DarkPalette
	}
}

// Package desk implements the floating panel engine: panel geometry,
// paint order, drag and resize handling, minimize/maximize/restore, the
// narrow-viewport single-panel mode and the snapshot the layout is persisted
// from.
//
// A Manager owns every panel. Its exported methods are the entry points of
// the host's event loop and may be called while the background layout saver
// reads a snapshot.
package desk

import (
	"time"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

// Options holds the engine's tunables.
type Options struct {
	Bands       entity.Bands
	MinSize     entity.Size
	DefaultSize entity.Size
	CascadeStep int

	// FitAllToScreen caps panel size so a handful of panels don't become huge.
	FitMaxSize entity.Size
	FitGap     int

	// Panel chrome hit areas.
	PanelHeaderHeight int
	ControlWidth      int
	ResizeGrip        int

	BaseRank      int
	MaximizedRank int
	ChromeRank    int

	MobileBreakpoint int
	SwipeThreshold   int

	NudgeStep     int
	FastNudgeStep int
	Keymap        Keymap

	CloseFade time.Duration
}

// DefaultOptions returns the engine defaults in viewport pixels.
func DefaultOptions() Options {
	return Options{
		Bands: entity.Bands{
			HeaderHeight: 60,
			FooterHeight: 40,
			SideMargin:   10,
		},
		MinSize:           entity.Size{Width: 200, Height: 150},
		DefaultSize:       entity.Size{Width: 400, Height: 300},
		CascadeStep:       30,
		FitMaxSize:        entity.Size{Width: 800, Height: 600},
		FitGap:            10,
		PanelHeaderHeight: 32,
		ControlWidth:      24,
		ResizeGrip:        8,
		BaseRank:          100,
		MaximizedRank:     9000,
		ChromeRank:        10000,
		MobileBreakpoint:  768,
		SwipeThreshold:    50,
		NudgeStep:         10,
		FastNudgeStep:     50,
		Keymap:            DefaultKeymap(),
		CloseFade:         200 * time.Millisecond,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.MinSize.Width <= 0 {
		o.MinSize.Width = d.MinSize.Width
	}
	if o.MinSize.Height <= 0 {
		o.MinSize.Height = d.MinSize.Height
	}
	if o.DefaultSize.Width <= 0 {
		o.DefaultSize.Width = d.DefaultSize.Width
	}
	if o.DefaultSize.Height <= 0 {
		o.DefaultSize.Height = d.DefaultSize.Height
	}
	if o.FitMaxSize.Width <= 0 {
		o.FitMaxSize.Width = d.FitMaxSize.Width
	}
	if o.FitMaxSize.Height <= 0 {
		o.FitMaxSize.Height = d.FitMaxSize.Height
	}
	if o.PanelHeaderHeight <= 0 {
		o.PanelHeaderHeight = d.PanelHeaderHeight
	}
	if o.ControlWidth <= 0 {
		o.ControlWidth = d.ControlWidth
	}
	if o.ResizeGrip <= 0 {
		o.ResizeGrip = d.ResizeGrip
	}
	if o.BaseRank <= 0 {
		o.BaseRank = d.BaseRank
	}
	if o.MaximizedRank <= o.BaseRank {
		o.MaximizedRank = o.BaseRank + d.MaximizedRank
	}
	if o.ChromeRank <= o.MaximizedRank {
		o.ChromeRank = o.MaximizedRank + (d.ChromeRank - d.MaximizedRank)
	}
	if o.MobileBreakpoint < 0 {
		o.MobileBreakpoint = 0
	}
	if o.SwipeThreshold <= 0 {
		o.SwipeThreshold = d.SwipeThreshold
	}
	if o.NudgeStep <= 0 {
		o.NudgeStep = d.NudgeStep
	}
	if o.FastNudgeStep <= 0 {
		o.FastNudgeStep = d.FastNudgeStep
	}
	if o.Keymap.empty() {
		o.Keymap = d.Keymap
	}
	if o.CloseFade < 0 {
		o.CloseFade = 0
	}
	return o
}

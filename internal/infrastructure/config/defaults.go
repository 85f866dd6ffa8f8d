package config

import (
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	defaultDebounceMs      = 1000
	defaultMaxPanels       = 100
	defaultScriptTimeoutMs = 2000
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			HeaderHeight:      60,
			FooterHeight:      40,
			SideMargin:        10,
			MinWidth:          200,
			MinHeight:         150,
			DefaultWidth:      400,
			DefaultHeight:     300,
			CascadeStep:       30,
			FitMaxWidth:       800,
			FitMaxHeight:      600,
			FitGap:            10,
			PanelHeaderHeight: 32,
			ControlWidth:      24,
			ResizeGrip:        8,
		},
		Stacking: StackingConfig{
			BaseRank:      100,
			MaximizedRank: 9000,
			ChromeRank:    10000,
		},
		Mobile: MobileConfig{
			Breakpoint:     768,
			SwipeThreshold: 50,
		},
		Keyboard: KeyboardConfig{
			Cycle:             []string{"alt+tab", "alt+n"},
			CyclePrev:         []string{"alt+shift+tab", "alt+p"},
			MinimizeToggle:    []string{"alt+m"},
			NudgeUp:           []string{"alt+up"},
			NudgeDown:         []string{"alt+down"},
			NudgeLeft:         []string{"alt+left"},
			NudgeRight:        []string{"alt+right"},
			FastNudgeUp:       []string{"alt+shift+up"},
			FastNudgeDown:     []string{"alt+shift+down"},
			FastNudgeLeft:     []string{"alt+shift+left"},
			FastNudgeRight:    []string{"alt+shift+right"},
			QuickSelectPrefix: "alt+",
			NudgeStep:         10,
			FastNudgeStep:     50,
		},
		Persistence: PersistenceConfig{
			Enabled:    true,
			Slot:       "default",
			DebounceMs: defaultDebounceMs,
			MaxPanels:  defaultMaxPanels,
		},
		Animation: AnimationConfig{
			CloseFadeMs: 200,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "text",
			EnableFileLog: true,
			MaxSizeMB:     10,
			MaxBackups:    3,
			MaxAge:        7,
			Compress:      true,
		},
		Appearance: AppearanceConfig{
			ColorScheme: ColorSchemeAuto,
			LightPalette: Palette{
				Background:     "#f8f8f8",
				Surface:        "#f2f2f2",
				SurfaceVariant: "#ececec",
				Text:           "#1a1a1a",
				Muted:          "#5a5a5a",
				Accent:         "#404040",
				Border:         "#d2d2d2",
			},
			DarkPalette: Palette{
				Background:     "#0e0e0e",
				Surface:        "#1a1a1a",
				SurfaceVariant: "#141414",
				Text:           "#e4e4e4",
				Muted:          "#848484",
				Accent:         "#a8a8a8",
				Border:         "#363636",
			},
			CellWidth:  8,
			CellHeight: 16,
		},
		Content: ContentConfig{
			ScriptTimeoutMs: defaultScriptTimeoutMs,
		},
	}
}

// defaultScriptDir is where script content providers live when content.script_dir is unset.
func defaultScriptDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "scripts"), nil
}

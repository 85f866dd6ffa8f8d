package config

import (
	"strconv"
	"strings"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLayout      = "Layout"
	SectionStacking    = "Stacking"
	SectionMobile      = "Mobile"
	SectionKeyboard    = "Keyboard"
	SectionPersistence = "Persistence"
	SectionAnimation   = "Animation"
	SectionDatabase    = "Database"
	SectionLogging     = "Logging"
	SectionAppearance  = "Appearance"
	SectionContent     = "Content"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 64)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getStackingKeys(defaults)...)
	keys = append(keys, p.getMobileKeys(defaults)...)
	keys = append(keys, p.getKeyboardKeys(defaults)...)
	keys = append(keys, p.getPersistenceKeys(defaults)...)
	keys = append(keys, entity.ConfigKeyInfo{
		Key:         "animation.close_fade_ms",
		Type:        "int",
		Default:     itoa(defaults.Animation.CloseFadeMs),
		Description: "Fade-out duration when a panel closes (0 disables it)",
		Range:       ">=0",
		Section:     SectionAnimation,
	})
	keys = append(keys, entity.ConfigKeyInfo{
		Key:         "database.path",
		Type:        "string",
		Default:     "(XDG data dir)/floatdesk.sqlite",
		Description: "SQLite file holding saved layouts",
		Section:     SectionDatabase,
	})
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	keys = append(keys, p.getContentKeys(defaults)...)
	return keys
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func intKey(key string, value int, description, valueRange, section string) entity.ConfigKeyInfo {
	return entity.ConfigKeyInfo{
		Key:         key,
		Type:        "int",
		Default:     itoa(value),
		Description: description,
		Range:       valueRange,
		Section:     section,
	}
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	l := defaults.Layout
	return []entity.ConfigKeyInfo{
		intKey("layout.header_height", l.HeaderHeight, "Reserved band at the top of the viewport", ">=0", SectionLayout),
		intKey("layout.footer_height", l.FooterHeight, "Reserved band at the bottom of the viewport (holds the tray)", ">=0", SectionLayout),
		intKey("layout.side_margin", l.SideMargin, "Reserved margin on the left and right edges", ">=0", SectionLayout),
		intKey("layout.min_width", l.MinWidth, "Smallest panel width", "1-4000", SectionLayout),
		intKey("layout.min_height", l.MinHeight, "Smallest panel height", "1-4000", SectionLayout),
		intKey("layout.default_width", l.DefaultWidth, "Width of a newly created panel", ">=min_width", SectionLayout),
		intKey("layout.default_height", l.DefaultHeight, "Height of a newly created panel", ">=min_height", SectionLayout),
		intKey("layout.cascade_step", l.CascadeStep, "Offset between consecutively created panels", ">=0", SectionLayout),
		intKey("layout.fit_max_width", l.FitMaxWidth, "Widest a panel gets when fitting all to screen", ">=min_width", SectionLayout),
		intKey("layout.fit_max_height", l.FitMaxHeight, "Tallest a panel gets when fitting all to screen", ">=min_height", SectionLayout),
		intKey("layout.fit_gap", l.FitGap, "Gap between panels when fitting all to screen", ">=0", SectionLayout),
		intKey("layout.panel_header_height", l.PanelHeaderHeight, "Height of the panel title bar (drag handle)", "1-min_height", SectionLayout),
		intKey("layout.control_width", l.ControlWidth, "Width of each title bar button", ">=1", SectionLayout),
		intKey("layout.resize_grip", l.ResizeGrip, "Thickness of the resize handles", ">=1", SectionLayout),
	}
}

func (*SchemaProvider) getStackingKeys(defaults *Config) []entity.ConfigKeyInfo {
	s := defaults.Stacking
	return []entity.ConfigKeyInfo{
		intKey("stacking.base_rank", s.BaseRank, "Lowest paint rank of a normal panel", ">=0", SectionStacking),
		intKey("stacking.maximized_rank", s.MaximizedRank, "Lowest paint rank of a maximized panel", ">base_rank", SectionStacking),
		intKey("stacking.chrome_rank", s.ChromeRank, "Paint rank of the desk chrome (tray, tabs)", ">maximized_rank", SectionStacking),
	}
}

func (*SchemaProvider) getMobileKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		intKey("mobile.breakpoint", defaults.Mobile.Breakpoint, "Viewport width below which the desk shows one panel at a time", ">=0", SectionMobile),
		intKey("mobile.swipe_threshold", defaults.Mobile.SwipeThreshold, "Horizontal distance that counts as a swipe between panels", ">=1", SectionMobile),
	}
}

func bindingKey(key string, value []string, description string) entity.ConfigKeyInfo {
	return entity.ConfigKeyInfo{
		Key:         key,
		Type:        "[]string",
		Default:     strings.Join(value, ", "),
		Description: description,
		Section:     SectionKeyboard,
	}
}

func (*SchemaProvider) getKeyboardKeys(defaults *Config) []entity.ConfigKeyInfo {
	kb := defaults.Keyboard
	return []entity.ConfigKeyInfo{
		bindingKey("keyboard.cycle", kb.Cycle, "Focus the next panel"),
		bindingKey("keyboard.cycle_prev", kb.CyclePrev, "Focus the previous panel"),
		bindingKey("keyboard.minimize_toggle", kb.MinimizeToggle, "Minimize the active panel, or restore the last minimized one"),
		bindingKey("keyboard.nudge_up", kb.NudgeUp, "Move the active panel up"),
		bindingKey("keyboard.nudge_down", kb.NudgeDown, "Move the active panel down"),
		bindingKey("keyboard.nudge_left", kb.NudgeLeft, "Move the active panel left"),
		bindingKey("keyboard.nudge_right", kb.NudgeRight, "Move the active panel right"),
		bindingKey("keyboard.fast_nudge_up", kb.FastNudgeUp, "Move the active panel up by the fast step"),
		bindingKey("keyboard.fast_nudge_down", kb.FastNudgeDown, "Move the active panel down by the fast step"),
		bindingKey("keyboard.fast_nudge_left", kb.FastNudgeLeft, "Move the active panel left by the fast step"),
		bindingKey("keyboard.fast_nudge_right", kb.FastNudgeRight, "Move the active panel right by the fast step"),
		{
			Key:         "keyboard.quick_select_prefix",
			Type:        "string",
			Default:     kb.QuickSelectPrefix,
			Description: "Modifier prefix combined with 1-9 to focus a panel by position (empty disables it)",
			Section:     SectionKeyboard,
		},
		intKey("keyboard.nudge_step", kb.NudgeStep, "Distance of a nudge", ">=1", SectionKeyboard),
		intKey("keyboard.fast_nudge_step", kb.FastNudgeStep, "Distance of a fast nudge", ">=nudge_step", SectionKeyboard),
	}
}

func (*SchemaProvider) getPersistenceKeys(defaults *Config) []entity.ConfigKeyInfo {
	p := defaults.Persistence
	return []entity.ConfigKeyInfo{
		{
			Key:         "persistence.enabled",
			Type:        "bool",
			Default:     strconv.FormatBool(p.Enabled),
			Description: "Save the layout automatically and restore it on startup",
			Section:     SectionPersistence,
		},
		{
			Key:         "persistence.slot",
			Type:        "string",
			Default:     p.Slot,
			Description: "Name under which the layout is stored",
			Section:     SectionPersistence,
		},
		intKey("persistence.debounce_ms", p.DebounceMs, "Quiet time after a change before the layout is saved", ">=0", SectionPersistence),
		intKey("persistence.max_panels", p.MaxPanels, "Largest layout accepted on load or import", ">=1", SectionPersistence),
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	lg := defaults.Logging
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     lg.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     lg.Format,
			Description: "Log output format",
			Values:      []string{"text", "json", "console"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "(XDG state dir)/logs",
			Description: "Directory for log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     strconv.FormatBool(lg.EnableFileLog),
			Description: "Write logs to a file (the terminal belongs to the desk)",
			Section:     SectionLogging,
		},
		intKey("logging.max_size_mb", lg.MaxSizeMB, "Size at which the log file is rolled", ">=0", SectionLogging),
		intKey("logging.max_backups", lg.MaxBackups, "Rolled log files kept", ">=0", SectionLogging),
		intKey("logging.max_age", lg.MaxAge, "Maximum age of log files in days", ">=0", SectionLogging),
		{
			Key:         "logging.compress",
			Type:        "bool",
			Default:     strconv.FormatBool(lg.Compress),
			Description: "Gzip rolled log files",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	a := defaults.Appearance
	return []entity.ConfigKeyInfo{
		{
			Key:         "appearance.color_scheme",
			Type:        "string",
			Default:     string(a.ColorScheme),
			Description: "Palette selection (auto follows the terminal background)",
			Values:      []string{string(ColorSchemeAuto), string(ColorSchemeDark), string(ColorSchemeLight)},
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.light_palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Light palette (background, surface, surface_variant, text, muted, accent, border)",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.dark_palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Dark palette (background, surface, surface_variant, text, muted, accent, border)",
			Section:     SectionAppearance,
		},
		intKey("appearance.cell_width", a.CellWidth, "Pixels per terminal column", ">=1", SectionAppearance),
		intKey("appearance.cell_height", a.CellHeight, "Pixels per terminal row", ">=1", SectionAppearance),
	}
}

func (*SchemaProvider) getContentKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "content.script_dir",
			Type:        "string",
			Default:     "(XDG config dir)/scripts",
			Description: "Directory of JavaScript content providers; each file name is a content type",
			Section:     SectionContent,
		},
		intKey("content.script_timeout_ms", defaults.Content.ScriptTimeoutMs, "Longest a content script may run", ">=1", SectionContent),
	}
}

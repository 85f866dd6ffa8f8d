package config

// Config is the floatdesk configuration file.
type Config struct {
	// Layout holds the geometry of the desk and its panels, in viewport pixels.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	// Stacking holds the paint-order bands.
	Stacking StackingConfig `mapstructure:"stacking" yaml:"stacking" toml:"stacking" json:"stacking"`
	// Mobile controls the narrow-viewport single-panel mode.
	Mobile MobileConfig `mapstructure:"mobile" yaml:"mobile" toml:"mobile" json:"mobile"`
	// Keyboard holds shortcut bindings, written the way terminals report them ("alt+shift+up").
	Keyboard KeyboardConfig `mapstructure:"keyboard" yaml:"keyboard" toml:"keyboard" json:"keyboard"`
	// Persistence controls how the layout is saved between sessions.
	Persistence PersistenceConfig `mapstructure:"persistence" yaml:"persistence" toml:"persistence" json:"persistence"`
	Animation   AnimationConfig   `mapstructure:"animation" yaml:"animation" toml:"animation" json:"animation"`
	Database    DatabaseConfig    `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Appearance  AppearanceConfig  `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	// Content configures the content providers panels are built from.
	Content ContentConfig `mapstructure:"content" yaml:"content" toml:"content" json:"content"`
}

// LayoutConfig holds desk geometry.
type LayoutConfig struct {
	// Reserved bands the panels never cover.
	HeaderHeight int `mapstructure:"header_height" yaml:"header_height" toml:"header_height" json:"header_height"`
	FooterHeight int `mapstructure:"footer_height" yaml:"footer_height" toml:"footer_height" json:"footer_height"`
	SideMargin   int `mapstructure:"side_margin" yaml:"side_margin" toml:"side_margin" json:"side_margin"`

	MinWidth      int `mapstructure:"min_width" yaml:"min_width" toml:"min_width" json:"min_width"`
	MinHeight     int `mapstructure:"min_height" yaml:"min_height" toml:"min_height" json:"min_height"`
	DefaultWidth  int `mapstructure:"default_width" yaml:"default_width" toml:"default_width" json:"default_width"`
	DefaultHeight int `mapstructure:"default_height" yaml:"default_height" toml:"default_height" json:"default_height"`
	CascadeStep   int `mapstructure:"cascade_step" yaml:"cascade_step" toml:"cascade_step" json:"cascade_step"`

	// Fit-all-to-screen caps and spacing.
	FitMaxWidth  int `mapstructure:"fit_max_width" yaml:"fit_max_width" toml:"fit_max_width" json:"fit_max_width"`
	FitMaxHeight int `mapstructure:"fit_max_height" yaml:"fit_max_height" toml:"fit_max_height" json:"fit_max_height"`
	FitGap       int `mapstructure:"fit_gap" yaml:"fit_gap" toml:"fit_gap" json:"fit_gap"`

	// Panel chrome hit areas.
	PanelHeaderHeight int `mapstructure:"panel_header_height" yaml:"panel_header_height" toml:"panel_header_height" json:"panel_header_height"`
	ControlWidth      int `mapstructure:"control_width" yaml:"control_width" toml:"control_width" json:"control_width"`
	ResizeGrip        int `mapstructure:"resize_grip" yaml:"resize_grip" toml:"resize_grip" json:"resize_grip"`
}

// StackingConfig holds the rank bands: normal panels live in
// [base_rank, maximized_rank), maximized panels in [maximized_rank, chrome_rank).
type StackingConfig struct {
	BaseRank      int `mapstructure:"base_rank" yaml:"base_rank" toml:"base_rank" json:"base_rank"`
	MaximizedRank int `mapstructure:"maximized_rank" yaml:"maximized_rank" toml:"maximized_rank" json:"maximized_rank"`
	ChromeRank    int `mapstructure:"chrome_rank" yaml:"chrome_rank" toml:"chrome_rank" json:"chrome_rank"`
}

// MobileConfig controls the single-panel mode.
type MobileConfig struct {
	// Breakpoint is the viewport width below which only one panel is shown. 0 disables it.
	Breakpoint     int `mapstructure:"breakpoint" yaml:"breakpoint" toml:"breakpoint" json:"breakpoint"`
	SwipeThreshold int `mapstructure:"swipe_threshold" yaml:"swipe_threshold" toml:"swipe_threshold" json:"swipe_threshold"`
}

// KeyboardConfig holds desk shortcuts.
type KeyboardConfig struct {
	Cycle          []string `mapstructure:"cycle" yaml:"cycle" toml:"cycle" json:"cycle"`
	CyclePrev      []string `mapstructure:"cycle_prev" yaml:"cycle_prev" toml:"cycle_prev" json:"cycle_prev"`
	MinimizeToggle []string `mapstructure:"minimize_toggle" yaml:"minimize_toggle" toml:"minimize_toggle" json:"minimize_toggle"`
	NudgeUp        []string `mapstructure:"nudge_up" yaml:"nudge_up" toml:"nudge_up" json:"nudge_up"`
	NudgeDown      []string `mapstructure:"nudge_down" yaml:"nudge_down" toml:"nudge_down" json:"nudge_down"`
	NudgeLeft      []string `mapstructure:"nudge_left" yaml:"nudge_left" toml:"nudge_left" json:"nudge_left"`
	NudgeRight     []string `mapstructure:"nudge_right" yaml:"nudge_right" toml:"nudge_right" json:"nudge_right"`
	FastNudgeUp    []string `mapstructure:"fast_nudge_up" yaml:"fast_nudge_up" toml:"fast_nudge_up" json:"fast_nudge_up"`
	FastNudgeDown  []string `mapstructure:"fast_nudge_down" yaml:"fast_nudge_down" toml:"fast_nudge_down" json:"fast_nudge_down"`
	FastNudgeLeft  []string `mapstructure:"fast_nudge_left" yaml:"fast_nudge_left" toml:"fast_nudge_left" json:"fast_nudge_left"`
	FastNudgeRight []string `mapstructure:"fast_nudge_right" yaml:"fast_nudge_right" toml:"fast_nudge_right" json:"fast_nudge_right"`
	// QuickSelectPrefix is combined with digits 1-9 to focus the n-th panel.
	QuickSelectPrefix string `mapstructure:"quick_select_prefix" yaml:"quick_select_prefix" toml:"quick_select_prefix" json:"quick_select_prefix"`
	NudgeStep         int    `mapstructure:"nudge_step" yaml:"nudge_step" toml:"nudge_step" json:"nudge_step"`
	FastNudgeStep     int    `mapstructure:"fast_nudge_step" yaml:"fast_nudge_step" toml:"fast_nudge_step" json:"fast_nudge_step"`
}

// PersistenceConfig controls layout saving.
type PersistenceConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled" json:"enabled"`
	// Slot names the stored layout; several desks can keep separate arrangements.
	Slot       string `mapstructure:"slot" yaml:"slot" toml:"slot" json:"slot"`
	DebounceMs int    `mapstructure:"debounce_ms" yaml:"debounce_ms" toml:"debounce_ms" json:"debounce_ms"`
	MaxPanels  int    `mapstructure:"max_panels" yaml:"max_panels" toml:"max_panels" json:"max_panels"`
}

// AnimationConfig holds transition timings.
type AnimationConfig struct {
	// CloseFadeMs is the close fade-out. 0 closes immediately.
	CloseFadeMs int `mapstructure:"close_fade_ms" yaml:"close_fade_ms" toml:"close_fade_ms" json:"close_fade_ms"`
}

// DatabaseConfig holds the layout store location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging output settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// ColorScheme selects which palette the terminal desk uses.
type ColorScheme string

const (
	ColorSchemeAuto  ColorScheme = "auto"
	ColorSchemeDark  ColorScheme = "dark"
	ColorSchemeLight ColorScheme = "light"
)

// Palette is a set of #RRGGBB colors.
type Palette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}

// AppearanceConfig holds terminal rendering preferences.
type AppearanceConfig struct {
	ColorScheme  ColorScheme `mapstructure:"color_scheme" yaml:"color_scheme" toml:"color_scheme" json:"color_scheme"`
	LightPalette Palette     `mapstructure:"light_palette" yaml:"light_palette" toml:"light_palette" json:"light_palette"`
	DarkPalette  Palette     `mapstructure:"dark_palette" yaml:"dark_palette" toml:"dark_palette" json:"dark_palette"`
	// Pixels per terminal cell; desk geometry is kept in pixels.
	CellWidth  int `mapstructure:"cell_width" yaml:"cell_width" toml:"cell_width" json:"cell_width"`
	CellHeight int `mapstructure:"cell_height" yaml:"cell_height" toml:"cell_height" json:"cell_height"`
}

// ContentConfig configures content providers.
type ContentConfig struct {
	// ScriptDir holds *.js content providers; each file registers the content
	// type named after it.
	ScriptDir string `mapstructure:"script_dir" yaml:"script_dir" toml:"script_dir" json:"script_dir"`
	// ScriptTimeoutMs bounds a single script run.
	ScriptTimeoutMs int `mapstructure:"script_timeout_ms" yaml:"script_timeout_ms" toml:"script_timeout_ms" json:"script_timeout_ms"`
}

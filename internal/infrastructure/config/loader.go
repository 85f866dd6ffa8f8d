package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/floatdesk/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	log            zerolog.Logger
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// FLOATDESK_PERSISTENCE_SLOT, FLOATDESK_MOBILE_BREAKPOINT, ...
	v.SetEnvPrefix("FLOATDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names for the variables people actually type.
	bindings := map[string]string{
		"logging.level":    "FLOATDESK_LOG_LEVEL",
		"logging.format":   "FLOATDESK_LOG_FORMAT",
		"database.path":    "FLOATDESK_DB",
		"persistence.slot": "FLOATDESK_SLOT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		log:       logging.NewFromEnv(),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile, _ = GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

// decode unmarshals viper's view into a normalized, validated Config.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := resolvePaths(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// resolvePaths fills path settings left empty with their XDG locations.
func resolvePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	if config.Content.ScriptDir == "" {
		scriptDir, err := defaultScriptDir()
		if err != nil {
			return fmt.Errorf("failed to get script directory: %w", err)
		}
		config.Content.ScriptDir = scriptDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	switch ColorScheme(strings.ToLower(strings.TrimSpace(string(config.Appearance.ColorScheme)))) {
	case ColorSchemeDark:
		config.Appearance.ColorScheme = ColorSchemeDark
	case ColorSchemeLight:
		config.Appearance.ColorScheme = ColorSchemeLight
	default:
		config.Appearance.ColorScheme = ColorSchemeAuto
	}

	config.Persistence.Slot = strings.TrimSpace(config.Persistence.Slot)
	if config.Persistence.Slot == "" {
		config.Persistence.Slot = DefaultConfig().Persistence.Slot
	}
	if config.Persistence.MaxPanels == 0 {
		config.Persistence.MaxPanels = defaultMaxPanels
	}

	kb := &config.Keyboard
	for _, list := range []*[]string{
		&kb.Cycle, &kb.CyclePrev, &kb.MinimizeToggle,
		&kb.NudgeUp, &kb.NudgeDown, &kb.NudgeLeft, &kb.NudgeRight,
		&kb.FastNudgeUp, &kb.FastNudgeDown, &kb.FastNudgeLeft, &kb.FastNudgeRight,
	} {
		*list = normalizeBindings(*list)
	}
	kb.QuickSelectPrefix = strings.ToLower(strings.TrimSpace(kb.QuickSelectPrefix))

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
}

func normalizeBindings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, b := range in {
		out = append(out, strings.ToLower(strings.ReplaceAll(strings.TrimSpace(b), " ", "")))
	}
	return out
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg, writes it to the config file and makes it current.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	m.mu.Lock()
	if err := validateConfig(cfg); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = GetConfigFile(); err != nil {
			m.mu.Unlock()
			return err
		}
	}
	if err := WriteConfig(cfg, path); err != nil {
		m.mu.Unlock()
		return err
	}

	saved := *cfg
	m.config = &saved
	if m.watching {
		// The watcher will see our own write.
		m.skipNextReload = true
		m.mu.Unlock()
		return nil
	}
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to re-read config: %w", err)
	}
	m.notifyCallbacksLocked()
	return nil
}

// SetLogger redirects the manager's own log lines, e.g. to a file while a
// full-screen program owns the terminal.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = logger
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults to the XDG config file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfig(DefaultConfig(), configFile); err != nil {
		return err
	}

	m.log.Info().Str("path", configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Database.Path, Logging.LogDir and Content.ScriptDir resolve at load time.

	m.setLayoutDefaults(defaults)
	m.setStackingDefaults(defaults)
	m.setMobileDefaults(defaults)
	m.setKeyboardDefaults(defaults)
	m.setPersistenceDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.viper.SetDefault("animation.close_fade_ms", defaults.Animation.CloseFadeMs)
	m.viper.SetDefault("content.script_timeout_ms", defaults.Content.ScriptTimeoutMs)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	l := defaults.Layout
	m.viper.SetDefault("layout.header_height", l.HeaderHeight)
	m.viper.SetDefault("layout.footer_height", l.FooterHeight)
	m.viper.SetDefault("layout.side_margin", l.SideMargin)
	m.viper.SetDefault("layout.min_width", l.MinWidth)
	m.viper.SetDefault("layout.min_height", l.MinHeight)
	m.viper.SetDefault("layout.default_width", l.DefaultWidth)
	m.viper.SetDefault("layout.default_height", l.DefaultHeight)
	m.viper.SetDefault("layout.cascade_step", l.CascadeStep)
	m.viper.SetDefault("layout.fit_max_width", l.FitMaxWidth)
	m.viper.SetDefault("layout.fit_max_height", l.FitMaxHeight)
	m.viper.SetDefault("layout.fit_gap", l.FitGap)
	m.viper.SetDefault("layout.panel_header_height", l.PanelHeaderHeight)
	m.viper.SetDefault("layout.control_width", l.ControlWidth)
	m.viper.SetDefault("layout.resize_grip", l.ResizeGrip)
}

func (m *Manager) setStackingDefaults(defaults *Config) {
	m.viper.SetDefault("stacking.base_rank", defaults.Stacking.BaseRank)
	m.viper.SetDefault("stacking.maximized_rank", defaults.Stacking.MaximizedRank)
	m.viper.SetDefault("stacking.chrome_rank", defaults.Stacking.ChromeRank)
}

func (m *Manager) setMobileDefaults(defaults *Config) {
	m.viper.SetDefault("mobile.breakpoint", defaults.Mobile.Breakpoint)
	m.viper.SetDefault("mobile.swipe_threshold", defaults.Mobile.SwipeThreshold)
}

func (m *Manager) setKeyboardDefaults(defaults *Config) {
	kb := defaults.Keyboard
	m.viper.SetDefault("keyboard.cycle", kb.Cycle)
	m.viper.SetDefault("keyboard.cycle_prev", kb.CyclePrev)
	m.viper.SetDefault("keyboard.minimize_toggle", kb.MinimizeToggle)
	m.viper.SetDefault("keyboard.nudge_up", kb.NudgeUp)
	m.viper.SetDefault("keyboard.nudge_down", kb.NudgeDown)
	m.viper.SetDefault("keyboard.nudge_left", kb.NudgeLeft)
	m.viper.SetDefault("keyboard.nudge_right", kb.NudgeRight)
	m.viper.SetDefault("keyboard.fast_nudge_up", kb.FastNudgeUp)
	m.viper.SetDefault("keyboard.fast_nudge_down", kb.FastNudgeDown)
	m.viper.SetDefault("keyboard.fast_nudge_left", kb.FastNudgeLeft)
	m.viper.SetDefault("keyboard.fast_nudge_right", kb.FastNudgeRight)
	m.viper.SetDefault("keyboard.quick_select_prefix", kb.QuickSelectPrefix)
	m.viper.SetDefault("keyboard.nudge_step", kb.NudgeStep)
	m.viper.SetDefault("keyboard.fast_nudge_step", kb.FastNudgeStep)
}

func (m *Manager) setPersistenceDefaults(defaults *Config) {
	m.viper.SetDefault("persistence.enabled", defaults.Persistence.Enabled)
	m.viper.SetDefault("persistence.slot", defaults.Persistence.Slot)
	m.viper.SetDefault("persistence.debounce_ms", defaults.Persistence.DebounceMs)
	m.viper.SetDefault("persistence.max_panels", defaults.Persistence.MaxPanels)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	a := defaults.Appearance
	m.viper.SetDefault("appearance.color_scheme", string(a.ColorScheme))
	m.viper.SetDefault("appearance.cell_width", a.CellWidth)
	m.viper.SetDefault("appearance.cell_height", a.CellHeight)
	for prefix, p := range map[string]Palette{
		"appearance.light_palette": a.LightPalette,
		"appearance.dark_palette":  a.DarkPalette,
	} {
		m.viper.SetDefault(prefix+".background", p.Background)
		m.viper.SetDefault(prefix+".surface", p.Surface)
		m.viper.SetDefault(prefix+".surface_variant", p.SurfaceVariant)
		m.viper.SetDefault(prefix+".text", p.Text)
		m.viper.SetDefault(prefix+".muted", p.Muted)
		m.viper.SetDefault(prefix+".accent", p.Accent)
		m.viper.SetDefault(prefix+".border", p.Border)
	}
}

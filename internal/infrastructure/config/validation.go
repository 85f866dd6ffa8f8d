package config

import (
	"fmt"
	"slices"
	"strings"

	domainvalidation "github.com/bnema/floatdesk/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateStacking(config)...)
	validationErrors = append(validationErrors, validateMobile(config)...)
	validationErrors = append(validationErrors, validateKeyboard(config)...)
	validationErrors = append(validationErrors, validatePersistence(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateContent(config)...)
	if config.Animation.CloseFadeMs < 0 {
		validationErrors = append(validationErrors, "animation.close_fade_ms must be non-negative")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	l := config.Layout

	nonNegative := map[string]int{
		"layout.header_height": l.HeaderHeight,
		"layout.footer_height": l.FooterHeight,
		"layout.side_margin":   l.SideMargin,
		"layout.cascade_step":  l.CascadeStep,
		"layout.fit_gap":       l.FitGap,
	}
	for _, key := range sortedKeys(nonNegative) {
		if nonNegative[key] < 0 {
			validationErrors = append(validationErrors, key+" must be non-negative")
		}
	}

	positive := map[string]int{
		"layout.min_width":           l.MinWidth,
		"layout.min_height":          l.MinHeight,
		"layout.default_width":       l.DefaultWidth,
		"layout.default_height":      l.DefaultHeight,
		"layout.fit_max_width":       l.FitMaxWidth,
		"layout.fit_max_height":      l.FitMaxHeight,
		"layout.panel_header_height": l.PanelHeaderHeight,
		"layout.control_width":       l.ControlWidth,
		"layout.resize_grip":         l.ResizeGrip,
	}
	for _, key := range sortedKeys(positive) {
		if positive[key] <= 0 {
			validationErrors = append(validationErrors, key+" must be positive")
		}
	}

	if l.DefaultWidth < l.MinWidth || l.DefaultHeight < l.MinHeight {
		validationErrors = append(validationErrors, "layout.default_width/default_height must not be smaller than the minimum size")
	}
	if l.FitMaxWidth < l.MinWidth || l.FitMaxHeight < l.MinHeight {
		validationErrors = append(validationErrors, "layout.fit_max_width/fit_max_height must not be smaller than the minimum size")
	}
	if l.PanelHeaderHeight > l.MinHeight {
		validationErrors = append(validationErrors, "layout.panel_header_height must not exceed layout.min_height")
	}
	return validationErrors
}

func validateStacking(config *Config) []string {
	s := config.Stacking
	if s.BaseRank < 0 || s.BaseRank >= s.MaximizedRank || s.MaximizedRank >= s.ChromeRank {
		return []string{"stacking ranks must satisfy 0 <= base_rank < maximized_rank < chrome_rank"}
	}
	return nil
}

func validateMobile(config *Config) []string {
	var validationErrors []string
	if config.Mobile.Breakpoint < 0 {
		validationErrors = append(validationErrors, "mobile.breakpoint must be non-negative")
	}
	if config.Mobile.SwipeThreshold <= 0 {
		validationErrors = append(validationErrors, "mobile.swipe_threshold must be positive")
	}
	return validationErrors
}

func validateKeyboard(config *Config) []string {
	kb := config.Keyboard
	var validationErrors []string

	lists := []struct {
		field  string
		values []string
	}{
		{"keyboard.cycle", kb.Cycle},
		{"keyboard.cycle_prev", kb.CyclePrev},
		{"keyboard.minimize_toggle", kb.MinimizeToggle},
		{"keyboard.nudge_up", kb.NudgeUp},
		{"keyboard.nudge_down", kb.NudgeDown},
		{"keyboard.nudge_left", kb.NudgeLeft},
		{"keyboard.nudge_right", kb.NudgeRight},
		{"keyboard.fast_nudge_up", kb.FastNudgeUp},
		{"keyboard.fast_nudge_down", kb.FastNudgeDown},
		{"keyboard.fast_nudge_left", kb.FastNudgeLeft},
		{"keyboard.fast_nudge_right", kb.FastNudgeRight},
	}
	owner := make(map[string]string)
	for _, l := range lists {
		validationErrors = append(validationErrors, domainvalidation.ValidateKeyBindings(l.field, l.values)...)
		for _, b := range l.values {
			if prev, ok := owner[b]; ok && prev != l.field {
				validationErrors = append(validationErrors, fmt.Sprintf("%s: %q is already bound by %s", l.field, b, prev))
				continue
			}
			owner[b] = l.field
		}
	}

	if kb.QuickSelectPrefix != "" {
		validationErrors = append(validationErrors,
			domainvalidation.ValidateKeyBinding("keyboard.quick_select_prefix", kb.QuickSelectPrefix+"1")...)
	}
	if kb.NudgeStep <= 0 {
		validationErrors = append(validationErrors, "keyboard.nudge_step must be positive")
	}
	if kb.FastNudgeStep < kb.NudgeStep {
		validationErrors = append(validationErrors, "keyboard.fast_nudge_step must be at least keyboard.nudge_step")
	}
	return validationErrors
}

func validatePersistence(config *Config) []string {
	var validationErrors []string
	p := config.Persistence
	if strings.ContainsAny(p.Slot, "/ \t") {
		validationErrors = append(validationErrors, "persistence.slot must not contain slashes or whitespace")
	}
	if p.DebounceMs < 0 {
		validationErrors = append(validationErrors, "persistence.debounce_ms must be non-negative")
	}
	if p.MaxPanels <= 0 {
		validationErrors = append(validationErrors, "persistence.max_panels must be positive")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true}
	if !validLevels[config.Logging.Level] {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, fatal (got %q)", config.Logging.Level))
	}
	validFormats := map[string]bool{"text": true, "json": true, "console": true}
	if !validFormats[config.Logging.Format] {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of text, json, console (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	a := config.Appearance
	palettes := []struct {
		prefix  string
		palette Palette
	}{
		{"appearance.dark_palette", a.DarkPalette},
		{"appearance.light_palette", a.LightPalette},
	}
	for _, entry := range palettes {
		p := entry.palette
		validationErrors = append(validationErrors, domainvalidation.ValidatePaletteHex(entry.prefix,
			domainvalidation.ColorField{Name: "background", Value: p.Background},
			domainvalidation.ColorField{Name: "surface", Value: p.Surface},
			domainvalidation.ColorField{Name: "surface_variant", Value: p.SurfaceVariant},
			domainvalidation.ColorField{Name: "text", Value: p.Text},
			domainvalidation.ColorField{Name: "muted", Value: p.Muted},
			domainvalidation.ColorField{Name: "accent", Value: p.Accent},
			domainvalidation.ColorField{Name: "border", Value: p.Border},
		)...)
	}
	if a.CellWidth <= 0 || a.CellHeight <= 0 {
		validationErrors = append(validationErrors, "appearance.cell_width and appearance.cell_height must be positive")
	}
	return validationErrors
}

func validateContent(config *Config) []string {
	if config.Content.ScriptTimeoutMs <= 0 {
		return []string{"content.script_timeout_ms must be positive"}
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output defaults to stderr.
	Output io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return zerolog.New(formatWriter(out, cfg.Format, cfg.TimeFormat, false)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

func formatWriter(out io.Writer, format, timeFormat string, noColor bool) io.Writer {
	switch strings.ToLower(format) {
	case "json":
		return out
	default:
		// console, text and pretty all render human readable lines
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: timeFormat,
			NoColor:    noColor,
		}
	}
}

// ParseLevel maps a level name to a zerolog level. Unknown names give info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues builds a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format != "" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// FLOATDESK_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// FLOATDESK_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()
	if level := os.Getenv("FLOATDESK_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}
	if format := os.Getenv("FLOATDESK_LOG_FORMAT"); format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// FileConfig configures the rotated log file.
type FileConfig struct {
	Dir        string
	Name       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewWithFile creates a logger writing to a rotated file only. Interactive
// terminal commands use it so log lines never land on the screen.
func NewWithFile(cfg Config, file FileConfig) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(file.Dir, 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	if file.Name == "" {
		file.Name = "floatdesk.log"
	}
	if file.MaxSizeMB <= 0 {
		file.MaxSizeMB = 10
	}

	rotator, err := NewLogRotator(file.Dir, file.Name, file.MaxSizeMB, file.MaxBackups, file.MaxAgeDays, file.Compress)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	logger := zerolog.New(formatWriter(rotator, cfg.Format, cfg.TimeFormat, true)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, rotator, nil
}

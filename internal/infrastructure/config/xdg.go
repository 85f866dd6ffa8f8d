package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "floatdesk"
	databaseName = "floatdesk.sqlite"
	configName   = "config.toml"

	// homeEnv puts config, data and state under one directory, for
	// development and tests.
	homeEnv = "FLOATDESK_HOME"
)

// XDGDirs holds the per-application XDG base directories.
type XDGDirs struct {
	ConfigHome string // $XDG_CONFIG_HOME/floatdesk
	DataHome   string // $XDG_DATA_HOME/floatdesk, saved layouts
	StateHome  string // $XDG_STATE_HOME/floatdesk, logs
}

// GetXDGDirs resolves the floatdesk directories. FLOATDESK_HOME, when set,
// replaces all three.
func GetXDGDirs() (*XDGDirs, error) {
	if home := os.Getenv(homeEnv); home != "" {
		return &XDGDirs{ConfigHome: home, DataHome: home, StateHome: home}, nil
	}

	config, err := xdgBase("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return nil, err
	}
	data, err := xdgBase("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return nil, err
	}
	state, err := xdgBase("XDG_STATE_HOME", ".local", "state")
	if err != nil {
		return nil, err
	}
	return &XDGDirs{
		ConfigHome: filepath.Join(config, appName),
		DataHome:   filepath.Join(data, appName),
		StateHome:  filepath.Join(state, appName),
	}, nil
}

// xdgBase returns $env, or the fallback path under the home directory.
func xdgBase(env string, fallback ...string) (string, error) {
	if dir := os.Getenv(env); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

func xdgPath(pick func(*XDGDirs) string, elem ...string) (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{pick(dirs)}, elem...)...), nil
}

// GetConfigDir returns the directory holding config.toml.
func GetConfigDir() (string, error) {
	return xdgPath(func(d *XDGDirs) string { return d.ConfigHome })
}

// GetConfigFile returns the path of config.toml.
func GetConfigFile() (string, error) {
	return xdgPath(func(d *XDGDirs) string { return d.ConfigHome }, configName)
}

// GetDatabaseFile returns the layout database path. Saved layouts are user
// data, so it lives under XDG_DATA_HOME.
func GetDatabaseFile() (string, error) {
	return xdgPath(func(d *XDGDirs) string { return d.DataHome }, databaseName)
}

// GetLogDir returns the log directory under XDG_STATE_HOME.
func GetLogDir() (string, error) {
	return xdgPath(func(d *XDGDirs) string { return d.StateHome }, "logs")
}

// GetManDir returns $XDG_DATA_HOME/man/man1, which man searches without a
// custom MANPATH.
func GetManDir() (string, error) {
	data, err := xdgBase("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return "", err
	}
	return filepath.Join(data, "man", "man1"), nil
}

// EnsureDirectories creates the config, data and state directories.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}

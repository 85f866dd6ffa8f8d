package config

import (
	"reflect"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config file whenever it changes on disk and notifies
// OnConfigChange callbacks. Calling it again is a no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(m.handleFileEvent)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// OnConfigChange registers a callback that receives a copy of every new
// configuration.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) handleFileEvent(e fsnotify.Event) {
	m.mu.Lock()
	log := m.log.With().Str("op", e.Op.String()).Str("file", e.Name).Logger()

	if m.skipNextReload {
		// Save already installed this config; only viper needs to catch up.
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("failed to sync viper after save")
		}
		m.notifyCallbacksLocked()
		return
	}

	previous := m.config
	if err := m.reload(); err != nil {
		// Keep running on the last good config.
		log.Warn().Err(err).Msg("config reload failed, keeping previous settings")
		m.mu.Unlock()
		return
	}
	if previous != nil && reflect.DeepEqual(previous, m.config) {
		// Editors and atomic renames often fire several events per save.
		log.Trace().Msg("config unchanged")
		m.mu.Unlock()
		return
	}
	log.Info().Msg("config reloaded")
	m.notifyCallbacksLocked()
}

// notifyCallbacksLocked releases m.mu, then hands each callback its own copy
// of the config. Must be called with m.mu held.
func (m *Manager) notifyCallbacksLocked() {
	cfg := *m.config
	callbacks := append(([]func(*Config))(nil), m.callbacks...)
	m.mu.Unlock()

	for _, callback := range callbacks {
		c := cfg
		callback(&c)
	}
}

// reload re-reads and validates the file. Must be called with m.mu held.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg, err := m.decode()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

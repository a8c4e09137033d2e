package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/gstsink/internal/logging"
)

// Watch reloads the config file on every write and notifies the
// OnConfigChange callbacks. An invalid edit is logged and the previous
// configuration stays active.
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

func (m *Manager) handleFileEvent(e fsnotify.Event) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

	m.mu.Lock()
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("config reload rejected, keeping previous values")
		return
	}
	snapshot := *m.config
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cfg := snapshot
		cb(&cfg)
	}
}

// OnConfigChange registers a callback run after each successful reload.
// Callbacks receive a copy and run outside the manager lock.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// reload must be called with m.mu held.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", m.viper.ConfigFileUsed(), err)
	}
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	m.config = cfg
	return nil
}

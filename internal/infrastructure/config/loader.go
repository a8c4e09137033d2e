package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager reading config.toml from configDir.
func NewManagerWithDir(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// GSTSINK_BACKEND, GSTSINK_DISPLAY_WIDTH, ...
	v.SetEnvPrefix("GSTSINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "GSTSINK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GSTSINK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "GSTSINK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind GSTSINK_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.ConfigFilePath()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Backend = strings.ToLower(strings.TrimSpace(config.Backend))
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	switch ZoomModeName(strings.ToLower(string(config.Display.ZoomMode))) {
	case ZoomModeNameFull:
		config.Display.ZoomMode = ZoomModeNameFull
	case "", ZoomModeNameBox:
		config.Display.ZoomMode = ZoomModeNameBox
	}

	switch Tristate(strings.ToLower(string(config.Playback.StalePTS))) {
	case "", TristateAuto:
		config.Playback.StalePTS = TristateAuto
	case TristateTrue:
		config.Playback.StalePTS = TristateTrue
	case TristateFalse:
		config.Playback.StalePTS = TristateFalse
	}

	config.Playback.EOSMode = strings.ToLower(strings.TrimSpace(config.Playback.EOSMode))
	if config.Playback.EOSMode == "" {
		config.Playback.EOSMode = defaultEOSMode
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.ConfigFilePath()
}

// ConfigFilePath is where the manager expects config.toml.
func (m *Manager) ConfigFilePath() string {
	return filepath.Join(m.configDir, configFileName)
}

// createDefaultConfig writes the defaults to the config directory.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	configFile := m.ConfigFilePath()
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("backend", defaults.Backend)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	for _, stage := range []struct {
		key string
		cfg StageConfig
	}{{"audio", defaults.Audio}, {"video", defaults.Video}} {
		m.viper.SetDefault(stage.key+".decode_factory", stage.cfg.DecodeFactory)
		m.viper.SetDefault(stage.key+".sink_factory", stage.cfg.SinkFactory)
		m.viper.SetDefault(stage.key+".sink_name", stage.cfg.SinkName)
		m.viper.SetDefault(stage.key+".caps", stage.cfg.Caps)
	}

	m.viper.SetDefault("display.x", defaults.Display.X)
	m.viper.SetDefault("display.y", defaults.Display.Y)
	m.viper.SetDefault("display.width", defaults.Display.Width)
	m.viper.SetDefault("display.height", defaults.Display.Height)
	m.viper.SetDefault("display.zorder", defaults.Display.ZOrder)
	m.viper.SetDefault("display.zoom_mode", string(defaults.Display.ZoomMode))

	m.viper.SetDefault("volume.initial", defaults.Volume.Initial)
	m.viper.SetDefault("volume.scale", defaults.Volume.Scale)
	m.viper.SetDefault("volume.property", defaults.Volume.Property)

	m.viper.SetDefault("playback.stale_pts", string(defaults.Playback.StalePTS))
	m.viper.SetDefault("playback.eos_mode", defaults.Playback.EOSMode)

	m.viper.SetDefault("gstreamer.prefix", defaults.GStreamer.Prefix)
	m.viper.SetDefault("gstreamer.debug_level", defaults.GStreamer.DebugLevel)
	m.viper.SetDefault("gstreamer.bridge_logs", defaults.GStreamer.BridgeLogs)
}

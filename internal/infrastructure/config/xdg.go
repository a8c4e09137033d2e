package config

import (
	"os"
	"path/filepath"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

const (
	appName        = "gstsink"
	configFileName = "config.toml"
)

// GetConfigDir returns $XDG_CONFIG_HOME/gstsink (default: ~/.config/gstsink).
// With ENV=dev the directory is .dev/gstsink in the working directory.
func GetConfigDir() (string, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}

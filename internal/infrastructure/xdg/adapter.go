package xdg

import (
	"os"
	"path/filepath"

	"github.com/bnema/gstsink/internal/application/port"
	"github.com/bnema/gstsink/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths on top of the config directory helpers.
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) ManDir() (string, error) {
	dataHome, err := dataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataHome, "man", "man1"), nil
}

func (a *Adapter) DocsDir() (string, error) {
	dataHome, err := dataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataHome, "doc", "gstsink"), nil
}

func dataHome() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

var _ port.XDGPaths = (*Adapter)(nil)

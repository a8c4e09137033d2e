// Package cli wires configuration, logging and the sink client for the
// gstsink commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/gstsink/internal/cli/styles"
	"github.com/bnema/gstsink/internal/domain/build"
	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/bnema/gstsink/internal/infrastructure/config"
	"github.com/bnema/gstsink/internal/infrastructure/deps"
	"github.com/bnema/gstsink/internal/infrastructure/gstreamer"
	"github.com/bnema/gstsink/internal/logging"
	"github.com/bnema/gstsink/pkg/gstclient"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and builds the logger.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("backend", cfg.Backend).
		Msg("configuration loaded")

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		ctx:     ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Profile resolves the backend profile of the current configuration.
func (a *App) Profile() (entity.BackendProfile, error) {
	return a.Config.Profile()
}

// InitGStreamer initialises GStreamer with the configured prefix and
// debug settings.
func (a *App) InitGStreamer() {
	deps.ApplyPrefixEnv(a.Config.GStreamer.Prefix)
	gstreamer.Init(a.ctx, gstreamer.RuntimeOptions{
		DebugLevel: a.Config.GStreamer.DebugLevel,
		BridgeLogs: a.Config.GStreamer.BridgeLogs,
	})
}

// NewClient initialises GStreamer and creates a sink client for the
// configured backend.
func (a *App) NewClient() (*gstclient.Client, error) {
	profile, err := a.Profile()
	if err != nil {
		return nil, err
	}
	a.InitGStreamer()
	return gstclient.New(gstreamer.NewElementFactory(), profile), nil
}

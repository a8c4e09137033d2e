package config

import (
	"fmt"

	"github.com/bnema/gstsink/internal/domain/entity"
)

// Profile resolves the configured backend into a BackendProfile, applying
// every non-empty override on top of the built-in profile.
func (c *Config) Profile() (entity.BackendProfile, error) {
	profile, ok := entity.ProfileByName(c.Backend)
	if !ok {
		return entity.BackendProfile{}, fmt.Errorf("unknown backend %q", c.Backend)
	}

	overrideStage(&profile.Audio, c.Audio)
	overrideStage(&profile.Video, c.Video)

	profile.Display = entity.DisplayGeometry{
		X:        c.Display.X,
		Y:        c.Display.Y,
		Width:    c.Display.Width,
		Height:   c.Display.Height,
		ZOrder:   c.Display.ZOrder,
		ZoomMode: c.Display.ZoomMode.entity(),
	}

	if c.Volume.Scale > 0 {
		profile.VolumeScale = c.Volume.Scale
	}
	if c.Volume.Property != "" {
		profile.VolumeProperty = c.Volume.Property
	}

	switch c.Playback.StalePTS {
	case TristateTrue:
		profile.CanReportStalePTS = true
	case TristateFalse:
		profile.CanReportStalePTS = false
	}

	switch mode := entity.EOSMode(c.Playback.EOSMode); mode {
	case entity.EOSModeAppSrc, entity.EOSModeEvent:
		profile.EOSMode = mode
	}

	return profile, nil
}

func overrideStage(stage *entity.StageProfile, cfg StageConfig) {
	if cfg.DecodeFactory != "" {
		stage.DecodeFactory = cfg.DecodeFactory
	}
	if cfg.SinkFactory != "" {
		stage.SinkFactory = cfg.SinkFactory
	}
	if cfg.SinkName != "" {
		stage.SinkName = cfg.SinkName
	}
	if cfg.Caps != "" {
		stage.Caps = cfg.Caps
	}
}

func (z ZoomModeName) entity() entity.ZoomMode {
	if z == ZoomModeNameFull {
		return entity.ZoomModeFull
	}
	return entity.ZoomModeBox
}

package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/pixelprops/go/pixelprops/pkg/props"
)

var (
	ErrMissingCodename    = errors.New("device.codename is required")
	ErrNegativeBuild      = errors.New("device.build_time must not be negative")
	ErrUnknownLogLevel    = errors.New("unknown log level")
	ErrUnsupportedVersion = errors.New("unsupported config version")
)

// Validate checks cfg for values resolution cannot work with.
func Validate(cfg *File) error {
	if cfg.Version > currentVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, cfg.Version)
	}
	if cfg.Device.Codename == "" {
		return ErrMissingCodename
	}
	if cfg.Device.BuildTime < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeBuild, cfg.Device.BuildTime)
	}
	for name := range cfg.Device.Fields {
		if _, err := props.ParseKey(name); err != nil {
			return fmt.Errorf("device.fields: %w", err)
		}
	}
	if cfg.Log.Level != "" && hclog.LevelFromString(cfg.Log.Level) == hclog.NoLevel {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, cfg.Log.Level)
	}
	return nil
}

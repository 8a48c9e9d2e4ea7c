package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/provide-io/pixelprops/go/pixelprops/internal/device"
)

// applyEnvOverrides overrides device values with environment variables if
// set. Invalid values fail fast. Logging variables are read by
// pkg/logging.
func applyEnvOverrides(cfg *File) error {
	if codename := os.Getenv("PIXELPROPS_DEVICE"); codename != "" {
		cfg.Device.Codename = codename
	}
	if buildTime := os.Getenv("PIXELPROPS_BUILD_TIME"); buildTime != "" {
		t, err := strconv.ParseInt(buildTime, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid PIXELPROPS_BUILD_TIME %q: %w", buildTime, err)
		}
		cfg.Device.BuildTime = t
	}
	if spoof := os.Getenv("PIXELPROPS_SPOOF_MUSIC"); spoof != "" {
		b, err := strconv.ParseBool(spoof)
		if err != nil {
			return fmt.Errorf("invalid PIXELPROPS_SPOOF_MUSIC %q: %w", spoof, err)
		}
		if cfg.Properties == nil {
			cfg.Properties = map[string]string{}
		}
		cfg.Properties[device.PropSpoofMusicApps] = strconv.FormatBool(b)
	}
	return nil
}

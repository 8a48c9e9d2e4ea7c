// Package config loads the description of the device pixelprops resolves
// against.
package config

import (
	"github.com/provide-io/pixelprops/go/pixelprops/internal/device"
	"github.com/provide-io/pixelprops/go/pixelprops/pkg/props"
)

// DeviceSection describes the real device.
type DeviceSection struct {
	// Codename is the real ro.product.device value, e.g. "sailfish".
	Codename string `yaml:"codename"`

	// BuildTime is the build timestamp in milliseconds since the epoch.
	// Zero derives it from ro.build.date.utc.
	BuildTime int64 `yaml:"build_time"`

	// Fields holds the real identity values keyed by field name (MODEL, ...).
	Fields map[string]string `yaml:"fields,omitempty"`
}

// LogSection configures logging. An empty level defers to
// PIXELPROPS_LOG_LEVEL.
type LogSection struct {
	Level string `yaml:"level,omitempty"`
}

// File is the pixelprops configuration file.
type File struct {
	Version    int               `yaml:"version,omitempty"`
	Device     DeviceSection     `yaml:"device"`
	Properties map[string]string `yaml:"properties,omitempty"`
	Log        LogSection        `yaml:"log,omitempty"`
}

const (
	defaultCodename = "generic"
	currentVersion  = 1
)

// Default returns a configuration for a generic, non-Pixel device with
// music spoofing off.
func Default() File {
	return File{
		Version: currentVersion,
		Device: DeviceSection{
			Codename: defaultCodename,
			Fields: map[string]string{
				"BRAND":        "generic",
				"MANUFACTURER": "unknown",
				"DEVICE":       defaultCodename,
				"PRODUCT":      defaultCodename,
				"MODEL":        "Generic Device",
				"TYPE":         "userdebug",
				"TAGS":         "test-keys",
			},
		},
		Properties: map[string]string{
			device.PropSpoofMusicApps: "false",
		},
	}
}

// SpoofMusicApps reports the music spoofing toggle.
func (f *File) SpoofMusicApps() bool {
	return device.ParseBool(f.Properties[device.PropSpoofMusicApps], false)
}

// Identity builds the device identity described by f. f must have passed
// Validate; unknown field names are skipped.
func (f *File) Identity() *device.Profile {
	fields := make(map[props.Key]string, len(f.Device.Fields))
	for name, value := range f.Device.Fields {
		if k, err := props.ParseKey(name); err == nil {
			fields[k] = value
		}
	}
	return device.NewProfile(f.Device.Codename, f.Device.BuildTime, fields, f.Properties)
}

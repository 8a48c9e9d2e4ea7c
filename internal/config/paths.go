package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const configFileName = "device.yaml"

// DefaultPath returns where the configuration file is looked for when no
// path is given.
func DefaultPath() string {
	if path := os.Getenv("PIXELPROPS_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(ConfigRoot(), configFileName)
}

// ConfigRoot returns the per-user configuration directory.
func ConfigRoot() string {
	switch runtime.GOOS {
	case "darwin":
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, "Library", "Application Support", "pixelprops")
		}
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "pixelprops")
		}
	default:
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, "pixelprops")
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", "pixelprops")
		}
	}

	// Fallback to temp directory
	return filepath.Join(os.TempDir(), "pixelprops")
}

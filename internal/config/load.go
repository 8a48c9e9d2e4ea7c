package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads path, layers it over Default, applies environment overrides
// and validates the result. An empty path loads only defaults and
// environment.
func Load(path string) (File, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 - path comes from the operator
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		// Field values describe one device; a file's set replaces the
		// defaults instead of merging into them.
		defaultFields := cfg.Device.Fields
		cfg.Device.Fields = nil
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
		if cfg.Device.Fields == nil {
			cfg.Device.Fields = defaultFields
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	if err := Validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefault loads DefaultPath if it exists and falls back to defaults
// otherwise.
func LoadDefault() (File, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		path = ""
	}
	return Load(path)
}

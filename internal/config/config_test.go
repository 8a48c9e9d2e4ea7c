package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/pixelprops/go/pixelprops/internal/device"
	"github.com/provide-io/pixelprops/go/pixelprops/pkg/props"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "device.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PIXELPROPS_DEVICE",
		"PIXELPROPS_BUILD_TIME",
		"PIXELPROPS_SPOOF_MUSIC",
		"PIXELPROPS_LOG_LEVEL",
		"PIXELPROPS_JSON_LOG",
		"PIXELPROPS_CONFIG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.SpoofMusicApps())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
version: 1
device:
  codename: oriole
  build_time: 1700000000000
  fields:
    BRAND: google
    MODEL: Pixel 6
properties:
  persist.sys.disguise_props_for_music_app: "1"
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "oriole", cfg.Device.Codename)
	assert.Equal(t, int64(1700000000000), cfg.Device.BuildTime)
	assert.Equal(t, "Pixel 6", cfg.Device.Fields["MODEL"])
	assert.True(t, cfg.SpoofMusicApps())
	assert.Equal(t, "debug", cfg.Log.Level)

	id := cfg.Identity()
	assert.Equal(t, "oriole", id.Codename())
	assert.Equal(t, int64(1700000000000), id.BuildTime())
	assert.Equal(t, "google", id.Fields()[props.KeyBrand])
	assert.True(t, id.PropertyBool(device.PropSpoofMusicApps, false))
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIXELPROPS_DEVICE", "cheetah")
	t.Setenv("PIXELPROPS_BUILD_TIME", "123")
	t.Setenv("PIXELPROPS_SPOOF_MUSIC", "true")
	t.Setenv("PIXELPROPS_LOG_LEVEL", "trace")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "cheetah", cfg.Device.Codename)
	assert.Equal(t, int64(123), cfg.Device.BuildTime)
	assert.True(t, cfg.SpoofMusicApps())
	// Log variables belong to the logger, not the device description.
	assert.Empty(t, cfg.Log.Level)
}

func TestLoad_BuildTimeFromBuildDate(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
device:
  codename: sailfish
properties:
  ro.build.date.utc: "1700000000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.Device.BuildTime)
	assert.Equal(t, int64(1700000000000), cfg.Identity().BuildTime())
}

func TestLoad_BuildTimeFallback(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeConfig(t, "device:\n  codename: sailfish\n"))
	require.NoError(t, err)
	assert.Equal(t, device.FallbackBuildTime, cfg.Identity().BuildTime())

	cfg, err = Load(writeConfig(t, `
device:
  codename: sailfish
  build_time: 1600000000000
properties:
  ro.build.date.utc: "1700000000"
`))
	require.NoError(t, err)
	assert.Equal(t, int64(1600000000000), cfg.Identity().BuildTime())
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "empty codename",
			content: "device:\n  codename: \"\"\n",
			wantErr: ErrMissingCodename,
		},
		{
			name:    "negative build time",
			content: "device:\n  build_time: -1\n",
			wantErr: ErrNegativeBuild,
		},
		{
			name:    "unknown field",
			content: "device:\n  fields:\n    SERIAL: abc\n",
			wantErr: props.ErrUnknownKey,
		},
		{
			name:    "bad log level",
			content: "log:\n  level: loud\n",
			wantErr: ErrUnknownLogLevel,
		},
		{
			name:    "future version",
			content: "version: 9\n",
			wantErr: ErrUnsupportedVersion,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tc.content))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIXELPROPS_BUILD_TIME", "yesterday")
	_, err := Load("")
	assert.ErrorContains(t, err, "PIXELPROPS_BUILD_TIME")

	clearEnv(t)
	t.Setenv("PIXELPROPS_SPOOF_MUSIC", "sometimes")
	_, err = Load("")
	assert.ErrorContains(t, err, "PIXELPROPS_SPOOF_MUSIC")
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Malformed(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "device: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoadDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIXELPROPS_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, defaultCodename, cfg.Device.Codename)

	t.Setenv("PIXELPROPS_CONFIG", writeConfig(t, "device:\n  codename: panther\n"))
	cfg, err = LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "panther", cfg.Device.Codename)
}

func TestDefaultPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIXELPROPS_CONFIG", "/etc/pixelprops.yaml")
	assert.Equal(t, "/etc/pixelprops.yaml", DefaultPath())

	if runtime.GOOS != "linux" {
		t.Skip("XDG layout only applies on linux")
	}
	t.Setenv("PIXELPROPS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "pixelprops", "device.yaml"), DefaultPath())
}

func TestLoad_FieldsReplaceDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeConfig(t, "device:\n  codename: lynx\n  fields:\n    MODEL: Pixel 7a\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"MODEL": "Pixel 7a"}, cfg.Device.Fields)

	cfg, err = Load(writeConfig(t, "device:\n  codename: lynx\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().Device.Fields, cfg.Device.Fields)
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/provide-io/pixelprops/go/pixelprops/internal/config"
	"github.com/provide-io/pixelprops/go/pixelprops/pkg/props"
)

const testConfig = `
device:
  codename: sailfish
  build_time: 1688997600000
  fields:
    BRAND: google
    MANUFACTURER: Google
    DEVICE: sailfish
    PRODUCT: sailfish
    MODEL: Pixel
    FINGERPRINT: google/sailfish/sailfish:10/QP1A.191005.007.A3/5972272:user/release-keys
    TYPE: user
    TAGS: release-keys
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"PIXELPROPS_DEVICE", "PIXELPROPS_BUILD_TIME", "PIXELPROPS_SPOOF_MUSIC", "PIXELPROPS_LOG_LEVEL", "PIXELPROPS_JSON_LOG"} {
		t.Setenv(key, "")
	}

	path := filepath.Join(t.TempDir(), "device.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", path, "--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveCmd_JSON(t *testing.T) {
	out, err := run(t, "resolve", "-p", "com.google.android.apps.wallpaper", "-o", "json")
	require.NoError(t, err)

	var d struct {
		Class     string           `json:"class"`
		Profile   string           `json:"profile"`
		Overrides []props.Override `json:"overrides"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "FlagshipA", d.Class)
	assert.Equal(t, "PixelFlagshipA", d.Profile)
	assert.Len(t, d.Overrides, 8)
}

func TestResolveCmd_DeviceFlag(t *testing.T) {
	out, err := run(t, "resolve", "-p", "com.google.android.apps.maps")
	require.NoError(t, err)
	assert.Contains(t, out, "PixelLegacy")

	out, err = run(t, "resolve", "-p", "com.google.android.apps.maps", "--device", "oriole")
	require.NoError(t, err)
	assert.Contains(t, out, "current flagship")
	assert.NotContains(t, out, "redfin")
}

func TestResolveCmd_SpoofMusic(t *testing.T) {
	out, err := run(t, "resolve", "-p", "com.netease.cloudmusic")
	require.NoError(t, err)
	assert.NotContains(t, out, "Flyme")

	out, err = run(t, "resolve", "-p", "com.netease.cloudmusic", "--spoof-music")
	require.NoError(t, err)
	assert.Contains(t, out, "Flyme")
}

func TestResolveCmd_YAML(t *testing.T) {
	out, err := run(t, "resolve", "-p", "com.google.android.settings.intelligence", "-o", "yaml")
	require.NoError(t, err)

	var d map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &d))
	assert.Equal(t, "LegacyConditional", d["class"])
	assert.Equal(t, []interface{}{"FINGERPRINT"}, d["suppressed"])
}

func TestResolveCmd_Errors(t *testing.T) {
	_, err := run(t, "resolve")
	assert.Error(t, err)

	_, err = run(t, "resolve", "-p", "x", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = run(t, "--log-level", "verbose", "resolve", "-p", "com.android.chrome")
	assert.ErrorIs(t, err, config.ErrUnknownLogLevel)
}

func TestApplyCmd_Lock(t *testing.T) {
	out, err := run(t, "apply", "-p", "com.android.chrome", "--lock", "FINGERPRINT", "-o", "json")
	require.NoError(t, err)

	var r struct {
		Requested int              `json:"requested"`
		Applied   int              `json:"applied"`
		After     []props.Override `json:"after"`
		Errors    []string         `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 8, r.Requested)
	assert.Equal(t, 7, r.Applied)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0], "FINGERPRINT")
	assert.Contains(t, r.After, props.Override{Key: props.KeyModel, Value: "Pixel 7 Pro"})
	assert.Contains(t, r.After, props.Override{
		Key:   props.KeyFingerprint,
		Value: "google/sailfish/sailfish:10/QP1A.191005.007.A3/5972272:user/release-keys",
	})
}

func TestApplyCmd_BadLock(t *testing.T) {
	_, err := run(t, "apply", "-p", "com.android.chrome", "--lock", "SERIAL")
	assert.ErrorIs(t, err, props.ErrUnknownKey)
}

func TestClassifyCmd(t *testing.T) {
	out, err := run(t, "classify", "com.google.android.dialer", "com.android.chrome", "org.example")
	require.NoError(t, err)
	assert.Contains(t, out, "KeepOriginal")
	assert.Contains(t, out, "ForcedFlagshipA")
	assert.Contains(t, out, "NoOverride")
}

func TestProfilesCmd(t *testing.T) {
	out, err := run(t, "profiles")
	require.NoError(t, err)
	for _, p := range props.Profiles() {
		assert.Contains(t, out, p.Name())
	}
	assert.Contains(t, out, "meizu 16th Plus")
	assert.Contains(t, out, "PixelLegacy (6 fields)")
	assert.Contains(t, out, "Generic (2 fields)")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pixelprops "+version)
}

// Package device describes the real device and the calling application,
// the two read-only inputs resolution depends on.
package device

import (
	"strconv"

	"github.com/provide-io/pixelprops/go/pixelprops/pkg/props"
)

// System property names consulted during resolution.
const (
	PropProductDevice  = "ro.product.device"
	PropBuildDateUTC   = "ro.build.date.utc"
	PropSpoofMusicApps = "persist.sys.disguise_props_for_music_app"
)

// FallbackBuildTime is reported when neither an explicit build time nor
// ro.build.date.utc is available.
const FallbackBuildTime = int64(1688997600000)

// Identity supplies facts about the real device.
type Identity interface {
	Codename() string
	BuildTime() int64
	Property(name string) string
	PropertyBool(name string, def bool) bool
}

// Package identifies the calling application.
type Package interface {
	PackageName() string
	ProcessName() string
}

// App is a fixed Package.
type App struct {
	Name    string
	Process string
}

func (a App) PackageName() string { return a.Name }

// ProcessName defaults to the package name, as for an app's main process.
func (a App) ProcessName() string {
	if a.Process == "" {
		return a.Name
	}
	return a.Process
}

// Profile is an Identity backed by a fixed device description.
type Profile struct {
	codename   string
	buildTime  int64
	fields     map[props.Key]string
	properties map[string]string
}

// NewProfile creates an Identity. The codename is also published as
// ro.product.device unless properties already set it.
func NewProfile(codename string, buildTime int64, fields map[props.Key]string, properties map[string]string) *Profile {
	s := &Profile{
		codename:   codename,
		buildTime:  buildTime,
		fields:     make(map[props.Key]string, len(fields)),
		properties: make(map[string]string, len(properties)+1),
	}
	for k, v := range fields {
		s.fields[k] = v
	}
	for k, v := range properties {
		s.properties[k] = v
	}
	if _, ok := s.properties[PropProductDevice]; !ok {
		s.properties[PropProductDevice] = codename
	}
	return s
}

// Codename returns ro.product.device.
func (s *Profile) Codename() string {
	return s.properties[PropProductDevice]
}

// BuildTime returns the build timestamp in milliseconds. Without an
// explicit value it is derived from ro.build.date.utc, which is in seconds,
// and FallbackBuildTime when that is missing or malformed.
func (s *Profile) BuildTime() int64 {
	if s.buildTime != 0 {
		return s.buildTime
	}
	secs, err := strconv.ParseInt(s.properties[PropBuildDateUTC], 10, 64)
	if err != nil || secs <= 0 {
		return FallbackBuildTime
	}
	return secs * 1000
}

// Property returns a system property, or "" when unset.
func (s *Profile) Property(name string) string {
	return s.properties[name]
}

// PropertyBool parses a system property as a boolean.
func (s *Profile) PropertyBool(name string, def bool) bool {
	return ParseBool(s.properties[name], def)
}

// Fields returns a copy of the real identity field values.
func (s *Profile) Fields() map[props.Key]string {
	out := make(map[props.Key]string, len(s.fields))
	for k, v := range s.fields {
		out[k] = v
	}
	return out
}

// ParseBool interprets a system property value the way the platform does:
// 1, y, yes, true and on are true; 0, n, no, false and off are false;
// anything else, including other spellings, yields def.
func ParseBool(value string, def bool) bool {
	switch value {
	case "1", "y", "yes", "true", "on":
		return true
	case "0", "n", "no", "false", "off":
		return false
	default:
		return def
	}
}

// NewRequest assembles a resolution request for app running on id.
func NewRequest(id Identity, app Package) props.Request {
	return props.Request{
		PackageName:       app.PackageName(),
		ProcessName:       app.ProcessName(),
		DeviceCodename:    id.Codename(),
		BuildTime:         id.BuildTime(),
		MusicSpoofEnabled: id.PropertyBool(PropSpoofMusicApps, false),
	}
}

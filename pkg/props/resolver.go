// Package props decides which device identity an application should see.
//
// A Resolver classifies the calling package against static tables and
// returns the ordered overrides to apply to the runtime identity fields.
// Applying them is left to a FieldStore; see Apply.
package props

import (
	"strconv"

	"github.com/hashicorp/go-hclog"
)

// Request carries the identity of the calling application and the facts
// about the real device that resolution depends on.
type Request struct {
	PackageName string
	ProcessName string

	// DeviceCodename is the real device's product codename.
	DeviceCodename string

	// BuildTime is the real build timestamp in milliseconds since the epoch.
	BuildTime int64

	// MusicSpoofEnabled enables the regional vendor profile for music apps.
	MusicSpoofEnabled bool
}

// Decision explains a resolution: which rule matched, which profile was
// selected and what ends up applied.
type Decision struct {
	Package          string       `json:"package" yaml:"package"`
	Class            PackageClass `json:"class" yaml:"class"`
	ProfileName      string       `json:"profile,omitempty" yaml:"profile,omitempty"`
	DeviceIsFlagship bool         `json:"device_is_flagship" yaml:"device_is_flagship"`
	Exempt           bool         `json:"exempt,omitempty" yaml:"exempt,omitempty"`
	Overrides        []Override   `json:"overrides" yaml:"overrides"`
	Suppressed       []Key        `json:"suppressed,omitempty" yaml:"suppressed,omitempty"`

	profile *Profile
}

// Profile returns the selected profile, or nil when only the generic
// baseline applies.
func (d Decision) Profile() *Profile {
	return d.profile
}

// Resolver maps requests to overrides. It holds no mutable state and is
// safe for concurrent use.
type Resolver struct {
	tables *Tables
	logger hclog.Logger
}

// NewResolver creates a resolver over tables. A nil tables uses
// DefaultTables.
func NewResolver(tables *Tables) *Resolver {
	return NewResolverWithLogger(tables, hclog.NewNullLogger())
}

// NewResolverWithLogger creates a resolver that logs its decisions.
func NewResolverWithLogger(tables *Tables, logger hclog.Logger) *Resolver {
	if tables == nil {
		tables = DefaultTables()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Resolver{tables: tables, logger: logger}
}

// Tables returns the tables the resolver consults.
func (r *Resolver) Tables() *Tables {
	return r.tables
}

// Resolve returns the overrides to apply for req, in application order.
func (r *Resolver) Resolve(req Request) []Override {
	return r.Decide(req).Overrides
}

// Decide resolves req and reports how the result was reached. It never
// fails: every package resolves to at least the generic baseline.
func (r *Resolver) Decide(req Request) Decision {
	pkg := req.PackageName
	d := Decision{
		Package:          pkg,
		Overrides:        Generic.Overrides(),
		DeviceIsFlagship: r.tables.IsFlagship(req.DeviceCodename),
	}

	rule := r.tables.Match(pkg)
	d.Class = rule.Class
	logger := r.logger.With("package", pkg, "process", req.ProcessName, "class", rule.Class)

	if rule.Profile == nil {
		logger.Trace("🧾 Keeping original identity")
		return d
	}
	if rule.RequiresMusicSpoof && !req.MusicSpoofEnabled {
		logger.Trace("🎵 Music spoofing disabled, keeping original identity")
		return d
	}
	if rule.ExemptOnFlagship && d.DeviceIsFlagship {
		d.Exempt = true
		logger.Debug("📱 Device is already a current flagship", "codename", req.DeviceCodename)
		return d
	}

	d.profile = rule.Profile
	d.ProfileName = rule.Profile.Name()
	logger.Debug("🪪 Defining props", "profile", d.ProfileName)

	for _, o := range rule.Profile.overrides {
		if rule.Suppressible && r.tables.suppression.Suppressed(pkg, o.Key) {
			logger.Trace("Not defining prop", "key", o.Key)
			d.Suppressed = append(d.Suppressed, o.Key)
			continue
		}
		d.Overrides = append(d.Overrides, o)
	}

	// Regional profiles are never rewritten; only the eligible branch is.
	if rule.Suppressible && pkg == r.tables.IndexingPackage() {
		ts := strconv.FormatInt(req.BuildTime, 10)
		logger.Trace("🕒 Using build time as indexing fingerprint", "value", ts)
		d.Overrides = append(d.Overrides, Override{KeyFingerprint, ts})
	}

	return d
}

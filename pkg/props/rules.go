package props

import "fmt"

// PackageClass is the classification of a package identifier. Every
// package maps to exactly one class.
type PackageClass uint8

const (
	ClassNoOverride PackageClass = iota
	ClassKeepOriginal
	ClassForcedFlagshipA
	ClassFlagshipA
	ClassFlagshipBConditional
	ClassLegacyConditional
	ClassRegionalVendorConditional
)

func (c PackageClass) String() string {
	switch c {
	case ClassNoOverride:
		return "NoOverride"
	case ClassKeepOriginal:
		return "KeepOriginal"
	case ClassForcedFlagshipA:
		return "ForcedFlagshipA"
	case ClassFlagshipA:
		return "FlagshipA"
	case ClassFlagshipBConditional:
		return "FlagshipBConditional"
	case ClassLegacyConditional:
		return "LegacyConditional"
	case ClassRegionalVendorConditional:
		return "RegionalVendorConditional"
	default:
		return fmt.Sprintf("UNKNOWN_%02x", uint8(c))
	}
}

// MarshalText renders the class by name.
func (c PackageClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Rule is one row of the ordered classification table. Rules are
// evaluated top-down and the first whose predicate matches wins.
type Rule struct {
	Class PackageClass

	// Profile is nil for classes that never receive a device identity.
	Profile *Profile

	// ExemptOnFlagship skips the profile when the real device is already
	// a current flagship.
	ExemptOnFlagship bool

	// RequiresMusicSpoof gates the profile on the music spoofing toggle.
	RequiresMusicSpoof bool

	// Suppressible applies the per-package suppression table.
	Suppressible bool

	match func(pkg string) bool
}

// Matches reports whether the rule's predicate accepts pkg.
func (r Rule) Matches(pkg string) bool {
	return r.match(pkg)
}

func (t *Tables) buildRules() []Rule {
	return []Rule{
		{
			Class: ClassNoOverride,
			match: func(pkg string) bool { return pkg == "" },
		},
		{
			Class:              ClassRegionalVendorConditional,
			Profile:            RegionalVendor,
			RequiresMusicSpoof: true,
			match:              func(pkg string) bool { return !t.Eligible(pkg) && t.regional.has(pkg) },
		},
		{
			Class: ClassNoOverride,
			match: func(pkg string) bool { return !t.Eligible(pkg) },
		},
		{
			Class: ClassKeepOriginal,
			match: func(pkg string) bool { return t.keep.has(pkg) || t.IsCamera(pkg) },
		},
		{
			Class:        ClassForcedFlagshipA,
			Profile:      PixelFlagshipA,
			Suppressible: true,
			match:        t.extra.has,
		},
		{
			Class:        ClassFlagshipA,
			Profile:      PixelFlagshipA,
			Suppressible: true,
			match:        t.flagshipA.has,
		},
		{
			Class:            ClassFlagshipBConditional,
			Profile:          PixelFlagshipB,
			ExemptOnFlagship: true,
			Suppressible:     true,
			match:            t.flagshipB.has,
		},
		{
			Class:            ClassLegacyConditional,
			Profile:          PixelLegacy,
			ExemptOnFlagship: true,
			Suppressible:     true,
			match:            func(string) bool { return true },
		},
	}
}

// Rules returns the classification table in evaluation order.
func (t *Tables) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Match returns the first rule accepting pkg. The last rule accepts
// everything, so Match is total.
func (t *Tables) Match(pkg string) Rule {
	for _, r := range t.rules {
		if r.match(pkg) {
			return r
		}
	}
	return t.rules[len(t.rules)-1]
}

// Classify returns the class of pkg.
func (t *Tables) Classify(pkg string) PackageClass {
	return t.Match(pkg).Class
}

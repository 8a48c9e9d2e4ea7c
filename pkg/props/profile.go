package props

// Profile is a named, read-only bundle of overrides describing one
// emulated device identity. Overrides are emitted in definition order.
type Profile struct {
	name      string
	overrides []Override
}

func newProfile(name string, overrides ...Override) *Profile {
	return &Profile{name: name, overrides: overrides}
}

// Name returns the profile's display name.
func (p *Profile) Name() string {
	return p.name
}

// Overrides returns a copy of the profile's pairs.
func (p *Profile) Overrides() []Override {
	out := make([]Override, len(p.overrides))
	copy(out, p.overrides)
	return out
}

// Get returns the value the profile defines for key, if any.
func (p *Profile) Get(key Key) (string, bool) {
	for _, o := range p.overrides {
		if o.Key == key {
			return o.Value, true
		}
	}
	return "", false
}

// Len returns the number of pairs in the profile.
func (p *Profile) Len() int {
	return len(p.overrides)
}

// Canonical profiles.
var (
	Generic = newProfile("Generic",
		Override{KeyType, "user"},
		Override{KeyTags, "release-keys"},
	)

	// PixelFlagshipA presents a Pixel 7 Pro.
	PixelFlagshipA = newProfile("PixelFlagshipA",
		Override{KeyBrand, "google"},
		Override{KeyManufacturer, "Google"},
		Override{KeyDevice, "cheetah"},
		Override{KeyProduct, "cheetah"},
		Override{KeyModel, "Pixel 7 Pro"},
		Override{KeyFingerprint, "google/cheetah/cheetah:13/TQ3A.230705.001.A1/10217028:user/release-keys"},
	)

	// PixelFlagshipB presents a Pixel 6 Pro.
	PixelFlagshipB = newProfile("PixelFlagshipB",
		Override{KeyBrand, "google"},
		Override{KeyManufacturer, "Google"},
		Override{KeyDevice, "raven"},
		Override{KeyProduct, "raven"},
		Override{KeyModel, "Pixel 6 Pro"},
		Override{KeyFingerprint, "google/raven/raven:13/TQ3A.230705.001.A1/10217028:user/release-keys"},
	)

	// PixelLegacy presents a Pixel 5.
	PixelLegacy = newProfile("PixelLegacy",
		Override{KeyBrand, "google"},
		Override{KeyManufacturer, "Google"},
		Override{KeyDevice, "redfin"},
		Override{KeyProduct, "redfin"},
		Override{KeyModel, "Pixel 5"},
		Override{KeyFingerprint, "google/redfin/redfin:13/TQ3A.230705.001/10216780:user/release-keys"},
	)

	// RegionalVendor presents a Meizu 16th Plus to music apps that gate
	// features on it.
	RegionalVendor = newProfile("RegionalVendor",
		Override{KeyBrand, "meizu"},
		Override{KeyManufacturer, "Meizu"},
		Override{KeyDevice, "m1892"},
		Override{KeyDisplay, "Flyme"},
		Override{KeyProduct, "meizu_16thPlus_CN"},
		Override{KeyModel, "meizu 16th Plus"},
	)
)

// Profiles returns the canonical profiles in a stable order.
func Profiles() []*Profile {
	return []*Profile{Generic, PixelFlagshipA, PixelFlagshipB, PixelLegacy, RegionalVendor}
}

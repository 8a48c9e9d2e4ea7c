package props

import (
	"strings"
	"sync"
)

// Package identifiers with special handling.
const (
	PackageGMS          = "com.google.android.gms"
	PackagePhotos       = "com.google.android.apps.photos"
	PackagePlayStore    = "com.android.vending"
	PackageIndexing     = "com.google.android.settings.intelligence"
	PackageSubscription = "com.google.android.apps.subscriptions.red"

	PrefixGoogle       = "com.google."
	PrefixSamsung      = "com.samsung."
	PrefixGoogleCamera = "com.google.android.GoogleCamera"
)

type stringSet map[string]struct{}

func newStringSet(items ...string) stringSet {
	s := make(stringSet, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s stringSet) has(item string) bool {
	_, ok := s[item]
	return ok
}

// SuppressionTable lists, per package, keys that are never applied even
// when the selected profile defines them.
type SuppressionTable map[string][]Key

// Suppressed reports whether key is suppressed for exactly pkg.
func (t SuppressionTable) Suppressed(pkg string, key Key) bool {
	for _, k := range t[pkg] {
		if k == key {
			return true
		}
	}
	return false
}

// Tables is the static classification data the resolver consults. A
// Tables value is never modified after construction.
type Tables struct {
	ecosystemPrefixes []string
	extra             stringSet
	camera            stringSet
	cameraPrefix      string
	keep              stringSet
	flagshipA         stringSet
	flagshipB         stringSet
	regional          stringSet
	flagshipCodenames stringSet
	suppression       SuppressionTable
	indexingPackage   string
	rules             []Rule
}

var defaultTables = sync.OnceValue(newDefaultTables)

// DefaultTables returns the process-wide tables. They are built on first
// use and shared by every caller afterwards.
func DefaultTables() *Tables {
	return defaultTables()
}

func newDefaultTables() *Tables {
	t := &Tables{
		ecosystemPrefixes: []string{PrefixGoogle, PrefixSamsung},
		extra: newStringSet(
			"com.amazon.avod.thirdpartyclient",
			"com.android.chrome",
			"com.breel.wallpapers20",
			"com.disney.disneyplus",
			"com.microsoft.android.smsorganizer",
			"com.nhs.online.nhsonline",
			"com.nothing.smartcenter",
			"in.startv.hotstar",
		),
		camera: newStringSet(
			"com.google.android.MTCL83",
			"com.google.android.UltraCVM",
			"com.google.android.apps.cameralite",
		),
		cameraPrefix: PrefixGoogleCamera,
		keep: newStringSet(
			PackageGMS,
			PackagePhotos,
			PackagePlayStore,
			PackageSubscription,
			"com.google.android.apps.recorder",
			"com.google.android.apps.tachyon",
			"com.google.android.apps.tycho",
			"com.google.android.apps.wearables.maestro.companion",
			"com.google.android.apps.youtube.kids",
			"com.google.android.apps.youtube.music",
			"com.google.android.dialer",
			"com.google.android.euicc",
			"com.google.android.youtube",
			"com.google.ar.core",
		),
		flagshipA: newStringSet(
			"com.google.android.apps.privacy.wildlife",
			"com.google.android.apps.wallpaper",
			"com.google.android.apps.wallpaper.pixel",
		),
		flagshipB: newStringSet(
			"com.google.android.wallpaper.effects",
			"com.google.android.apps.emojiwallpaper",
		),
		regional: newStringSet(
			"com.netease.cloudmusic",
			"com.tencent.qqmusic",
			"com.kugou.android",
			"com.kugou.android.lite",
			"cmccwm.mobilemusic",
			"cn.kuwo.player",
			"com.meizu.media.music",
		),
		// Codenames of Pixels Google currently supports.
		flagshipCodenames: newStringSet(
			"felix", "tangorpro", "lynx", "cheetah", "panther",
			"bluejay", "oriole", "raven", "redfin", "barbet",
			"bramble", "sunfish", "coral", "flame", "bonito",
			"sargo", "crosshatch", "blueline", "taimen", "walleye",
		),
		suppression: SuppressionTable{
			PackageIndexing: {KeyFingerprint},
		},
		indexingPackage: PackageIndexing,
	}
	t.rules = t.buildRules()
	return t
}

// IsFlagship reports whether the real device codename is already one of
// the vendor's current flagships.
func (t *Tables) IsFlagship(codename string) bool {
	return t.flagshipCodenames.has(codename)
}

// Eligible reports whether pkg is considered for a device-identity
// override at all. Packages that are not eligible can only receive the
// regional vendor profile.
func (t *Tables) Eligible(pkg string) bool {
	if pkg == "" {
		return false
	}
	for _, prefix := range t.ecosystemPrefixes {
		if strings.HasPrefix(pkg, prefix) {
			return true
		}
	}
	return t.extra.has(pkg) || t.camera.has(pkg)
}

// IsCamera reports whether pkg is a camera app, which always keeps the
// real identity.
func (t *Tables) IsCamera(pkg string) bool {
	return t.camera.has(pkg) || strings.HasPrefix(pkg, t.cameraPrefix)
}

// Suppression returns a copy of the suppression table.
func (t *Tables) Suppression() SuppressionTable {
	out := make(SuppressionTable, len(t.suppression))
	for pkg, keys := range t.suppression {
		out[pkg] = append([]Key(nil), keys...)
	}
	return out
}

// IndexingPackage returns the package whose FINGERPRINT is rewritten to
// the build timestamp.
func (t *Tables) IndexingPackage() string {
	return t.indexingPackage
}

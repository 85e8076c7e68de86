package domain

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// PackageSet maps package names to versions in insertion order.
type PackageSet = OrderedMap[string]

// PackageSpec identifies a package at a specific version.
type PackageSpec struct {
	Name    string
	Version string
}

// String renders the spec as name@version.
func (p PackageSpec) String() string {
	return p.Name + "@" + p.Version
}

// Specs returns the set's entries as specs in insertion order.
func Specs(set PackageSet) []PackageSpec {
	specs := make([]PackageSpec, 0, set.Len())
	for name, version := range set.All() {
		specs = append(specs, PackageSpec{Name: name, Version: version})
	}
	return specs
}

// Fingerprint returns a stable hash of the set's contents, independent of order.
func Fingerprint(set PackageSet) uint64 {
	names := set.Keys()
	slices.Sort(names)

	h := xxhash.New()
	for _, name := range names {
		version, _ := set.Get(name)
		_, _ = h.WriteString(name)
		_, _ = h.WriteString("@")
		_, _ = h.WriteString(version)
		_, _ = h.WriteString("\n")
	}
	return h.Sum64()
}

// ShortFingerprint renders the first eight hex digits of Fingerprint.
func ShortFingerprint(set PackageSet) string {
	return fmt.Sprintf("%016x", Fingerprint(set))[:8]
}

// Profile is a named snapshot of globally installed packages plus environment metadata.
type Profile struct {
	NodeVersion    string     `json:"nodeVersion"`
	ManagerVersion string     `json:"managerVersion"`
	Manager        Manager    `json:"manager"`
	Packages       PackageSet `json:"packages"`
	SavedAt        time.Time  `json:"savedAt"`
	PackageCount   int        `json:"packageCount"`
	Platform       string     `json:"platform"`
	Arch           string     `json:"arch"`
}

// UnmarshalJSON also accepts the keys written by the npm-migrate tool
// (npmVersion, packageManager, packagesCount) when the current ones are absent.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type profile Profile
	var doc struct {
		profile
		NPMVersion     string  `json:"npmVersion"`
		PackageManager Manager `json:"packageManager"`
		PackagesCount  int     `json:"packagesCount"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*p = Profile(doc.profile)
	if p.ManagerVersion == "" {
		p.ManagerVersion = doc.NPMVersion
	}
	if p.Manager == "" {
		p.Manager = doc.PackageManager
	}
	if p.PackageCount == 0 {
		p.PackageCount = doc.PackagesCount
	}
	return nil
}

// NamedProfile pairs a profile with its store key.
type NamedProfile struct {
	Name    string
	Profile Profile
}

// ProfileSet is the profile store document: profile name to profile, in insertion order.
type ProfileSet struct {
	OrderedMap[Profile]
}

// Latest returns the most recently saved profile.
// Ties on SavedAt are broken by insertion order, the later entry winning.
func (s ProfileSet) Latest() (NamedProfile, bool) {
	var (
		latest NamedProfile
		found  bool
	)
	for name, p := range s.All() {
		if !found || !p.SavedAt.Before(latest.Profile.SavedAt) {
			latest = NamedProfile{Name: name, Profile: p}
			found = true
		}
	}
	return latest, found
}

// ByRecency returns all profiles ordered by descending SavedAt.
// Profiles saved at the same instant keep their insertion order.
func (s ProfileSet) ByRecency() []NamedProfile {
	out := make([]NamedProfile, 0, s.Len())
	for name, p := range s.All() {
		out = append(out, NamedProfile{Name: name, Profile: p})
	}
	slices.SortStableFunc(out, func(a, b NamedProfile) int {
		return cmp.Compare(b.Profile.SavedAt.UnixNano(), a.Profile.SavedAt.UnixNano())
	})
	return out
}

// DefaultProfileName builds the name used when save is called without one.
func DefaultProfileName(managerVersion string, now time.Time) string {
	v := strings.TrimSpace(managerVersion)
	if v == "" {
		v = "unknown"
	}
	return v + "_" + now.Format("20060102-150405")
}

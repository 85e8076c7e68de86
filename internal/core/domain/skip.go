package domain

import "slices"

// DefaultSkipSet lists packages excluded from every snapshot and install:
// the manager's own CLI, its package runner, the native-build helper,
// corepack, and this tool.
var DefaultSkipSet = []string{"npm", "npx", "node-gyp", "corepack", AppName}

// SkipSet is a set of package names to exclude.
type SkipSet map[string]struct{}

// NewSkipSet returns the default skip set extended with extra names.
func NewSkipSet(extra ...string) SkipSet {
	s := make(SkipSet, len(DefaultSkipSet)+len(extra))
	for _, name := range slices.Concat(DefaultSkipSet, extra) {
		if name != "" {
			s[name] = struct{}{}
		}
	}
	return s
}

// Contains reports whether name is skipped.
func (s SkipSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Filter returns a copy of set without skipped names.
func (s SkipSet) Filter(set PackageSet) PackageSet {
	var out PackageSet
	for name, version := range set.All() {
		if !s.Contains(name) {
			out.Set(name, version)
		}
	}
	return out
}

package domain

import "slices"

// VersionChange describes a package present in both profiles with differing versions.
type VersionChange struct {
	Name string
	From string
	To   string
}

// ProfileDiff is the classification of two profiles' package sets.
// Every slice is sorted by package name.
type ProfileDiff struct {
	From      string
	To        string
	Added     []PackageSpec
	Removed   []PackageSpec
	Changed   []VersionChange
	Unchanged []PackageSpec
}

// Diff compares the package sets of a and b over the union of their names.
// Added entries are only in b, removed entries only in a. Versions are
// compared as exact strings.
func Diff(a, b PackageSet) ProfileDiff {
	names := a.Keys()
	for name := range b.All() {
		if !a.Has(name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	var d ProfileDiff
	for _, name := range names {
		va, inA := a.Get(name)
		vb, inB := b.Get(name)
		switch {
		case inA && !inB:
			d.Removed = append(d.Removed, PackageSpec{Name: name, Version: va})
		case !inA && inB:
			d.Added = append(d.Added, PackageSpec{Name: name, Version: vb})
		case va != vb:
			d.Changed = append(d.Changed, VersionChange{Name: name, From: va, To: vb})
		default:
			d.Unchanged = append(d.Unchanged, PackageSpec{Name: name, Version: va})
		}
	}
	return d
}

// Identical reports whether the diff found no additions, removals or changes.
func (d ProfileDiff) Identical() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

package link

import (
	"slices"
)

// Entry is one named link declaration.
type Entry struct {
	// Name is the unique, user-facing key of the entry.
	Name string `json:"name" yaml:"name"`
	// Source is the declared path the link points to. It may contain "~" or
	// environment variable references.
	Source string `json:"source" yaml:"source"`
	// Target is the declared path where the link is created.
	Target string `json:"target" yaml:"target"`
}

// sortEntries returns a copy of entries ordered by name.
func sortEntries(entries []Entry) []Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

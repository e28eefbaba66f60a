package link

import (
	"slices"
)

// Select resolves which entry names an operation processes.
//
// A nil requested slice selects every name in all. Otherwise the result is
// the intersection of all and requested. Requested names that are not
// declared are dropped without error; use Unknown to find them. The result
// is sorted and free of duplicates.
func Select(all []string, requested []string) []string {
	if requested == nil {
		return sortedUnique(all)
	}

	declared := make(map[string]struct{}, len(all))
	for _, name := range all {
		declared[name] = struct{}{}
	}

	selected := make([]string, 0, len(requested))
	for _, name := range requested {
		if _, ok := declared[name]; ok {
			selected = append(selected, name)
		}
	}
	return sortedUnique(selected)
}

// Unknown returns the requested names that are not in all, sorted and
// de-duplicated.
func Unknown(all []string, requested []string) []string {
	declared := make(map[string]struct{}, len(all))
	for _, name := range all {
		declared[name] = struct{}{}
	}

	var unknown []string
	for _, name := range requested {
		if _, ok := declared[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return sortedUnique(unknown)
}

func sortedUnique(names []string) []string {
	out := slices.Clone(names)
	slices.Sort(out)
	return slices.Compact(out)
}

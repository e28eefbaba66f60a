package commands

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/pono/internal/config"
	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/link"
)

// findMulti is replaced in tests; the real finder needs a terminal.
var findMulti = func(entries []link.Entry, itemFunc func(int) string, opts ...fuzzyfinder.Option) ([]int, error) {
	return fuzzyfinder.FindMulti(entries, itemFunc, opts...)
}

// pickEntries lets the user mark entries in a fuzzy finder. Aborting the
// finder selects nothing.
func pickEntries(doc *config.Document) ([]string, error) {
	entries := doc.All()
	if len(entries) == 0 {
		return []string{}, nil
	}

	idxs, err := findMulti(
		entries,
		func(i int) string {
			return entries[i].Name
		},
		fuzzyfinder.WithPromptString("pono> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			e := entries[i]
			return fmt.Sprintf("Name:   %s\nSource: %s\nTarget: %s", e.Name, e.Source, e.Target)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return []string{}, nil
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	names := make([]string, len(idxs))
	for i, idx := range idxs {
		names[i] = entries[idx].Name
	}
	return names, nil
}

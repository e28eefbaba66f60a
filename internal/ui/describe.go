package ui

import (
	"fmt"

	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/link"
	"github.com/thoreinstein/pono/internal/paths"
)

// Describe returns a one-line, user-facing message for err. Engine errors
// are phrased per kind; anything else falls back to err.Error().
func Describe(err error) string {
	var le *link.Error
	if !errors.As(err, &le) {
		return err.Error()
	}

	path := paths.ShortenHome(le.Path)
	switch le.Kind {
	case link.KindConfig:
		return fmt.Sprintf("link document %s: %v", le.Path, le.Err)
	case link.KindSourceNotFound:
		return fmt.Sprintf("%s: source %s does not exist", le.Entry, path)
	case link.KindTargetOccupied:
		return fmt.Sprintf("%s: %s is a %s, not a link", le.Entry, path, le.Occupant)
	case link.KindBrokenLink:
		return fmt.Sprintf("%s: %s points to %s, which does not exist", le.Entry, path, le.Destination)
	case link.KindLinkMismatch:
		return fmt.Sprintf("%s: %s points to %s instead of the source", le.Entry, path, le.Destination)
	default:
		return le.Error()
	}
}

// Suggestion returns a follow-up hint for err, or "" when there is none.
func Suggestion(err error) string {
	kind, ok := link.KindOf(err)
	if !ok {
		return ""
	}
	switch kind {
	case link.KindConfig:
		return "Run: pono doctor"
	case link.KindSourceNotFound:
		return "Check the source path in the link document"
	case link.KindTargetOccupied:
		return "Move the existing file away, then run the command again"
	case link.KindBrokenLink, link.KindLinkMismatch:
		return "Run: pono disable NAME && pono enable NAME"
	default:
		return ""
	}
}

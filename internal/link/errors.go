package link

import (
	"fmt"
	"io/fs"

	"github.com/thoreinstein/pono/internal/errors"
)

// Kind is the closed set of engine failure kinds.
type Kind int

const (
	// KindUnhandled is any OS-level failure not covered by another kind.
	KindUnhandled Kind = iota
	// KindConfig is a missing, unreadable or invalid link document.
	KindConfig
	// KindSourceNotFound is a declared source that does not exist.
	KindSourceNotFound
	// KindTargetOccupied is a target that exists and is not a symlink.
	KindTargetOccupied
	// KindBrokenLink is a status finding: the link destination is missing.
	KindBrokenLink
	// KindLinkMismatch is a status finding: the link destination differs
	// from the source.
	KindLinkMismatch
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "ConfigError"
	case KindSourceNotFound:
		return "SourceNotFound"
	case KindTargetOccupied:
		return "TargetOccupied"
	case KindBrokenLink:
		return "BrokenLink"
	case KindLinkMismatch:
		return "LinkMismatch"
	default:
		return "Unhandled"
	}
}

// Error is an engine failure with structured context.
type Error struct {
	Kind Kind
	// Entry is the name of the entry being processed, if any.
	Entry string
	// Path is the path involved: the config document, the resolved source or
	// the resolved target depending on Kind.
	Path string
	// Op is the filesystem operation that failed, for KindUnhandled.
	Op string
	// Occupant is set for KindTargetOccupied.
	Occupant Occupant
	// Destination is the raw link value for status findings.
	Destination string
	// Err is the underlying cause, typically an *os.PathError.
	Err error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindConfig:
		msg = fmt.Sprintf("invalid link document %s", e.Path)
	case KindSourceNotFound:
		msg = fmt.Sprintf("%s: source %s does not exist", e.Entry, e.Path)
	case KindTargetOccupied:
		msg = fmt.Sprintf("%s: target %s is occupied by a %s", e.Entry, e.Path, e.Occupant)
	case KindBrokenLink:
		msg = fmt.Sprintf("%s: %s points to missing %s", e.Entry, e.Path, e.Destination)
	case KindLinkMismatch:
		msg = fmt.Sprintf("%s: %s points to %s which does not match the source", e.Entry, e.Path, e.Destination)
	default:
		var pathErr *fs.PathError
		switch {
		case e.Entry != "" && errors.As(e.Err, &pathErr):
			// The cause already names the operation and path.
			msg = e.Entry
		case e.Entry != "" && e.Op != "":
			msg = fmt.Sprintf("%s: %s %s", e.Entry, e.Op, e.Path)
		case e.Entry != "":
			msg = e.Entry
		default:
			msg = "unhandled error"
		}
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain. ok is false
// when err carries no engine error.
func KindOf(err error) (kind Kind, ok bool) {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind, true
	}
	return KindUnhandled, false
}

func unhandled(entry, op, path string, err error) *Error {
	return &Error{Kind: KindUnhandled, Entry: entry, Op: op, Path: path, Err: err}
}

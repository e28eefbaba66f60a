package config

import (
	"slices"
	"strings"

	"github.com/thoreinstein/pono/internal/errors"
)

// Validation errors for the link document and settings.
var (
	// ErrMissingTable indicates the document has no top-level ponos table.
	ErrMissingTable = errors.New("missing [ponos] table")

	// ErrMissingField indicates an entry without a source or target.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrUnknownKey indicates a settings key pono does not know.
	ErrUnknownKey = errors.New("unknown settings key")

	// ErrInvalidLogFormat indicates a log_format other than text or json.
	ErrInvalidLogFormat = errors.New("log_format must be text or json")
)

// FieldError represents an error for a specific entry field.
type FieldError struct {
	Entry string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return "ponos." + e.Entry + "." + e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// validateDocument checks entries in name order and returns the first
// problem found.
func validateDocument(raw *rawDocument) error {
	if raw.Ponos == nil {
		return ErrMissingTable
	}

	names := make([]string, 0, len(raw.Ponos))
	for name := range raw.Ponos {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		e := raw.Ponos[name]
		if err := validatePath(e.Source); err != nil {
			return &FieldError{Entry: name, Field: "source", Err: err}
		}
		if err := validatePath(e.Target); err != nil {
			return &FieldError{Entry: name, Field: "target", Err: err}
		}
	}
	return nil
}

// validatePath checks if a declared path is well-formed.
// It does not check if the path exists.
func validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrMissingField
	}

	// Null bytes are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	return nil
}

// ValidateSetting checks a key and value before they are written to the
// settings file.
func ValidateSetting(key, value string) error {
	switch key {
	case KeyConfig:
		if err := validatePath(value); err != nil {
			return errors.Wrapf(err, "%s", key)
		}
	case KeyLogFormat:
		if value != "text" && value != "json" {
			return ErrInvalidLogFormat
		}
	default:
		return errors.Wrapf(ErrUnknownKey, "%q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

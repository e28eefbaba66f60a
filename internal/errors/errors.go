package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error: invalid input, a broken link
	// document, a failed pre-flight check, or a status finding.
	ExitUser = 1

	// ExitSystem indicates a system-related error outside the link engine
	// (log file, editor, terminal).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates a file pono needs does not exist.
	ErrNotFound = crdb.New("file not found")

	// ErrAlreadyExists indicates a file would be overwritten.
	ErrAlreadyExists = crdb.New("already exists")
)

// Thin re-exports so callers only import one errors package.
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Is    = crdb.Is
	As    = crdb.As
)

// ExitError attaches a process exit code and an optional next step to err.
// cmd/pono's HandleError prints it; ExitCode reads the code.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string

	// Reported marks errors whose details were already shown to the user,
	// so the entry point only sets the exit code.
	Reported bool
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: pono doctor",
	}
}

// NewReportedError creates an ExitUser error whose details have already been
// printed by the presentation layer.
func NewReportedError(err error) *ExitError {
	return &ExitError{
		Err:      err,
		Code:     ExitUser,
		Reported: true,
	}
}

// Error returns the underlying message, or "exit code N" when there is none.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying error to Is and As.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code carried by err. Errors without an
// ExitError in their chain map to ExitSystem; nil maps to ExitSuccess.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitSystem
}

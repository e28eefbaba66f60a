// Package errors provides error handling conventions for the pono CLI.
//
// The package re-exports the wrapping helpers of
// github.com/cockroachdb/errors so that every package wraps errors the same
// way, defines an ExitError type for CLI exit code handling, and declares the
// exit code constants.
//
// # Wrapping
//
//	if err := os.Symlink(src, dst); err != nil {
//	    return errors.Wrapf(err, "linking %s", dst)
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (link document, pre-flight check, status finding)
//   - ExitSystem (2): System-related error outside the link engine
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional suggestion:
//
//	err := ponoerrors.NewUserError(ponoerrors.ErrAlreadyExists, "Run: pono edit")
//	var exitErr *ponoerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors

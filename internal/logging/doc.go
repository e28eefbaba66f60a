// Package logging provides structured logging for the pono CLI using slog.
//
// Console output is either a compact text line per record or JSON. Text
// lines put the link entry first when the record carries an "entry"
// attribute:
//
//	INFO  zsh: linked target=/home/me/.zshrc
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//		File:   logFile, // optional, always JSON
//	})
//
// # Context
//
// Commands store the configured logger in their context with [NewContext];
// the link engine receives it from [FromContext].
//
// # Testing
//
// [ForTest] routes trace-level output through t.Log; [NewDiscard] drops
// everything.
package logging

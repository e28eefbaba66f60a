// Package editor provides utilities for launching the user's preferred text editor.
package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/pono/internal/errors"
)

// Open launches the user's preferred editor for the given path and waits
// for it to exit. The location is announced on w.
// Uses $EDITOR, falling back to $VISUAL, then nano, then vi. The editor
// value may carry arguments, as in EDITOR="code --wait".
func Open(w io.Writer, path string) error {
	fmt.Fprintf(w, "Location: %s\n", path)

	cmd := Command(path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", cmd.Path)
	}

	return nil
}

// Command builds the editor invocation for path without running it.
func Command(path string) *exec.Cmd {
	fields := strings.Fields(detectEditor())
	args := append(fields[1:], path)
	return exec.Command(fields[0], args...)
}

// detectEditor returns the editor command to use based on environment variables
// and available binaries. Fallback chain: $EDITOR → $VISUAL → nano → vi
func detectEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}

	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}

	// User-friendly fallback (nano is easier for beginners)
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	// POSIX standard fallback (vi is available on all Unix systems)
	return "vi"
}

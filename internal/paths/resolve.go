package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// UnboundVariableError reports an environment variable referenced by a
// declared path that is not set in the process environment.
type UnboundVariableError struct {
	// Name is the variable name without the leading "$".
	Name string
	// Path is the declared path that referenced it.
	Path string
}

func (e *UnboundVariableError) Error() string {
	return "unbound environment variable $" + e.Name + " in " + e.Path
}

// Unwrap allows errors.Is(err, ErrUnboundVariable).
func (e *UnboundVariableError) Unwrap() error {
	return ErrUnboundVariable
}

// Resolve expands a declared path into a usable filesystem path.
//
// Exactly one expansion mode applies, checked in this order:
//
//   - a leading "~" ("~" alone or "~/rest") is replaced by the home directory;
//   - otherwise a path containing "$" has $NAME and ${NAME} references
//     replaced from the environment, failing on any unset variable;
//   - otherwise a relative path is joined onto the working directory;
//   - otherwise the path is returned unchanged.
//
// A path such as "~/$VAR" is only tilde-expanded; the variable reference is
// kept literally. Resolve does not cache: every call observes the current
// environment and working directory.
func Resolve(path string) (string, error) {
	switch {
	case strings.HasPrefix(path, "~"):
		return expandTilde(path)
	case strings.Contains(path, "$"):
		return expandEnv(path)
	case !filepath.IsAbs(path):
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "determining working directory")
		}
		return filepath.Join(wd, path), nil
	default:
		return path, nil
	}
}

// expandTilde handles "~" and "~/rest". Other forms such as "~user" are
// returned unchanged.
func expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return home + path[1:], nil
}

func expandEnv(path string) (string, error) {
	var missing string
	expanded := os.Expand(path, func(name string) string {
		val, ok := os.LookupEnv(name)
		if !ok && missing == "" {
			missing = name
		}
		return val
	})
	if missing != "" {
		return "", &UnboundVariableError{Name: missing, Path: path}
	}
	return expanded, nil
}

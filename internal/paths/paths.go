package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "pono"

// DefaultDocument is the link document read when neither --config nor
// PONO_CONFIG names one. It is looked up in the working directory.
const DefaultDocument = "pono.toml"

// SettingsFile is the base name (without extension) of the optional tool
// settings file in SettingsDir.
const SettingsFile = "settings"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrUnboundVariable indicates a declared path references an environment
	// variable that is not set.
	ErrUnboundVariable = errors.New("unbound environment variable")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		if err == nil {
			err = errors.New("empty home directory")
		}
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
func ConfigHome() string {
	return xdg.ConfigHome
}

// SettingsDir returns the directory holding pono's own settings.
// Returns: <ConfigHome>/pono/
func SettingsDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ShortenHome replaces a leading home directory in path with "~" for display.
// Paths outside the home directory are returned unchanged.
func ShortenHome(path string) string {
	home, err := ResolveHome()
	if err != nil {
		return path
	}
	if path == home {
		return "~"
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.Join("~", rel)
}

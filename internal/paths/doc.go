// Package paths resolves declared link paths and pono's own directories.
//
// [Resolve] turns the source and target strings of a link document into
// filesystem paths. It supports tilde expansion, environment variable
// interpolation and relative paths, with exactly one mode per path:
//
//	paths.Resolve("~/.zshrc")          // /home/me/.zshrc
//	paths.Resolve("$HOME/.config/nvim") // /home/me/.config/nvim
//	paths.Resolve("./examples/from")    // <cwd>/examples/from
//
// Unset variables fail with an error matching [ErrUnboundVariable].
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for the location of pono's settings
// file (~/.config/pono/settings.yaml on Linux).
package paths

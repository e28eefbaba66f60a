// Package fsys is the filesystem seam used by the link engine.
//
// Production code uses [OS], which is backed by afero's OsFs and its
// symlink-aware extensions. Tests wrap it with [Faulty] to inject errors
// such as permission denied without needing root.
package fsys

import (
	"os"

	"github.com/spf13/afero"
)

// FS is the set of filesystem operations the link engine performs.
type FS interface {
	// Lstat returns metadata for name without following a final symlink.
	Lstat(name string) (os.FileInfo, error)
	// Stat returns metadata for name, following symlinks.
	Stat(name string) (os.FileInfo, error)
	// Readlink returns the destination stored in the symlink name.
	Readlink(name string) (string, error)
	// Symlink creates newname as a symbolic link to oldname.
	Symlink(oldname, newname string) error
	// Remove removes the named file or empty directory.
	Remove(name string) error
}

// symlinkFs is the subset of afero extensions needed on top of afero.Fs.
type symlinkFs interface {
	afero.Fs
	afero.Lstater
	afero.Linker
	afero.LinkReader
}

type aferoFS struct {
	fs symlinkFs
}

// OS returns the host filesystem.
func OS() FS {
	return &aferoFS{fs: afero.NewOsFs().(symlinkFs)}
}

func (a *aferoFS) Lstat(name string) (os.FileInfo, error) {
	info, _, err := a.fs.LstatIfPossible(name)
	return info, err
}

func (a *aferoFS) Stat(name string) (os.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Readlink(name string) (string, error) {
	return a.fs.ReadlinkIfPossible(name)
}

func (a *aferoFS) Symlink(oldname, newname string) error {
	return a.fs.SymlinkIfPossible(oldname, newname)
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/pono/internal/errors"
)

// MaxFileSize caps link documents and settings files at 1MB.
const MaxFileSize = 1 << 20

var (
	// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
	ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

	// ErrNotRegular is returned for directories, devices and other
	// non-regular files.
	ErrNotRegular = errors.New("not a regular file")
)

// ReadFileWithLimit reads a regular file of at most MaxFileSize bytes.
// A missing file yields an error matching fs.ErrNotExist.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "inspecting file")
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Wrapf(ErrNotRegular, "%s is a %s", path, describeMode(info.Mode()))
	}
	if info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	// The file may grow between Stat and ReadAll.
	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

func describeMode(m os.FileMode) string {
	switch {
	case m.IsDir():
		return "directory"
	case m&os.ModeNamedPipe != 0:
		return "named pipe"
	case m&os.ModeSocket != 0:
		return "socket"
	case m&os.ModeDevice != 0:
		return "device"
	default:
		return "special file"
	}
}

package link

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"syscall"

	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/fsys"
	"github.com/thoreinstein/pono/internal/logging"
	"github.com/thoreinstein/pono/internal/paths"
)

// Resolver expands a declared path. paths.Resolve is the default.
type Resolver func(path string) (string, error)

// Inspector classifies the on-disk state of entries. It only reads.
type Inspector struct {
	fs      fsys.FS
	resolve Resolver
	logger  *slog.Logger
}

// NewInspector creates an Inspector. A nil logger discards output.
func NewInspector(f fsys.FS, resolve Resolver, logger *slog.Logger) *Inspector {
	if f == nil {
		f = fsys.OS()
	}
	if resolve == nil {
		resolve = paths.Resolve
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Inspector{fs: f, resolve: resolve, logger: logger}
}

// Inspect classifies entry's target. Failures other than "does not exist"
// are returned as KindUnhandled errors.
func (i *Inspector) Inspect(entry Entry) (Inspection, error) {
	insp := Inspection{Entry: entry}

	target, err := i.resolve(entry.Target)
	if err != nil {
		return insp, unhandled(entry.Name, "resolve", entry.Target, err)
	}
	source, err := i.resolve(entry.Source)
	if err != nil {
		return insp, unhandled(entry.Name, "resolve", entry.Source, err)
	}
	insp.Target, insp.Source = target, source

	i.logger.Log(context.Background(), logging.LevelTrace, "lstat", "entry", entry.Name, "path", target)
	info, err := i.fs.Lstat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			insp.State = Absent
			return insp, nil
		}
		return insp, unhandled(entry.Name, "lstat", target, err)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		insp.State = OccupiedByOther
		insp.Occupant = occupantOf(info)
		return insp, nil
	}

	dest, err := i.fs.Readlink(target)
	if err != nil {
		return insp, unhandled(entry.Name, "readlink", target, err)
	}
	insp.Destination = dest

	followed, err := i.fs.Stat(target)
	if err != nil {
		// A link cycle never resolves, same as a missing destination.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ELOOP) {
			insp.State = BrokenLink
			return insp, nil
		}
		return insp, unhandled(entry.Name, "stat", target, err)
	}

	srcInfo, err := i.fs.Stat(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			i.logger.Debug("source missing behind existing link", "entry", entry.Name, "source", source)
			insp.State = LinkedMismatched
			return insp, nil
		}
		return insp, unhandled(entry.Name, "stat", source, err)
	}

	// Size is the only thing compared. Same-length files with different
	// content are reported as linked correctly.
	if equivalent(followed, srcInfo) {
		insp.State = LinkedCorrectly
	} else {
		insp.State = LinkedMismatched
	}

	i.logger.Debug("inspected", "entry", entry.Name, "state", insp.State.String())
	return insp, nil
}

func equivalent(a, b os.FileInfo) bool {
	return a.Size() == b.Size()
}

func occupantOf(info os.FileInfo) Occupant {
	switch {
	case info.IsDir():
		return OccupantDirectory
	case info.Mode().IsRegular():
		return OccupantFile
	default:
		return OccupantOther
	}
}

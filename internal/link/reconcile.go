package link

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/fsys"
	"github.com/thoreinstein/pono/internal/logging"
	"github.com/thoreinstein/pono/internal/paths"
)

// Mode selects the validation rules for a batch.
type Mode int

const (
	// ModeEnable rejects occupied targets.
	ModeEnable Mode = iota
	// ModeDisable tolerates occupied targets and reports them as warnings.
	ModeDisable
)

func (m Mode) String() string {
	if m == ModeDisable {
		return "disable"
	}
	return "enable"
}

// Reconciler validates and mutates batches of entries.
type Reconciler struct {
	fs        fsys.FS
	resolve   Resolver
	reporter  Reporter
	logger    *slog.Logger
	inspector *Inspector
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithFS sets the filesystem. The default is fsys.OS().
func WithFS(f fsys.FS) Option {
	return func(r *Reconciler) {
		if f != nil {
			r.fs = f
		}
	}
}

// WithReporter sets the outcome reporter. The default discards outcomes.
func WithReporter(rep Reporter) Option {
	return func(r *Reconciler) {
		if rep != nil {
			r.reporter = rep
		}
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reconciler) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewReconciler creates a Reconciler with the given options.
func NewReconciler(opts ...Option) *Reconciler {
	r := &Reconciler{
		fs:       fsys.OS(),
		resolve:  paths.Resolve,
		reporter: NopReporter{},
		logger:   logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.inspector = NewInspector(r.fs, r.resolve, r.logger)
	return r
}

// Inspector returns the Inspector sharing this Reconciler's filesystem,
// resolver and logger.
func (r *Reconciler) Inspector() *Inspector {
	return r.inspector
}

// Validate checks the whole batch before anything is mutated. It stops at
// the first fatal problem:
//
//   - a source that does not exist fails with KindSourceNotFound;
//   - a target that exists and is not a symlink fails with
//     KindTargetOccupied in ModeEnable, and is reported through
//     Reporter.Warn in ModeDisable;
//   - a target that already is a symlink passes.
func (r *Reconciler) Validate(entries []Entry, mode Mode) error {
	r.logger.Debug("validating", "mode", mode.String(), "entries", len(entries))

	for _, e := range sortEntries(entries) {
		source, err := r.resolve(e.Source)
		if err != nil {
			return unhandled(e.Name, "resolve", e.Source, err)
		}
		if _, err := r.fs.Stat(source); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return &Error{Kind: KindSourceNotFound, Entry: e.Name, Path: source, Err: err}
			}
			return unhandled(e.Name, "stat", source, err)
		}

		target, err := r.resolve(e.Target)
		if err != nil {
			return unhandled(e.Name, "resolve", e.Target, err)
		}
		info, err := r.fs.Lstat(target)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return unhandled(e.Name, "lstat", target, err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			continue
		}

		occupied := &Error{Kind: KindTargetOccupied, Entry: e.Name, Path: target, Occupant: occupantOf(info)}
		if mode == ModeEnable {
			return occupied
		}
		r.logger.Warn("target is not a symlink", "entry", e.Name, "target", target, "occupant", occupied.Occupant.String())
		r.reporter.Warn(occupied)
	}
	return nil
}

// Enable validates the batch and then links each entry in name order.
// Targets that already are symlinks are reported as ActionAlreadyLinked
// and left untouched. The first creation failure stops the run; links
// created before it are kept.
func (r *Reconciler) Enable(entries []Entry) error {
	if err := r.Validate(entries, ModeEnable); err != nil {
		return err
	}

	sorted := sortEntries(entries)
	r.reporter.Begin(OpEnable, len(sorted))

	for _, e := range sorted {
		source, err := r.resolve(e.Source)
		if err != nil {
			return unhandled(e.Name, "resolve", e.Source, err)
		}
		target, err := r.resolve(e.Target)
		if err != nil {
			return unhandled(e.Name, "resolve", e.Target, err)
		}

		if info, err := r.fs.Lstat(target); err == nil && info.Mode()&os.ModeSymlink != 0 {
			insp, err := r.inspector.Inspect(e)
			if err != nil {
				return err
			}
			r.logger.Info("already linked", "entry", e.Name, "target", target, "state", insp.State.String())
			r.reporter.Outcome(Outcome{Op: OpEnable, Action: ActionAlreadyLinked, Inspection: insp})
			continue
		}

		if err := r.fs.Symlink(source, target); err != nil {
			return unhandled(e.Name, "symlink", target, err)
		}
		r.logger.Info("linked", "entry", e.Name, "source", source, "target", target)
		r.reporter.Outcome(Outcome{
			Op:     OpEnable,
			Action: ActionCreated,
			Inspection: Inspection{
				Entry:       e,
				State:       LinkedCorrectly,
				Source:      source,
				Target:      target,
				Destination: source,
			},
		})
	}
	return nil
}

// Disable validates the batch and then removes each resolved target in
// name order, whether or not it is a symlink. The first removal failure,
// including a target that does not exist, stops the run; removals before
// it are kept.
func (r *Reconciler) Disable(entries []Entry) error {
	if err := r.Validate(entries, ModeDisable); err != nil {
		return err
	}

	sorted := sortEntries(entries)
	r.reporter.Begin(OpDisable, len(sorted))

	for _, e := range sorted {
		source, err := r.resolve(e.Source)
		if err != nil {
			return unhandled(e.Name, "resolve", e.Source, err)
		}
		target, err := r.resolve(e.Target)
		if err != nil {
			return unhandled(e.Name, "resolve", e.Target, err)
		}

		if err := r.fs.Remove(target); err != nil {
			return unhandled(e.Name, "remove", target, err)
		}
		r.logger.Info("unlinked", "entry", e.Name, "target", target)
		r.reporter.Outcome(Outcome{
			Op:     OpDisable,
			Action: ActionRemoved,
			Inspection: Inspection{
				Entry:  e,
				State:  Absent,
				Source: source,
				Target: target,
			},
		})
	}
	return nil
}

// StatusReport aggregates a status run.
type StatusReport struct {
	Inspections []Inspection `json:"entries" yaml:"entries"`
	// Unhealthy is true when any entry is not LinkedCorrectly.
	Unhealthy bool `json:"unhealthy" yaml:"unhealthy"`
}

// Status inspects each entry in name order without mutating anything.
// Unhealthy states are findings, not errors; only unexpected filesystem
// failures are returned.
func (r *Reconciler) Status(entries []Entry) (StatusReport, error) {
	sorted := sortEntries(entries)
	report := StatusReport{Inspections: make([]Inspection, 0, len(sorted))}
	r.reporter.Begin(OpStatus, len(sorted))

	for _, e := range sorted {
		insp, err := r.inspector.Inspect(e)
		if err != nil {
			return report, err
		}
		if !insp.State.Healthy() {
			report.Unhealthy = true
		}
		report.Inspections = append(report.Inspections, insp)
		r.reporter.Outcome(Outcome{Op: OpStatus, Action: ActionInspected, Inspection: insp})
	}
	return report, nil
}

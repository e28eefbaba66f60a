package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/pono/internal/link"
	"github.com/thoreinstein/pono/internal/paths"
)

// TextReporter prints engine progress as it happens. Outcomes go to out
// and warnings to errOut.
type TextReporter struct {
	out    io.Writer
	errOut io.Writer
	// quiet suppresses per-entry lines; warnings are still printed.
	quiet bool
}

var _ link.Reporter = (*TextReporter)(nil)

// ReporterOption configures a TextReporter.
type ReporterOption func(*TextReporter)

// Quiet suppresses per-entry lines.
func Quiet(q bool) ReporterOption {
	return func(r *TextReporter) { r.quiet = q }
}

// NewTextReporter creates a TextReporter.
func NewTextReporter(out, errOut io.Writer, opts ...ReporterOption) *TextReporter {
	r := &TextReporter{out: out, errOut: errOut}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Begin prints a notice when enable or disable selected nothing.
func (r *TextReporter) Begin(op link.Op, total int) {
	if total == 0 && op != link.OpStatus && !r.quiet {
		fmt.Fprintf(r.out, "Nothing to %s\n", op)
	}
}

// Outcome prints one line for the processed entry.
func (r *TextReporter) Outcome(o link.Outcome) {
	if r.quiet {
		return
	}

	insp := o.Inspection
	name := insp.Entry.Name
	target := paths.ShortenHome(insp.Target)

	switch o.Action {
	case link.ActionCreated:
		fmt.Fprintf(r.out, "%s %s: %s %s\n",
			color.GreenString("✓"), color.GreenString(name), target, color.HiBlackString("(new link)"))
	case link.ActionAlreadyLinked:
		note := "(linked)"
		if !insp.State.Healthy() {
			note = fmt.Sprintf("(existing link, %s)", insp.State)
		}
		fmt.Fprintf(r.out, "%s %s: %s %s\n",
			color.HiBlackString("•"), name, target, color.HiBlackString(note))
	case link.ActionRemoved:
		fmt.Fprintf(r.out, "%s Unlinked %s: %s\n", color.GreenString("✓"), color.GreenString(name), target)
	case link.ActionInspected:
		fmt.Fprintf(r.out, "%s: %s %s\n", name, stateColor(insp.State).Sprint(insp.State), target)
	}
}

// Warn prints a non-fatal problem.
func (r *TextReporter) Warn(err error) {
	fmt.Fprintf(r.errOut, "%s %s\n", color.YellowString("⚠"), Describe(err))
}

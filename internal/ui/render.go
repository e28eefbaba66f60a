package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/thoreinstein/pono/internal/link"
)

// statusDoc is the structured form of a status run.
type statusDoc struct {
	Entries   []statusEntry `json:"entries" yaml:"entries"`
	Unhealthy bool          `json:"unhealthy" yaml:"unhealthy"`
}

type statusEntry struct {
	Name        string        `json:"name" yaml:"name"`
	State       link.State    `json:"state" yaml:"state"`
	Source      string        `json:"source" yaml:"source"`
	Target      string        `json:"target" yaml:"target"`
	Destination string        `json:"destination,omitempty" yaml:"destination,omitempty"`
	Occupant    link.Occupant `json:"occupant,omitempty" yaml:"occupant,omitempty"`
}

// RenderEntries prints the declared entries in the order given.
func RenderEntries(w io.Writer, format Format, entries []link.Entry) error {
	if format.Structured() {
		if entries == nil {
			entries = []link.Entry{}
		}
		return encode(w, format, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries declared")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s: %s → %s\n", color.GreenString(e.Name), e.Source, e.Target)
	}
	return nil
}

// RenderStatus prints a status report. Text output is a table followed by
// one line per broken, mismatched or occupied target; the per-entry lines
// printed by TextReporter during the run are not repeated.
func RenderStatus(w io.Writer, format Format, report link.StatusReport) error {
	if format.Structured() {
		doc := statusDoc{Entries: make([]statusEntry, 0, len(report.Inspections)), Unhealthy: report.Unhealthy}
		for _, insp := range report.Inspections {
			doc.Entries = append(doc.Entries, statusEntry{
				Name:        insp.Entry.Name,
				State:       insp.State,
				Source:      insp.Source,
				Target:      insp.Target,
				Destination: insp.Destination,
				Occupant:    insp.Occupant,
			})
		}
		return encode(w, format, doc)
	}

	if len(report.Inspections) == 0 {
		fmt.Fprintln(w, "No entries selected")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATE\tTARGET\tDETAIL")
	for _, insp := range report.Inspections {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			insp.Entry.Name,
			stateColor(insp.State).Sprint(insp.State),
			insp.Target,
			detail(insp))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if report.Unhealthy {
		fmt.Fprintln(w)
		for _, insp := range report.Inspections {
			finding := insp.Finding()
			if finding == nil {
				continue
			}
			fmt.Fprintf(w, "%s %s\n", color.YellowString("⚠"), Describe(finding))
			if hint := Suggestion(finding); hint != "" {
				fmt.Fprintf(w, "  %s\n", hint)
			}
		}
		fmt.Fprintln(w, color.YellowString("Some entries need attention. Run: pono enable"))
	}
	return nil
}

func stateColor(s link.State) *color.Color {
	switch s {
	case link.LinkedCorrectly:
		return color.New(color.FgGreen)
	case link.Absent:
		return color.New(color.FgHiBlack)
	case link.OccupiedByOther:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

// detail describes what sits at the target beyond the state name.
func detail(insp link.Inspection) string {
	switch insp.State {
	case link.LinkedCorrectly:
		return "→ " + insp.Destination
	case link.LinkedMismatched:
		return "→ " + insp.Destination + " (expected " + insp.Source + ")"
	case link.BrokenLink:
		return "→ " + insp.Destination + " (missing)"
	case link.OccupiedByOther:
		return insp.Occupant.String() + " in the way"
	default:
		return "-"
	}
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/link"
	"github.com/thoreinstein/pono/internal/ui"
)

var (
	statusOutput      string
	statusInteractive bool
)

// errUnhealthy marks a status run with findings. The table already shows
// them, so it is not printed again.
var errUnhealthy = errors.New("some entries are not linked correctly")

func init() {
	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", "text", "output format: text, json, yaml")
	statusCmd.Flags().BoolVarP(&statusInteractive, "interactive", "i", false, "choose entries with a fuzzy finder")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status [name...]",
	Short: "Show the link state of entries",
	Long: `Show the link state of each selected entry without changing anything.

States:
  linked      the target links to a file matching the source
  mismatched  the target links somewhere else, or the source is gone
  broken      the target links to a path that does not exist
  occupied    a regular file or directory sits at the target
  absent      nothing exists at the target

Files are compared by size only.

Exit codes:
  0 - every selected entry is linked
  1 - at least one entry needs attention`,
	Example: `  # Status of every entry
  pono status

  # Status of some entries as JSON
  pono status zsh git -o json

See Also: pono enable, pono doctor`,
	ValidArgsFunction: completeEntryNames,
	RunE:              runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	format, err := ui.ParseFormat(statusOutput)
	if err != nil {
		return errors.NewUserError(err, "use --output text, json or yaml")
	}

	doc, err := loadDocument()
	if err != nil {
		return commandError(err)
	}
	entries, err := selectEntries(cmd, doc, args, statusInteractive)
	if err != nil {
		return err
	}

	// The table is rendered once the run is complete.
	r := newReconciler(cmd, link.NopReporter{})
	report, err := r.Status(entries)
	if err != nil {
		return commandError(err)
	}

	if !quiet || format.Structured() {
		if err := ui.RenderStatus(cmd.OutOrStdout(), format, report); err != nil {
			return err
		}
	}

	if report.Unhealthy {
		return errors.NewReportedError(errUnhealthy)
	}
	return nil
}

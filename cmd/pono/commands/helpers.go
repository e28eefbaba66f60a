package commands

import (
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/pono/internal/config"
	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/link"
	"github.com/thoreinstein/pono/internal/logging"
	"github.com/thoreinstein/pono/internal/ui"
)

// loadDocument resolves the link document path from --config, PONO_CONFIG
// or the settings file and loads it.
func loadDocument() (*config.Document, error) {
	path, err := config.DocumentPath()
	if err != nil {
		return nil, &link.Error{Kind: link.KindConfig, Path: viper.GetString(config.KeyConfig), Err: err}
	}
	return config.LoadDocument(path)
}

// selectEntries turns positional names, or the interactive picker, into
// the entries an operation processes. No names selects every entry.
func selectEntries(cmd *cobra.Command, doc *config.Document, args []string, interactive bool) ([]link.Entry, error) {
	var requested []string
	switch {
	case interactive:
		if len(args) > 0 {
			return nil, errors.NewUserError(errors.New("--interactive does not take entry names"), "")
		}
		picked, err := pickEntries(doc)
		if err != nil {
			return nil, err
		}
		requested = picked
	case len(args) > 0:
		requested = args
	}

	if unknown := link.Unknown(doc.Names(), requested); len(unknown) > 0 {
		logging.FromContext(cmd.Context()).Debug("ignoring undeclared entries", "names", unknown)
	}
	return doc.Entries(link.Select(doc.Names(), requested)), nil
}

// newReconciler wires the engine to the command's logger and reporter.
func newReconciler(cmd *cobra.Command, rep link.Reporter) *link.Reconciler {
	return link.NewReconciler(
		link.WithReporter(rep),
		link.WithLogger(logging.FromContext(cmd.Context())),
	)
}

// textReporter prints engine progress to the command's writers.
func textReporter(cmd *cobra.Command, opts ...ui.ReporterOption) *ui.TextReporter {
	opts = append([]ui.ReporterOption{ui.Quiet(quiet)}, opts...)
	return ui.NewTextReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts...)
}

// commandError gives engine errors exit code 1 and a suggestion. Other
// errors pass through and exit 2.
func commandError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	if _, ok := link.KindOf(err); ok {
		return errors.NewUserError(err, ui.Suggestion(err))
	}
	return err
}

// completeEntryNames completes declared entry names not already on the
// command line.
func completeEntryNames(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	doc, err := loadDocument()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, name := range doc.Names() {
		if !slices.Contains(args, name) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// HandleError prints err to w and returns the process exit code. Errors
// already shown to the user are not printed again.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return errors.ExitSuccess
	}

	var exitErr *errors.ExitError
	reported := errors.As(err, &exitErr) && exitErr.Reported
	if !reported {
		fmt.Fprintf(w, "%s %s\n", color.RedString("Error:"), ui.Describe(err))
		if exitErr != nil && exitErr.Suggestion != "" {
			fmt.Fprintf(w, "  %s\n", exitErr.Suggestion)
		}
	}
	return errors.ExitCode(err)
}

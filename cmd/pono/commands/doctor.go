package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/pono/internal/config"
	"github.com/thoreinstein/pono/internal/doctor"
	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/link"
	"github.com/thoreinstein/pono/internal/logging"
)

var (
	doctorJSON bool
	doctorAll  bool
	doctorFix  bool
)

// errDoctorErrors marks a doctor run with failed checks.
var errDoctorErrors = errors.New("doctor found errors")

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show every check, including passed ones")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"repair fixable issues such as unsafe file permissions")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the link document and links",
	Long: `Run diagnostic checks on pono's settings, the link document and the
declared links.

Checks:
  settings       the settings file parses and has known keys
  link-document  the link document exists and decodes
  permissions    pono's files are not writable by other users
  sources        every declared source exists
  targets        the link state of every entry

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --all       Show all checks including passed ones
  --json      Machine-readable JSON output

Exit codes:
  0 - No errors (warnings allowed)
  1 - Errors present`,
	Args:    cobra.NoArgs,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	if doctorJSON && doctorAll {
		return errors.NewUserError(errors.New("flags --json and --all are mutually exclusive"), "")
	}
	return nil
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	documentPath, err := config.DocumentPath()
	if err != nil {
		logger.Warn("cannot resolve link document path", "error", err)
	}

	docCheck := doctor.NewDocumentCheck(documentPath)

	runner := doctor.NewRunner(
		doctor.NewSettingsCheck(config.SettingsPath()),
		docCheck,
		doctor.NewPermissionCheck(documentPath, config.SettingsPath()),
		doctor.NewSourceCheck(docCheck, nil, nil),
		doctor.NewTargetCheck(docCheck, link.NewInspector(nil, nil, logger)),
	)

	report := runner.Run()

	var fixes []doctor.FixResult
	if doctorFix {
		fixes = runner.Fix()
	}

	if err := outputDoctorReport(cmd.OutOrStdout(), report, fixes); err != nil {
		return err
	}

	if report.HasErrors() {
		return errors.NewReportedError(errDoctorErrors)
	}
	return nil
}

func outputDoctorReport(w io.Writer, report *doctor.DoctorReport, fixes []doctor.FixResult) error {
	if doctorJSON {
		return outputDoctorJSON(w, report, fixes)
	}
	if quiet {
		return nil
	}
	return outputDoctorText(w, report, fixes)
}

func outputDoctorJSON(w io.Writer, report *doctor.DoctorReport, fixes []doctor.FixResult) error {
	out := struct {
		*doctor.DoctorReport
		Fixes []doctor.FixResult `json:"fixes,omitempty"`
	}{report, fixes}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "encoding JSON")
}

func outputDoctorText(w io.Writer, report *doctor.DoctorReport, fixes []doctor.FixResult) error {
	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !doctorAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	for _, fix := range fixes {
		hasOutput = true
		if fix.Fixed {
			fmt.Fprintf(w, "%s fixed %s: %s\n", color.GreenString("✓"), fix.Path, fix.Description)
		} else {
			fmt.Fprintf(w, "%s could not fix %s: %s\n", color.RedString("✗"), fix.Path, fix.Description)
		}
	}

	if hasOutput {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)

	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}

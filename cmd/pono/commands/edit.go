package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/pono/internal/config"
	"github.com/thoreinstein/pono/internal/editor"
	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/link"
	"github.com/thoreinstein/pono/internal/ui"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the link document in $EDITOR",
	Long: `Open the link document in your editor and check it once the editor
exits.

Uses $EDITOR, then $VISUAL, then nano, then vi.`,
	Example: `  # Edit the link document
  pono edit

  # With a specific editor
  EDITOR="code --wait" pono edit

See Also: pono init, pono doctor`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, _ []string) error {
	path, err := config.DocumentPath()
	if err != nil {
		return commandError(&link.Error{Kind: link.KindConfig, Path: path, Err: err})
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.NewUserError(errors.Newf("link document not found at %s", path), "Run: pono init")
	}

	if err := editor.Open(cmd.OutOrStdout(), path); err != nil {
		return errors.NewSystemError(err, "set $EDITOR to an installed editor")
	}

	if _, err := config.LoadDocument(path); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", color.YellowString("⚠"), ui.Describe(err))
		return nil
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Link document is valid\n", color.GreenString("✓"))
	}
	return nil
}

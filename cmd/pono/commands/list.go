package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/ui"
)

var listOutput string

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "text", "output format: text, json, yaml")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List declared entries",
	Long: `List the entries declared in the link document, sorted by name.

Paths are shown as written in the document, before "~" and environment
variables are expanded.`,
	Example: `  # List entries
  pono list

  # Machine-readable output
  pono list -o json

See Also: pono status`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	format, err := ui.ParseFormat(listOutput)
	if err != nil {
		return errors.NewUserError(err, "use --output text, json or yaml")
	}

	doc, err := loadDocument()
	if err != nil {
		return commandError(err)
	}

	return ui.RenderEntries(cmd.OutOrStdout(), format, doc.All())
}

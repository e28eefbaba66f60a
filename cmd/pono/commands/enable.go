package commands

import (
	"github.com/spf13/cobra"
)

var (
	enableInteractive  bool
	disableInteractive bool
)

func init() {
	enableCmd.Flags().BoolVarP(&enableInteractive, "interactive", "i", false, "choose entries with a fuzzy finder")
	disableCmd.Flags().BoolVarP(&disableInteractive, "interactive", "i", false, "choose entries with a fuzzy finder")
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}

var enableCmd = &cobra.Command{
	Use:     "enable [name...]",
	Aliases: []string{"link"},
	Short:   "Create symlinks for entries",
	Long: `Create a symlink at the target of each selected entry, pointing to its
source. Without names every entry is selected.

The whole selection is validated first. If any source is missing, or any
target is a regular file or directory, nothing is changed. Targets that
already are symlinks are left alone.`,
	Example: `  # Link everything
  pono enable

  # Link some entries
  pono enable zsh git

  # Pick entries interactively
  pono enable -i

See Also: pono disable, pono status`,
	ValidArgsFunction: completeEntryNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return commandError(err)
		}
		entries, err := selectEntries(cmd, doc, args, enableInteractive)
		if err != nil {
			return err
		}
		return commandError(newReconciler(cmd, textReporter(cmd)).Enable(entries))
	},
}

var disableCmd = &cobra.Command{
	Use:     "disable [name...]",
	Aliases: []string{"unlink"},
	Short:   "Remove the targets of entries",
	Long: `Remove the target of each selected entry. Without names every entry is
selected.

The whole selection is validated first; a missing source stops the run
before anything is removed. A regular file at the target is reported as a
warning and then removed as well. A target that does not exist stops the
run; targets removed before it stay removed.`,
	Example: `  # Unlink everything
  pono disable

  # Unlink one entry
  pono disable zsh

See Also: pono enable, pono status`,
	ValidArgsFunction: completeEntryNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return commandError(err)
		}
		entries, err := selectEntries(cmd, doc, args, disableInteractive)
		if err != nil {
			return err
		}
		return commandError(newReconciler(cmd, textReporter(cmd)).Disable(entries))
	},
}

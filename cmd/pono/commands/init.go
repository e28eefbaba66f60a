package commands

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/pono/internal/config"
	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/link"
	"github.com/thoreinstein/pono/internal/paths"
	"github.com/thoreinstein/pono/pkg/fileutil"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter link document",
	Long: `Write a commented link document with one example entry to the path
given by --config, PONO_CONFIG or the settings file (default: pono.toml in
the current directory).

An existing document is never overwritten.`,
	Example: `  # Create ./pono.toml
  pono init

  # Create the document somewhere else
  pono init -c ~/dotfiles/pono.toml

See Also: pono edit, pono doctor`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	path, err := config.DocumentPath()
	if err != nil {
		return commandError(&link.Error{Kind: link.KindConfig, Path: path, Err: err})
	}

	data, err := config.StarterDocument()
	if err != nil {
		return err
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating document directory"), "")
	}

	if err := fileutil.AtomicCreateFile(path, data, 0o644); err != nil {
		if errors.Is(err, errors.ErrAlreadyExists) {
			return errors.NewUserError(
				errors.Newf("link document already exists at %s", path),
				"Run: pono edit")
		}
		return errors.NewSystemError(err, "")
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Created link document: %s\n", color.GreenString("✓"), paths.ShortenHome(path))
	}
	return nil
}

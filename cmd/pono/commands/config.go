package commands

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/pono/internal/config"
	"github.com/thoreinstein/pono/internal/editor"
	"github.com/thoreinstein/pono/internal/errors"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pono settings",
	Long: `Manage pono settings stored in ~/.config/pono/settings.yaml.

Settings hold defaults only; the declared links live in the link document.
Without a subcommand, lists all settings.`,
	Example: `  # List all settings
  pono config

  # Point pono at a link document in your dotfiles repo
  pono config set config ~/dotfiles/pono.toml

See Also: pono init, pono doctor`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a setting",
	Long: `Print the effective value of a setting, including environment
overrides such as PONO_CONFIG.`,
	Example: `  # Get the link document path
  pono config get config

See Also: pono config set, pono config list`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSettingKeys,
	RunE:              runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Long: `Validate and store a setting in the settings file.

Known keys:
  config      path of the link document
  log_format  default log format: text or json`,
	Example: `  # Log as JSON by default
  pono config set log_format json

See Also: pono config get, pono config list`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeSettingKeys,
	RunE:              runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Long:  `List the effective settings in YAML format.`,
	Example: `  # List all settings
  pono config list

See Also: pono config get, pono config set`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.SettingsPath())
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the settings file in $EDITOR",
	Long: `Open the settings file in your editor.

If no settings file exists, one is written with the current defaults first.`,
	Example: `  # Open settings in the default editor
  pono config edit

See Also: pono config list, pono edit`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if err := knownSetting(key); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if err := config.ValidateSetting(key, value); err != nil {
		return errors.NewUserError(err, "Run: pono config set --help")
	}

	s, err := storedSettings()
	if err != nil {
		return errors.NewConfigError(err)
	}

	switch key {
	case config.KeyConfig:
		s.Config = value
	case config.KeyLogFormat:
		s.LogFormat = value
	}

	if err := config.Save(s); err != nil {
		return errors.NewSystemError(err, "")
	}
	viper.Set(key, value)

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	}
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	return writeSettings(cmd.OutOrStdout(), config.Current())
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := config.SettingsPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		s, err := storedSettings()
		if err != nil {
			return errors.NewConfigError(err)
		}
		if err := config.Save(s); err != nil {
			return errors.NewSystemError(err, "")
		}
	}

	if err := editor.Open(cmd.OutOrStdout(), path); err != nil {
		return errors.NewSystemError(err, "set $EDITOR to an installed editor")
	}
	return nil
}

// storedSettings reads the settings file without environment or flag
// overrides, so that saving does not persist them. Missing files and keys
// fall back to defaults.
func storedSettings() (*config.Settings, error) {
	s := config.Defaults()

	data, err := os.ReadFile(config.SettingsPath())
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading settings file")
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "parsing settings file")
	}
	return s, nil
}

func writeSettings(w io.Writer, s *config.Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "encoding settings")
	}
	return errors.Wrap(enc.Close(), "encoding settings")
}

func knownSetting(key string) error {
	if slices.Contains(config.Keys, key) {
		return nil
	}
	return errors.NewUserError(
		errors.Wrapf(config.ErrUnknownKey, "%q", key),
		"Run: pono config list")
}

func completeSettingKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys, cobra.ShellCompDirectiveNoFileComp
}

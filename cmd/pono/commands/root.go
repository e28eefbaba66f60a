// Package commands implements the CLI commands for pono.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/pono/cmd"
	"github.com/thoreinstein/pono/internal/config"
	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFile holds the path to the log file.
var logFile string

// logSink is the open --log-file, closed by Execute.
var logSink io.Closer

// settingsLoadErr holds any error that occurred during settings loading.
var settingsLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "",
		"link document (default: pono.toml, env: PONO_CONFIG)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().String("log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("pono version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	_ = viper.BindPFlag(config.KeyConfig, rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))

	_, settingsLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "pono",
	Short: "Manage dotfiles as named symlinks",
	Long: `pono keeps dotfiles in one place and links them where programs expect
them. A TOML link document names each entry with a source (the file in
your dotfiles) and a target (where the symlink goes):

  [ponos.zsh]
  source = "~/dotfiles/zshrc"
  target = "~/.zshrc"

enable and disable validate the whole batch before touching anything, so
a typo in one entry never leaves the others half applied.`,
	Example: `  # Create a starter link document
  pono init

  # Link everything
  pono enable

  # See what is linked
  pono status

  # Unlink one entry
  pono disable zsh

  See Also: pono doctor, pono config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkSettings(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("PONO_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format, err := logging.ParseFormat(viper.GetString(config.KeyLogFormat))
	if err != nil {
		return errors.NewUserError(err, "use --log-format text or json")
	}

	cfg := logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewSystemError(errors.Wrap(err, "opening log file"), "check the --log-file path")
		}
		logSink = f
		// File output uses JSON format
		cfg.File = f
	}

	logger := logging.New(cfg)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkSettings reports a broken settings file for every command except
// the ones needed to repair it.
func checkSettings(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "edit", "path", "doctor":
		return nil
	}
	if settingsLoadErr != nil {
		return errors.NewConfigError(settingsLoadErr)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if logSink != nil {
			logSink.Close()
			logSink = nil
		}
	}()
	return rootCmd.Execute()
}

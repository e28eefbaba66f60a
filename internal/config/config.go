package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/pono/internal/errors"
	"github.com/thoreinstein/pono/internal/paths"
	"github.com/thoreinstein/pono/pkg/fileutil"
)

// EnvPrefix is the prefix of environment variables read by Viper.
const EnvPrefix = "PONO"

// Setting keys.
const (
	// KeyConfig is the path of the link document.
	KeyConfig = "config"
	// KeyLogFormat is the default log format: text or json.
	KeyLogFormat = "log_format"
)

// Keys lists every known setting key in display order.
var Keys = []string{KeyConfig, KeyLogFormat}

// Settings represents the tool settings file.
type Settings struct {
	Config    string `mapstructure:"config" yaml:"config"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Init initializes Viper with default settings.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName(paths.SettingsFile)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.SettingsDir())

	// PONO_CONFIG, PONO_LOG_FORMAT
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	d := Defaults()
	viper.SetDefault(KeyConfig, d.Config)
	viper.SetDefault(KeyLogFormat, d.LogFormat)
}

// Defaults returns the settings used when neither the settings file nor the
// environment set a key.
func Defaults() *Settings {
	return &Settings{Config: paths.DefaultDocument, LogFormat: "text"}
}

// Load reads the settings file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches the default location and falls back to
// defaults when no file exists.
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			if path != "" {
				return nil, errors.Wrapf(err, "settings file not found at %s", path)
			}
		case path != "" && errors.Is(err, os.ErrNotExist):
			return nil, errors.Wrapf(err, "settings file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}
	return &s, nil
}

// Current returns the effective settings from Viper, including environment
// overrides and bound flags.
func Current() *Settings {
	return &Settings{
		Config:    viper.GetString(KeyConfig),
		LogFormat: viper.GetString(KeyLogFormat),
	}
}

// SettingsPath returns the location of the settings file.
func SettingsPath() string {
	return filepath.Join(paths.SettingsDir(), paths.SettingsFile+".yaml")
}

// Save writes s to the settings file, creating the settings directory when
// needed.
func Save(s *Settings) error {
	if err := paths.EnsureDir(paths.SettingsDir(), 0); err != nil {
		return errors.Wrap(err, "creating settings directory")
	}
	if err := fileutil.AtomicWriteYAMLWithPerm(SettingsPath(), s, 0o600); err != nil {
		return errors.Wrap(err, "writing settings file")
	}
	return nil
}

// DocumentPath returns the link document path with "~" and environment
// variables expanded.
func DocumentPath() (string, error) {
	return paths.Resolve(viper.GetString(KeyConfig))
}

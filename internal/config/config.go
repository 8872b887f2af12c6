// Package config handles the XDG configuration directory, the optional
// config file and the location of the task file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigName is the config file base name (config.yaml).
	ConfigName = "config"

	// DefaultDataFile is the task file used when nothing else is configured.
	DefaultDataFile = "todo.txt"

	// EnvPrefix prefixes environment overrides, e.g. TODO_DATA_FILE.
	EnvPrefix = "TODO"
)

// Config keys.
const (
	KeyDataFile        = "data_file"
	KeySkipMalformed   = "skip_malformed"
	KeyCreateIfMissing = "create_if_missing"
	KeyLogLevel        = "log_level"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// DataFile is the path of the task file.
	DataFile string

	// SkipMalformed makes loading skip undecodable lines instead of failing.
	SkipMalformed bool

	// CreateIfMissing creates an empty task file before the first load.
	CreateIfMissing bool

	// LogLevel is the diagnostic log level (debug, info, warn, error).
	LogLevel string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
// Values come from defaults, then <dir>/config.yaml if present, then
// TODO_* environment variables.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return &Config{
		Dir:             dir,
		DataFile:        v.GetString(KeyDataFile),
		SkipMalformed:   v.GetBool(KeySkipMalformed),
		CreateIfMissing: v.GetBool(KeyCreateIfMissing),
		LogLevel:        v.GetString(KeyLogLevel),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataFile, DefaultDataFile)
	v.SetDefault(KeySkipMalformed, false)
	v.SetDefault(KeyCreateIfMissing, true)
	v.SetDefault(KeyLogLevel, "warn")
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigName+".yaml")
}

// Level returns the effective log level; Debug wins over LogLevel.
func (c *Config) Level() string {
	if c.Debug {
		return "debug"
	}
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// EnsureDataFile creates an empty task file (and its parent directory) when
// CreateIfMissing is set and the file does not exist yet.
func (c *Config) EnsureDataFile(fs afero.Fs) error {
	if !c.CreateIfMissing {
		return nil
	}
	exists, err := afero.Exists(fs, c.DataFile)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if dir := filepath.Dir(c.DataFile); dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return afero.WriteFile(fs, c.DataFile, nil, 0600)
}

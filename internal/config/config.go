// Package config loads statsrange settings from defaults, an optional
// YAML file and STATSRANGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/chrisedwards/statsrange/internal/daterange"
)

const (
	appName    = "statsrange"
	envPrefix  = "STATSRANGE"
	configType = "yaml"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Config holds application configuration loaded from YAML.
type Config struct {
	// Timezone is the viewer's IANA timezone. Empty defers to $TZ and then
	// the host timezone.
	Timezone  string `yaml:"timezone" mapstructure:"timezone"`
	LogLevel  string `yaml:"log_level" mapstructure:"log_level"`
	LogFormat string `yaml:"log_format" mapstructure:"log_format"`
	CachePath string `yaml:"cache_path,omitempty" mapstructure:"cache_path"`

	configFile string
}

// DefaultConfigPath returns ~/.config/statsrange/statsrange.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	path := filepath.Join(home, ".config", appName, appName+"."+configType)
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// Load reads configuration. An explicit path must exist; with an empty
// path the default location is tried and silently skipped if missing.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType(configType)
	v.SetDefault("timezone", "")
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("cache_path", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(appName)
		v.AddConfigPath(filepath.Dir(DefaultConfigPath()))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.configFile = v.ConfigFileUsed()
	return cfg, nil
}

// ConfigFile returns the file Load read, or "" if only defaults and
// environment were used.
func (c *Config) ConfigFile() string {
	return c.configFile
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the timezone and log settings. Empty values are
// accepted and mean the defaults.
func (c *Config) Validate() error {
	if c.Timezone != "" {
		if _, err := daterange.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone: %w", err)
		}
	}
	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q: want debug, info, warn or error", c.LogLevel)
	}
	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log_format %q: want text or json", c.LogFormat)
	}
	return nil
}

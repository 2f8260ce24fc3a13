package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the top-level zenscore configuration.
type Config struct {
	DataDir         string          `mapstructure:"data_dir"`
	Timezone        string          `mapstructure:"timezone"`
	Acquisition     Acquisition     `mapstructure:"acquisition"`
	Recommendations Recommendations `mapstructure:"recommendations"`
	Output          Output          `mapstructure:"output"`
}

// Acquisition configures how raw samples become daily snapshots.
type Acquisition struct {
	Workers    int     `mapstructure:"workers"`
	StepWeight float64 `mapstructure:"step_weight"`
}

// Recommendations configures the recommendation engine.
type Recommendations struct {
	Limit int `mapstructure:"limit"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. ZENSCORE_* environment
// variables override file values.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("timezone", DefaultTimezone)
	v.SetDefault("acquisition.workers", DefaultAcquisition.Workers)
	v.SetDefault("acquisition.step_weight", DefaultAcquisition.StepWeight)
	v.SetDefault("recommendations.limit", DefaultRecommendations.Limit)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)

	return &cfg, nil
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	switch {
	case c.Acquisition.Workers <= 0:
		return fmt.Errorf("acquisition.workers must be positive, got %d: %w", c.Acquisition.Workers, ErrInvalidConfig)
	case c.Acquisition.StepWeight < 0:
		return fmt.Errorf("acquisition.step_weight must not be negative, got %v: %w", c.Acquisition.StepWeight, ErrInvalidConfig)
	case c.Recommendations.Limit < 1 || c.Recommendations.Limit > 6:
		return fmt.Errorf("recommendations.limit must be 1-6, got %d: %w", c.Recommendations.Limit, ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("timezone %q: %v: %w", c.Timezone, err, ErrInvalidConfig)
	}
	return nil
}

// Location resolves the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == DefaultTimezone {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// DBPath returns the full path to the SQLite database.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}

// Package config provides configuration loading and defaults for zenscore.
package config

// DefaultConfigDir is the default location for zenscore configuration.
const DefaultConfigDir = "~/.config/zenscore"

// DefaultDataDir is where the SQLite database lives unless data_dir is set.
const DefaultDataDir = DefaultConfigDir

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "zenscore.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultTimezone selects the system's local zone.
const DefaultTimezone = "Local"

// EnvPrefix namespaces environment overrides, e.g. ZENSCORE_TIMEZONE.
const EnvPrefix = "ZENSCORE"

// DefaultAcquisition holds the default collector settings.
var DefaultAcquisition = Acquisition{
	Workers:    8,
	StepWeight: 0.02,
}

// DefaultRecommendations holds the default recommendation settings.
var DefaultRecommendations = Recommendations{
	Limit: 6,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

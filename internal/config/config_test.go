package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Acquisition.Workers != 8 {
		t.Errorf("workers = %d, want 8", cfg.Acquisition.Workers)
	}
	if cfg.Acquisition.StepWeight != 0.02 {
		t.Errorf("step_weight = %v, want 0.02", cfg.Acquisition.StepWeight)
	}
	if cfg.Recommendations.Limit != 6 {
		t.Errorf("limit = %d, want 6", cfg.Recommendations.Limit)
	}
	if !cfg.Output.Color || cfg.Output.Width != 80 {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Timezone != DefaultTimezone {
		t.Errorf("timezone = %q", cfg.Timezone)
	}
	if filepath.Base(cfg.DBPath()) != DefaultDBName {
		t.Errorf("DBPath = %q", cfg.DBPath())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`data_dir: ` + dir + `
timezone: Europe/Berlin
acquisition:
  workers: 2
  step_weight: 0.05
recommendations:
  limit: 3
output:
  color: false
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Acquisition.Workers != 2 || cfg.Acquisition.StepWeight != 0.05 {
		t.Errorf("acquisition = %+v", cfg.Acquisition)
	}
	if cfg.Recommendations.Limit != 3 {
		t.Errorf("limit = %d", cfg.Recommendations.Limit)
	}
	if cfg.Output.Color {
		t.Error("color should be false")
	}
	if cfg.Output.Width != 80 {
		t.Errorf("unset width should keep default, got %d", cfg.Output.Width)
	}
	if cfg.DBPath() != filepath.Join(dir, DefaultDBName) {
		t.Errorf("DBPath = %q", cfg.DBPath())
	}

	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc.String() != "Europe/Berlin" {
		t.Errorf("location = %s", loc)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ZENSCORE_ACQUISITION_WORKERS", "3")
	t.Setenv("ZENSCORE_TIMEZONE", "UTC")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Acquisition.Workers != 3 {
		t.Errorf("workers = %d, want 3", cfg.Acquisition.Workers)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("timezone = %q, want UTC", cfg.Timezone)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Recommendations.Limit != 6 {
		t.Errorf("limit = %d", cfg.Recommendations.Limit)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Timezone:        "UTC",
			Acquisition:     DefaultAcquisition,
			Recommendations: DefaultRecommendations,
			Output:          DefaultOutput,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero workers", func(c *Config) { c.Acquisition.Workers = 0 }},
		{"negative step weight", func(c *Config) { c.Acquisition.StepWeight = -0.1 }},
		{"limit zero", func(c *Config) { c.Recommendations.Limit = 0 }},
		{"limit seven", func(c *Config) { c.Recommendations.Limit = 7 }},
		{"unknown zone", func(c *Config) { c.Timezone = "Mars/Olympus_Mons" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}

	cfg := valid()
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	loc, _ := cfg.Location()
	if loc != time.UTC {
		t.Errorf("UTC location = %v", loc)
	}
}

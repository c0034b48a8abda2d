// Package config loads vennsheet settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/vennsheet/pkg/vennsheet"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/export"
	"github.com/ukaji3/vennsheet/pkg/vennsheet/models"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "vennsheet.yaml"

// ErrInvalidConfig indicates a configuration value outside its valid range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Style  models.Style `yaml:"style"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig configures exports.
type OutputConfig struct {
	DirName  string  `yaml:"dir_name"`
	DPI      float64 `yaml:"dpi"`
	Combined *bool   `yaml:"combined,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := vennsheet.DefaultOptions()
	return &Config{
		Style: models.DefaultStyle(),
		Output: OutputConfig{
			DirName: opts.OutputDirName,
			DPI:     opts.DPI,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Style.Validate(); err != nil {
		return err
	}
	if !export.ValidDirName(c.Output.DirName) {
		return fmt.Errorf("%w: output dir_name %q must be a single path element", ErrInvalidConfig, c.Output.DirName)
	}
	if !(c.Output.DPI > 0) {
		return fmt.Errorf("%w: output dpi %v must be positive", ErrInvalidConfig, c.Output.DPI)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// Options converts the output section into export options.
func (c *Config) Options() vennsheet.Options {
	return vennsheet.Options{
		OutputDirName: c.Output.DirName,
		DPI:           c.Output.DPI,
		WriteCombined: c.Output.Combined,
	}
}

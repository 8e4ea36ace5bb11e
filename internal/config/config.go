// Package config loads the curvefit command-line configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/curvefit/format"
	"github.com/arloliu/curvefit/regression"
)

// Config mirrors the YAML configuration file. Every field has a default, so a
// file only needs the keys it changes.
type Config struct {
	// OutputDir is where reports go when no output path is given.
	OutputDir string `yaml:"output_dir"`
	// Format is the report format: text, json or yaml.
	Format string `yaml:"format"`
	// Precision is the number of decimals in the model formula.
	Precision int `yaml:"precision"`
	// Strict selects the line-oriented dataset parser.
	Strict bool `yaml:"strict"`
	// MaxSamples limits the dataset size; 0 means unlimited.
	MaxSamples int `yaml:"max_samples"`
	// Jobs is the number of datasets fitted concurrently by batch.
	Jobs int `yaml:"jobs"`

	Log  LogConfig  `yaml:"log"`
	Plot PlotConfig `yaml:"plot"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// PlotConfig configures rendered charts. Sizes are in inches.
type PlotConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Title  string  `yaml:"title"`
	XLabel string  `yaml:"x_label"`
	YLabel string  `yaml:"y_label"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir:  "output",
		Format:     "text",
		Precision:  regression.DefaultFormulaPrecision,
		MaxSamples: 0,
		Jobs:       4,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Plot: PlotConfig{
			Width:  10,
			Height: 5,
			XLabel: "x",
			YLabel: "y",
		},
	}
}

// Load reads the configuration at path on top of Default.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML data on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	var errs []error

	if _, ok := format.ParseReportFormat(c.Format); !ok {
		errs = append(errs, fmt.Errorf("format: unknown report format %q", c.Format))
	}
	if c.Precision < 0 || c.Precision > regression.MaxFormulaPrecision {
		errs = append(errs, fmt.Errorf("precision: %d out of range [0, %d]", c.Precision, regression.MaxFormulaPrecision))
	}
	if c.MaxSamples < 0 {
		errs = append(errs, fmt.Errorf("max_samples: must not be negative, got %d", c.MaxSamples))
	}
	if c.Jobs < 1 {
		errs = append(errs, fmt.Errorf("jobs: must be at least 1, got %d", c.Jobs))
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: must be text or json, got %q", c.Log.Format))
	}
	if !(c.Plot.Width > 0) || !(c.Plot.Height > 0) {
		errs = append(errs, fmt.Errorf("plot: width and height must be positive, got %gx%g", c.Plot.Width, c.Plot.Height))
	}

	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

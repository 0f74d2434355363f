// Package config provides configuration loading for the mnist command.
//
// Configuration is read from a single YAML file named by the --config flag
// or, when the flag is absent, the MNIST_CONFIG environment variable. There
// is no automatic discovery. Without either, built-in defaults apply.
// Command-line flags that are set explicitly override file values.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/mnist/internal/idx"
	"github.com/born-ml/mnist/internal/plot"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "MNIST_CONFIG"

// PlotAuto selects the terminal plotter when stdout is a terminal and no
// plotter otherwise.
const PlotAuto = "auto"

// Config is the configuration for the mnist command.
type Config struct {
	// DataDir holds the four canonical IDX files.
	DataDir string `yaml:"data_dir"`

	// Dataset is the split to inspect: train or test.
	Dataset string `yaml:"dataset"`

	// ImageNumber is the index of the image to show.
	ImageNumber int `yaml:"image_number"`

	// Image configures the accepted image resolution.
	Image ImageConfig `yaml:"image"`

	// Load configures how the dataset files are read.
	Load LoadConfig `yaml:"load"`

	// Plot selects the visualization backend: none, terminal, gnuplot or auto.
	Plot string `yaml:"plot"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// ImageConfig configures the decoder resolution.
type ImageConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoadConfig configures dataset loading.
type LoadConfig struct {
	Parallel  bool `yaml:"parallel"`
	MemoryMap bool `yaml:"memory_map"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir: "data",
		Dataset: string(idx.Train),
		Image: ImageConfig{
			Width:  idx.DefaultWidth,
			Height: idx.DefaultHeight,
		},
		Plot:     plot.BackendNone,
		LogLevel: "info",
	}
}

// Resolve loads the file named by path, or by MNIST_CONFIG when path is
// empty. With neither set it returns Default().
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path on top of the
// defaults. ${VAR} references in data_dir are expanded.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	//nolint:gosec // G304: config path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.DataDir = os.ExpandEnv(cfg.DataDir)
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir is required"))
	}
	if _, err := idx.ParseSplit(c.Dataset); err != nil {
		errs = append(errs, fmt.Errorf("dataset: %w", err))
	}
	if c.ImageNumber < 0 {
		errs = append(errs, fmt.Errorf("image_number must be >= 0 (got %d)", c.ImageNumber))
	}
	if err := idx.ValidateDimensions(c.Image.Width, c.Image.Height); err != nil {
		errs = append(errs, fmt.Errorf("image: %w", err))
	}
	if c.Plot != PlotAuto && !plot.ValidBackend(c.Plot) {
		errs = append(errs, fmt.Errorf("plot must be one of: %v or %s (got %q)", plot.Backends, PlotAuto, c.Plot))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Decoder returns an image decoder for the configured resolution.
func (c *Config) Decoder() *idx.Decoder {
	return &idx.Decoder{Width: c.Image.Width, Height: c.Image.Height}
}

// LoadOptions returns dataset load options for this configuration.
func (c *Config) LoadOptions(logger *slog.Logger) idx.Options {
	return idx.Options{
		Decoder:   c.Decoder(),
		Parallel:  c.Load.Parallel,
		MemoryMap: c.Load.MemoryMap,
		Logger:    logger,
	}
}

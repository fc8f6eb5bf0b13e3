/*
Package config loads the listdemo configuration file.
*/
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"

	"github.com/mgnsk/listdemo/internal/roster"
)

// ErrInvalidConfig indicates a configuration value is missing or invalid.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the listdemo configuration.
type Config struct {
	Input    string `yaml:"input"`
	Major    string `yaml:"major"`
	LogLevel string `yaml:"logLevel"`
	Rank     bool   `yaml:"rank"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Major:    roster.DefaultMajor,
		LogLevel: "info",
	}
}

// Load reads the configuration at path on top of the defaults.
// Environment variables in the file are expanded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.UnmarshalStrict([]byte(os.ExpandEnv(string(data))), config); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	return config, nil
}

// Level returns the parsed log level.
func (c *Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return level, nil
}

// Validate checks that the configuration can be run.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input file is required", ErrInvalidConfig)
	}

	if c.Major == "" {
		return fmt.Errorf("%w: major is required", ErrInvalidConfig)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Package config handles meshtool configuration loading and management.
package config

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/vrmlmesh/internal/logger"
	"github.com/Faultbox/vrmlmesh/pkg/vrml"
)

// Config holds all meshtool settings.
type Config struct {
	Reader  ReaderConfig  `yaml:"reader"`
	Writer  WriterConfig  `yaml:"writer"`
	Logging LoggingConfig `yaml:"logging"`

	// Source is the file the config was loaded from, empty for defaults.
	Source string `yaml:"-"`
}

// ReaderConfig holds scene file reader settings.
type ReaderConfig struct {
	Strict  bool   `yaml:"strict"`  // Reject non-triangular faces and mismatched attributes
	Normals string `yaml:"normals"` // "recompute" or "keep"
}

// WriterConfig holds scene file writer settings.
type WriterConfig struct {
	Normals bool `yaml:"normals"` // Write vertex normals when available
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Reader: ReaderConfig{
			Strict:  false,
			Normals: vrml.NormalsRecompute.String(),
		},
		Writer: WriterConfig{
			Normals: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that cannot be expressed by the YAML types.
func (c *Config) Validate() error {
	if _, err := vrml.ParseNormalPolicy(c.Reader.Normals); err != nil {
		return fmt.Errorf("reader.normals: %w", err)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// ReaderOptions converts the reader section into vrml reader options.
func (c *Config) ReaderOptions(log *zap.Logger) (vrml.Options, error) {
	policy, err := vrml.ParseNormalPolicy(c.Reader.Normals)
	if err != nil {
		return vrml.Options{}, err
	}

	opts := vrml.DefaultOptions()
	opts.Strict = c.Reader.Strict
	opts.Normals = policy
	if log != nil {
		opts.Logger = log
	}
	return opts, nil
}

// WriterOptions converts the writer section into vrml writer options.
func (c *Config) WriterOptions() vrml.WriteOptions {
	return vrml.WriteOptions{Normals: c.Writer.Normals}
}

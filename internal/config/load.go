package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding a config file path. It
// is consulted when no -config flag is given.
const EnvConfig = "MESHTOOL_CONFIG"

// fileName is the config file name looked up in the search directories.
const fileName = "meshtool.yaml"

// Load builds the effective configuration. Later sources override earlier
// ones: defaults, the config file, then command-line flags. The file is the
// -config flag, else $MESHTOOL_CONFIG, else the first file found by
// searchPaths. A file named explicitly must exist.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		cfg.Source = path
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		if cfg.Source != "" {
			return nil, fmt.Errorf("invalid config %s: %w", cfg.Source, err)
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// searchPaths lists the implicit config file locations, most specific first:
// the working directory, its hidden variant, then the user config directory.
func searchPaths() []string {
	return []string{
		fileName,
		"." + fileName,
		filepath.Join(ConfigDir(), fileName),
	}
}

// findConfigFile returns the first regular file among searchPaths, or "".
func findConfigFile() string {
	for _, path := range searchPaths() {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user meshtool config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Meshtool")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Meshtool")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "meshtool")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "meshtool")
	}
}

// loadFromFile merges the YAML file at path into cfg. Unknown keys are
// rejected so that a misspelled option does not silently keep its default.
// An empty file changes nothing.
func loadFromFile(cfg *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Package config loads the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the host-supplied settings the core is parameterized by.
type Config struct {
	// DataFile is the path of the journal document.
	DataFile string `yaml:"data_file"`

	// ExportDir is where CSV exports are written.
	ExportDir string `yaml:"export_dir"`

	// Log configures the logger.
	Log LogConfig `yaml:"log"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// JSON switches from console to JSON encoding.
	JSON bool `yaml:"json"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataFile:  filepath.Join(home, ".health-journal", "journal.json"),
		ExportDir: filepath.Join(home, "Downloads"),
		Log:       LogConfig{Level: "warn"},
	}
}

// Load reads a YAML config file and overlays it on the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(b, &file); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if file.DataFile != "" {
		cfg.DataFile = file.DataFile
	}
	if file.ExportDir != "" {
		cfg.ExportDir = file.ExportDir
	}
	if file.Log.Level != "" {
		cfg.Log.Level = file.Log.Level
	}
	cfg.Log.JSON = file.Log.JSON

	return cfg, nil
}

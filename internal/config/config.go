// Package config loads GreenPrint configuration with the precedence
// CLI flag > environment variable > config file > built-in default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variable overrides.
const (
	EnvLogLevel      = "GREENPRINT_LOG_LEVEL"
	EnvLogFormat     = "GREENPRINT_LOG_FORMAT"
	EnvFactorsPath   = "GREENPRINT_FACTORS"
	EnvBaselinesPath = "GREENPRINT_BASELINES"
)

// configDirName is the per-user configuration directory under $HOME.
const configDirName = ".greenprint"

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the zerolog level string. Default "info".
	Level string `yaml:"level"`

	// Format is "console" or "json". Default "console".
	Format string `yaml:"format"`
}

// DataConfig points at alternative reference datasets. Empty paths mean
// the embedded defaults.
type DataConfig struct {
	// Factors is the path to an activity×country factor CSV.
	Factors string `yaml:"factors"`

	// Baselines is the path to a per-capita baseline CSV.
	Baselines string `yaml:"baselines"`
}

// Config is the full GreenPrint configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Data    DataConfig    `yaml:"data"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Path returns the default config file location
// ($HOME/.greenprint/config.yaml), or "" when no home directory can be
// resolved.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "config.yaml")
}

// Load reads the config file at path (the default location when path is
// empty) and applies environment overrides. A missing file is not an
// error — defaults apply — but a malformed file is, so a typo never
// silently reverts behavior to defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = Path()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Defaults apply.
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvFactorsPath); v != "" {
		c.Data.Factors = v
	}
	if v := os.Getenv(EnvBaselinesPath); v != "" {
		c.Data.Baselines = v
	}
}

// UsesEmbeddedData reports whether the built-in datasets are in use.
func (c *Config) UsesEmbeddedData() bool {
	return c.Data.Factors == "" && c.Data.Baselines == ""
}

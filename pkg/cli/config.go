// Package cli provides CLI-specific logic including configuration loading.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the .clausecheck.yml configuration file.
type Config struct {
	Version     string            `yaml:"version"`
	Thresholds  ThresholdConfig   `yaml:"thresholds"`
	Calibration CalibrationConfig `yaml:"calibration"`
	Output      OutputConfig      `yaml:"output"`
}

// ThresholdConfig holds the contract rating thresholds on the normalized
// 0-100 risk score. Higher score means riskier.
type ThresholdConfig struct {
	Red    float64 `yaml:"red"`
	Yellow float64 `yaml:"yellow"`
}

// CalibrationConfig toggles contextual confidence calibration.
type CalibrationConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// IsEnabled reports whether calibration is enabled. True by default.
func (c CalibrationConfig) IsEnabled() bool {
	if c.Enabled == nil {
		return true
	}
	return *c.Enabled
}

// OutputConfig controls report output settings.
type OutputConfig struct {
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

// LoadConfig reads and parses a .clausecheck.yml configuration file.
// If path is empty, it looks for .clausecheck.yml in the current directory.
// If the default config file is not found, sensible defaults are returned.
// If an explicitly specified config file is not found, an error is returned.
func LoadConfig(path string) (*Config, error) {
	useDefault := path == ""
	if useDefault {
		path = ".clausecheck.yml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && useDefault {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cli: reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults matching the
// documented .clausecheck.yml schema.
func DefaultConfig() *Config {
	cfg := &Config{Version: "1"}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Thresholds.Red == 0 {
		cfg.Thresholds.Red = 60
	}
	if cfg.Thresholds.Yellow == 0 {
		cfg.Thresholds.Yellow = 30
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "terminal"
	}
}

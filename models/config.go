// Package models defines data structures shared by the verifier packages.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSourcesGlob = "files/pg*"
	DefaultResultsGlob = "files/reduce*"
)

// VerifyConfig holds runtime configuration for a verification run.
// Values come from an optional YAML file; CLI flags override them.
type VerifyConfig struct {
	Sources        string `yaml:"sources"`
	Results        string `yaml:"results"`
	SourceFormat   string `yaml:"source_format,omitempty"`
	Strict         bool   `yaml:"strict,omitempty"`
	Report         string `yaml:"report,omitempty"`
	DetectLanguage bool   `yaml:"detect_language,omitempty"`
	Record         bool   `yaml:"record,omitempty"`
	DBPath         string `yaml:"db_path,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *VerifyConfig {
	return &VerifyConfig{
		Sources: DefaultSourcesGlob,
		Results: DefaultResultsGlob,
	}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their defaults.
func LoadConfig(path string) (*VerifyConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if config.Sources == "" {
		config.Sources = DefaultSourcesGlob
	}
	if config.Results == "" {
		config.Results = DefaultResultsGlob
	}

	return config, nil
}

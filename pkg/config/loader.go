package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFile represents the YAML configuration file structure
type ConfigFile struct {
	Rules struct {
		Dir             string `yaml:"dir"`
		StrictRoundTrip bool   `yaml:"strict_round_trip"`
	} `yaml:"rules"`

	Tests struct {
		Dir string `yaml:"dir"`
	} `yaml:"tests"`

	Logging struct {
		TerminalEnabled bool   `yaml:"terminal_enabled"`
		TerminalLevel   string `yaml:"terminal_level"`
		FilePath        string `yaml:"file_path"`
		FileFormat      string `yaml:"file_format"`
	} `yaml:"logging"`
}

// LoadConfigFile loads a YAML configuration file
func LoadConfigFile(filePath string) (*ConfigFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ConfigFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// SaveConfigFile saves a configuration to a YAML file
func SaveConfigFile(filePath string, cfg *ConfigFile) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Package config provides configuration loading and management for Blueprint.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete Blueprint configuration
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Output     OutputConfig     `yaml:"output"`
}

// GenerationConfig configures pipeline defaults applied when a request
// leaves a field unset
type GenerationConfig struct {
	// TargetLanguage selects the pseudocode and scaffold templates
	TargetLanguage string `yaml:"target_language"`
	// DeploymentTarget selects the deployment stage templates
	DeploymentTarget string `yaml:"deployment_target"`
	// RepositoryPlatform selects the CI config templates
	RepositoryPlatform string `yaml:"repository_platform"`
	// TeamSize feeds sprint capacity (people)
	TeamSize int `yaml:"team_size"`
	// SprintWeeks is the sprint length in weeks
	SprintWeeks int `yaml:"sprint_weeks"`
}

// CatalogConfig configures the domain catalog
type CatalogConfig struct {
	// OverlayDir holds extra domain profiles layered over the embedded set
	OverlayDir string `yaml:"overlay_dir"`
}

// OutputConfig configures where generated documents land
type OutputConfig struct {
	// Dir is the directory generated Markdown files are written to
	Dir string `yaml:"dir"`
	// Preview renders documents to the terminal instead of writing files
	Preview bool `yaml:"preview"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			TargetLanguage:     "python",
			DeploymentTarget:   "kubernetes",
			RepositoryPlatform: "github",
			TeamSize:           4,
			SprintWeeks:        2,
		},
		Catalog: CatalogConfig{
			OverlayDir: "",
		},
		Output: OutputConfig{
			Dir:     "blueprint-docs",
			Preview: false,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Generation.TargetLanguage == "" {
		return fmt.Errorf("generation.target_language is required")
	}
	if c.Generation.TeamSize < 1 {
		return fmt.Errorf("generation.team_size must be at least 1")
	}
	if c.Generation.SprintWeeks < 1 {
		return fmt.Errorf("generation.sprint_weeks must be at least 1")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Generation
	if other.Generation.TargetLanguage != "" {
		c.Generation.TargetLanguage = other.Generation.TargetLanguage
	}
	if other.Generation.DeploymentTarget != "" {
		c.Generation.DeploymentTarget = other.Generation.DeploymentTarget
	}
	if other.Generation.RepositoryPlatform != "" {
		c.Generation.RepositoryPlatform = other.Generation.RepositoryPlatform
	}
	if other.Generation.TeamSize != 0 {
		c.Generation.TeamSize = other.Generation.TeamSize
	}
	if other.Generation.SprintWeeks != 0 {
		c.Generation.SprintWeeks = other.Generation.SprintWeeks
	}

	// Catalog
	if other.Catalog.OverlayDir != "" {
		c.Catalog.OverlayDir = other.Catalog.OverlayDir
	}

	// Output
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}
	if other.Output.Preview {
		c.Output.Preview = true
	}
}

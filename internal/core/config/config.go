// Package config handles configuration loading and validation for redline.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/redlinehq/redline/internal/core/document"
)

// Config holds the application configuration.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Edit       EditConfig       `yaml:"edit"`
	Theme      string           `yaml:"theme"`
}

// GenerationConfig controls the text-generation client.
type GenerationConfig struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
}

// EditConfig controls the editing workflow.
type EditConfig struct {
	// MaxAttempts bounds the reject/refine loop per passage. 0 means
	// unlimited, matching the original behavior.
	MaxAttempts int `yaml:"max_attempts"`
	// StalePassage selects the commit behavior when the accepted passage is
	// no longer present in the document: "ignore" (silent no-op) or "error".
	StalePassage document.StalePolicy `yaml:"stale_passage"`
	// MinExcerptLen is the minimum length for a literal passage selector.
	MinExcerptLen int `yaml:"min_excerpt_len"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Generation: GenerationConfig{
			Model:       "gemini-2.0-flash-exp",
			Temperature: 0.3,
		},
		Edit: EditConfig{
			MaxAttempts:   0,
			StalePassage:  document.StaleIgnore,
			MinExcerptLen: document.DefaultMinExcerptLen,
		},
		Theme: "tokyo-night",
	}
}

// Load reads configuration from the given path and validates the result.
// A missing file is not an error; defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

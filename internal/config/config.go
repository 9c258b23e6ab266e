// Package config loads the application configuration from a TOML file.
// Every field has a default, so running without a config file works.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Output Output `toml:"output"`
	GitHub GitHub `toml:"github"`
	Stats  Stats  `toml:"stats"`
}

// Output contains settings for the persisted JSON file.
type Output struct {
	Path string `toml:"path"`
}

// GitHub contains settings for the GitHub API client.
type GitHub struct {
	// BaseURL overrides the API endpoint, e.g. for GitHub Enterprise.
	// Empty means api.github.com.
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Stats contains settings for the summary statistics.
type Stats struct {
	// PopularThreshold is the star count a repository must exceed to be
	// counted as popular.
	PopularThreshold int `toml:"popular_threshold"`
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		Output: Output{Path: "output/repos.json"},
		GitHub: GitHub{TimeoutSeconds: 5},
		Stats:  Stats{PopularThreshold: 100},
	}
}

// Load reads and parses a TOML configuration file from the specified path.
// Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// Timeout returns the configured request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.GitHub.TimeoutSeconds) * time.Second
}

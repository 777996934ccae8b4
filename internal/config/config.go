// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Env variable names consulted for API keys, in provider order.
const (
	EnvOpenAIKey = "OPENAI_API_KEY"
	EnvGeminiKey = "GEMINI_API_KEY"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Session  string `json:"session,omitempty"`  // Path to session JSON file
	CV       string `json:"cv,omitempty"`       // Path to resume (PDF or text)
	Job      string `json:"job,omitempty"`      // Path to job posting text file
	JobURL   string `json:"job_url,omitempty"`  // URL to fetch job posting from
	Template string `json:"template,omitempty"` // Path to LaTeX letter template

	// Behavior
	Provider   string `json:"provider,omitempty"`    // LLM provider (openai, gemini)
	ModelTier  string `json:"model_tier,omitempty"`  // Model tier (lite, standard, advanced)
	APIKey     string `json:"api_key,omitempty"`     // API key (env variables take precedence)
	UseBrowser bool   `json:"use_browser,omitempty"` // Headless browser fallback for SPA pages
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	switch c.Provider {
	case "", "openai", "gemini":
	default:
		return fmt.Errorf("config error: unknown provider %q (expected openai or gemini)", c.Provider)
	}

	switch c.ModelTier {
	case "", "lite", "standard", "advanced":
	default:
		return fmt.Errorf("config error: unknown model tier %q (expected lite, standard or advanced)", c.ModelTier)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// ResolveAPIKey returns the API key for the configured provider: an explicit
// key wins, then the provider's environment variable.
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	if c.Provider == "gemini" {
		return os.Getenv(EnvGeminiKey)
	}
	return os.Getenv(EnvOpenAIKey)
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Session == "" {
		result.Session = defaults.Session
	}
	if result.CV == "" {
		result.CV = defaults.CV
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.ModelTier == "" {
		result.ModelTier = defaults.ModelTier
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if !result.UseBrowser {
		result.UseBrowser = defaults.UseBrowser
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

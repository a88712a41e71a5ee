// Package config provides configuration loading and validation for the
// resume builder. Values come from a JSON file, environment variables
// (optionally via a .env file), or defaults, in that order of precedence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Upstream services
	ParserURL    string `json:"parser_url,omitempty"`    // Resume parsing service base URL
	GeneratorURL string `json:"generator_url,omitempty"` // Summary generation service base URL
	BillingURL   string `json:"billing_url,omitempty"`   // Billing service base URL (credit balance)
	DocumentsURL string `json:"documents_url,omitempty"` // Document service base URL (finalize hand-off)

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty means in-memory snapshots

	// Behavior
	APIKey  string `json:"api_key,omitempty"`  // Gemini API key for direct LLM workflows
	OwnerID string `json:"owner_id,omitempty"` // Owner identity sent to upstream services
	Verbose bool   `json:"verbose,omitempty"`  // Print detailed debug information
}

// DefaultPort is used when no port is configured.
const DefaultPort = 8080

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

// LoadEnv reads configuration from environment variables, loading a .env
// file first if one exists. Missing variables leave fields empty.
func LoadEnv() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ParserURL:    os.Getenv("PARSER_URL"),
		GeneratorURL: os.Getenv("GENERATOR_URL"),
		BillingURL:   os.Getenv("BILLING_URL"),
		DocumentsURL: os.Getenv("DOCUMENTS_URL"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		OwnerID:      os.Getenv("OWNER_ID"),
	}
	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Port = port
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ParserURL == "" {
		result.ParserURL = defaults.ParserURL
	}
	if result.GeneratorURL == "" {
		result.GeneratorURL = defaults.GeneratorURL
	}
	if result.BillingURL == "" {
		result.BillingURL = defaults.BillingURL
	}
	if result.DocumentsURL == "" {
		result.DocumentsURL = defaults.DocumentsURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.OwnerID == "" {
		result.OwnerID = defaults.OwnerID
	}

	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

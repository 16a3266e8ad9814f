// ABOUTME: Configuration loading and parsing for diet-console
// ABOUTME: Supports YAML files with environment variable expansion and defaults

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultBackendURL is the backend origin used when neither the config file
// nor CARENEXA_BACKEND_URL provide one.
const DefaultBackendURL = "https://api.carenexa.life"

// Config represents the complete diet-console configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
	Session SessionConfig `yaml:"session"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds console listen address configuration
type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
}

// BackendConfig holds remote diet backend configuration
type BackendConfig struct {
	// BaseURL is the backend origin. A trailing slash is stripped.
	BaseURL string `yaml:"base_url"`
	// APIKey is the shared-secret key sent on every backend request.
	// Config-only on purpose: the key must never live in source.
	APIKey string `yaml:"api_key"`
}

// SessionConfig holds durable session storage configuration
type SessionConfig struct {
	// StateDir is where the session state file lives.
	// Defaults to the user data dir when empty.
	StateDir string `yaml:"state_dir"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment
// variable values. Unset variables are replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// applyDefaults fills unset fields with their defaults. The backend URL
// prefers the config value, then CARENEXA_BACKEND_URL, then the hardcoded
// default origin. A trailing slash on the backend URL is always stripped.
func (c *Config) applyDefaults() {
	if c.Server.HTTPAddr == "" {
		c.Server.HTTPAddr = "127.0.0.1:8750"
	}

	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = os.Getenv("CARENEXA_BACKEND_URL")
	}
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = DefaultBackendURL
	}
	c.Backend.BaseURL = strings.TrimRight(c.Backend.BaseURL, "/")

	if c.Backend.APIKey == "" {
		c.Backend.APIKey = os.Getenv("CARENEXA_API_KEY")
	}

	if c.Session.StateDir == "" {
		c.Session.StateDir = defaultStateDir()
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr is required")
	}

	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.base_url %q is not a valid URL", c.Backend.BaseURL)
	}

	if c.Backend.APIKey == "" {
		return fmt.Errorf("backend.api_key is required (set it in the config file or CARENEXA_API_KEY)")
	}

	if c.Session.StateDir == "" {
		return fmt.Errorf("session.state_dir is required")
	}

	return nil
}

// defaultStateDir returns the default directory for durable console state.
// Priority: XDG_DATA_HOME/diet-console > ~/.local/share/diet-console
func defaultStateDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "data"
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataDir, "diet-console")
}

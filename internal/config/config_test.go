// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, defaults, and validation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "console.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
server:
  http_addr: "127.0.0.1:9000"

backend:
  base_url: "https://backend.example.com"
  api_key: "test-key"

session:
  state_dir: "/tmp/diet-console-test"

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.HTTPAddr != "127.0.0.1:9000" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.Server.HTTPAddr, "127.0.0.1:9000")
	}
	if cfg.Backend.BaseURL != "https://backend.example.com" {
		t.Errorf("BaseURL = %q, want %q", cfg.Backend.BaseURL, "https://backend.example.com")
	}
	if cfg.Backend.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want %q", cfg.Backend.APIKey, "test-key")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoad_TrailingSlashStripped(t *testing.T) {
	configPath := writeConfig(t, `
backend:
  base_url: "https://backend.example.com/"
  api_key: "test-key"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Backend.BaseURL != "https://backend.example.com" {
		t.Errorf("BaseURL = %q, want trailing slash stripped", cfg.Backend.BaseURL)
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("TEST_DIET_API_KEY", "expanded-secret")

	configPath := writeConfig(t, `
backend:
  base_url: "https://backend.example.com"
  api_key: "${TEST_DIET_API_KEY}"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Backend.APIKey != "expanded-secret" {
		t.Errorf("APIKey = %q, want %q", cfg.Backend.APIKey, "expanded-secret")
	}
}

func TestLoad_BackendURLFromEnvFallback(t *testing.T) {
	t.Setenv("CARENEXA_BACKEND_URL", "https://env-backend.example.com/")
	t.Setenv("CARENEXA_API_KEY", "env-key")

	configPath := writeConfig(t, `
server:
  http_addr: "127.0.0.1:9000"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Backend.BaseURL != "https://env-backend.example.com" {
		t.Errorf("BaseURL = %q, want env value with slash stripped", cfg.Backend.BaseURL)
	}
	if cfg.Backend.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want %q", cfg.Backend.APIKey, "env-key")
	}
}

func TestLoad_DefaultBackendURL(t *testing.T) {
	t.Setenv("CARENEXA_BACKEND_URL", "")
	t.Setenv("CARENEXA_API_KEY", "some-key")

	configPath := writeConfig(t, `
server:
  http_addr: "127.0.0.1:9000"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Backend.BaseURL != DefaultBackendURL {
		t.Errorf("BaseURL = %q, want default %q", cfg.Backend.BaseURL, DefaultBackendURL)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("CARENEXA_API_KEY", "")

	configPath := writeConfig(t, `
backend:
  base_url: "https://backend.example.com"
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error for missing api key, got nil")
	}
	if !strings.Contains(err.Error(), "api_key") {
		t.Errorf("error %q does not mention api_key", err)
	}
}

func TestLoad_InvalidBackendURL(t *testing.T) {
	configPath := writeConfig(t, `
backend:
  base_url: "not-a-url"
  api_key: "test-key"
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error for invalid backend url, got nil")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "server: [not: valid")

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestLoad_DefaultLogging(t *testing.T) {
	t.Setenv("CARENEXA_API_KEY", "some-key")

	configPath := writeConfig(t, `
server:
  http_addr: "127.0.0.1:9000"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "text")
	}
}

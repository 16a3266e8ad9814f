// Package config handles configuration loading for diet-console.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from DIET_CONSOLE_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/diet-console/console.yaml
//  3. ~/.config/diet-console/console.yaml
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	backend:
//	  api_key: "${CARENEXA_API_KEY}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Console server settings:
//
//	server:
//	  http_addr: "127.0.0.1:8750"
//
// Remote backend:
//
//	backend:
//	  base_url: "https://api.carenexa.life"
//	  api_key: "${CARENEXA_API_KEY}"   # Required
//
// Session storage:
//
//	session:
//	  state_dir: "~/.local/share/diet-console"
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Defaults
//
// The backend base URL falls back to CARENEXA_BACKEND_URL, then to the
// default production origin. The API key falls back to CARENEXA_API_KEY
// and has no other default: it is a secret and never ships in source.
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load("/etc/diet-console/console.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Environment variables read at startup.
const (
	EnvClientSecret = "GOOGLE_OAUTH2_CREDENTIALS"
	EnvTokenPath    = "GOOGLE_CALENDAR_TOKEN"
	EnvRegistryPath = "GOOGLE_CALENDAR_ID"
)

// Config holds the resolved configuration for a single run. It is
// constructed once at process start and passed by reference; there is no
// package-level mutable state.
type Config struct {
	// ClientSecretPath is the path to the OAuth2 client-secret JSON file.
	ClientSecretPath string

	// TokenPath is where the OAuth token is persisted and reloaded from.
	TokenPath string

	// RegistryPath is the optional calendar-id registry file.
	RegistryPath string

	// Registry maps logical calendar names to calendar ids. Read-only
	// after Load.
	Registry Registry
}

// Registry maps logical calendar names to Google calendar identifiers.
type Registry map[string]string

// Resolve returns the calendar id registered under name, or name itself
// when no mapping exists. This lets callers pass raw calendar ids and
// logical names interchangeably.
func (r Registry) Resolve(name string) string {
	if id, ok := r[name]; ok {
		return id
	}
	return name
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored if present. The client-secret path is
// required; the token path falls back to the XDG data directory; the
// registry is optional but must parse when configured.
func Load() (*Config, error) {
	// Best effort, same as a missing .env being fine.
	_ = godotenv.Load()

	clientSecret := os.Getenv(EnvClientSecret)
	if clientSecret == "" {
		return nil, fmt.Errorf("%s environment variable not set", EnvClientSecret)
	}

	tokenPath := os.Getenv(EnvTokenPath)
	if tokenPath == "" {
		tokenPath = filepath.Join(xdg.DataHome, "agenda", "token.json")
	}

	cfg := &Config{
		ClientSecretPath: clientSecret,
		TokenPath:        tokenPath,
		RegistryPath:     os.Getenv(EnvRegistryPath),
		Registry:         Registry{},
	}

	if cfg.RegistryPath != "" {
		reg, err := loadRegistry(cfg.RegistryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load calendar registry: %w", err)
		}
		cfg.Registry = reg
	}

	return cfg, nil
}

// loadRegistry reads a JSON object mapping logical names to calendar ids.
func loadRegistry(path string) (Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read registry file %s: %w", path, err)
	}

	var reg Registry
	if err := json.Unmarshal(b, &reg); err != nil {
		return nil, fmt.Errorf("invalid registry JSON in %s: %w", path, err)
	}

	return reg, nil
}

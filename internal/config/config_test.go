package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingClientSecret(t *testing.T) {
	t.Setenv(EnvClientSecret, "")
	t.Setenv(EnvTokenPath, "")
	t.Setenv(EnvRegistryPath, "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail without client secret path")
	}
	if !strings.Contains(err.Error(), EnvClientSecret) {
		t.Errorf("error should name the missing variable, got %v", err)
	}
}

func TestLoad_TokenPathDefault(t *testing.T) {
	t.Setenv(EnvClientSecret, "/tmp/client_secret.json")
	t.Setenv(EnvTokenPath, "")
	t.Setenv(EnvRegistryPath, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TokenPath == "" {
		t.Fatal("expected a default token path")
	}
	if filepath.Base(cfg.TokenPath) != "token.json" {
		t.Errorf("expected token.json default, got %s", cfg.TokenPath)
	}
}

func TestLoad_ExplicitPaths(t *testing.T) {
	t.Setenv(EnvClientSecret, "/keys/secret.json")
	t.Setenv(EnvTokenPath, "/keys/token.json")
	t.Setenv(EnvRegistryPath, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ClientSecretPath != "/keys/secret.json" {
		t.Errorf("ClientSecretPath = %s", cfg.ClientSecretPath)
	}
	if cfg.TokenPath != "/keys/token.json" {
		t.Errorf("TokenPath = %s", cfg.TokenPath)
	}
}

func TestLoad_Registry(t *testing.T) {
	dir := t.TempDir()
	regFile := filepath.Join(dir, "calendars.json")
	data := `{"work": "work-id@group.calendar.google.com", "home": "home-id@group.calendar.google.com"}`
	if err := os.WriteFile(regFile, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvClientSecret, "/keys/secret.json")
	t.Setenv(EnvTokenPath, "/keys/token.json")
	t.Setenv(EnvRegistryPath, regFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.Registry.Resolve("work"); got != "work-id@group.calendar.google.com" {
		t.Errorf("Resolve(work) = %s", got)
	}
}

func TestLoad_InvalidRegistry(t *testing.T) {
	dir := t.TempDir()
	regFile := filepath.Join(dir, "calendars.json")
	if err := os.WriteFile(regFile, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvClientSecret, "/keys/secret.json")
	t.Setenv(EnvRegistryPath, regFile)

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail on invalid registry JSON")
	}
}

func TestLoad_MissingRegistryFile(t *testing.T) {
	t.Setenv(EnvClientSecret, "/keys/secret.json")
	t.Setenv(EnvRegistryPath, "/does/not/exist.json")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail when the registry file is unreadable")
	}
}

func TestRegistry_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		registry Registry
		input    string
		want     string
	}{
		{"mapped name", Registry{"work": "abc@group.calendar.google.com"}, "work", "abc@group.calendar.google.com"},
		{"unmapped name falls through", Registry{"work": "abc"}, "primary", "primary"},
		{"nil registry", nil, "primary", "primary"},
		{"raw id passthrough", Registry{}, "xyz@group.calendar.google.com", "xyz@group.calendar.google.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.registry.Resolve(tt.input); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

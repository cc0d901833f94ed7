package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var envKeys = []string{
	"POKEDEX_CONFIG",
	"POKEDEX_PORT",
	"POKEDEX_SPECIES_BASE_URL",
	"POKEDEX_TRANSLATION_BASE_URL",
	"POKEDEX_TRANSLATION_API_KEY",
	"POKEDEX_LOG_LEVEL",
	"POKEDEX_LOG_FORMAT",
	"POKEDEX_DEBUG",
	"POKEDEX_METRICS_ENABLED",
	"FUNTRANSLATIONS_BASE_URL",
}

// isolate runs the test in an empty working directory with all recognized
// environment variables blanked, so neither a stray config.yaml nor the
// developer's shell leaks into Load.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	return dir
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Server.Port != 8080 {
		t.Errorf("default server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout.Std() != 15*time.Second {
		t.Errorf("default server.read_timeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout.Std() != 30*time.Second {
		t.Errorf("default server.write_timeout = %v, want 30s", cfg.Server.WriteTimeout)
	}
	if cfg.Species.BaseURL != DefaultSpeciesBaseURL {
		t.Errorf("default species.base_url = %q, want %q", cfg.Species.BaseURL, DefaultSpeciesBaseURL)
	}
	if cfg.Species.Timeout.Std() != 10*time.Second {
		t.Errorf("default species.timeout = %v, want 10s", cfg.Species.Timeout)
	}
	if cfg.Translation.BaseURL != "" {
		t.Errorf("default translation.base_url = %q, want empty", cfg.Translation.BaseURL)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("default logging.format = %q, want \"text\"", cfg.Logging.Format)
	}
	if !cfg.Observability.Metrics.Enabled || cfg.Observability.Metrics.Path != "/metrics" {
		t.Errorf("default metrics = %+v, want enabled at /metrics", cfg.Observability.Metrics)
	}
}

func TestLoadFromYAML(t *testing.T) {
	isolate(t)
	tmpFile := writeTemp(t, "config-*.yaml", `
server:
  port: 9090
  read_timeout: 5s
  write_timeout: 1m
  shutdown_timeout: 3s
species:
  base_url: http://species.local/api/v2
  timeout: 2s
translation:
  base_url: https://api.funtranslations.com
  api_key: ft-key
  timeout: 4s
logging:
  level: DEBUG
  format: json
  debug: species,translation
observability:
  metrics:
    enabled: false
    path: /internal/metrics
`)

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout.Std() != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout.Std() != time.Minute {
		t.Errorf("server.write_timeout = %v, want 1m", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ShutdownTimeout.Std() != 3*time.Second {
		t.Errorf("server.shutdown_timeout = %v, want 3s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Species.BaseURL != "http://species.local/api/v2" {
		t.Errorf("species.base_url = %q", cfg.Species.BaseURL)
	}
	if cfg.Species.Timeout.Std() != 2*time.Second {
		t.Errorf("species.timeout = %v, want 2s", cfg.Species.Timeout)
	}
	if cfg.Translation.BaseURL != "https://api.funtranslations.com" {
		t.Errorf("translation.base_url = %q", cfg.Translation.BaseURL)
	}
	if cfg.Translation.APIKey != "ft-key" {
		t.Errorf("translation.api_key = %q, want \"ft-key\"", cfg.Translation.APIKey)
	}
	if cfg.Translation.Timeout.Std() != 4*time.Second {
		t.Errorf("translation.timeout = %v, want 4s", cfg.Translation.Timeout)
	}
	if cfg.Logging.Level != "DEBUG" || cfg.Logging.Format != "json" || cfg.Logging.Debug != "species,translation" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Observability.Metrics.Enabled {
		t.Error("observability.metrics.enabled = true, want false")
	}
	if cfg.Observability.Metrics.Path != "/internal/metrics" {
		t.Errorf("observability.metrics.path = %q", cfg.Observability.Metrics.Path)
	}
}

func TestLoadFromTOML(t *testing.T) {
	isolate(t)
	tmpFile := writeTemp(t, "config-*.toml", `
[server]
port = 7070
write_timeout = "45s"

[species]
base_url = "http://species.local"

[translation]
base_url = "http://translate.local"
timeout = "1500ms"

[observability.metrics]
enabled = true
path = "/m"
`)

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("server.port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Server.WriteTimeout.Std() != 45*time.Second {
		t.Errorf("server.write_timeout = %v, want 45s", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ReadTimeout.Std() != 15*time.Second {
		t.Errorf("server.read_timeout = %v, want default 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Species.BaseURL != "http://species.local" {
		t.Errorf("species.base_url = %q", cfg.Species.BaseURL)
	}
	if cfg.Translation.BaseURL != "http://translate.local" {
		t.Errorf("translation.base_url = %q", cfg.Translation.BaseURL)
	}
	if cfg.Translation.Timeout.Std() != 1500*time.Millisecond {
		t.Errorf("translation.timeout = %v, want 1.5s", cfg.Translation.Timeout)
	}
	if cfg.Observability.Metrics.Path != "/m" {
		t.Errorf("observability.metrics.path = %q, want /m", cfg.Observability.Metrics.Path)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	isolate(t)
	tmpFile := writeTemp(t, "config-*.json", `{}`)

	_, err := Load(tmpFile)
	if err == nil || !strings.Contains(err.Error(), "unsupported config file extension") {
		t.Fatalf("Load() error = %v, want unsupported extension", err)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	isolate(t)
	tmpFile := writeTemp(t, "config-*.yaml", `
translation:
  base_url: http://translate.local
  timeout: soon
`)

	_, err := Load(tmpFile)
	if err == nil || !strings.Contains(err.Error(), "invalid duration") {
		t.Fatalf("Load() error = %v, want invalid duration", err)
	}
}

func TestMissingTranslationURLFails(t *testing.T) {
	isolate(t)

	_, err := Load("")
	if err == nil {
		t.Fatal("Load() expected error without translation.base_url, got nil")
	}
	if !strings.Contains(err.Error(), "translation.base_url is required") {
		t.Errorf("Load() error = %q, want translation.base_url is required", err.Error())
	}
}

func TestEnvOverride(t *testing.T) {
	isolate(t)
	tmpFile := writeTemp(t, "config-*.yaml", `
server:
  port: 9090
translation:
  base_url: http://from-file:8000
`)

	t.Setenv("POKEDEX_PORT", "7777")
	t.Setenv("POKEDEX_SPECIES_BASE_URL", "http://species-env:8000/api/v2")
	t.Setenv("POKEDEX_TRANSLATION_BASE_URL", "http://translate-env:8000")
	t.Setenv("POKEDEX_TRANSLATION_API_KEY", "env-key")
	t.Setenv("POKEDEX_LOG_FORMAT", "json")
	t.Setenv("POKEDEX_DEBUG", "all")
	t.Setenv("POKEDEX_METRICS_ENABLED", "false")

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 7777 {
		t.Errorf("server.port = %d, want 7777 (env override)", cfg.Server.Port)
	}
	if cfg.Species.BaseURL != "http://species-env:8000/api/v2" {
		t.Errorf("species.base_url = %q, want env value", cfg.Species.BaseURL)
	}
	if cfg.Translation.BaseURL != "http://translate-env:8000" {
		t.Errorf("translation.base_url = %q, want env value", cfg.Translation.BaseURL)
	}
	if cfg.Translation.APIKey != "env-key" {
		t.Errorf("translation.api_key = %q, want env value", cfg.Translation.APIKey)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Debug != "all" {
		t.Errorf("logging = %+v, want json/all", cfg.Logging)
	}
	if cfg.Observability.Metrics.Enabled {
		t.Error("observability.metrics.enabled = true, want false")
	}
}

func TestEnvOverrideInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("POKEDEX_TRANSLATION_BASE_URL", "http://translate.local")
	t.Setenv("POKEDEX_PORT", "eighty")
	t.Setenv("POKEDEX_METRICS_ENABLED", "maybe")

	_, err := Load("")
	if err == nil {
		t.Fatal("Load() expected error, got nil")
	}
	for _, want := range []string{"POKEDEX_PORT", "POKEDEX_METRICS_ENABLED"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Load() error = %q, want it to mention %s", err.Error(), want)
		}
	}
}

func TestLegacyTranslationURL(t *testing.T) {
	isolate(t)
	t.Setenv("FUNTRANSLATIONS_BASE_URL", "http://legacy:8000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Translation.BaseURL != "http://legacy:8000" {
		t.Errorf("translation.base_url = %q, want legacy value", cfg.Translation.BaseURL)
	}

	t.Setenv("POKEDEX_TRANSLATION_BASE_URL", "http://current:8000")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Translation.BaseURL != "http://current:8000" {
		t.Errorf("translation.base_url = %q, want POKEDEX_ value to win", cfg.Translation.BaseURL)
	}
}

func TestDotEnvFile(t *testing.T) {
	dir := isolate(t)
	// Unset (rather than blank) the keys the .env file provides so godotenv
	// may set them; t.Setenv restores the original state afterwards.
	os.Unsetenv("POKEDEX_TRANSLATION_BASE_URL")
	os.Unsetenv("POKEDEX_TRANSLATION_API_KEY")
	t.Setenv("POKEDEX_PORT", "6060")

	content := "POKEDEX_TRANSLATION_BASE_URL=http://dotenv:8000\nPOKEDEX_TRANSLATION_API_KEY=dotenv-key\nPOKEDEX_PORT=1111\n"
	if err := os.WriteFile(filepath.Join(dir, EnvFile), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Translation.BaseURL != "http://dotenv:8000" {
		t.Errorf("translation.base_url = %q, want value from .env", cfg.Translation.BaseURL)
	}
	if cfg.Translation.APIKey != "dotenv-key" {
		t.Errorf("translation.api_key = %q, want value from .env", cfg.Translation.APIKey)
	}
	if cfg.Server.Port != 6060 {
		t.Errorf("server.port = %d, want 6060 (set env wins over .env)", cfg.Server.Port)
	}
}

func TestFileReference(t *testing.T) {
	isolate(t)
	secretFile := writeTemp(t, "secret-*.txt", "  ft-from-file\n")
	tmpFile := writeTemp(t, "config-*.yaml", `
translation:
  base_url: http://localhost:8000
  api_key_file: `+secretFile+`
`)

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Translation.APIKey != "ft-from-file" {
		t.Errorf("translation.api_key = %q, want \"ft-from-file\"", cfg.Translation.APIKey)
	}
}

func TestFileReferenceMissingFile(t *testing.T) {
	isolate(t)
	tmpFile := writeTemp(t, "config-*.yaml", `
translation:
  base_url: http://localhost:8000
  api_key_file: /nonexistent/secret
`)

	_, err := Load(tmpFile)
	if err == nil || !strings.Contains(err.Error(), "translation.api_key_file") {
		t.Fatalf("Load() error = %v, want translation.api_key_file failure", err)
	}
}

func TestFileReferenceDoesNotOverrideExplicitValue(t *testing.T) {
	isolate(t)
	secretFile := writeTemp(t, "secret-*.txt", "ft-from-file")
	tmpFile := writeTemp(t, "config-*.yaml", `
translation:
  base_url: http://localhost:8000
  api_key: ft-explicit
  api_key_file: `+secretFile+`
`)

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Translation.APIKey != "ft-explicit" {
		t.Errorf("translation.api_key = %q, want \"ft-explicit\" (explicit value should win over file)", cfg.Translation.APIKey)
	}
}

func TestFileDiscovery(t *testing.T) {
	dir := isolate(t)

	// Explicit path.
	tmpFile := writeTemp(t, "config-*.yaml", `
translation:
  base_url: http://explicit:8000
`)
	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load(explicit) error: %v", err)
	}
	if cfg.Translation.BaseURL != "http://explicit:8000" {
		t.Errorf("explicit path: base_url = %q", cfg.Translation.BaseURL)
	}

	// POKEDEX_CONFIG env var.
	envFile := writeTemp(t, "envconfig-*.yaml", `
translation:
  base_url: http://env-config:8000
`)
	t.Setenv("POKEDEX_CONFIG", envFile)
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load(POKEDEX_CONFIG) error: %v", err)
	}
	if cfg.Translation.BaseURL != "http://env-config:8000" {
		t.Errorf("POKEDEX_CONFIG: base_url = %q", cfg.Translation.BaseURL)
	}
	t.Setenv("POKEDEX_CONFIG", "")

	// ./config.toml in the working directory.
	tomlPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(tomlPath, []byte("[translation]\nbase_url = \"http://cwd-toml:8000\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load(./config.toml) error: %v", err)
	}
	if cfg.Translation.BaseURL != "http://cwd-toml:8000" {
		t.Errorf("./config.toml: base_url = %q", cfg.Translation.BaseURL)
	}

	// ./config.yaml takes precedence over ./config.toml.
	yamlPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte("translation:\n  base_url: http://cwd-yaml:8000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load(./config.yaml) error: %v", err)
	}
	if cfg.Translation.BaseURL != "http://cwd-yaml:8000" {
		t.Errorf("./config.yaml: base_url = %q", cfg.Translation.BaseURL)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:    "missing translation base_url",
			modify:  func(c *Config) { c.Translation.BaseURL = "" },
			wantErr: "translation.base_url is required",
		},
		{
			name:    "relative translation base_url",
			modify:  func(c *Config) { c.Translation.BaseURL = "api.funtranslations.com" },
			wantErr: "translation.base_url: must be an http or https URL",
		},
		{
			name:    "non-http species base_url",
			modify:  func(c *Config) { c.Species.BaseURL = "ftp://pokeapi.co" },
			wantErr: "species.base_url",
		},
		{
			name:    "species base_url without host",
			modify:  func(c *Config) { c.Species.BaseURL = "http://" },
			wantErr: "missing host",
		},
		{
			name:    "invalid port",
			modify:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port must be > 0",
		},
		{
			name:    "invalid log format",
			modify:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format must be",
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.Species.Timeout = Duration(-time.Second) },
			wantErr: "species.timeout must be >= 0",
		},
		{
			name:    "relative metrics path",
			modify:  func(c *Config) { c.Observability.Metrics.Path = "metrics" },
			wantErr: "observability.metrics.path",
		},
		{
			name:    "metrics path ignored when disabled",
			modify:  func(c *Config) { c.Observability.Metrics = MetricsConfig{Enabled: false} },
			wantErr: "",
		},
		{
			name:    "uppercase log format",
			modify:  func(c *Config) { c.Logging.Format = "JSON" },
			wantErr: "",
		},
		{
			name:    "valid config",
			modify:  func(c *Config) {},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.Translation.BaseURL = "https://api.funtranslations.com"
			tt.modify(&cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidationJoinsErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Server.Port = -1
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error, got nil")
	}
	for _, want := range []string{"translation.base_url", "server.port", "logging.format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error = %q, missing %q", err.Error(), want)
		}
	}
}

// writeTemp creates a temporary file with the given content and returns its path.
// The file is automatically cleaned up when the test finishes.
func writeTemp(t *testing.T, pattern, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), pattern)
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return f.Name()
}

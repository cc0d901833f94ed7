// Package config provides unified configuration for the pokedex service.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. .env file in the working directory (never overrides set variables)
//  3. YAML or TOML config file (discovered or explicitly specified)
//  4. Environment variable overrides (POKEDEX_ prefix)
//  5. File reference resolution (_file suffix fields)
//  6. Validation
package config

import "time"

// Config holds all configuration for the pokedex service.
type Config struct {
	Server        ServerConfig        `yaml:"server" toml:"server"`
	Species       SpeciesConfig       `yaml:"species" toml:"species"`
	Translation   TranslationConfig   `yaml:"translation" toml:"translation"`
	Logging       LoggingConfig       `yaml:"logging" toml:"logging"`
	Observability ObservabilityConfig `yaml:"observability" toml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int      `yaml:"port" toml:"port"`                         // default: 8080
	ReadTimeout     Duration `yaml:"read_timeout" toml:"read_timeout"`         // default: 15s
	WriteTimeout    Duration `yaml:"write_timeout" toml:"write_timeout"`       // default: 30s
	ShutdownTimeout Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout"` // default: 30s
}

// SpeciesConfig holds settings for the species data provider (PokeAPI).
type SpeciesConfig struct {
	BaseURL string   `yaml:"base_url" toml:"base_url"` // default: https://pokeapi.co/api/v2
	Timeout Duration `yaml:"timeout" toml:"timeout"`   // default: 10s
}

// TranslationConfig holds settings for the translation provider
// (FunTranslations).
type TranslationConfig struct {
	BaseURL    string   `yaml:"base_url" toml:"base_url"`         // required
	APIKey     string   `yaml:"api_key" toml:"api_key"`           // optional
	APIKeyFile string   `yaml:"api_key_file" toml:"api_key_file"` // _file variant for api_key
	Timeout    Duration `yaml:"timeout" toml:"timeout"`           // default: 10s
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // DEBUG, INFO, WARN, ERROR; default: INFO
	Format string `yaml:"format" toml:"format"` // "text" or "json"; default: "text"
	Debug  string `yaml:"debug" toml:"debug"`   // comma-separated debug categories
}

// ObservabilityConfig holds monitoring and instrumentation settings.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
}

// MetricsConfig holds Prometheus metrics endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"` // default: true
	Path    string `yaml:"path" toml:"path"`       // default: "/metrics"
}

// DefaultSpeciesBaseURL is the public PokeAPI root.
const DefaultSpeciesBaseURL = "https://pokeapi.co/api/v2"

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     Duration(15 * time.Second),
			WriteTimeout:    Duration(30 * time.Second),
			ShutdownTimeout: Duration(30 * time.Second),
		},
		Species: SpeciesConfig{
			BaseURL: DefaultSpeciesBaseURL,
			Timeout: Duration(10 * time.Second),
		},
		Translation: TranslationConfig{
			Timeout: Duration(10 * time.Second),
		},
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "text",
		},
		Observability: ObservabilityConfig{
			Metrics: MetricsConfig{
				Enabled: true,
				Path:    "/metrics",
			},
		},
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvFile is the dotenv file read from the working directory.
const EnvFile = ".env"

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. .env file (optional; variables already set in the environment win)
//  3. Config file (explicit path, POKEDEX_CONFIG env, ./config.yaml,
//     ./config.toml, /etc/pokedex/config.yaml)
//  4. Environment variable overrides
//  5. File reference resolution (_file suffix)
//  6. Validation
func Load(configPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadEnvFile(EnvFile); err != nil {
		return nil, fmt.Errorf("loading %s: %w", EnvFile, err)
	}

	filePath := discoverConfigFile(configPath)
	if filePath != "" {
		if err := loadFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	if err := resolveFileReferences(&cfg); err != nil {
		return nil, fmt.Errorf("resolving file references: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile populates the process environment from a dotenv file.
// A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// discoverConfigFile finds the config file path using the discovery order:
// 1. Explicit configPath argument
// 2. POKEDEX_CONFIG environment variable
// 3. ./config.yaml, then ./config.toml in the current directory
// 4. /etc/pokedex/config.yaml
//
// Returns empty string if no config file is found.
func discoverConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}

	if envPath := os.Getenv("POKEDEX_CONFIG"); envPath != "" {
		return envPath
	}

	candidates := []string{
		"config.yaml",
		"config.toml",
		"/etc/pokedex/config.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadFile reads a config file and decodes it into cfg according to its
// extension. Fields not present in the file retain their current values.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config file extension %q (want .yaml, .yml or .toml)", ext)
	}
}

// applyEnvOverrides maps environment variables to config fields.
// FUNTRANSLATIONS_BASE_URL is honored for deployments that predate the
// POKEDEX_ prefix; POKEDEX_TRANSLATION_BASE_URL wins when both are set.
func applyEnvOverrides(cfg *Config) error {
	var errs []error

	if v := os.Getenv("POKEDEX_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("POKEDEX_PORT: %w", err))
		} else {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("POKEDEX_SPECIES_BASE_URL"); v != "" {
		cfg.Species.BaseURL = v
	}
	if v := os.Getenv("FUNTRANSLATIONS_BASE_URL"); v != "" {
		cfg.Translation.BaseURL = v
	}
	if v := os.Getenv("POKEDEX_TRANSLATION_BASE_URL"); v != "" {
		cfg.Translation.BaseURL = v
	}
	if v := os.Getenv("POKEDEX_TRANSLATION_API_KEY"); v != "" {
		cfg.Translation.APIKey = v
	}
	if v := os.Getenv("POKEDEX_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("POKEDEX_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("POKEDEX_DEBUG"); v != "" {
		cfg.Logging.Debug = v
	}
	if v := os.Getenv("POKEDEX_METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("POKEDEX_METRICS_ENABLED: %w", err))
		} else {
			cfg.Observability.Metrics.Enabled = enabled
		}
	}

	return errors.Join(errs...)
}

// resolveFileReferences reads _file fields and populates the corresponding
// value fields when those are empty.
func resolveFileReferences(cfg *Config) error {
	if cfg.Translation.APIKeyFile != "" && cfg.Translation.APIKey == "" {
		val, err := readSecretFile(cfg.Translation.APIKeyFile)
		if err != nil {
			return fmt.Errorf("translation.api_key_file: %w", err)
		}
		cfg.Translation.APIKey = val
	}
	return nil
}

// readSecretFile reads a file and returns its content with surrounding whitespace trimmed.
func readSecretFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

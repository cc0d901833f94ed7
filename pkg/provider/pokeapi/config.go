package pokeapi

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the public PokeAPI v2 endpoint.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Config holds configuration for the PokeAPI adapter.
type Config struct {
	// BaseURL is the API root including the version segment
	// (e.g., "https://pokeapi.co/api/v2"). Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout for individual HTTP requests. Defaults to 10s.
	Timeout time.Duration

	// HTTPClient overrides the client built from Timeout. Optional.
	HTTPClient *http.Client
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 10 * time.Second,
	}
}

package funtranslations

import (
	"net/http"
	"time"
)

// Config holds configuration for the FunTranslations adapter.
type Config struct {
	// BaseURL is the API root (e.g., "https://api.funtranslations.com").
	// Required.
	BaseURL string

	// APIKey is sent as X-Funtranslations-Api-Secret when set (optional).
	APIKey string

	// Timeout for individual HTTP requests. Defaults to 10s.
	Timeout time.Duration

	// HTTPClient overrides the client built from Timeout. Optional.
	HTTPClient *http.Client
}

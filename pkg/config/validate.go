package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for required fields and valid values.
// Returns an error with a descriptive field path on failure.
func (c *Config) Validate() error {
	var errs []error

	// translation.base_url is required; the service cannot start without it.
	if c.Translation.BaseURL == "" {
		errs = append(errs, fmt.Errorf("translation.base_url is required"))
	} else if err := validateBaseURL(c.Translation.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("translation.base_url: %w", err))
	}

	if c.Species.BaseURL == "" {
		errs = append(errs, fmt.Errorf("species.base_url is required"))
	} else if err := validateBaseURL(c.Species.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("species.base_url: %w", err))
	}

	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be > 0, got %d", c.Server.Port))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
		// valid
	default:
		errs = append(errs, fmt.Errorf("logging.format must be \"text\" or \"json\", got %q", c.Logging.Format))
	}

	timeouts := []struct {
		name string
		d    Duration
	}{
		{"server.read_timeout", c.Server.ReadTimeout},
		{"server.write_timeout", c.Server.WriteTimeout},
		{"server.shutdown_timeout", c.Server.ShutdownTimeout},
		{"species.timeout", c.Species.Timeout},
		{"translation.timeout", c.Translation.Timeout},
	}
	for _, tt := range timeouts {
		if tt.d < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %s", tt.name, tt.d))
		}
	}

	if c.Observability.Metrics.Enabled && !strings.HasPrefix(c.Observability.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("observability.metrics.path must start with \"/\", got %q", c.Observability.Metrics.Path))
	}

	return errors.Join(errs...)
}

// validateBaseURL requires an absolute http or https URL.
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must be an http or https URL, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}

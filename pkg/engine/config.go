package engine

import "log/slog"

// Config holds configuration for the lookup engine.
type Config struct {
	// Logger receives not-found warnings and provider failures.
	// Nil means slog.Default().
	Logger *slog.Logger
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

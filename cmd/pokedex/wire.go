package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rhuss/pokedex/pkg/config"
	"github.com/rhuss/pokedex/pkg/debug"
	"github.com/rhuss/pokedex/pkg/engine"
	"github.com/rhuss/pokedex/pkg/provider/funtranslations"
	"github.com/rhuss/pokedex/pkg/provider/pokeapi"
)

// loadConfig loads configuration and installs the default logger.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	debug.Init(debug.Options{
		Categories: cfg.Logging.Debug,
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     os.Stderr,
	})
	debug.Log(debug.Config, "loaded",
		"species", cfg.Species.BaseURL,
		"translation", cfg.Translation.BaseURL,
		"port", cfg.Server.Port)

	return cfg, nil
}

// newEngine builds the species and translation adapters and the engine
// that composes them.
func newEngine(cfg *config.Config, logger *slog.Logger) (*engine.Engine, error) {
	species, err := pokeapi.New(pokeapi.Config{
		BaseURL: cfg.Species.BaseURL,
		Timeout: cfg.Species.Timeout.Std(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating species provider: %w", err)
	}

	translator, err := funtranslations.New(funtranslations.Config{
		BaseURL: cfg.Translation.BaseURL,
		APIKey:  cfg.Translation.APIKey,
		Timeout: cfg.Translation.Timeout.Std(),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("creating translation provider: %w", err)
	}

	eng, err := engine.New(species, translator, engine.Config{Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}
	return eng, nil
}

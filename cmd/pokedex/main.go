// Command pokedex serves the creature lookup API and offers one-shot
// lookups from the command line.
//
// Configuration is read from a YAML or TOML file, a .env file and
// POKEDEX_* environment variables; see pkg/config. The translation
// provider base URL (translation.base_url, POKEDEX_TRANSLATION_BASE_URL or
// FUNTRANSLATIONS_BASE_URL) is required.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pokedex",
		Short: "Creature lookup service",
		Long: `pokedex returns information about a named creature, optionally with its
description rewritten in a stylized dialect.

Use "pokedex serve" to run the HTTP API and "pokedex lookup NAME" for a
single lookup.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newLookupCmd(), newVersionCmd())
	return root
}

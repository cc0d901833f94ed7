package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rhuss/pokedex/pkg/api"
	"github.com/rhuss/pokedex/pkg/transport"
)

func newLookupCmd() *cobra.Command {
	var (
		configPath string
		translated bool
	)

	cmd := &cobra.Command{
		Use:   "lookup NAME",
		Short: "Look up a single creature and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			eng, err := newEngine(cfg, slog.Default())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			looker := transport.Chain(transport.RequestID())(eng)
			resp, err := looker.Lookup(ctx, api.CreatureQuery{Name: args[0], Translate: translated})
			if err != nil {
				if api.IsNotFound(err) {
					return fmt.Errorf("creature %q not found", args[0])
				}
				return err
			}

			return writeJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (.yaml, .yml or .toml)")
	cmd.Flags().BoolVarP(&translated, "translated", "t", false, "translate the description")
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

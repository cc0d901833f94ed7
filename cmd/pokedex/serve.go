package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	transporthttp "github.com/rhuss/pokedex/pkg/transport/http"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				if port <= 0 {
					return fmt.Errorf("--port must be > 0, got %d", port)
				}
				cfg.Server.Port = port
			}

			logger := slog.Default()
			eng, err := newEngine(cfg, logger)
			if err != nil {
				return err
			}

			opts := []transporthttp.ServerOption{
				transporthttp.WithAddr(fmt.Sprintf(":%d", cfg.Server.Port)),
				transporthttp.WithReadTimeout(cfg.Server.ReadTimeout.Std()),
				transporthttp.WithWriteTimeout(cfg.Server.WriteTimeout.Std()),
				transporthttp.WithShutdownTimeout(cfg.Server.ShutdownTimeout.Std()),
				transporthttp.WithLogger(logger),
			}
			if cfg.Observability.Metrics.Enabled {
				opts = append(opts, transporthttp.WithExtraRoutes(map[string]http.Handler{
					"GET " + cfg.Observability.Metrics.Path: promhttp.Handler(),
				}))
				logger.Info("metrics enabled", "path", cfg.Observability.Metrics.Path)
			}

			logger.Info("providers configured",
				"species", cfg.Species.BaseURL,
				"translation", cfg.Translation.BaseURL)

			return transporthttp.NewServer(eng, opts...).ListenAndServe()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (.yaml, .yml or .toml)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides server.port)")
	return cmd
}

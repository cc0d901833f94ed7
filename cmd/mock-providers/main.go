// Command mock-providers runs deterministic PokeAPI and FunTranslations
// fakes for local development and end-to-end testing. Point the service
// at it with:
//
//	POKEDEX_SPECIES_BASE_URL=http://localhost:9090/api/v2
//	POKEDEX_TRANSLATION_BASE_URL=http://localhost:9090
//
// Configuration:
//
//	MOCK_PORT            - Listen port (default: 9090)
//	MOCK_TRANSLATION_DOWN - When "true", every translation is rate limited
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rhuss/pokedex/pkg/provider/providertest"
)

func main() {
	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "9090"
	}
	translationDown, _ := strconv.ParseBool(os.Getenv("MOCK_TRANSLATION_DOWN"))

	srv := &http.Server{Addr: ":" + port, Handler: newMux(translationDown)}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("mock providers starting", "port", port, "translation_down", translationDown)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("mock providers failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("mock providers shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}

// newMux serves the species fake under /api/v2 (matching PokeAPI's
// layout) and the translation fake at the root.
func newMux(translationDown bool) *http.ServeMux {
	translation := providertest.NewTranslationHandler()
	if translationDown {
		translation = providertest.NewRateLimitedHandler()
	}

	mux := http.NewServeMux()
	mux.Handle("/api/v2/", http.StripPrefix("/api/v2", providertest.NewSpeciesHandler(providertest.DefaultSpecies())))
	mux.Handle("/translate/", translation)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})
	return mux
}

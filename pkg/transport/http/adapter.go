package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rhuss/pokedex/pkg/api"
	"github.com/rhuss/pokedex/pkg/observability"
	"github.com/rhuss/pokedex/pkg/transport"
)

// RequestIDHeader is the header used to propagate request IDs.
const RequestIDHeader = "X-Request-ID"

// Adapter serves the creature lookup API over HTTP.
// It routes requests to the CreatureLooker and serializes responses.
type Adapter struct {
	looker transport.CreatureLooker
	mux    *http.ServeMux
	logger *slog.Logger
}

// NewAdapter creates an HTTP adapter for the given CreatureLooker.
// Middleware is applied to the looker in the given order.
func NewAdapter(looker transport.CreatureLooker, logger *slog.Logger, middlewares ...transport.Middleware) *Adapter {
	if len(middlewares) > 0 {
		looker = transport.Chain(middlewares...)(looker)
	}
	if logger == nil {
		logger = slog.Default()
	}

	a := &Adapter{
		looker: looker,
		mux:    http.NewServeMux(),
		logger: logger,
	}

	a.mux.HandleFunc("GET /pokemon/{name}", a.handleLookup(false))
	a.mux.HandleFunc("GET /pokemon/translated/{name}", a.handleLookup(true))
	a.mux.HandleFunc("GET /healthz", handleHealth)

	return a
}

// Handle registers an additional route on the adapter's mux, e.g. the
// Prometheus /metrics endpoint.
func (a *Adapter) Handle(pattern string, h http.Handler) {
	a.mux.Handle(pattern, h)
}

// Handler returns the http.Handler for this adapter. Use this to integrate
// with an http.Server or test with httptest. The returned handler records
// request metrics and propagates the X-Request-ID header.
func (a *Adapter) Handler() http.Handler {
	return httpRequestIDMiddleware(observability.MetricsMiddleware(a.mux))
}

// httpRequestIDMiddleware takes the X-Request-ID header from the request,
// or generates one, stores it in the context and echoes it on the response.
func httpRequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = transport.NewRequestID()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(transport.ContextWithRequestID(r.Context(), id)))
	})
}

// handleLookup handles GET /pokemon/{name} and GET /pokemon/translated/{name}.
func (a *Adapter) handleLookup(translate bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := api.CreatureQuery{
			Name:      r.PathValue("name"),
			Translate: translate,
		}

		resp, err := a.looker.Lookup(r.Context(), q)
		if err != nil {
			transport.WriteAPIError(w, transport.ToAPIError(err))
			return
		}

		a.writeJSON(w, http.StatusOK, resp)
	}
}

func (a *Adapter) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("writing response", "error", err)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

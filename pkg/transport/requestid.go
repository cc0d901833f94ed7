package transport

import (
	"context"

	"github.com/google/uuid"

	"github.com/rhuss/pokedex/pkg/api"
)

// RequestID returns middleware that assigns a unique request ID to each
// lookup. An ID already present in the context (set by the HTTP adapter
// from the X-Request-ID header) is kept; otherwise a random UUID is
// generated.
func RequestID() Middleware {
	return func(next CreatureLooker) CreatureLooker {
		return LookerFunc(func(ctx context.Context, q api.CreatureQuery) (*api.CreatureResponse, error) {
			if RequestIDFromContext(ctx) == "" {
				ctx = ContextWithRequestID(ctx, NewRequestID())
			}
			return next.Lookup(ctx, q)
		})
	}
}

// NewRequestID returns a new random request ID.
func NewRequestID() string {
	return uuid.NewString()
}

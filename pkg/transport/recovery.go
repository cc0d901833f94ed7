package transport

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/rhuss/pokedex/pkg/api"
)

// Recovery returns middleware that catches panics in the looker and
// converts them to server errors. The server continues to accept new
// requests after a panic is recovered.
func Recovery(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next CreatureLooker) CreatureLooker {
		return LookerFunc(func(ctx context.Context, q api.CreatureQuery) (resp *api.CreatureResponse, retErr error) {
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorContext(ctx, "panic in lookup",
						"name", q.Name, "panic", r, "stack", string(debug.Stack()))
					resp = nil
					retErr = api.NewServerError("internal server error")
				}
			}()
			return next.Lookup(ctx, q)
		})
	}
}

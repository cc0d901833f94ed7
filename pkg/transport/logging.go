package transport

import (
	"context"
	"log/slog"
	"time"

	"github.com/rhuss/pokedex/pkg/api"
)

// Outcome labels used by the Logging middleware.
const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeInvalid  = "invalid_request"
	outcomeFailed   = "failed"
)

// Logging returns middleware that emits one structured log entry per
// lookup with the request ID, name, translate flag, duration and outcome.
// Not-found lookups are logged at info level since they are an expected
// result.
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next CreatureLooker) CreatureLooker {
		return LookerFunc(func(ctx context.Context, q api.CreatureQuery) (*api.CreatureResponse, error) {
			start := time.Now()

			resp, err := next.Lookup(ctx, q)

			attrs := []slog.Attr{
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("name", q.Name),
				slog.Bool("translate", q.Translate),
				slog.Duration("duration", time.Since(start)),
			}

			outcome := Outcome(err)
			attrs = append(attrs, slog.String("outcome", outcome))
			if outcome == outcomeFailed {
				attrs = append(attrs, slog.String("error", err.Error()))
				logger.LogAttrs(ctx, slog.LevelError, "lookup failed", attrs...)
			} else {
				logger.LogAttrs(ctx, slog.LevelInfo, "lookup completed", attrs...)
			}

			return resp, err
		})
	}
}

// Outcome classifies a lookup error as "ok", "not_found",
// "invalid_request" or "failed".
func Outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	apiErr, ok := AsAPIError(err)
	if !ok {
		return outcomeFailed
	}
	switch apiErr.Type {
	case api.ErrorTypeNotFound:
		return outcomeNotFound
	case api.ErrorTypeInvalidRequest:
		return outcomeInvalid
	default:
		return outcomeFailed
	}
}

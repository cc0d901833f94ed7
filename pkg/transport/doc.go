// Package transport defines the handler interface and middleware chain for
// the pokedex HTTP transport layer.
//
// The transport layer bridges external clients and the lookup engine. It
// turns a path parameter into an api.CreatureQuery, dispatches it, and
// maps the outcome to an HTTP status and body.
//
// # Handler Interface
//
// CreatureLooker is the single contract between the transport layer and the
// engine. It returns either a CreatureResponse or an error; errors that are
// *api.APIError carry their own status mapping, everything else becomes a
// server error.
//
// # Middleware
//
// The middleware chain wraps CreatureLooker with cross-cutting concerns.
// Built-in middleware provides panic recovery, request ID assignment
// (X-Request-ID) and structured logging via log/slog.
package transport

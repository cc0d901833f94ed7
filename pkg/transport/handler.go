package transport

import (
	"context"

	"github.com/rhuss/pokedex/pkg/api"
)

// CreatureLooker resolves a single creature lookup. It is the handler
// contract implemented by the engine.
type CreatureLooker interface {
	Lookup(ctx context.Context, q api.CreatureQuery) (*api.CreatureResponse, error)
}

// LookerFunc is an adapter that allows using an ordinary function as a
// CreatureLooker.
type LookerFunc func(ctx context.Context, q api.CreatureQuery) (*api.CreatureResponse, error)

// Lookup calls f(ctx, q).
func (f LookerFunc) Lookup(ctx context.Context, q api.CreatureQuery) (*api.CreatureResponse, error) {
	return f(ctx, q)
}

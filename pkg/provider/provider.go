package provider

import (
	"context"

	"github.com/rhuss/pokedex/pkg/api"
)

// SpeciesFetcher resolves species data by creature name.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type SpeciesFetcher interface {
	// FetchSpecies returns the species attributes for name. It returns an
	// error wrapping ErrNotFound when the provider has no such species,
	// and a *ProviderError for any other failure.
	FetchSpecies(ctx context.Context, name string) (*api.SpeciesInfo, error)
}

// Translator rewrites text into a stylized dialect.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Translator interface {
	// Translate returns the translated text and true, or "" and false when
	// no translation is available for any reason.
	Translate(ctx context.Context, text string, dialect api.Dialect) (string, bool)
}

// TranslatorFunc is an adapter that allows using an ordinary function as a
// Translator.
type TranslatorFunc func(ctx context.Context, text string, dialect api.Dialect) (string, bool)

// Translate calls f(ctx, text, dialect).
func (f TranslatorFunc) Translate(ctx context.Context, text string, dialect api.Dialect) (string, bool) {
	return f(ctx, text, dialect)
}

package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rhuss/pokedex/pkg/api"
	"github.com/rhuss/pokedex/pkg/debug"
	"github.com/rhuss/pokedex/pkg/observability"
	"github.com/rhuss/pokedex/pkg/provider"
	"github.com/rhuss/pokedex/pkg/transport"
)

// Engine orchestrates a lookup between the transport layer and the
// species and translation providers. It implements transport.CreatureLooker.
type Engine struct {
	species    provider.SpeciesFetcher
	translator provider.Translator
	cfg        Config
}

// Ensure Engine implements transport.CreatureLooker at compile time.
var _ transport.CreatureLooker = (*Engine)(nil)

// New creates a new Engine. Neither collaborator may be nil.
func New(species provider.SpeciesFetcher, translator provider.Translator, cfg Config) (*Engine, error) {
	if species == nil {
		return nil, fmt.Errorf("engine: species provider must not be nil")
	}
	if translator == nil {
		return nil, fmt.Errorf("engine: translator must not be nil")
	}
	return &Engine{
		species:    species,
		translator: translator,
		cfg:        cfg,
	}, nil
}

// Lookup resolves a single creature. It returns a not_found APIError when
// the species provider has no such creature and a wrapped provider error
// for any other species failure. Translation problems never fail the
// lookup; the normalized description is returned instead.
func (e *Engine) Lookup(ctx context.Context, q api.CreatureQuery) (*api.CreatureResponse, error) {
	if apiErr := api.ValidateName(q.Name); apiErr != nil {
		return nil, apiErr
	}

	log := e.cfg.logger()

	info, err := e.species.FetchSpecies(ctx, q.Name)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			log.WarnContext(ctx, "species not found", "name", q.Name)
			debug.Log(debug.Engine, "lookup done", "name", q.Name, "state", "not_found")
			return nil, api.NewNotFoundError(fmt.Sprintf("no creature named %q", q.Name))
		}
		log.ErrorContext(ctx, "species lookup failed", "name", q.Name, "error", err)
		debug.Log(debug.Engine, "lookup done", "name", q.Name, "state", "fatal")
		return nil, fmt.Errorf("fetching species %q: %w", q.Name, err)
	}

	resp := &api.CreatureResponse{
		Name:        q.Name,
		Description: englishDescription(info.FlavorTexts),
		Habitat:     info.Habitat,
		IsLegendary: info.IsLegendary,
	}

	if !q.Translate {
		debug.Log(debug.Engine, "lookup done", "name", q.Name, "state", "done")
		return resp, nil
	}

	if err := e.translate(ctx, resp); err != nil {
		return nil, err
	}

	debug.Log(debug.Engine, "lookup done", "name", q.Name, "state", "done", "translate", true)
	return resp, nil
}

// translate replaces resp.Description with its translation when one is
// available. The only error it returns is the context's own.
func (e *Engine) translate(ctx context.Context, resp *api.CreatureResponse) error {
	dialect := SelectDialect(resp.IsLegendary, resp.Habitat)

	if resp.Description == nil || strings.TrimSpace(*resp.Description) == "" {
		observability.ObserveTranslation(dialect.String(), observability.OutcomeSkipped)
		debug.Log(debug.Engine, "translation skipped", "name", resp.Name, "reason", "no description")
		return nil
	}

	translated, ok := e.translator.Translate(ctx, *resp.Description, dialect)
	if !ok {
		if err := ctx.Err(); err != nil {
			return err
		}
		observability.ObserveTranslation(dialect.String(), observability.OutcomeUnavailable)
		debug.Log(debug.Engine, "translation unavailable", "name", resp.Name, "dialect", dialect.String())
		return nil
	}

	observability.ObserveTranslation(dialect.String(), observability.OutcomeTranslated)
	debug.Log(debug.Engine, "translated", "name", resp.Name, "dialect", dialect.String())
	resp.Description = &translated
	return nil
}

package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/rhuss/pokedex/pkg/api"
	"github.com/rhuss/pokedex/pkg/debug"
	"github.com/rhuss/pokedex/pkg/observability"
	"github.com/rhuss/pokedex/pkg/provider"
)

const providerName = "pokeapi"

// Client implements provider.SpeciesFetcher for PokeAPI.
type Client struct {
	cfg    Config
	client *http.Client
}

// Ensure Client implements provider.SpeciesFetcher at compile time.
var _ provider.SpeciesFetcher = (*Client)(nil)

// New creates a Client with the given configuration.
func New(cfg Config) (*Client, error) {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("pokeapi: invalid BaseURL %q: %w", cfg.BaseURL, err)
	}

	// Normalize: remove trailing slash from base URL.
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.Timeout == 0 {
		cfg.Timeout = def.Timeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		cfg:    cfg,
		client: client,
	}, nil
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return providerName
}

// FetchSpecies retrieves /pokemon-species/{name}. PokeAPI resource names
// are lower-case, so the name is case-folded for the request path only.
func (c *Client) FetchSpecies(ctx context.Context, name string) (*api.SpeciesInfo, error) {
	// Casers are stateful and must not be shared between goroutines.
	resource := cases.Fold().String(strings.TrimSpace(name))
	endpoint := c.cfg.BaseURL + "/pokemon-species/" + url.PathEscape(resource)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &provider.ProviderError{Provider: providerName, Message: "failed to create HTTP request", Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")

	debug.Log(debug.Species, "request", "method", http.MethodGet, "url", endpoint)

	start := time.Now()
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		observability.ObserveProviderCall(providerName, "error", time.Since(start))
		return nil, provider.MapNetworkError(providerName, err)
	}
	defer httpResp.Body.Close()

	observability.ObserveProviderCall(providerName, observability.StatusClass(httpResp.StatusCode), time.Since(start))
	debug.Log(debug.Species, "response", "status", httpResp.StatusCode, "elapsed", time.Since(start))

	if httpResp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", provider.ErrNotFound, resource)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, provider.MapHTTPError(providerName, httpResp)
	}

	var species speciesResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&species); err != nil {
		return nil, &provider.ProviderError{
			Provider:   providerName,
			StatusCode: httpResp.StatusCode,
			Message:    "failed to parse species response",
			Err:        err,
		}
	}

	debug.Trace(debug.Species, "decoded species", "name", species.Name, "flavor_texts", len(species.FlavorTextEntries))

	return toSpeciesInfo(name, &species), nil
}

// toSpeciesInfo converts the wire payload. The requested name is kept
// as-is; the canonical resource name is not surfaced to callers.
func toSpeciesInfo(name string, s *speciesResponse) *api.SpeciesInfo {
	info := &api.SpeciesInfo{
		Name:        name,
		IsLegendary: s.IsLegendary,
	}
	if s.Habitat != nil {
		habitat := s.Habitat.Name
		info.Habitat = &habitat
	}
	if len(s.FlavorTextEntries) > 0 {
		info.FlavorTexts = make([]api.FlavorText, 0, len(s.FlavorTextEntries))
		for _, e := range s.FlavorTextEntries {
			info.FlavorTexts = append(info.FlavorTexts, api.FlavorText{
				Text:     e.FlavorText,
				Language: e.Language.Name,
				Version:  e.Version.Name,
			})
		}
	}
	return info
}

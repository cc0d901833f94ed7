package pokeapi

// namedResource is PokeAPI's {name, url} reference shape.
type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// flavorTextEntry is one entry of pokemon-species.flavor_text_entries.
type flavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   namedResource `json:"language"`
	Version    namedResource `json:"version"`
}

// speciesResponse is the subset of the pokemon-species payload we use.
type speciesResponse struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	FlavorTextEntries []flavorTextEntry `json:"flavor_text_entries"`
	Habitat           *namedResource    `json:"habitat"`
	IsLegendary       bool              `json:"is_legendary"`
	IsMythical        bool              `json:"is_mythical"`
}

package providertest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rhuss/pokedex/pkg/api"
)

// Species is a fixture served by the species fake.
type Species struct {
	Name        string
	FlavorTexts []api.FlavorText
	Habitat     string // empty serializes as null
	IsLegendary bool
}

// DefaultSpecies returns the built-in fixtures keyed by lower-case name.
func DefaultSpecies() map[string]Species {
	return map[string]Species{
		"pikachu": {
			Name: "pikachu",
			FlavorTexts: []api.FlavorText{
				{Text: "Quand plusieurs de ces POKéMON se réunissent", Language: "fr", Version: "red"},
				{Text: "When several of\nthese POKéMON\fgather, their\telectricity could\nbuild and cause\nlightning storms.", Language: "en", Version: "red"},
			},
			Habitat: "forest",
		},
		"mewtwo": {
			Name: "mewtwo",
			FlavorTexts: []api.FlavorText{
				{Text: "It was created by\na scientist after\nyears of horrific\fgene splicing and\nDNA engineering\nexperiments.", Language: "en", Version: "red"},
			},
			Habitat:     "rare",
			IsLegendary: true,
		},
		"zubat": {
			Name: "zubat",
			FlavorTexts: []api.FlavorText{
				{Text: "Forms colonies in\nperpetually dark\nplaces. Uses\fultrasonic waves\nto identify and\napproach targets.", Language: "en", Version: "red"},
			},
			Habitat: "cave",
		},
		"dreepy": {
			Name: "dreepy",
			FlavorTexts: []api.FlavorText{
				{Text: "Wenn es in Form eines Geists wiederbelebt wurde", Language: "de", Version: "sword"},
			},
		},
	}
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type flavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   namedResource `json:"language"`
	Version    namedResource `json:"version"`
}

type speciesPayload struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	FlavorTextEntries []flavorTextEntry `json:"flavor_text_entries"`
	Habitat           *namedResource    `json:"habitat"`
	IsLegendary       bool              `json:"is_legendary"`
	IsMythical        bool              `json:"is_mythical"`
}

// NewSpeciesHandler returns a handler serving GET /pokemon-species/{name}
// from the given fixtures. Unknown names return 404 with PokeAPI's plain
// "Not Found" body.
func NewSpeciesHandler(species map[string]Species) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /pokemon-species/{name}", func(w http.ResponseWriter, r *http.Request) {
		s, ok := species[strings.ToLower(r.PathValue("name"))]
		if !ok {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("Not Found"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(toPayload(s))
	})
	return mux
}

func toPayload(s Species) speciesPayload {
	p := speciesPayload{
		Name:              s.Name,
		IsLegendary:       s.IsLegendary,
		FlavorTextEntries: []flavorTextEntry{},
	}
	if s.Habitat != "" {
		p.Habitat = &namedResource{Name: s.Habitat}
	}
	for _, ft := range s.FlavorTexts {
		p.FlavorTextEntries = append(p.FlavorTextEntries, flavorTextEntry{
			FlavorText: ft.Text,
			Language:   namedResource{Name: ft.Language},
			Version:    namedResource{Name: ft.Version},
		})
	}
	return p
}

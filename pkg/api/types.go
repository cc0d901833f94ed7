package api

// CreatureQuery is a single lookup request. It is created per incoming
// request and never mutated.
type CreatureQuery struct {
	Name      string
	Translate bool
}

// FlavorText is a language-tagged description attached to a species.
type FlavorText struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Version  string `json:"version,omitempty"`
}

// SpeciesInfo holds the species attributes returned by a species provider.
type SpeciesInfo struct {
	Name        string       `json:"name"`
	FlavorTexts []FlavorText `json:"flavor_texts,omitempty"`
	Habitat     *string      `json:"habitat"`
	IsLegendary bool         `json:"is_legendary"`
}

// CreatureResponse is the body returned by the lookup endpoints.
// Description and Habitat serialize as null when absent.
type CreatureResponse struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Habitat     *string `json:"habitat"`
	IsLegendary bool    `json:"isLegendary"`
}

// Dialect is the stylized dialect a description is rewritten into.
type Dialect int

const (
	// DialectClassical rewrites text in an Elizabethan register.
	DialectClassical Dialect = iota
	// DialectArchaic rewrites text with inverted, archaic word order.
	DialectArchaic
)

// String returns the lower-case dialect name used in logs and metrics.
func (d Dialect) String() string {
	switch d {
	case DialectClassical:
		return "classical"
	case DialectArchaic:
		return "archaic"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the known dialects.
func (d Dialect) Valid() bool {
	return d == DialectClassical || d == DialectArchaic
}

package engine

import "github.com/rhuss/pokedex/pkg/api"

// caveHabitat is the habitat that selects the archaic dialect.
const caveHabitat = "cave"

// SelectDialect returns DialectArchaic for legendary creatures and cave
// dwellers, DialectClassical for everything else.
func SelectDialect(legendary bool, habitat *string) api.Dialect {
	if legendary {
		return api.DialectArchaic
	}
	if habitat != nil && *habitat == caveHabitat {
		return api.DialectArchaic
	}
	return api.DialectClassical
}

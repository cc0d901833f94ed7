// Package pokeapi implements provider.SpeciesFetcher against the PokeAPI
// REST service (https://pokeapi.co). It issues one GET per lookup to
// /pokemon-species/{name} and maps a 404 to provider.ErrNotFound.
package pokeapi

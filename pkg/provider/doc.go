// Package provider defines the capability interfaces the lookup engine
// consumes and the error taxonomy shared by their adapters.
//
// Two capabilities exist:
//   - [SpeciesFetcher] resolves a creature name to species attributes and
//     signals absence with [ErrNotFound].
//   - [Translator] rewrites text into a dialect. It is fail-open: the
//     boolean result reports whether a translation is available, and no
//     error is ever returned to the caller.
//
// Each adapter (pokeapi, funtranslations) owns its wire protocol, keeping
// provider payloads invisible to the engine.
package provider

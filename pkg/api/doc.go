// Package api defines the core types of the pokedex service.
//
// The package performs no I/O. It holds the per-request query, the species
// data produced by a species provider, the response returned to clients,
// the translation dialect enum and the structured error type shared by the
// engine and the transport layer.
//
// Core types:
//   - [CreatureQuery]: A single lookup request (name + translate flag)
//   - [SpeciesInfo]: Species attributes decoded from the species provider
//   - [CreatureResponse]: The JSON body returned to clients
//   - [Dialect]: The stylized dialect a description is rewritten into
//   - [APIError]: Structured error with type, param, and message
package api

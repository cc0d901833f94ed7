// Package providertest provides deterministic in-process fakes of the
// PokeAPI and FunTranslations services for tests and local development.
package providertest

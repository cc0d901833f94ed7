// Package engine implements the creature lookup orchestration. The Engine
// struct implements transport.CreatureLooker, composing a species provider
// and a translator: it fetches species data, shapes the English
// description, picks a dialect from the creature's attributes, and falls
// back to the untranslated description whenever translation is
// unavailable.
package engine

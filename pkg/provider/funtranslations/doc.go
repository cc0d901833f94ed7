// Package funtranslations implements provider.Translator against the
// FunTranslations API (https://funtranslations.com).
//
// The adapter is fail-open: every failure (transport error, non-200
// status, undecodable body, missing translated text) is logged at error
// level together with the original text, and reported to the caller only
// as a false ok value.
package funtranslations

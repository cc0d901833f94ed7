package engine

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/rhuss/pokedex/pkg/api"
)

// controlReplacer maps each newline, tab and form feed to one space.
// Adjacent replacements are not collapsed.
var controlReplacer = strings.NewReplacer("\n", " ", "\t", " ", "\f", " ")

// englishDescription returns the normalized text of the first English
// flavor-text entry, or nil when there is none.
func englishDescription(entries []api.FlavorText) *string {
	for _, e := range entries {
		if isEnglish(e.Language) {
			text := normalize(e.Text)
			return &text
		}
	}
	return nil
}

// isEnglish reports whether code names plain English. Regional variants
// such as "en-US" do not match.
func isEnglish(code string) bool {
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	return tag == language.English
}

func normalize(text string) string {
	return controlReplacer.Replace(text)
}

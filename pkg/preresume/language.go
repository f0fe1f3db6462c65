package preresume

import (
	"strings"
	"unicode"
)

const spanishMarkers = "áéíóúñ¿¡"

// DetectLanguage guesses the language of an inbound text. Cyrillic script
// means Russian, Spanish diacritics mean Spanish, everything else is
// treated as English.
func DetectLanguage(text string) string {
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			return "ru"
		}
	}
	if strings.ContainsAny(strings.ToLower(text), spanishMarkers) {
		return "es"
	}
	return "en"
}

package generate

import "strings"

var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"zh": "Chinese",
	"ja": "Japanese",
}

// LanguageName converts a language code to its display name, defaulting to
// English for unknown codes.
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(strings.TrimSpace(code))]; ok {
		return name
	}
	return "English"
}

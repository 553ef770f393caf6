package i18n

import "strings"

// Language selects a display dictionary and text direction.
type Language string

const (
	English Language = "en"
	Urdu    Language = "ur"
)

// DefaultLanguage is used for any unrecognized language value.
const DefaultLanguage = Urdu

// ParseLanguage normalizes s to a supported language, falling back to Urdu.
func ParseLanguage(s string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English
	case Urdu:
		return Urdu
	default:
		return DefaultLanguage
	}
}

// Valid reports whether l is one of the bundled languages.
func (l Language) Valid() bool {
	return l == English || l == Urdu
}

// Toggle returns the other bundled language.
func (l Language) Toggle() Language {
	if l == Urdu {
		return English
	}
	return Urdu
}

// RTL reports whether text in this language is written right-to-left.
func (l Language) RTL() bool {
	return ParseLanguage(string(l)) == Urdu
}

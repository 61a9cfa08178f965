package models

import "fmt"

// Locale is a supported content language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"
)

// ParseLocale validates a locale query value. Anything other than the
// two supported languages is rejected at the boundary.
func ParseLocale(s string) (Locale, error) {
	switch Locale(s) {
	case LocaleEN, LocaleZH:
		return Locale(s), nil
	}
	return "", fmt.Errorf("unsupported locale %q", s)
}

// DefaultLocale is used when the caller doesn't ask for a language.
const DefaultLocale = LocaleEN

// pick selects the language variant of a bilingual field.
func pick(loc Locale, en, zh string) string {
	if loc == LocaleZH {
		return zh
	}
	return en
}

func pickPtr(loc Locale, en, zh *string) *string {
	if loc == LocaleZH {
		return zh
	}
	return en
}

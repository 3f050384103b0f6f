package translation

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is a translation target offered by the assistance page
type Language string

const (
	German  Language = "German"
	French  Language = "French"
	Polish  Language = "Polish"
	Spanish Language = "Spanish"
)

var languageTags = map[Language]language.Tag{
	German:  language.German,
	French:  language.French,
	Polish:  language.Polish,
	Spanish: language.Spanish,
}

// Languages returns the supported targets in display order
func Languages() []Language {
	return []Language{German, French, Polish, Spanish}
}

// ParseLanguage matches a language name case-insensitively
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages() {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnsupportedLanguage)
}

// Tag returns the BCP 47 tag, used for the lang attribute of rendered results
func (l Language) Tag() language.Tag {
	if tag, ok := languageTags[l]; ok {
		return tag
	}
	return language.Und
}

func (l Language) String() string {
	return string(l)
}

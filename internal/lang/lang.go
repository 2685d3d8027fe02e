// Package lang holds the closed set of languages the tool can translate
// between and the two text directions they are written in.
package lang

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the supported languages. The zero value is Und,
// meaning the language is not known (or should be auto-detected).
type Language int

const (
	Und Language = iota
	En
	EnGB
	EnUS
	Fa
	Ar
	He
	Fr
	De
	Es
)

var codes = [...]string{
	Und:  "und",
	En:   "en",
	EnGB: "en-gb",
	EnUS: "en-us",
	Fa:   "fa",
	Ar:   "ar",
	He:   "he",
	Fr:   "fr",
	De:   "de",
	Es:   "es",
}

// All returns the supported languages, excluding Und.
func All() []Language {
	return []Language{En, EnGB, EnUS, Fa, Ar, He, Fr, De, Es}
}

// Parse resolves a BCP 47 tag to a supported language. Matching is case
// insensitive and falls back to the base language, so "en-AU" is En.
// An empty string or "auto" yields Und.
func Parse(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return Und, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Und, fmt.Errorf("invalid language %q: %w", s, err)
	}
	if l, ok := lookup(tag.String()); ok {
		return l, nil
	}
	if base, conf := tag.Base(); conf != language.No {
		if l, ok := lookup(base.String()); ok {
			return l, nil
		}
	}
	return Und, fmt.Errorf("unsupported language %q, want one of %v", s, All())
}

func lookup(code string) (Language, bool) {
	code = strings.ToLower(code)
	for l, c := range codes {
		if c == code {
			return Language(l), true
		}
	}
	return Und, false
}

func (l Language) String() string {
	if l < 0 || int(l) >= len(codes) {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return codes[l]
}

// Tag returns the canonical BCP 47 tag, e.g. en-GB.
func (l Language) Tag() language.Tag {
	return language.Make(l.String())
}

// Direction is the writing direction of the language.
func (l Language) Direction() Direction {
	switch l {
	case Fa, Ar, He:
		return RightToLeft
	default:
		return LeftToRight
	}
}

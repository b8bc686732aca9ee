package providers

import (
	"strings"
	"unicode"
)

// ContainsInOrder reports whether every rune of query appears in text in
// the same order, not necessarily adjacent. Comparison is
// case-insensitive. An empty query matches nothing.
func ContainsInOrder(text, query string) bool {
	if query == "" {
		return false
	}

	textRunes := []rune(strings.ToLower(text))
	pos := 0
	for _, q := range strings.ToLower(query) {
		found := false
		for pos < len(textRunes) {
			r := textRunes[pos]
			pos++
			if r == q {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// MatchesAcronym reports whether query is a prefix of the word initials
// of text, e.g. "vsc" and "vs" both match "Visual Studio Code".
// Comparison is case-insensitive; words are split on spaces, hyphens and
// underscores. Single-word names never match.
func MatchesAcronym(text, query string) bool {
	if query == "" {
		return false
	}

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_'
	})
	if len(words) < 2 {
		return false
	}

	var initials strings.Builder
	for _, word := range words {
		r := []rune(word)
		if len(r) > 0 {
			initials.WriteRune(r[0])
		}
	}

	return strings.HasPrefix(initials.String(), strings.ToLower(query))
}

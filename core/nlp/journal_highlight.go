package nlp

import (
	"regexp"
)

const maxHighlightsPerTheme = 3

// HighlightPhrases finds literal occurrences of each theme in the
// ORIGINAL (non-lowercased) text: case-insensitive, whole-word, up to
// three matches per theme in order of appearance. Themes with no
// matches are omitted.
func HighlightPhrases(originalText string, themes []string) map[string][]string {
	highlighted := make(map[string][]string)
	for _, theme := range themes {
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(theme) + `\b`)
		if err != nil {
			continue
		}
		matches := pattern.FindAllString(originalText, maxHighlightsPerTheme)
		if len(matches) > 0 {
			highlighted[theme] = matches
		}
	}
	return highlighted
}

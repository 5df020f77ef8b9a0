// Package nlp implements the emotional-analysis pipeline: text
// preprocessing, tiered sentiment and emotion classification, theme
// extraction, mood scoring, phrase highlighting and basic suggestions.
package nlp

import (
	"regexp"
	"strings"

	"github.com/bbalet/stopwords"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Preprocess lowercases, collapses runs of whitespace to a single
// space and trims. Pure; empty input stays empty.
func Preprocess(text string) string {
	cleaned := strings.ToLower(text)
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Lemmatize is the optional reduction step: it strips English
// stopwords from lowercased text. It never errors; if stripping
// leaves nothing, the preprocessed input is returned unchanged.
func Lemmatize(text string) string {
	reduced := strings.TrimSpace(stopwords.CleanString(text, "en", false))
	if reduced == "" {
		return Preprocess(text)
	}
	return reduced
}

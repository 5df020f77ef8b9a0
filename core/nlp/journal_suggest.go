package nlp

import "strings"

const maxBasicSuggestions = 5

// Theme keyword groups for rule-based suggestion appends.
var (
	workKeywords         = []string{"work", "job", "career", "boss", "project"}
	relationshipKeywords = []string{"friend", "family", "partner", "love"}
	schoolKeywords       = []string{"school", "exam", "study", "grade"}
)

// BasicSuggestions returns base suggestions for the primary emotion
// (unknown labels use the neutral entry) plus one append per matched
// theme keyword group, truncated to five.
func BasicSuggestions(table EmojiMap, primaryEmotion string, themes []string) []string {
	entry := table.Lookup(primaryEmotion)
	suggestions := make([]string, 0, maxBasicSuggestions)
	suggestions = append(suggestions, entry.Suggestions...)

	themeText := strings.ToLower(strings.Join(themes, " "))
	if containsAny(themeText, workKeywords) {
		suggestions = append(suggestions, "Consider taking a short break from work tasks")
	}
	if containsAny(themeText, relationshipKeywords) {
		suggestions = append(suggestions, "Reach out to someone you care about")
	}
	if containsAny(themeText, schoolKeywords) {
		suggestions = append(suggestions, "Remember that one test doesn't define you")
	}

	if len(suggestions) > maxBasicSuggestions {
		suggestions = suggestions[:maxBasicSuggestions]
	}
	return suggestions
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

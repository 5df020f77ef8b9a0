package nlp

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultTopThemes is the theme count returned by the orchestrator.
const DefaultTopThemes = 5

var sentenceSplitPattern = regexp.MustCompile(`[.!?,;:\t\n\r"()\[\]]+`)

// rakeStopwords delimits candidate phrases in the primary extractor.
var rakeStopwords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "am": true, "an": true, "and": true,
	"any": true, "are": true, "as": true, "at": true, "be": true,
	"because": true, "been": true, "before": true, "being": true, "below": true,
	"between": true, "both": true, "but": true, "by": true, "can": true,
	"cannot": true, "could": true, "did": true, "do": true, "does": true,
	"doing": true, "down": true, "during": true, "each": true, "few": true,
	"for": true, "from": true, "further": true, "had": true, "has": true,
	"have": true, "having": true, "he": true, "her": true, "here": true,
	"hers": true, "herself": true, "him": true, "himself": true, "his": true,
	"how": true, "i": true, "if": true, "in": true, "into": true,
	"is": true, "it": true, "its": true, "itself": true, "just": true,
	"me": true, "more": true, "most": true, "my": true, "myself": true,
	"no": true, "nor": true, "not": true, "now": true, "of": true,
	"off": true, "on": true, "once": true, "only": true, "or": true,
	"other": true, "our": true, "ours": true, "ourselves": true, "out": true,
	"over": true, "own": true, "same": true, "she": true, "should": true,
	"so": true, "some": true, "such": true, "than": true, "that": true,
	"the": true, "their": true, "theirs": true, "them": true, "themselves": true,
	"then": true, "there": true, "these": true, "they": true, "this": true,
	"those": true, "through": true, "to": true, "too": true, "under": true,
	"until": true, "up": true, "very": true, "was": true, "we": true,
	"were": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "who": true, "whom": true, "why": true, "will": true,
	"with": true, "would": true, "you": true, "your": true, "yours": true,
	"yourself": true, "yourselves": true,
}

// fallbackStopwords is the small fixed set of the degraded word-split path.
var fallbackStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "is": true, "am": true, "are": true,
}

// ExtractThemes ranks keyword phrases in the original (unlowercased)
// text with a RAKE-style degree/frequency score and returns up to topN
// phrases longer than 3 characters. When the primary extractor yields
// nothing it degrades to a word-frequency split; order in that path is
// not deterministic. Never fails.
func ExtractThemes(text string, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopThemes
	}

	themes := rakeThemes(text, topN)
	if len(themes) > 0 {
		return themes
	}
	return fallbackThemes(text, topN)
}

type rankedPhrase struct {
	phrase string
	score  float64
}

func rakeThemes(text string, topN int) []string {
	// Candidate phrases: maximal stopword-free word runs per sentence.
	var phrases [][]string
	for _, sentence := range sentenceSplitPattern.Split(strings.ToLower(text), -1) {
		var current []string
		for _, word := range strings.Fields(sentence) {
			word = strings.Trim(word, "'\"-")
			if word == "" || rakeStopwords[word] {
				if len(current) > 0 {
					phrases = append(phrases, current)
					current = nil
				}
				continue
			}
			current = append(current, word)
		}
		if len(current) > 0 {
			phrases = append(phrases, current)
		}
	}
	if len(phrases) == 0 {
		return nil
	}

	// Word score = degree / frequency over the co-occurrence graph.
	freq := make(map[string]float64)
	degree := make(map[string]float64)
	for _, phrase := range phrases {
		for _, word := range phrase {
			freq[word]++
			degree[word] += float64(len(phrase) - 1)
		}
	}
	wordScore := make(map[string]float64, len(freq))
	for word := range freq {
		wordScore[word] = (degree[word] + freq[word]) / freq[word]
	}

	// Phrase score = sum of member word scores; keep best per phrase text.
	bestScore := make(map[string]float64)
	for _, phrase := range phrases {
		var score float64
		for _, word := range phrase {
			score += wordScore[word]
		}
		joined := strings.Join(phrase, " ")
		if score > bestScore[joined] {
			bestScore[joined] = score
		}
	}

	ranked := make([]rankedPhrase, 0, len(bestScore))
	for phrase, score := range bestScore {
		if len(phrase) > 3 {
			ranked = append(ranked, rankedPhrase{phrase: phrase, score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].phrase < ranked[j].phrase
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	themes := make([]string, len(ranked))
	for i, r := range ranked {
		themes[i] = r.phrase
	}
	return themes
}

func fallbackThemes(text string, topN int) []string {
	seen := make(map[string]bool)
	var themes []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:'\"()")
		if len(word) <= 3 || fallbackStopwords[word] || seen[word] {
			continue
		}
		seen[word] = true
		themes = append(themes, word)
		if len(themes) == topN {
			break
		}
	}
	return themes
}

package nlp

import (
	"context"
	"strings"
	"unicode/utf8"

	"journal_server/core/domain"
)

// Analyzer sequences the pipeline into one analyze call. It holds the
// process-wide classifier chains and emoji table; all state is
// read-only after construction, so concurrent calls are safe.
type Analyzer struct {
	sentiment *SentimentChain
	emotion   *EmotionChain
	emoji     EmojiMap
}

// NewAnalyzer wires the chains built at bootstrap.
func NewAnalyzer(sentiment *SentimentChain, emotion *EmotionChain, emoji EmojiMap) *Analyzer {
	return &Analyzer{
		sentiment: sentiment,
		emotion:   emotion,
		emoji:     emoji,
	}
}

// EmojiTable exposes the loaded table (the suggestion layer shares it).
func (a *Analyzer) EmojiTable() EmojiMap {
	return a.emoji
}

// Health reports per-tier readiness of both chains.
func (a *Analyzer) Health() map[string]map[string]bool {
	return map[string]map[string]bool{
		"sentiment": a.sentiment.Tiers(),
		"emotion":   a.emotion.Tiers(),
	}
}

// Analyze runs the full pipeline. It never fails for any string input:
// every stage has a terminal fallback.
func (a *Analyzer) Analyze(ctx context.Context, text string) *domain.AnalysisResult {
	cleaned := Preprocess(text)

	// Sentiment and emotion are independent reads of the cleaned text.
	sentiment := a.sentiment.Classify(ctx, cleaned)
	emotion := a.emotion.Classify(ctx, cleaned)
	emotion.Emoji = a.emoji.Lookup(emotion.Emotion).Emoji

	// Themes come from the original text so phrases keep their casing
	// context for highlighting.
	themes := ExtractThemes(text, DefaultTopThemes)

	moodScore := CalculateMoodScore(sentiment.Score, PeakIntensity(emotion.Scores))

	return &domain.AnalysisResult{
		Sentiment:          sentiment,
		Emotion:            emotion,
		MoodScore:          moodScore,
		Themes:             themes,
		Suggestions:        BasicSuggestions(a.emoji, emotion.Emotion, themes),
		HighlightedPhrases: HighlightPhrases(text, themes),
		Metadata: domain.AnalysisMetadata{
			TextLength: utf8.RuneCountInString(text),
			WordCount:  len(strings.Fields(text)),
			ModelsUsed: map[string]string{
				"sentiment": sentiment.Method,
				"emotion":   emotion.Method,
			},
		},
	}
}

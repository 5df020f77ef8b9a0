package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal_server/core/domain"
)

func newLexiconAnalyzer() *Analyzer {
	sentiment := NewSentimentChain(NewVaderSentiment())
	emotion := NewEmotionChain(NewKeywordEmotion())
	return NewAnalyzer(sentiment, emotion, DefaultEmojiMap())
}

func TestAnalyzePositiveEntry(t *testing.T) {
	analyzer := newLexiconAnalyzer()
	text := "I am so happy and grateful today! My project presentation went wonderfully."

	result := analyzer.Analyze(context.Background(), text)
	require.NotNil(t, result)

	assert.Equal(t, domain.SentimentPositive, result.Sentiment.Label)
	assert.Greater(t, result.Sentiment.Score, 0.0)
	assert.Equal(t, domain.EmotionHappy, result.Emotion.Emotion)
	assert.Equal(t, "😊", result.Emotion.Emoji)
	assert.GreaterOrEqual(t, result.MoodScore, 5)
	assert.LessOrEqual(t, result.MoodScore, 10)
	assert.NotEmpty(t, result.Suggestions)
	assert.LessOrEqual(t, len(result.Themes), DefaultTopThemes)
}

func TestAnalyzeNegativeEntry(t *testing.T) {
	analyzer := newLexiconAnalyzer()
	text := "Everything is terrible. I failed my exam and I feel sad and hopeless."

	result := analyzer.Analyze(context.Background(), text)
	require.NotNil(t, result)

	assert.Equal(t, domain.SentimentNegative, result.Sentiment.Label)
	assert.Less(t, result.Sentiment.Score, 0.0)
	assert.Equal(t, domain.EmotionSad, result.Emotion.Emotion)
	assert.LessOrEqual(t, result.MoodScore, 5)
	assert.GreaterOrEqual(t, result.MoodScore, 0)
}

func TestAnalyzeMetadata(t *testing.T) {
	analyzer := newLexiconAnalyzer()
	text := "Busy day at work today."

	result := analyzer.Analyze(context.Background(), text)
	require.NotNil(t, result)

	assert.Equal(t, len(text), result.Metadata.TextLength)
	assert.Equal(t, 5, result.Metadata.WordCount)
	assert.Equal(t, domain.MethodVaderLexicon, result.Metadata.ModelsUsed["sentiment"])
	assert.Equal(t, domain.MethodKeywordMatch, result.Metadata.ModelsUsed["emotion"])
}

func TestAnalyzeHighlightsUseOriginalCasing(t *testing.T) {
	analyzer := newLexiconAnalyzer()
	text := "Stressful meeting today. The Stressful meeting ran long and the stressful meeting notes piled up."

	result := analyzer.Analyze(context.Background(), text)
	require.NotNil(t, result)

	for theme, matches := range result.HighlightedPhrases {
		assert.LessOrEqual(t, len(matches), 3, "theme %q", theme)
		assert.NotEmpty(t, matches, "zero-match themes must be omitted")
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	analyzer := newLexiconAnalyzer()

	result := analyzer.Analyze(context.Background(), "")
	require.NotNil(t, result)

	assert.Equal(t, domain.SentimentNeutral, result.Sentiment.Label)
	assert.Empty(t, result.Themes)
	assert.Equal(t, 0, result.Metadata.WordCount)
}

func TestAnalyzerHealth(t *testing.T) {
	analyzer := newLexiconAnalyzer()

	health := analyzer.Health()
	require.Contains(t, health, "sentiment")
	require.Contains(t, health, "emotion")
	assert.True(t, health["sentiment"][domain.MethodVaderLexicon])
	assert.True(t, health["emotion"][domain.MethodKeywordMatch])
}

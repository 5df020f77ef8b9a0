// Package domain contains the core entities of the journal analysis service.
package domain

// SentimentLabel is the coarse polarity of a text.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
	SentimentNeutral  SentimentLabel = "NEUTRAL"
)

// Sentiment classifier method tags (provenance of a result)
const (
	MethodLogisticRegression = "logistic_regression"
	MethodOpenAIPipeline     = "openai_pipeline"
	MethodVaderLexicon       = "vader_lexicon"
	MethodNaiveBayes         = "naive_bayes"
	MethodKeywordMatch       = "keyword_match"
	MethodFallback           = "fallback"
)

// SentimentResult is the outcome of the sentiment classifier chain.
// Score is in [-1, 1]; Confidence in [0, 1].
type SentimentResult struct {
	Label      SentimentLabel `json:"label"`
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
	Method     string         `json:"method"`
}

// EmotionResult is the outcome of the emotion classifier chain.
// Scores maps emotion label to probability/score in [0, 1].
type EmotionResult struct {
	Emotion    string             `json:"emotion"`
	Emoji      string             `json:"emoji,omitempty"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
	Method     string             `json:"method"`
}

// Emotion vocabulary of the trained classifier and keyword matcher.
const (
	EmotionHappy    = "happy"
	EmotionSad      = "sad"
	EmotionAngry    = "angry"
	EmotionAnxious  = "anxious"
	EmotionFear     = "fear"
	EmotionSurprise = "surprise"
	EmotionNeutral  = "neutral"
	EmotionCalm     = "calm"
)

// AnalysisMetadata carries secondary stats about the analyzed text.
// ModelsUsed maps classifier kind ("sentiment", "emotion") to the
// method tag that produced the result.
type AnalysisMetadata struct {
	TextLength int               `json:"text_length"`
	WordCount  int               `json:"word_count"`
	ModelsUsed map[string]string `json:"models_used,omitempty"`
}

// AnalysisResult is the full output of the analysis pipeline for one text.
// HighlightedPhrases maps each matched theme to up to three literal
// occurrences in the original text.
type AnalysisResult struct {
	Sentiment          *SentimentResult    `json:"sentiment"`
	Emotion            *EmotionResult      `json:"emotion"`
	MoodScore          int                 `json:"mood_score"`
	Themes             []string            `json:"themes"`
	Suggestions        []string            `json:"suggestions"`
	HighlightedPhrases map[string][]string `json:"highlighted_phrases"`
	Metadata           AnalysisMetadata    `json:"metadata"`
}

// EmotionIntensity bands a combined mood/confidence reading.
type EmotionIntensity string

const (
	IntensityMild     EmotionIntensity = "mild"
	IntensityModerate EmotionIntensity = "moderate"
	IntensityIntense  EmotionIntensity = "intense"
)

// LifeDomain is the detected life area a journal entry is about.
type LifeDomain string

const (
	DomainWork          LifeDomain = "work"
	DomainRelationships LifeDomain = "relationships"
	DomainSchool        LifeDomain = "school"
	DomainHealth        LifeDomain = "health"
	DomainGeneral       LifeDomain = "general"
)

// PersonalizedSuggestions is the enriched suggestion output of the
// analyze-only path: context-aware suggestions plus the signals that
// produced them.
type PersonalizedSuggestions struct {
	Suggestions     []string         `json:"suggestions"`
	LifeDomain      LifeDomain       `json:"life_domain"`
	Intensity       EmotionIntensity `json:"emotion_intensity"`
	CrisisResources string           `json:"crisis_resources,omitempty"`
}

package nlp

import (
	"context"
	"strings"

	"journal_server/core/domain"
	"journal_server/core/nlp/ml"
	"journal_server/core/port/out"
	"journal_server/pkg/logger"
)

// EmotionClassifier is one tier of the emotion chain.
type EmotionClassifier interface {
	Name() string
	Ready() bool
	Classify(ctx context.Context, text string) (*domain.EmotionResult, error)
}

// FallbackEmotion is the terminal result when no tier can run or the
// active tier fails.
func FallbackEmotion() *domain.EmotionResult {
	return &domain.EmotionResult{
		Emotion:    domain.EmotionNeutral,
		Confidence: 0.5,
		Scores:     map[string]float64{domain.EmotionNeutral: 0.5},
		Method:     domain.MethodFallback,
	}
}

// EmotionChain mirrors SentimentChain: the first ready tier is bound
// at construction, and per-call failures degrade to the fallback.
type EmotionChain struct {
	active EmotionClassifier
	tiers  []EmotionClassifier
}

// NewEmotionChain selects the first ready tier.
func NewEmotionChain(tiers ...EmotionClassifier) *EmotionChain {
	chain := &EmotionChain{tiers: tiers}
	for _, tier := range tiers {
		if tier.Ready() {
			chain.active = tier
			logger.Info("emotion chain bound to %s", tier.Name())
			break
		}
	}
	if chain.active == nil {
		logger.Warn("emotion chain has no ready tier, all calls fall back")
	}
	return chain
}

// Method returns the bound tier's tag, or the fallback tag.
func (c *EmotionChain) Method() string {
	if c.active == nil {
		return domain.MethodFallback
	}
	return c.active.Name()
}

// Tiers reports readiness per tier (for health endpoints).
func (c *EmotionChain) Tiers() map[string]bool {
	status := make(map[string]bool, len(c.tiers))
	for _, tier := range c.tiers {
		status[tier.Name()] = tier.Ready()
	}
	return status
}

// Classify never returns an error to its caller.
func (c *EmotionChain) Classify(ctx context.Context, text string) *domain.EmotionResult {
	if c.active == nil {
		return FallbackEmotion()
	}
	result, err := c.active.Classify(ctx, text)
	if err != nil || result == nil {
		logger.WithError(err).Warn("emotion tier %s failed, using fallback", c.active.Name())
		return FallbackEmotion()
	}
	return result
}

// =============================================================================
// Tier 1: trained naive Bayes
// =============================================================================

type trainedEmotion struct {
	model *ml.EmotionModel
}

// NewTrainedEmotion wraps a loaded artifact; model may be nil.
func NewTrainedEmotion(model *ml.EmotionModel) EmotionClassifier {
	return &trainedEmotion{model: model}
}

func (t *trainedEmotion) Name() string { return domain.MethodNaiveBayes }

func (t *trainedEmotion) Ready() bool { return t.model != nil }

func (t *trainedEmotion) Classify(_ context.Context, text string) (*domain.EmotionResult, error) {
	emotion, confidence, scores, err := t.model.Classify(text)
	if err != nil {
		return nil, err
	}
	return &domain.EmotionResult{
		Emotion:    emotion,
		Confidence: confidence,
		Scores:     scores,
		Method:     t.Name(),
	}, nil
}

// =============================================================================
// Tier 2: hosted model behind the RemoteInference port
// =============================================================================

type remoteEmotion struct {
	inference out.RemoteInference
}

// NewRemoteEmotion wraps the remote inference port; nil means absent.
func NewRemoteEmotion(inference out.RemoteInference) EmotionClassifier {
	return &remoteEmotion{inference: inference}
}

func (r *remoteEmotion) Name() string { return domain.MethodOpenAIPipeline }

func (r *remoteEmotion) Ready() bool {
	return r.inference != nil && r.inference.Available()
}

func (r *remoteEmotion) Classify(ctx context.Context, text string) (*domain.EmotionResult, error) {
	return r.inference.ClassifyEmotion(ctx, text)
}

// =============================================================================
// Tier 3: keyword matching
// =============================================================================

// Per-emotion keyword lists for the lexical tier. Hits are normalized
// by word count and scaled; see keywordScale.
var emotionKeywords = map[string][]string{
	domain.EmotionHappy:    {"happy", "joy", "glad", "great", "wonderful", "delighted", "excited", "love", "fun", "celebrating", "grateful", "amazing"},
	domain.EmotionSad:      {"sad", "unhappy", "depressed", "cry", "crying", "tears", "gloomy", "grieving", "miss", "lonely", "hopeless", "heartbroken"},
	domain.EmotionAngry:    {"angry", "furious", "mad", "hate", "annoyed", "annoying", "outraged", "frustrated", "frustrating", "resentful", "temper"},
	domain.EmotionAnxious:  {"anxious", "anxiety", "nervous", "worried", "worry", "stressed", "stress", "panic", "overwhelmed", "pressure", "uneasy"},
	domain.EmotionFear:     {"afraid", "scared", "fear", "terrified", "frightened", "unsafe", "dread", "horror"},
	domain.EmotionCalm:     {"calm", "relaxed", "peaceful", "quiet", "serene", "content", "rested"},
	domain.EmotionSurprise: {"surprised", "shocked", "unexpected", "amazed", "stunned", "wow", "unbelievable"},
}

const keywordScale = 5.0

type keywordEmotion struct{}

// NewKeywordEmotion builds the lexical tier. Always ready.
func NewKeywordEmotion() EmotionClassifier {
	return &keywordEmotion{}
}

func (k *keywordEmotion) Name() string { return domain.MethodKeywordMatch }

func (k *keywordEmotion) Ready() bool { return true }

func (k *keywordEmotion) Classify(_ context.Context, text string) (*domain.EmotionResult, error) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		// The tier still ran, so it keeps its own provenance tag.
		return &domain.EmotionResult{
			Emotion:    domain.EmotionNeutral,
			Confidence: 0.5,
			Scores:     map[string]float64{domain.EmotionNeutral: 0.5},
			Method:     k.Name(),
		}, nil
	}

	wordSet := make(map[string]int, len(words))
	for _, w := range words {
		wordSet[strings.Trim(w, ".,!?;:'\"()")]++
	}

	scores := make(map[string]float64)
	for emotion, keywords := range emotionKeywords {
		hits := 0
		for _, kw := range keywords {
			hits += wordSet[kw]
		}
		if hits > 0 {
			score := float64(hits) / float64(len(words)) * keywordScale
			if score > 1 {
				score = 1
			}
			scores[emotion] = ml.Round3(score)
		}
	}

	if len(scores) == 0 {
		return &domain.EmotionResult{
			Emotion:    domain.EmotionNeutral,
			Confidence: 0.5,
			Scores:     map[string]float64{domain.EmotionNeutral: 0.5},
			Method:     k.Name(),
		}, nil
	}

	best := ""
	bestScore := -1.0
	for emotion, score := range scores {
		if score > bestScore || (score == bestScore && emotion < best) {
			best = emotion
			bestScore = score
		}
	}

	return &domain.EmotionResult{
		Emotion:    best,
		Confidence: bestScore,
		Scores:     scores,
		Method:     k.Name(),
	}, nil
}

package nlp

import (
	"context"

	"journal_server/core/domain"
	"journal_server/core/nlp/ml"
	"journal_server/core/port/out"
	"journal_server/pkg/logger"

	"github.com/jonreiter/govader"
)

// SentimentClassifier is one tier of the sentiment chain.
type SentimentClassifier interface {
	// Name returns the method provenance tag.
	Name() string

	// Ready reports whether the tier can classify at all. Checked once
	// when the chain is built, not per call.
	Ready() bool

	// Classify returns polarity for cleaned text.
	Classify(ctx context.Context, text string) (*domain.SentimentResult, error)
}

// FallbackSentiment is the terminal result when no tier can run or the
// active tier fails.
func FallbackSentiment() *domain.SentimentResult {
	return &domain.SentimentResult{
		Label:      domain.SentimentNeutral,
		Score:      0,
		Confidence: 0,
		Method:     domain.MethodFallback,
	}
}

// SentimentChain tries tiers in order and binds to the first one that
// is ready at construction time. A per-call failure of the bound tier
// degrades that call to the terminal fallback; it does not re-route to
// a later tier.
type SentimentChain struct {
	active SentimentClassifier
	tiers  []SentimentClassifier
}

// NewSentimentChain selects the first ready tier.
func NewSentimentChain(tiers ...SentimentClassifier) *SentimentChain {
	chain := &SentimentChain{tiers: tiers}
	for _, tier := range tiers {
		if tier.Ready() {
			chain.active = tier
			logger.Info("sentiment chain bound to %s", tier.Name())
			break
		}
	}
	if chain.active == nil {
		logger.Warn("sentiment chain has no ready tier, all calls fall back")
	}
	return chain
}

// Method returns the bound tier's tag, or the fallback tag.
func (c *SentimentChain) Method() string {
	if c.active == nil {
		return domain.MethodFallback
	}
	return c.active.Name()
}

// Tiers reports readiness per tier (for health endpoints).
func (c *SentimentChain) Tiers() map[string]bool {
	status := make(map[string]bool, len(c.tiers))
	for _, tier := range c.tiers {
		status[tier.Name()] = tier.Ready()
	}
	return status
}

// Classify never returns an error to its caller.
func (c *SentimentChain) Classify(ctx context.Context, text string) *domain.SentimentResult {
	if c.active == nil {
		return FallbackSentiment()
	}
	result, err := c.active.Classify(ctx, text)
	if err != nil || result == nil {
		logger.WithError(err).Warn("sentiment tier %s failed, using fallback", c.active.Name())
		return FallbackSentiment()
	}
	return result
}

// =============================================================================
// Tier 1: trained logistic regression
// =============================================================================

type trainedSentiment struct {
	model *ml.SentimentModel
}

// NewTrainedSentiment wraps a loaded artifact; model may be nil when
// the artifact was absent at startup.
func NewTrainedSentiment(model *ml.SentimentModel) SentimentClassifier {
	return &trainedSentiment{model: model}
}

func (t *trainedSentiment) Name() string { return domain.MethodLogisticRegression }

func (t *trainedSentiment) Ready() bool { return t.model != nil }

func (t *trainedSentiment) Classify(_ context.Context, text string) (*domain.SentimentResult, error) {
	label, score, confidence, err := t.model.Classify(text)
	if err != nil {
		return nil, err
	}
	return &domain.SentimentResult{
		Label:      domain.SentimentLabel(label),
		Score:      score,
		Confidence: confidence,
		Method:     t.Name(),
	}, nil
}

// =============================================================================
// Tier 2: hosted model behind the RemoteInference port
// =============================================================================

type remoteSentiment struct {
	inference out.RemoteInference
}

// NewRemoteSentiment wraps the remote inference port; a nil port means
// the tier is absent.
func NewRemoteSentiment(inference out.RemoteInference) SentimentClassifier {
	return &remoteSentiment{inference: inference}
}

func (r *remoteSentiment) Name() string { return domain.MethodOpenAIPipeline }

func (r *remoteSentiment) Ready() bool {
	return r.inference != nil && r.inference.Available()
}

func (r *remoteSentiment) Classify(ctx context.Context, text string) (*domain.SentimentResult, error) {
	return r.inference.ClassifySentiment(ctx, text)
}

// =============================================================================
// Tier 3: VADER lexicon
// =============================================================================

// Compound score thresholds per the VADER convention.
const vaderThreshold = 0.05

type vaderSentiment struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderSentiment builds the lexicon tier. Always ready.
func NewVaderSentiment() SentimentClassifier {
	return &vaderSentiment{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *vaderSentiment) Name() string { return domain.MethodVaderLexicon }

func (v *vaderSentiment) Ready() bool { return v.analyzer != nil }

func (v *vaderSentiment) Classify(_ context.Context, text string) (*domain.SentimentResult, error) {
	compound := v.analyzer.PolarityScores(text).Compound

	label := domain.SentimentNeutral
	switch {
	case compound >= vaderThreshold:
		label = domain.SentimentPositive
	case compound <= -vaderThreshold:
		label = domain.SentimentNegative
	}

	confidence := compound
	if confidence < 0 {
		confidence = -confidence
	}

	return &domain.SentimentResult{
		Label:      label,
		Score:      ml.Round3(compound),
		Confidence: ml.Round3(confidence),
		Method:     v.Name(),
	}, nil
}

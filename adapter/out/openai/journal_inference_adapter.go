// Package openai adapts the OpenAI API to the journal core's remote
// inference and transcription ports, guarded by a circuit breaker.
package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"journal_server/core/domain"
	"journal_server/core/port/out"
	"journal_server/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// Config holds the OpenAI adapter configuration.
type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

const defaultModel = "gpt-4o-mini"

// InferenceAdapter implements out.RemoteInference
type InferenceAdapter struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
	cb          *gobreaker.CircuitBreaker
}

// NewInferenceAdapter creates a new InferenceAdapter. An empty API key
// yields an adapter that reports itself unavailable.
func NewInferenceAdapter(cfg Config) *InferenceAdapter {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 256
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	cbSettings := gobreaker.Settings{
		Name:        "openai-inference",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures > 5 ||
				(counts.Requests >= 10 && failureRatio >= 0.6)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker %s: state changed from %s to %s", name, from.String(), to.String())
		},
	}

	var client *openai.Client
	if cfg.APIKey != "" {
		client = openai.NewClient(cfg.APIKey)
	}

	return &InferenceAdapter{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: float32(cfg.Temperature),
		timeout:     timeout,
		cb:          gobreaker.NewCircuitBreaker(cbSettings),
	}
}

func (a *InferenceAdapter) Available() bool {
	return a.client != nil
}

const sentimentSystemPrompt = `You are a sentiment classification AI. Analyze the text and respond with JSON only.

Respond with this exact JSON format:
{
  "label": "POSITIVE|NEGATIVE",
  "confidence": 0.0-1.0
}`

type sentimentResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ClassifySentiment asks the model for a binary label and confidence;
// the score is the signed confidence.
func (a *InferenceAdapter) ClassifySentiment(ctx context.Context, text string) (*domain.SentimentResult, error) {
	raw, err := a.complete(ctx, sentimentSystemPrompt, text)
	if err != nil {
		return nil, err
	}

	var resp sentimentResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("parse sentiment response: %w", err)
	}

	label := domain.SentimentLabel(strings.ToUpper(resp.Label))
	score := resp.Confidence
	switch label {
	case domain.SentimentPositive:
	case domain.SentimentNegative:
		score = -score
	default:
		return nil, fmt.Errorf("unexpected sentiment label %q", resp.Label)
	}

	return &domain.SentimentResult{
		Label:      label,
		Score:      score,
		Confidence: resp.Confidence,
		Method:     domain.MethodOpenAIPipeline,
	}, nil
}

const emotionSystemPrompt = `You are an emotion classification AI. Analyze the text and respond with JSON only.

Score each emotion from 0.0 to 1.0:
{
  "scores": {
    "happy": 0.0,
    "sad": 0.0,
    "angry": 0.0,
    "anxious": 0.0,
    "fear": 0.0,
    "surprise": 0.0,
    "calm": 0.0,
    "neutral": 0.0
  }
}`

type emotionResponse struct {
	Scores map[string]float64 `json:"scores"`
}

// ClassifyEmotion asks the model for a full score distribution; the
// primary emotion is the argmax.
func (a *InferenceAdapter) ClassifyEmotion(ctx context.Context, text string) (*domain.EmotionResult, error) {
	raw, err := a.complete(ctx, emotionSystemPrompt, text)
	if err != nil {
		return nil, err
	}

	var resp emotionResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("parse emotion response: %w", err)
	}
	if len(resp.Scores) == 0 {
		return nil, fmt.Errorf("empty emotion scores")
	}

	primary := ""
	best := -1.0
	for emotion, score := range resp.Scores {
		if score > best || (score == best && emotion < primary) {
			primary = emotion
			best = score
		}
	}

	return &domain.EmotionResult{
		Emotion:    primary,
		Confidence: best,
		Scores:     resp.Scores,
		Method:     domain.MethodOpenAIPipeline,
	}, nil
}

func (a *InferenceAdapter) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if a.client == nil {
		return "", fmt.Errorf("openai client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	result, err := a.cb.Execute(func() (interface{}, error) {
		resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       a.model,
			MaxTokens:   a.maxTokens,
			Temperature: a.temperature,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("empty completion response")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return "", err
	}

	raw := result.(string)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw), nil
}

var _ out.RemoteInference = (*InferenceAdapter)(nil)

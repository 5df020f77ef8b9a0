package openai

import (
	"context"
	"fmt"
	"time"

	"journal_server/core/port/out"

	"github.com/sashabaranov/go-openai"
)

const defaultWhisperModel = "whisper-1"

// WhisperAdapter implements out.Transcriber
type WhisperAdapter struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewWhisperAdapter creates a new WhisperAdapter. An empty API key
// yields an adapter that reports itself unavailable.
func NewWhisperAdapter(apiKey, model string, timeout time.Duration) *WhisperAdapter {
	if model == "" {
		model = defaultWhisperModel
	}
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return &WhisperAdapter{
		client:  client,
		model:   model,
		timeout: timeout,
	}
}

func (a *WhisperAdapter) Available() bool {
	return a.client != nil
}

// Transcribe sends the stored audio file to the transcription API.
func (a *WhisperAdapter) Transcribe(ctx context.Context, filePath string) (string, error) {
	if a.client == nil {
		return "", fmt.Errorf("openai client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    a.model,
		FilePath: filePath,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	return resp.Text, nil
}

var _ out.Transcriber = (*WhisperAdapter)(nil)
